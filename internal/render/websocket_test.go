package render_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/render"
)

type HubTestSuite struct {
	suite.Suite
	ctx    context.Context
	hub    *render.Hub
	server *httptest.Server
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) SetupTest() {
	s.ctx = context.Background()

	hub, err := render.NewHub(&render.HubConfig{WriteTimeout: time.Second})
	s.Require().NoError(err)
	s.hub = hub

	mux := http.NewServeMux()
	mux.Handle("GET /battles/{id}/stream", hub)
	s.server = httptest.NewServer(mux)
}

func (s *HubTestSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
}

func (s *HubTestSuite) dial(battleID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/battles/" + battleID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *HubTestSuite) readState(conn *websocket.Conn) *entities.BattleState {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var state entities.BattleState
	s.Require().NoError(conn.ReadJSON(&state))
	return &state
}

func (s *HubTestSuite) TestStreamsSnapshots() {
	conn := s.dial("battle_1")
	s.Require().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_1") == 1
	}, time.Second, 10*time.Millisecond)

	state := newState()
	s.Require().NoError(s.hub.Render(s.ctx, state))

	got := s.readState(conn)
	s.Assert().Equal("battle_1", got.ID)
	s.Assert().Equal([]string{"Go, Pikachu!"}, got.Log)

	state.AppendLog("Pikachu used Thunder Shock!")
	s.Require().NoError(s.hub.Render(s.ctx, state))
	s.Assert().Len(s.readState(conn).Log, 2)
}

func (s *HubTestSuite) TestLateSubscriberGetsLatest() {
	s.Require().NoError(s.hub.Render(s.ctx, newState()))

	conn := s.dial("battle_1")
	got := s.readState(conn)
	s.Assert().Equal(entities.PhasePlayer, got.Phase)
}

func (s *HubTestSuite) TestOtherBattlesAreNotDelivered() {
	conn := s.dial("battle_2")
	s.Require().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_2") == 1
	}, time.Second, 10*time.Millisecond)

	s.Require().NoError(s.hub.Render(s.ctx, newState()))

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond)))
	_, _, err := conn.ReadMessage()
	s.Assert().Error(err)
}

func (s *HubTestSuite) TestDisconnectUnregisters() {
	conn := s.dial("battle_1")
	s.Require().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_1") == 1
	}, time.Second, 10*time.Millisecond)

	s.Require().NoError(conn.Close())

	s.Assert().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_1") == 0
	}, time.Second, 10*time.Millisecond)
}

func (s *HubTestSuite) TestSnapshotIsValidJSON() {
	conn := s.dial("battle_1")
	s.Require().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_1") == 1
	}, time.Second, 10*time.Millisecond)

	s.Require().NoError(s.hub.Render(s.ctx, newState()))

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, raw, err := conn.ReadMessage()
	s.Require().NoError(err)

	var generic map[string]any
	s.Require().NoError(json.Unmarshal(raw, &generic))
	s.Assert().Contains(generic, "player_team")
	s.Assert().Equal("player", generic["phase"])
}

func (s *HubTestSuite) TestForgetClosesSubscribersAndDropsLatest() {
	conn := s.dial("battle_1")
	s.Require().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_1") == 1
	}, time.Second, 10*time.Millisecond)
	s.Require().NoError(s.hub.Render(s.ctx, newState()))
	s.readState(conn)

	s.Require().NoError(s.hub.Forget(s.ctx, "battle_1"))

	s.Assert().Equal(0, s.hub.SubscriberCount("battle_1"))
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := conn.ReadMessage()
	s.Assert().True(websocket.IsCloseError(err, websocket.CloseNormalClosure))

	late := s.dial("battle_1")
	s.Require().NoError(late.SetReadDeadline(time.Now().Add(100 * time.Millisecond)))
	_, _, err = late.ReadMessage()
	s.Assert().Error(err)
	s.Assert().False(websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func (s *HubTestSuite) TestForgetLeavesOtherBattles() {
	conn := s.dial("battle_2")
	s.Require().Eventually(func() bool {
		return s.hub.SubscriberCount("battle_2") == 1
	}, time.Second, 10*time.Millisecond)

	s.Require().NoError(s.hub.Forget(s.ctx, "battle_1"))

	s.Assert().Equal(1, s.hub.SubscriberCount("battle_2"))
	state := newState()
	state.ID = "battle_2"
	s.Require().NoError(s.hub.Render(s.ctx, state))
	s.Assert().Equal("battle_2", s.readState(conn).ID)
}
