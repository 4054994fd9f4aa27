package render

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
)

const (
	defaultSendBuffer   = 16
	defaultWriteTimeout = 5 * time.Second
)

// HubConfig configures the websocket render hub
type HubConfig struct {
	Logger       *slog.Logger
	SendBuffer   int
	WriteTimeout time.Duration
	// CheckOrigin overrides the upgrader's same-origin check
	CheckOrigin func(r *http.Request) bool
}

// Validate checks the configuration values
func (c *HubConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.SendBuffer < 0 {
		vb.Field("send_buffer", "must not be negative")
	}
	if c.WriteTimeout < 0 {
		vb.Field("write_timeout", "must not be negative")
	}
	return vb.Build()
}

type subscriber struct {
	battleID string
	conn     *websocket.Conn
	send     chan []byte
}

// Hub streams JSON battle snapshots to websocket subscribers. It is both a
// Renderer and the http.Handler for GET /battles/{id}/stream.
type Hub struct {
	upgrader     websocket.Upgrader
	logger       *slog.Logger
	sendBuffer   int
	writeTimeout time.Duration

	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
	latest      map[string][]byte
}

// NewHub creates a websocket render hub
func NewHub(cfg *HubConfig) (*Hub, error) {
	if cfg == nil {
		cfg = &HubConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Hub{
		upgrader:     websocket.Upgrader{CheckOrigin: cfg.CheckOrigin},
		logger:       cfg.Logger,
		sendBuffer:   cfg.SendBuffer,
		writeTimeout: cfg.WriteTimeout,
		subscribers:  make(map[string]map[*subscriber]struct{}),
		latest:       make(map[string][]byte),
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	h.logger = h.logger.With("component", "render_hub")
	if h.sendBuffer == 0 {
		h.sendBuffer = defaultSendBuffer
	}
	if h.writeTimeout == 0 {
		h.writeTimeout = defaultWriteTimeout
	}
	return h, nil
}

var _ Renderer = (*Hub)(nil)

// Render pushes the snapshot to every subscriber of the battle. Subscribers
// whose buffer is full are disconnected rather than blocking the battle.
func (h *Hub) Render(ctx context.Context, state *entities.BattleState) error {
	if state == nil {
		return nil
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode battle snapshot")
	}

	var slow []*subscriber
	h.mu.Lock()
	if state.IsOver() {
		delete(h.latest, state.ID)
	} else {
		h.latest[state.ID] = payload
	}
	for sub := range h.subscribers[state.ID] {
		select {
		case sub.send <- payload:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range slow {
		h.logger.WarnContext(ctx, "dropping slow subscriber", "battle_id", state.ID)
		h.remove(sub)
	}
	return nil
}

// Forget drops the latest snapshot of a battle and disconnects its
// subscribers
func (h *Hub) Forget(ctx context.Context, battleID string) error {
	h.mu.Lock()
	delete(h.latest, battleID)
	subs := make([]*subscriber, 0, len(h.subscribers[battleID]))
	for sub := range h.subscribers[battleID] {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		h.remove(sub)
	}
	if len(subs) > 0 {
		h.logger.DebugContext(ctx, "battle forgotten", "battle_id", battleID, "subscribers", len(subs))
	}
	return nil
}

// ServeHTTP upgrades the request and streams snapshots of the battle named
// by the {id} path value. The latest snapshot is sent immediately.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	battleID := r.PathValue("id")
	if battleID == "" {
		http.Error(w, "battle id is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed",
			"battle_id", battleID,
			"error", err)
		return
	}

	sub := &subscriber{
		battleID: battleID,
		conn:     conn,
		send:     make(chan []byte, h.sendBuffer),
	}

	h.mu.Lock()
	if h.subscribers[battleID] == nil {
		h.subscribers[battleID] = make(map[*subscriber]struct{})
	}
	h.subscribers[battleID][sub] = struct{}{}
	if latest, ok := h.latest[battleID]; ok {
		sub.send <- latest
	}
	h.mu.Unlock()

	h.logger.DebugContext(r.Context(), "subscriber connected", "battle_id", battleID)

	go h.writeLoop(sub)
	h.readLoop(sub)
}

// SubscriberCount reports the live subscribers of a battle
func (h *Hub) SubscriberCount(battleID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[battleID])
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	var all []*subscriber
	for _, subs := range h.subscribers {
		for sub := range subs {
			all = append(all, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range all {
		h.remove(sub)
	}
}

func (h *Hub) writeLoop(sub *subscriber) {
	for payload := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.remove(sub)
			_ = sub.conn.Close()
			return
		}
	}
	_ = sub.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	_ = sub.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = sub.conn.Close()
}

// readLoop drains client frames until the connection closes
func (h *Hub) readLoop(sub *subscriber) {
	defer h.remove(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// remove unregisters a subscriber once; its writer then closes the connection
func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[sub.battleID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subscribers, sub.battleID)
	}
	close(sub.send)
}
