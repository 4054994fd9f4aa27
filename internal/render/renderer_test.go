package render_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/render"
)

func newState() *entities.BattleState {
	return &entities.BattleState{
		ID:    "battle_1",
		Turn:  1,
		Phase: entities.PhasePlayer,
		PlayerTeam: []*entities.BattlePokemon{
			entities.NewBattlePokemon(entities.SidePlayer, 0, &entities.Species{ID: 25, Name: "pikachu", Types: []string{"electric"}}, nil),
		},
		AITeam: []*entities.BattlePokemon{
			entities.NewBattlePokemon(entities.SideAI, 0, &entities.Species{ID: 74, Name: "geodude", Types: []string{"rock", "ground"}}, nil),
		},
		Log: []string{"Go, Pikachu!"},
	}
}

type RendererTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *RendererTestSuite) TestMultiCallsEveryRenderer() {
	var calls []string
	first := render.Func(func(context.Context, *entities.BattleState) error {
		calls = append(calls, "first")
		return fmt.Errorf("first failed")
	})
	second := render.Func(func(_ context.Context, state *entities.BattleState) error {
		calls = append(calls, "second:"+state.ID)
		return nil
	})

	err := render.Multi{first, nil, second}.Render(s.ctx, newState())

	s.Assert().EqualError(err, "first failed")
	s.Assert().Equal([]string{"first", "second:battle_1"}, calls)
}

func (s *RendererTestSuite) TestNop() {
	s.Assert().NoError(render.Nop.Render(s.ctx, newState()))
	s.Assert().NoError(render.Nop.Forget(s.ctx, "battle_1"))
}

func (s *RendererTestSuite) TestMultiForgetsEveryRenderer() {
	var out bytes.Buffer
	text := render.NewTextRenderer(&out, false)
	s.Require().NoError(text.Render(s.ctx, newState()))

	err := render.Multi{render.Nop, nil, text}.Forget(s.ctx, "battle_1")
	s.Require().NoError(err)

	out.Reset()
	s.Require().NoError(text.Render(s.ctx, newState()))
	s.Assert().Equal("Go, Pikachu!\n", out.String())
}

func (s *RendererTestSuite) TestTextRendererWritesOnlyNewLines() {
	var out bytes.Buffer
	text := render.NewTextRenderer(&out, false)
	state := newState()

	s.Require().NoError(text.Render(s.ctx, state))
	s.Assert().Equal("Go, Pikachu!\n", out.String())

	out.Reset()
	state.AppendLog("Pikachu used Thunder Shock!", "Geodude took 1 damage!")
	s.Require().NoError(text.Render(s.ctx, state))
	s.Assert().Equal("Pikachu used Thunder Shock!\nGeodude took 1 damage!\n", out.String())

	out.Reset()
	s.Require().NoError(text.Render(s.ctx, state))
	s.Assert().Empty(out.String())
}

func (s *RendererTestSuite) TestTextRendererStatusLine() {
	var out bytes.Buffer
	text := render.NewTextRenderer(&out, true)
	state := newState()
	state.PlayerTeam[0].TakeDamage(25)

	s.Require().NoError(text.Render(s.ctx, state))
	s.Assert().Equal("Go, Pikachu!\n[turn 1] Pikachu 75/100 vs Geodude 100/100 (player to act)\n", out.String())

	out.Reset()
	state.Phase = entities.PhaseOver
	state.Winner = entities.SideAI
	s.Require().NoError(text.Render(s.ctx, state))
	s.Assert().Equal("[turn 1] battle over, winner: ai\n", out.String())
}
