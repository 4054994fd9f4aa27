package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/entities"
)

type BattleTestSuite struct {
	suite.Suite
	state *entities.BattleState
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) SetupTest() {
	pikachu := &entities.Species{ID: 25, Name: "pikachu", Types: []string{"electric"}}
	squirtle := &entities.Species{ID: 7, Name: "squirtle", Types: []string{"water"}}
	geodude := &entities.Species{ID: 74, Name: "geodude", Types: []string{"rock", "ground"}}

	s.state = &entities.BattleState{
		ID:    "battle_1",
		Turn:  1,
		Phase: entities.PhasePlayer,
		PlayerTeam: []*entities.BattlePokemon{
			entities.NewBattlePokemon(entities.SidePlayer, 0, pikachu, nil),
			entities.NewBattlePokemon(entities.SidePlayer, 1, squirtle, nil),
		},
		AITeam: []*entities.BattlePokemon{
			entities.NewBattlePokemon(entities.SideAI, 0, geodude, nil),
		},
	}
}

func (s *BattleTestSuite) TestNewBattlePokemonDefaults() {
	p := s.state.PlayerTeam[0]
	s.Assert().Equal("player-0-pikachu", p.GetID())
	s.Assert().Equal(entities.EntityTypePokemon, p.GetType())
	s.Assert().Equal(entities.DefaultLevel, p.Level)
	s.Assert().Equal(entities.DefaultHP, p.HP)
	s.Assert().Equal(entities.DefaultHP, p.MaxHP)
	s.Assert().False(p.Fainted)
	s.Assert().Equal("Pikachu", p.DisplayName())
	s.Assert().Equal("Mr Mime", entities.DisplayName("mr-mime"))
	s.Assert().Equal("Thunder Shock", (&entities.Move{Name: "thunder-shock"}).DisplayName())
	s.Assert().True(s.state.AITeam[0].HasType("ground"))
}

func (s *BattleTestSuite) TestTakeDamageClamps() {
	testCases := []struct {
		name      string
		damage    int
		wantHP    int
		wantLost  int
		wantFaint bool
	}{
		{name: "partial", damage: 30, wantHP: 70, wantLost: 30},
		{name: "exact", damage: 100, wantHP: 0, wantLost: 100, wantFaint: true},
		{name: "overkill", damage: 250, wantHP: 0, wantLost: 100, wantFaint: true},
		{name: "negative", damage: -5, wantHP: 100, wantLost: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			p := s.state.PlayerTeam[0]
			lost := p.TakeDamage(tc.damage)

			s.Assert().Equal(tc.wantLost, lost)
			s.Assert().Equal(tc.wantHP, p.HP)
			s.Assert().Equal(tc.wantFaint, p.Fainted)
			s.Assert().GreaterOrEqual(p.HP, 0)
			s.Assert().LessOrEqual(p.HP, p.MaxHP)
		})
	}
}

func (s *BattleTestSuite) TestActiveAndFirstAvailable() {
	s.Assert().Equal("pikachu", s.state.Active(entities.SidePlayer).Name)
	s.Assert().Equal("geodude", s.state.Active(entities.SideAI).Name)

	s.state.PlayerTeam[0].TakeDamage(100)
	s.Assert().Equal(1, s.state.FirstAvailable(entities.SidePlayer))
	s.Assert().False(s.state.AllFainted(entities.SidePlayer))

	s.state.SetActive(entities.SidePlayer, 1)
	s.Assert().Equal("squirtle", s.state.Active(entities.SidePlayer).Name)

	s.state.AITeam[0].TakeDamage(100)
	s.Assert().Equal(-1, s.state.FirstAvailable(entities.SideAI))
	s.Assert().True(s.state.AllFainted(entities.SideAI))

	s.state.SetActive(entities.SideAI, 5)
	s.Assert().Nil(s.state.Active(entities.SideAI))
}

func (s *BattleTestSuite) TestCloneIsDeep() {
	s.state.AppendLog("Pikachu used Thunderbolt!")
	clone := s.state.Clone()

	clone.PlayerTeam[0].TakeDamage(50)
	clone.AppendLog("extra")
	clone.PlayerTeam[0].Types[0] = "fire"

	s.Assert().Equal(100, s.state.PlayerTeam[0].HP)
	s.Assert().Len(s.state.Log, 1)
	s.Assert().Equal("electric", s.state.PlayerTeam[0].Types[0])
	s.Assert().Equal(50, clone.PlayerTeam[0].HP)
}

func (s *BattleTestSuite) TestSideOpponent() {
	s.Assert().Equal(entities.SideAI, entities.SidePlayer.Opponent())
	s.Assert().Equal(entities.SidePlayer, entities.SideAI.Opponent())
}
