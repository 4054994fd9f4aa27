package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *testutils.ScriptedRoller
	engine engine.Engine

	attacker *entities.BattlePokemon
	defender *entities.BattlePokemon
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()

	e, err := engine.New(&engine.Config{Roller: s.roller})
	s.Require().NoError(err)
	s.engine = e

	s.attacker = entities.NewBattlePokemon(entities.SidePlayer, 0, &entities.Species{
		ID: 25, Name: "pikachu", Types: []string{"electric"},
		Stats: entities.Stats{Attack: 100, Defense: 100, SpecialAttack: 200, SpecialDefense: 100},
	}, nil)
	s.defender = entities.NewBattlePokemon(entities.SideAI, 0, &entities.Species{
		ID: 19, Name: "rattata", Types: []string{"normal"},
		Stats: entities.Stats{Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 50},
	}, nil)
}

func (s *EngineTestSuite) TestNewRequiresRoller() {
	_, err := engine.New(&engine.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = engine.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestRollHit() {
	testCases := []struct {
		name     string
		roll     int
		accuracy int
		hit      bool
	}{
		{name: "roll above accuracy misses", roll: 9601, accuracy: 95, hit: false},
		{name: "roll equal to accuracy hits", roll: 9501, accuracy: 95, hit: true},
		{name: "lowest roll hits", roll: 1, accuracy: 30, hit: true},
		{name: "perfect accuracy never misses", roll: engine.AccuracyDie, accuracy: 100, hit: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.roller.On(engine.AccuracyDie, tc.roll)

			out, err := s.engine.RollHit(s.ctx, &engine.RollHitInput{Move: &entities.Move{Accuracy: tc.accuracy}})
			s.Require().NoError(err)
			s.Assert().Equal(tc.hit, out.Hit)
		})
	}
}

func (s *EngineTestSuite) TestRollHitRequiresMove() {
	_, err := s.engine.RollHit(s.ctx, &engine.RollHitInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestResolvePhysical() {
	power := 40
	s.roller.On(engine.VarianceDie, 1).On(engine.CriticalDie, 1)

	out, err := s.engine.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		Attacker: s.attacker,
		Defender: s.defender,
		Move:     &entities.Move{Name: "tackle", Type: "normal", Power: &power, DamageClass: entities.DamageClassPhysical},
	})
	s.Require().NoError(err)

	// 19 at full variance, 0.85 floors to 16
	s.Assert().Equal(16, out.Damage)
	s.Assert().Equal(1.0, out.Effectiveness)
	s.Assert().True(out.IsCritical)
	s.Assert().False(out.STAB)
	s.Assert().InDelta(0.85, out.Variance, 1e-9)
}

func (s *EngineTestSuite) TestResolveSpecialWithStab() {
	power := 40
	s.roller.On(engine.VarianceDie, engine.VarianceDie).On(engine.CriticalDie, 2)

	out, err := s.engine.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		Attacker: s.attacker,
		Defender: s.defender,
		Move:     &entities.Move{Name: "thunder-shock", Type: "electric", Power: &power, DamageClass: entities.DamageClassSpecial},
		Chart: map[string]*entities.TypeEffectiveness{
			"electric": {Name: "electric", DoubleDamageTo: []string{"water"}},
		},
	})
	s.Require().NoError(err)

	// base floor(22*40*200/50/50+2) = 72, stab 108, variance 0.9999 gives 107
	s.Assert().Equal(107, out.Damage)
	s.Assert().True(out.STAB)
	s.Assert().False(out.IsCritical)
}

func (s *EngineTestSuite) TestResolveValidatesInput() {
	_, err := s.engine.ResolveAttack(s.ctx, &engine.ResolveAttackInput{Attacker: s.attacker})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
