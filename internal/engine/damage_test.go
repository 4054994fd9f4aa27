package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/entities"
)

type DamageTestSuite struct {
	suite.Suite
	chart map[string]*entities.TypeEffectiveness
}

func TestDamageSuite(t *testing.T) {
	suite.Run(t, new(DamageTestSuite))
}

func (s *DamageTestSuite) SetupTest() {
	s.chart = map[string]*entities.TypeEffectiveness{
		"electric": {
			Name:           "electric",
			DoubleDamageTo: []string{"water", "flying"},
			HalfDamageTo:   []string{"electric", "grass", "dragon"},
			NoDamageTo:     []string{"ground"},
		},
		"fire": {
			Name:           "fire",
			DoubleDamageTo: []string{"grass", "ice", "bug", "steel"},
			HalfDamageTo:   []string{"fire", "water", "rock", "dragon"},
		},
	}
}

func (s *DamageTestSuite) TestCalculateDamage() {
	testCases := []struct {
		name     string
		input    engine.DamageInput
		expected int
	}{
		{
			name: "neutral hit at level 50",
			input: engine.DamageInput{
				Level: 50, Power: 40, Attack: 100, Defense: 100,
				Effectiveness: 1.0, Variance: 1.0,
			},
			expected: 19,
		},
		{
			name: "same type bonus floors after multiplying",
			input: engine.DamageInput{
				Level: 50, Power: 40, Attack: 100, Defense: 100,
				Effectiveness: 1.0, STAB: true, Variance: 1.0,
			},
			expected: 28,
		},
		{
			name: "super effective doubles base",
			input: engine.DamageInput{
				Level: 50, Power: 40, Attack: 100, Defense: 100,
				Effectiveness: 2.0, Variance: 1.0,
			},
			expected: 38,
		},
		{
			name: "missing level and power use defaults",
			input: engine.DamageInput{
				Attack: 100, Defense: 100,
				Effectiveness: 1.0, Variance: 1.0,
			},
			expected: 24,
		},
		{
			name: "immune still deals minimum damage",
			input: engine.DamageInput{
				Level: 50, Power: 90, Attack: 100, Defense: 100,
				Effectiveness: 0.0, Variance: 1.0,
			},
			expected: 1,
		},
		{
			name: "zero defense is treated as one",
			input: engine.DamageInput{
				Level: 50, Power: 40, Attack: 1, Defense: 0,
				Effectiveness: 1.0, Variance: 1.0,
			},
			expected: 19,
		},
		{
			name: "zero attack still deals minimum damage",
			input: engine.DamageInput{
				Level: 1, Power: 1, Attack: 0, Defense: 500,
				Effectiveness: 0.5, Variance: 0.85,
			},
			expected: 1,
		},
		{
			name: "lowest variance",
			input: engine.DamageInput{
				Level: 50, Power: 40, Attack: 100, Defense: 100,
				Effectiveness: 1.0, Variance: 0.85,
			},
			expected: 16,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, engine.CalculateDamage(tc.input))
		})
	}
}

func (s *DamageTestSuite) TestDamageNeverBelowMinimum() {
	for _, eff := range []float64{0, 0.25, 0.5, 1, 2, 4} {
		for _, def := range []int{0, 1, 50, 255} {
			for _, atk := range []int{0, 5, 100, 255} {
				damage := engine.CalculateDamage(engine.DamageInput{
					Level: 50, Power: 10, Attack: atk, Defense: def,
					Effectiveness: eff, Variance: 0.85,
				})
				s.Assert().GreaterOrEqual(damage, engine.MinDamage)
			}
		}
	}
}

func (s *DamageTestSuite) TestApplyCritical() {
	s.Assert().Equal(28, engine.ApplyCritical(19))
	s.Assert().Equal(1, engine.ApplyCritical(1))
}

func (s *DamageTestSuite) TestEffectiveness() {
	testCases := []struct {
		name     string
		moveType string
		defender []string
		expected float64
	}{
		{name: "dual weakness multiplies", moveType: "electric", defender: []string{"water", "flying"}, expected: 4.0},
		{name: "weakness and resistance cancel", moveType: "fire", defender: []string{"grass", "water"}, expected: 1.0},
		{name: "immunity zeroes", moveType: "electric", defender: []string{"water", "ground"}, expected: 0.0},
		{name: "resisted", moveType: "fire", defender: []string{"rock"}, expected: 0.5},
		{name: "neutral", moveType: "electric", defender: []string{"normal"}, expected: 1.0},
		{name: "missing record is neutral", moveType: "ghost", defender: []string{"water"}, expected: 1.0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, engine.Effectiveness(tc.moveType, tc.defender, s.chart))
		})
	}
}

func (s *DamageTestSuite) TestEffectivenessMessage() {
	s.Assert().Equal("It's super effective!", engine.EffectivenessMessage(4.0))
	s.Assert().Equal("It's super effective!", engine.EffectivenessMessage(2.0))
	s.Assert().Equal("It's not very effective...", engine.EffectivenessMessage(0.5))
	s.Assert().Equal("It had no effect...", engine.EffectivenessMessage(0))
	s.Assert().Empty(engine.EffectivenessMessage(1.0))
}
