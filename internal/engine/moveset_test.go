package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/entities"
)

type MovesetTestSuite struct {
	suite.Suite
}

func TestMovesetSuite(t *testing.T) {
	suite.Run(t, new(MovesetTestSuite))
}

func move(name, moveType string, power int) *entities.Move {
	return &entities.Move{Name: name, Type: moveType, Power: &power, Accuracy: 100, DamageClass: entities.DamageClassPhysical}
}

func names(moves []*entities.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Name)
	}
	return out
}

func (s *MovesetTestSuite) TestTwoStabThenStrongestOthers() {
	candidates := []*entities.Move{
		move("ember", "fire", 40),
		move("slash", "normal", 70),
		move("flamethrower", "fire", 90),
		move("cut", "normal", 50),
		move("flame-wheel", "fire", 60),
		move("mega-kick", "normal", 100),
	}

	selected := engine.SelectMoveset(candidates, []string{"fire"}, engine.DefaultMovesetSize)

	s.Assert().Equal([]string{"flamethrower", "flame-wheel", "mega-kick", "slash"}, names(selected))
}

func (s *MovesetTestSuite) TestFewerCandidatesReturnsAll() {
	candidates := []*entities.Move{
		move("tackle", "normal", 40),
		move("ember", "fire", 40),
	}

	selected := engine.SelectMoveset(candidates, []string{"fire"}, 4)

	s.Assert().Equal([]string{"ember", "tackle"}, names(selected))
}

func (s *MovesetTestSuite) TestLeftoverStabFillsSlots() {
	candidates := []*entities.Move{
		move("ember", "fire", 40),
		move("fire-blast", "fire", 110),
		move("flamethrower", "fire", 90),
		move("tackle", "normal", 40),
		move("flame-wheel", "fire", 60),
	}

	selected := engine.SelectMoveset(candidates, []string{"fire"}, 4)

	s.Assert().Equal([]string{"fire-blast", "flamethrower", "tackle", "flame-wheel"}, names(selected))
}

func (s *MovesetTestSuite) TestStableForEqualPower() {
	candidates := []*entities.Move{
		move("a", "normal", 50),
		move("b", "normal", 50),
		move("c", "normal", 50),
	}

	s.Assert().Equal([]string{"a", "b"}, names(engine.SelectMoveset(candidates, []string{"fire"}, 2)))
}

func (s *MovesetTestSuite) TestMissingPowerSortsLast() {
	status := &entities.Move{Name: "growl", Type: "normal", DamageClass: entities.DamageClassStatus}
	candidates := []*entities.Move{status, move("tackle", "normal", 40)}

	s.Assert().Equal([]string{"tackle", "growl"}, names(engine.SelectMoveset(candidates, nil, 4)))
}

func (s *MovesetTestSuite) TestZeroCount() {
	s.Assert().Empty(engine.SelectMoveset([]*entities.Move{move("a", "normal", 10)}, nil, 0))
}

func (s *MovesetTestSuite) TestSelectAIMove() {
	chart := map[string]*entities.TypeEffectiveness{
		"electric": {Name: "electric", DoubleDamageTo: []string{"water"}},
		"grass":    {Name: "grass", DoubleDamageTo: []string{"water"}},
		"fire":     {Name: "fire", HalfDamageTo: []string{"water"}},
	}
	moves := []*entities.Move{
		move("ember", "fire", 40),
		move("thunderbolt", "electric", 90),
		move("vine-whip", "grass", 45),
		move("tackle", "normal", 40),
	}

	s.Run("picks highest multiplier, first on ties", func() {
		s.Assert().Equal(1, engine.SelectAIMove(moves, []string{"water"}, chart))
	})

	s.Run("all neutral keeps first", func() {
		s.Assert().Equal(0, engine.SelectAIMove(moves, []string{"normal"}, chart))
	})

	s.Run("empty moveset", func() {
		s.Assert().Equal(-1, engine.SelectAIMove(nil, []string{"water"}, chart))
	})
}
