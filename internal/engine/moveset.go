package engine

import (
	"slices"

	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// Moveset sizing
const (
	DefaultMovesetSize = 4
	maxStabMoves       = 2
)

// SelectMoveset picks up to count moves: the two strongest same-type moves
// first, then the strongest of the rest. Leftover same-type moves fill any
// slots the other moves cannot. Equal power keeps input order.
func SelectMoveset(candidates []*entities.Move, pokemonTypes []string, count int) []*entities.Move {
	if count <= 0 {
		return nil
	}

	var stab, other []*entities.Move
	for _, m := range candidates {
		if m == nil {
			continue
		}
		if slices.Contains(pokemonTypes, m.Type) {
			stab = append(stab, m)
		} else {
			other = append(other, m)
		}
	}

	byPowerDesc := func(a, b *entities.Move) int {
		return b.PowerOrZero() - a.PowerOrZero()
	}
	slices.SortStableFunc(stab, byPowerDesc)
	slices.SortStableFunc(other, byPowerDesc)

	takeStab := min(maxStabMoves, len(stab))
	selected := make([]*entities.Move, 0, count)
	selected = append(selected, stab[:takeStab]...)
	selected = append(selected, other...)
	selected = append(selected, stab[takeStab:]...)

	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}

// SelectAIMove returns the index of the move with the highest effectiveness
// against the defender's types. Ties keep the earliest move. Returns -1 for
// an empty moveset.
func SelectAIMove(moves []*entities.Move, defenderTypes []string, chart map[string]*entities.TypeEffectiveness) int {
	best := -1
	bestMultiplier := -1.0
	for i, m := range moves {
		if m == nil {
			continue
		}
		multiplier := Effectiveness(m.Type, defenderTypes, chart)
		if multiplier > bestMultiplier {
			best = i
			bestMultiplier = multiplier
		}
	}
	return best
}
