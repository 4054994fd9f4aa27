// Package engine resolves attacks and selects movesets for gym battles
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/gym-battle/internal/engine Engine

import (
	"context"
)

// Engine provides the randomized battle mechanics. Deterministic helpers
// (CalculateDamage, Effectiveness, SelectMoveset, SelectAIMove) are plain
// functions in this package.
type Engine interface {
	// RollHit performs the accuracy check for a move
	RollHit(ctx context.Context, input *RollHitInput) (*RollHitOutput, error)

	// ResolveAttack computes damage for a move that hit. The returned damage
	// excludes the critical multiplier; callers apply it when IsCritical.
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
}
