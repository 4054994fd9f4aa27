// Package render delivers battle state snapshots to presentation layers.
package render

//go:generate mockgen -destination=mock/mock_renderer.go -package=rendermock github.com/KirkDiggler/gym-battle/internal/render Renderer

import (
	"context"
	stderrors "errors"

	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// Renderer receives a snapshot of the full battle state after every transition.
// Implementations must not retain or mutate the snapshot beyond the call
// unless they copy it.
type Renderer interface {
	Render(ctx context.Context, state *entities.BattleState) error

	// Forget drops everything held for a battle that ended without a final
	// snapshot, such as an abandoned or replaced battle
	Forget(ctx context.Context, battleID string) error
}

// Func adapts a function to Renderer
type Func func(ctx context.Context, state *entities.BattleState) error

// Render calls f
func (f Func) Render(ctx context.Context, state *entities.BattleState) error {
	return f(ctx, state)
}

// Forget is a no-op; a Func holds no per-battle state
func (f Func) Forget(context.Context, string) error {
	return nil
}

// Nop discards every snapshot
var Nop Renderer = Func(func(context.Context, *entities.BattleState) error { return nil })

// Multi fans a snapshot out to several renderers. Every renderer is called
// even when an earlier one fails.
type Multi []Renderer

// Render calls every renderer and joins their errors
func (m Multi) Render(ctx context.Context, state *entities.BattleState) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Render(ctx, state); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Forget calls every renderer and joins their errors
func (m Multi) Forget(ctx context.Context, battleID string) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Forget(ctx, battleID); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
