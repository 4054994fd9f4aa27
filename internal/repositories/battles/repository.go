// Package battles stores battle state snapshots
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/gym-battle/internal/repositories/battles Repository

import (
	"context"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
)

const errBattleIDEmpty = "battle ID is required"

// Repository defines the storage interface for battle snapshots
type Repository interface {
	// Save stores a snapshot, replacing any previous one for the battle
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves the latest snapshot of a battle
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a battle
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving a battle
type SaveInput struct {
	Battle *entities.BattleState
}

// SaveOutput defines the response for saving a battle
type SaveOutput struct{}

// GetInput defines the request for retrieving a battle
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for retrieving a battle
type GetOutput struct {
	Battle *entities.BattleState
}

// DeleteInput defines the request for deleting a battle
type DeleteInput struct {
	BattleID string
}

// DeleteOutput defines the response for deleting a battle
type DeleteOutput struct{}

func validateSave(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Battle == nil {
		return errors.InvalidArgument("battle is required")
	}
	if input.Battle.ID == "" {
		return errors.InvalidArgument(errBattleIDEmpty)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return errors.InvalidArgument(errBattleIDEmpty)
	}
	return nil
}
