package battles

import (
	"context"
	"sync"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.BattleState
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.BattleState),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the battle
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Battle.ID] = input.Battle.Clone()
	return &SaveOutput{}, nil
}

// Get retrieves a copy of the battle
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.BattleID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	battle, exists := r.store[input.BattleID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	return &GetOutput{Battle: battle.Clone()}, nil
}

// Delete removes a battle
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.BattleID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.BattleID]; !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}
	delete(r.store, input.BattleID)

	return &DeleteOutput{}, nil
}
