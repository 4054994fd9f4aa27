package engine

import (
	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// RollHitInput contains the move being checked
type RollHitInput struct {
	Move *entities.Move
}

// RollHitOutput contains the accuracy roll
type RollHitOutput struct {
	Hit bool
	// Roll is the uniform value in [0, 100) compared against accuracy
	Roll float64
}

// ResolveAttackInput contains everything needed to resolve one hit
type ResolveAttackInput struct {
	Attacker *entities.BattlePokemon
	Defender *entities.BattlePokemon
	Move     *entities.Move
	// Chart maps attacking type names to their effectiveness records
	Chart map[string]*entities.TypeEffectiveness
}

// ResolveAttackOutput contains the outcome of one hit
type ResolveAttackOutput struct {
	Damage        int
	Effectiveness float64
	IsCritical    bool
	STAB          bool
	Variance      float64
}

// DamageInput contains the numbers fed into the damage formula
type DamageInput struct {
	Level         int
	Power         int
	Attack        int
	Defense       int
	Effectiveness float64
	STAB          bool
	Variance      float64
}
