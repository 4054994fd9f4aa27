package battle

import (
	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// StartBattleInput contains two assembled teams
type StartBattleInput struct {
	// BattleID replaces an existing battle with the same ID when set
	BattleID   string
	PlayerTeam []*entities.BattlePokemon
	AITeam     []*entities.BattlePokemon
	// TypeChart maps attacking type names to their effectiveness records.
	// Missing types resolve as neutral.
	TypeChart map[string]*entities.TypeEffectiveness
}

// StartBattleOutput contains the initial battle state
type StartBattleOutput struct {
	Battle *entities.BattleState
}

// GetBattleInput identifies a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput contains a snapshot of the battle
type GetBattleOutput struct {
	Battle *entities.BattleState
}

// SubmitPlayerAttackInput selects a move of the player's active Pokémon
type SubmitPlayerAttackInput struct {
	BattleID  string
	MoveIndex int
}

// SubmitPlayerAttackOutput contains the state after the attack
type SubmitPlayerAttackOutput struct {
	Battle *entities.BattleState
}

// SubmitPlayerDefendInput identifies the battle
type SubmitPlayerDefendInput struct {
	BattleID string
}

// SubmitPlayerDefendOutput contains the state after defending
type SubmitPlayerDefendOutput struct {
	Battle *entities.BattleState
}

// SubmitPlayerSwitchInput selects the team member to bring in
type SubmitPlayerSwitchInput struct {
	BattleID  string
	TeamIndex int
}

// SubmitPlayerSwitchOutput contains the state after the switch
type SubmitPlayerSwitchOutput struct {
	Battle *entities.BattleState
}

// RunAITurnInput identifies the battle
type RunAITurnInput struct {
	BattleID string
}

// RunAITurnOutput contains the state after the AI acted
type RunAITurnOutput struct {
	Battle *entities.BattleState
}

// AbandonBattleInput identifies the battle
type AbandonBattleInput struct {
	BattleID string
}

// AbandonBattleOutput is empty
type AbandonBattleOutput struct{}
