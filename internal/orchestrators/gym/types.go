package gym

import (
	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// ListCandidatesInput selects the region and type filter
type ListCandidatesInput struct {
	Region string
	Type   string
}

// ListCandidatesOutput lists selectable species sorted by ID
type ListCandidatesOutput struct {
	Candidates []entities.SpeciesRef
}

// TeamSizeInput selects the gym tier
type TeamSizeInput struct {
	Tier int
}

// TeamSizeOutput is the team size allowed for the tier
type TeamSizeOutput struct {
	Size int
}

// PrepareBattleInput contains the gym configuration and the player's picks
type PrepareBattleInput struct {
	Config           entities.GymConfig
	PlayerSpeciesIDs []int
	// BattleID replaces an existing battle with the same ID when set
	BattleID string
}

// PrepareBattleOutput contains the started battle
type PrepareBattleOutput struct {
	Battle *entities.BattleState
	// Warnings name every fallback applied while assembling the teams
	Warnings []string
}
