package entities

// Region keys mapped to their generation, 1-based
var RegionGenerations = map[string]int{
	"kanto":  1,
	"johto":  2,
	"hoenn":  3,
	"sinnoh": 4,
	"unova":  5,
	"kalos":  6,
	"alola":  7,
	"galar":  8,
	"paldea": 9,
}

// GenerationLimits is the highest species ID introduced by each generation
var GenerationLimits = []int{151, 251, 386, 493, 649, 721, 809, 905, 1025}

// TierTeamSizes is the team size allowed per gym tier, 1-based
var TierTeamSizes = []int{2, 2, 3, 4, 4, 5, 5, 6}

// GymConfig is the player's region, type filter and gym tier selection
type GymConfig struct {
	Region string `json:"region" validate:"required,oneof=kanto johto hoenn sinnoh unova kalos alola galar paldea"`
	Type   string `json:"type" validate:"required,lowercase"`
	Tier   int    `json:"tier" validate:"min=1,max=8"`
}

// SpeciesLimit returns the highest species ID for the region, 0 if unknown
func (c GymConfig) SpeciesLimit() int {
	gen, ok := RegionGenerations[c.Region]
	if !ok {
		return 0
	}
	return GenerationLimits[gen-1]
}

// TeamSize returns the team size for the tier, 0 if out of range
func (c GymConfig) TeamSize() int {
	return TeamSizeForTier(c.Tier)
}

// TeamSizeForTier returns the team size for a tier, 0 if out of range
func TeamSizeForTier(tier int) int {
	if tier < 1 || tier > len(TierTeamSizes) {
		return 0
	}
	return TierTeamSizes[tier-1]
}
