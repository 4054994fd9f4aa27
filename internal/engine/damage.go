package engine

import (
	"math"

	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// Formula constants
const (
	DefaultLevel = entities.DefaultLevel
	DefaultPower = 50

	StabMultiplier     = 1.5
	CriticalMultiplier = 1.5
	MinDamage          = 1
)

// Effectiveness messages
const (
	MessageSuperEffective   = "It's super effective!"
	MessageNotVeryEffective = "It's not very effective..."
	MessageNoEffect         = "It had no effect..."
)

// CalculateDamage applies the damage formula with a floor after every step.
// The result is never below MinDamage.
func CalculateDamage(input DamageInput) int {
	level := input.Level
	if level <= 0 {
		level = DefaultLevel
	}
	power := input.Power
	if power <= 0 {
		power = DefaultPower
	}
	defense := input.Defense
	if defense <= 0 {
		defense = 1
	}
	attack := max(input.Attack, 0)

	levelFactor := 2*float64(level)/5 + 2
	base := math.Floor(levelFactor*float64(power)*float64(attack)/float64(defense)/50 + 2)

	damage := math.Floor(base * input.Effectiveness)
	if input.STAB {
		damage = math.Floor(damage * StabMultiplier)
	}
	damage = math.Floor(damage * input.Variance)

	if damage < MinDamage {
		return MinDamage
	}
	return int(damage)
}

// ApplyCritical applies the critical multiplier to resolved damage
func ApplyCritical(damage int) int {
	return int(math.Floor(float64(damage) * CriticalMultiplier))
}

// Effectiveness returns the product of the attacking type's multiplier
// against each defending type. A missing record is neutral.
func Effectiveness(moveType string, defenderTypes []string, chart map[string]*entities.TypeEffectiveness) float64 {
	record := chart[moveType]
	multiplier := 1.0
	for _, t := range defenderTypes {
		multiplier *= record.MultiplierAgainst(t)
	}
	return multiplier
}

// EffectivenessMessage returns the narration for a multiplier, empty when neutral
func EffectivenessMessage(multiplier float64) string {
	switch {
	case multiplier == 0:
		return MessageNoEffect
	case multiplier > 1:
		return MessageSuperEffective
	case multiplier < 1:
		return MessageNotVeryEffective
	default:
		return ""
	}
}

// statPair picks attack and defense stats by damage class. Status and unknown
// classes resolve as physical.
func statPair(attacker, defender *entities.BattlePokemon, class entities.DamageClass) (int, int) {
	if class == entities.DamageClassSpecial {
		return attacker.Stats.SpecialAttack, defender.Stats.SpecialDefense
	}
	return attacker.Stats.Attack, defender.Stats.Defense
}
