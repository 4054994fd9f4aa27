// Package entities provides the core data structures for gym battles.
package entities

import "slices"

// DamageClass selects which stat pair resolves a move's damage
type DamageClass string

// Damage classes reported by the data provider
const (
	DamageClassPhysical DamageClass = "physical"
	DamageClassSpecial  DamageClass = "special"
	DamageClassStatus   DamageClass = "status"
)

// Stats is a base stat block
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// MoveRef points at a learnable move
type MoveRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SpeciesRef points at a species listed under a type
type SpeciesRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Species is an immutable species record
type Species struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Types     []string  `json:"types"`
	Stats     Stats     `json:"stats"`
	SpriteURL string    `json:"sprite_url,omitempty"`
	Height    int       `json:"height"`
	Weight    int       `json:"weight"`
	Moves     []MoveRef `json:"moves,omitempty"`
}

// Move is an immutable move record. Power is nil for status moves.
type Move struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Power       *int        `json:"power,omitempty"`
	Accuracy    int         `json:"accuracy"`
	PP          int         `json:"pp"`
	Priority    int         `json:"priority"`
	DamageClass DamageClass `json:"damage_class"`
	FlavorText  string      `json:"flavor_text,omitempty"`
}

// DisplayName is the title-cased move name used in narration
func (m *Move) DisplayName() string {
	return DisplayName(m.Name)
}

// PowerOrZero returns the move's power, treating a missing value as zero
func (m *Move) PowerOrZero() int {
	if m == nil || m.Power == nil {
		return 0
	}
	return *m.Power
}

// IsAttacking reports whether the move deals damage
func (m *Move) IsAttacking() bool {
	return m.PowerOrZero() > 0
}

// TypeEffectiveness holds the damage relations of one attacking type
type TypeEffectiveness struct {
	Name             string   `json:"name"`
	DoubleDamageTo   []string `json:"double_damage_to"`
	HalfDamageTo     []string `json:"half_damage_to"`
	NoDamageTo       []string `json:"no_damage_to"`
	DoubleDamageFrom []string `json:"double_damage_from"`
	HalfDamageFrom   []string `json:"half_damage_from"`
	NoDamageFrom     []string `json:"no_damage_from"`
}

// MultiplierAgainst returns the multiplier this type deals to a single defending type
func (t *TypeEffectiveness) MultiplierAgainst(defendingType string) float64 {
	if t == nil {
		return 1.0
	}
	switch {
	case slices.Contains(t.DoubleDamageTo, defendingType):
		return 2.0
	case slices.Contains(t.HalfDamageTo, defendingType):
		return 0.5
	case slices.Contains(t.NoDamageTo, defendingType):
		return 0.0
	default:
		return 1.0
	}
}
