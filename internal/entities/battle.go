package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Battle defaults applied when a species is merged into a Battle Pokémon
const (
	DefaultLevel = 50
	DefaultHP    = 100

	// EntityTypePokemon is the core.Entity type of a Battle Pokémon
	EntityTypePokemon = "pokemon"
	// EntityTypeBattle is the core.Entity type of a battle
	EntityTypeBattle = "battle"
)

// Side identifies one half of a battle
type Side string

// Battle sides
const (
	SideNone   Side = ""
	SidePlayer Side = "player"
	SideAI     Side = "ai"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

// Phase is the battle state machine phase
type Phase string

// Battle phases
const (
	PhasePlayer Phase = "player"
	PhaseAI     Phase = "ai"
	PhaseOver   Phase = "over"
)

// BattlePokemon is the mutable runtime form of a species.
// Only HP, Fainted and Defending change during a battle.
type BattlePokemon struct {
	ID        string   `json:"id"`
	SpeciesID int      `json:"species_id"`
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	Stats     Stats    `json:"stats"`
	SpriteURL string   `json:"sprite_url,omitempty"`
	Level     int      `json:"level"`
	HP        int      `json:"hp"`
	MaxHP     int      `json:"max_hp"`
	Fainted   bool     `json:"fainted"`
	Defending bool     `json:"defending"`
	Moves     []*Move  `json:"moves"`
}

var (
	_ core.Entity = (*BattlePokemon)(nil)
	_ core.Entity = (*BattleState)(nil)
)

// NewBattlePokemon merges a species with the battle defaults
func NewBattlePokemon(side Side, slot int, species *Species, moves []*Move) *BattlePokemon {
	return &BattlePokemon{
		ID:        fmt.Sprintf("%s-%d-%s", side, slot, species.Name),
		SpeciesID: species.ID,
		Name:      species.Name,
		Types:     slices.Clone(species.Types),
		Stats:     species.Stats,
		SpriteURL: species.SpriteURL,
		Level:     DefaultLevel,
		HP:        DefaultHP,
		MaxHP:     DefaultHP,
		Moves:     moves,
	}
}

// GetID implements core.Entity
func (p *BattlePokemon) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *BattlePokemon) GetType() string {
	return EntityTypePokemon
}

// DisplayName is the title-cased name used in narration
func (p *BattlePokemon) DisplayName() string {
	return DisplayName(p.Name)
}

// HasType reports whether the Pokémon has the elemental type
func (p *BattlePokemon) HasType(typeName string) bool {
	return slices.Contains(p.Types, typeName)
}

// TakeDamage subtracts damage clamped to [0, MaxHP] and returns the HP lost
func (p *BattlePokemon) TakeDamage(damage int) int {
	if damage < 0 {
		damage = 0
	}
	if damage > p.HP {
		damage = p.HP
	}
	p.HP -= damage
	if p.HP == 0 {
		p.Fainted = true
	}
	return damage
}

// DisplayName title-cases a provider name for narration, "thunder-shock"
// becomes "Thunder Shock"
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

// BattleState is the authoritative state of one battle
type BattleState struct {
	ID           string                        `json:"id"`
	Turn         int                           `json:"turn"`
	Phase        Phase                         `json:"phase"`
	Winner       Side                          `json:"winner,omitempty"`
	ActivePlayer int                           `json:"active_player"`
	ActiveAI     int                           `json:"active_ai"`
	PlayerTeam   []*BattlePokemon              `json:"player_team"`
	AITeam       []*BattlePokemon              `json:"ai_team"`
	Log          []string                      `json:"log"`
	TypeChart    map[string]*TypeEffectiveness `json:"type_chart,omitempty"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}

// GetID implements core.Entity
func (b *BattleState) GetID() string {
	return b.ID
}

// GetType implements core.Entity
func (b *BattleState) GetType() string {
	return EntityTypeBattle
}

// Team returns the team of a side
func (b *BattleState) Team(side Side) []*BattlePokemon {
	if side == SideAI {
		return b.AITeam
	}
	return b.PlayerTeam
}

// ActiveIndex returns the active index of a side
func (b *BattleState) ActiveIndex(side Side) int {
	if side == SideAI {
		return b.ActiveAI
	}
	return b.ActivePlayer
}

// SetActive sets the active index of a side
func (b *BattleState) SetActive(side Side, index int) {
	if side == SideAI {
		b.ActiveAI = index
		return
	}
	b.ActivePlayer = index
}

// Active returns the active Pokémon of a side, nil if the index is out of range
func (b *BattleState) Active(side Side) *BattlePokemon {
	team := b.Team(side)
	idx := b.ActiveIndex(side)
	if idx < 0 || idx >= len(team) {
		return nil
	}
	return team[idx]
}

// AllFainted reports whether every member of a side has fainted
func (b *BattleState) AllFainted(side Side) bool {
	for _, p := range b.Team(side) {
		if !p.Fainted {
			return false
		}
	}
	return true
}

// FirstAvailable returns the first non-fainted team index of a side, or -1
func (b *BattleState) FirstAvailable(side Side) int {
	for i, p := range b.Team(side) {
		if !p.Fainted {
			return i
		}
	}
	return -1
}

// AppendLog appends narration lines
func (b *BattleState) AppendLog(lines ...string) {
	b.Log = append(b.Log, lines...)
}

// IsOver reports whether the battle reached its terminal phase
func (b *BattleState) IsOver() bool {
	return b.Phase == PhaseOver
}

// Clone returns a deep copy safe to hand to renderers and repositories
func (b *BattleState) Clone() *BattleState {
	if b == nil {
		return nil
	}

	clone := *b
	clone.PlayerTeam = cloneTeam(b.PlayerTeam)
	clone.AITeam = cloneTeam(b.AITeam)
	clone.Log = slices.Clone(b.Log)
	if b.TypeChart != nil {
		clone.TypeChart = make(map[string]*TypeEffectiveness, len(b.TypeChart))
		for k, v := range b.TypeChart {
			// records are immutable once fetched
			clone.TypeChart[k] = v
		}
	}
	return &clone
}

func cloneTeam(team []*BattlePokemon) []*BattlePokemon {
	if team == nil {
		return nil
	}
	out := make([]*BattlePokemon, len(team))
	for i, p := range team {
		cp := *p
		cp.Types = slices.Clone(p.Types)
		cp.Moves = slices.Clone(p.Moves)
		out[i] = &cp
	}
	return out
}
