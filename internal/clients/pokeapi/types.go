package pokeapi

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// DefaultAccuracy replaces a missing accuracy, which the provider reports for
// moves that never miss
const DefaultAccuracy = 100

var speciesURLPattern = regexp.MustCompile(`/pokemon/(\d+)/?$`)

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonResponse struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Height int        `json:"height"`
	Weight int        `json:"weight"`
	Types  []typeSlot `json:"types"`
	Stats  []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Moves []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

type moveResponse struct {
	ID                int           `json:"id"`
	Name              string        `json:"name"`
	Type              namedResource `json:"type"`
	Power             *int          `json:"power"`
	Accuracy          *int          `json:"accuracy"`
	PP                *int          `json:"pp"`
	Priority          int           `json:"priority"`
	DamageClass       namedResource `json:"damage_class"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
}

type typeResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DamageRelations struct {
		DoubleDamageTo   []namedResource `json:"double_damage_to"`
		HalfDamageTo     []namedResource `json:"half_damage_to"`
		NoDamageTo       []namedResource `json:"no_damage_to"`
		DoubleDamageFrom []namedResource `json:"double_damage_from"`
		HalfDamageFrom   []namedResource `json:"half_damage_from"`
		NoDamageFrom     []namedResource `json:"no_damage_from"`
	} `json:"damage_relations"`
	Pokemon []struct {
		Slot    int           `json:"slot"`
		Pokemon namedResource `json:"pokemon"`
	} `json:"pokemon"`
}

// typeRecord is everything derived from one /type fetch
type typeRecord struct {
	Effectiveness *entities.TypeEffectiveness `json:"effectiveness"`
	Species       []entities.SpeciesRef       `json:"species"`
}

func (r *pokemonResponse) validate() error {
	switch {
	case r.Name == "":
		return errMalformed("missing name")
	case len(r.Types) == 0:
		return errMalformed("missing types")
	case len(r.Stats) == 0:
		return errMalformed("missing stats")
	}
	return nil
}

func (r *pokemonResponse) toEntity() *entities.Species {
	types := slices.Clone(r.Types)
	slices.SortStableFunc(types, func(a, b typeSlot) int {
		return a.Slot - b.Slot
	})

	species := &entities.Species{
		ID:     r.ID,
		Name:   r.Name,
		Height: r.Height,
		Weight: r.Weight,
		Types:  make([]string, 0, len(types)),
		Moves:  make([]entities.MoveRef, 0, len(r.Moves)),
	}
	for _, t := range types {
		species.Types = append(species.Types, t.Type.Name)
	}
	for _, s := range r.Stats {
		switch s.Stat.Name {
		case "hp":
			species.Stats.HP = s.BaseStat
		case "attack":
			species.Stats.Attack = s.BaseStat
		case "defense":
			species.Stats.Defense = s.BaseStat
		case "special-attack":
			species.Stats.SpecialAttack = s.BaseStat
		case "special-defense":
			species.Stats.SpecialDefense = s.BaseStat
		case "speed":
			species.Stats.Speed = s.BaseStat
		}
	}
	if r.Sprites.FrontDefault != nil {
		species.SpriteURL = *r.Sprites.FrontDefault
	}
	for _, m := range r.Moves {
		species.Moves = append(species.Moves, entities.MoveRef{Name: m.Move.Name, URL: m.Move.URL})
	}
	return species
}

func (r *moveResponse) validate() error {
	switch {
	case r.Name == "":
		return errMalformed("missing name")
	case r.Type.Name == "":
		return errMalformed("missing type")
	case r.DamageClass.Name == "":
		return errMalformed("missing damage class")
	}
	return nil
}

func (r *moveResponse) toEntity() *entities.Move {
	move := &entities.Move{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type.Name,
		Power:       r.Power,
		Accuracy:    DefaultAccuracy,
		Priority:    r.Priority,
		DamageClass: entities.DamageClass(r.DamageClass.Name),
	}
	if r.Accuracy != nil {
		move.Accuracy = *r.Accuracy
	}
	if r.PP != nil {
		move.PP = *r.PP
	}
	for _, entry := range r.FlavorTextEntries {
		if entry.Language.Name == "en" {
			move.FlavorText = strings.Join(strings.Fields(entry.FlavorText), " ")
			break
		}
	}
	return move
}

func (r *typeResponse) validate() error {
	if r.Name == "" {
		return errMalformed("missing name")
	}
	return nil
}

func (r *typeResponse) toRecord() *typeRecord {
	rel := r.DamageRelations
	record := &typeRecord{
		Effectiveness: &entities.TypeEffectiveness{
			Name:             r.Name,
			DoubleDamageTo:   resourceNames(rel.DoubleDamageTo),
			HalfDamageTo:     resourceNames(rel.HalfDamageTo),
			NoDamageTo:       resourceNames(rel.NoDamageTo),
			DoubleDamageFrom: resourceNames(rel.DoubleDamageFrom),
			HalfDamageFrom:   resourceNames(rel.HalfDamageFrom),
			NoDamageFrom:     resourceNames(rel.NoDamageFrom),
		},
		Species: make([]entities.SpeciesRef, 0, len(r.Pokemon)),
	}
	for _, p := range r.Pokemon {
		id, ok := speciesIDFromURL(p.Pokemon.URL)
		if !ok {
			continue
		}
		record.Species = append(record.Species, entities.SpeciesRef{ID: id, Name: p.Pokemon.Name})
	}
	return record
}

func resourceNames(resources []namedResource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Name)
	}
	return out
}

func speciesIDFromURL(url string) (int, bool) {
	match := speciesURLPattern.FindStringSubmatch(url)
	if match == nil {
		return 0, false
	}
	id, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
