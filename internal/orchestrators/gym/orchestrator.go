// Package gym assembles gym battles from provider data: candidate listing,
// team validation, team assembly with fallbacks and AI team assignment
package gym

//go:generate mockgen -destination=mock/mock_service.go -package=gymmock github.com/KirkDiggler/gym-battle/internal/orchestrators/gym Service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/gym-battle/internal/clients/pokeapi"
	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
)

const (
	// DefaultMovePoolSize bounds how many learnable moves are fetched per Pokémon
	DefaultMovePoolSize = 20
	// DefaultFetchConcurrency bounds concurrent provider requests per stage
	DefaultFetchConcurrency = 8
	// FallbackStat fills every stat of a species the provider could not serve
	FallbackStat = 50

	spriteURLFormat = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"
)

// Service defines the gym setup operations
type Service interface {
	// ListCandidates lists species of a type introduced up to the region's generation
	ListCandidates(ctx context.Context, input *ListCandidatesInput) (*ListCandidatesOutput, error)

	// TeamSize returns the team size allowed by a gym tier
	TeamSize(ctx context.Context, input *TeamSizeInput) (*TeamSizeOutput, error)

	// PrepareBattle validates the player's picks, assembles both teams and starts the battle
	PrepareBattle(ctx context.Context, input *PrepareBattleInput) (*PrepareBattleOutput, error)
}

// Config holds the dependencies for the gym orchestrator
type Config struct {
	Provider pokeapi.Client
	Battles  battle.Service
	// Roller picks the AI team
	Roller dice.Roller
	Logger *slog.Logger

	MovePoolSize     int
	FetchConcurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Provider == nil {
		vb.RequiredField("Provider")
	}
	if c.Battles == nil {
		vb.RequiredField("Battles")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.MovePoolSize < 0 {
		vb.Field("MovePoolSize", "must not be negative")
	}
	if c.FetchConcurrency < 0 {
		vb.Field("FetchConcurrency", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	provider         pokeapi.Client
	battles          battle.Service
	roller           dice.Roller
	logger           *slog.Logger
	validate         *validator.Validate
	movePoolSize     int
	fetchConcurrency int
}

// NewOrchestrator creates a new gym orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		provider:         cfg.Provider,
		battles:          cfg.Battles,
		roller:           cfg.Roller,
		logger:           cfg.Logger,
		validate:         newValidator(),
		movePoolSize:     cfg.MovePoolSize,
		fetchConcurrency: cfg.FetchConcurrency,
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.movePoolSize == 0 {
		o.movePoolSize = DefaultMovePoolSize
	}
	if o.fetchConcurrency == 0 {
		o.fetchConcurrency = DefaultFetchConcurrency
	}
	return o, nil
}

// ListCandidates lists species of a type introduced up to the region's generation
func (o *orchestrator) ListCandidates(ctx context.Context, input *ListCandidatesInput) (*ListCandidatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cfg := entities.GymConfig{Region: input.Region, Type: input.Type, Tier: 1}
	if err := o.validateConfig(cfg); err != nil {
		return nil, err
	}

	candidates, err := o.candidates(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &ListCandidatesOutput{Candidates: candidates}, nil
}

// TeamSize returns the team size allowed by a gym tier
func (o *orchestrator) TeamSize(_ context.Context, input *TeamSizeInput) (*TeamSizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	size := entities.TeamSizeForTier(input.Tier)
	if size == 0 {
		return nil, errors.InvalidArgumentf("tier must be between 1 and %d", len(entities.TierTeamSizes))
	}
	return &TeamSizeOutput{Size: size}, nil
}

// PrepareBattle validates the player's picks, assembles both teams and starts the battle
func (o *orchestrator) PrepareBattle(ctx context.Context, input *PrepareBattleInput) (*PrepareBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.validateConfig(input.Config); err != nil {
		return nil, err
	}
	if err := validateTeam(input.Config, input.PlayerSpeciesIDs); err != nil {
		return nil, err
	}

	cfg := input.Config
	warnings := &warningList{}

	names := make(map[int]string)
	pool, err := o.candidates(ctx, cfg)
	switch {
	case err == nil && len(pool) > 0:
		for _, ref := range pool {
			names[ref.ID] = ref.Name
		}
		for _, id := range input.PlayerSpeciesIDs {
			if _, ok := names[id]; !ok {
				return nil, errors.InvalidSelection("species %d is not a %s candidate in %s", id, cfg.Type, cfg.Region)
			}
		}
	case err != nil && !errors.IsDataUnavailable(err) && !errors.IsNotFound(err):
		return nil, err
	default:
		warnings.add("no %s candidates available in %s, the gym leader mirrors your team", cfg.Type, cfg.Region)
		pool = nil
		for _, id := range input.PlayerSpeciesIDs {
			pool = append(pool, entities.SpeciesRef{ID: id})
		}
	}

	aiIDs, err := o.pickAITeam(pool, cfg.TeamSize())
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "preparing gym battle",
		"region", cfg.Region,
		"type", cfg.Type,
		"tier", cfg.Tier,
		"player_team", input.PlayerSpeciesIDs,
		"ai_team", aiIDs,
	)

	playerTeam := make([]*entities.BattlePokemon, len(input.PlayerSpeciesIDs))
	aiTeam := make([]*entities.BattlePokemon, len(aiIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.fetchConcurrency)
	for i, id := range input.PlayerSpeciesIDs {
		g.Go(func() error {
			p, err := o.assemble(gctx, entities.SidePlayer, i, id, names[id], cfg.Type, warnings)
			playerTeam[i] = p
			return err
		})
	}
	for i, id := range aiIDs {
		g.Go(func() error {
			p, err := o.assemble(gctx, entities.SideAI, i, id, names[id], cfg.Type, warnings)
			aiTeam[i] = p
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to assemble teams")
	}

	chart, err := o.typeChart(ctx, append(slices.Clone(playerTeam), aiTeam...), warnings)
	if err != nil {
		return nil, err
	}

	started, err := o.battles.StartBattle(ctx, &battle.StartBattleInput{
		BattleID:   input.BattleID,
		PlayerTeam: playerTeam,
		AITeam:     aiTeam,
		TypeChart:  chart,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start battle")
	}

	out := &PrepareBattleOutput{
		Battle:   started.Battle,
		Warnings: warnings.sorted(),
	}
	if len(out.Warnings) > 0 {
		o.logger.WarnContext(ctx, "gym battle assembled with fallbacks",
			"battle_id", started.Battle.ID,
			"warnings", len(out.Warnings),
		)
	}
	return out, nil
}

// candidates lists species of the filter type up to the region's species limit, sorted by ID
func (o *orchestrator) candidates(ctx context.Context, cfg entities.GymConfig) ([]entities.SpeciesRef, error) {
	refs, err := o.provider.ListSpeciesByType(ctx, cfg.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s species", cfg.Type)
	}

	limit := cfg.SpeciesLimit()
	out := make([]entities.SpeciesRef, 0, len(refs))
	for _, ref := range refs {
		if ref.ID > 0 && ref.ID <= limit {
			out = append(out, ref)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.SpeciesRef) int {
		return a.ID - b.ID
	})
	return out, nil
}

// pickAITeam draws size species from the pool with the dice roller. Draws are
// without replacement while the pool allows it.
func (o *orchestrator) pickAITeam(pool []entities.SpeciesRef, size int) ([]int, error) {
	if len(pool) == 0 {
		return nil, errors.FailedPrecondition("no species available for the gym leader")
	}

	remaining := slices.Clone(pool)
	ids := make([]int, 0, size)
	for len(ids) < size {
		if len(remaining) == 0 {
			remaining = slices.Clone(pool)
		}
		roll, err := o.roller.Roll(len(remaining))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll gym leader team")
		}
		idx := roll - 1
		ids = append(ids, remaining[idx].ID)
		remaining = slices.Delete(remaining, idx, idx+1)
	}
	return ids, nil
}

// assemble builds one Battle Pokémon, substituting fallback data for anything
// the provider cannot serve. Only context cancellation fails it.
func (o *orchestrator) assemble(
	ctx context.Context,
	side entities.Side,
	slot, speciesID int,
	name, filterType string,
	warnings *warningList,
) (*entities.BattlePokemon, error) {
	species, err := o.provider.GetSpecies(ctx, strconv.Itoa(speciesID))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		warnings.add("species %d unavailable, using default stats", speciesID)
		o.logger.WarnContext(ctx, "species fallback", "species_id", speciesID, "error", err)
		species = fallbackSpecies(speciesID, name, filterType)
	}

	moves, err := o.fetchMoves(ctx, species)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		warnings.add("no attacking moves for %s, using Tackle", entities.DisplayName(species.Name))
		moves = []*entities.Move{fallbackMove()}
	}

	moveset := engine.SelectMoveset(moves, species.Types, engine.DefaultMovesetSize)
	return entities.NewBattlePokemon(side, slot, species, moveset), nil
}

// fetchMoves fetches up to the move pool size of learnable moves and keeps
// the attacking ones in learnset order
func (o *orchestrator) fetchMoves(ctx context.Context, species *entities.Species) ([]*entities.Move, error) {
	refs := species.Moves
	if len(refs) > o.movePoolSize {
		refs = refs[:o.movePoolSize]
	}

	fetched := make([]*entities.Move, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.fetchConcurrency)
	for i, ref := range refs {
		g.Go(func() error {
			m, err := o.provider.GetMove(gctx, ref.Name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				o.logger.DebugContext(gctx, "skipping unavailable move", "move", ref.Name, "error", err)
				return nil
			}
			fetched[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	moves := make([]*entities.Move, 0, len(fetched))
	for _, m := range fetched {
		if m != nil && m.IsAttacking() {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// typeChart fetches the effectiveness record of every move type in play.
// Types the provider cannot serve are left out and resolve as neutral.
func (o *orchestrator) typeChart(
	ctx context.Context,
	team []*entities.BattlePokemon,
	warnings *warningList,
) (map[string]*entities.TypeEffectiveness, error) {
	var moveTypes []string
	for _, p := range team {
		for _, m := range p.Moves {
			if m.Type != "" && !slices.Contains(moveTypes, m.Type) {
				moveTypes = append(moveTypes, m.Type)
			}
		}
	}

	var mu sync.Mutex
	chart := make(map[string]*entities.TypeEffectiveness, len(moveTypes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.fetchConcurrency)
	for _, t := range moveTypes {
		g.Go(func() error {
			record, err := o.provider.GetTypeEffectiveness(gctx, t)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				warnings.add("type %s unavailable, treating it as neutral", t)
				return nil
			}
			mu.Lock()
			chart[t] = record
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to fetch type chart")
	}
	return chart, nil
}

func fallbackSpecies(id int, name, filterType string) *entities.Species {
	if name == "" {
		name = fmt.Sprintf("pokemon-%d", id)
	}
	return &entities.Species{
		ID:    id,
		Name:  name,
		Types: []string{filterType},
		Stats: entities.Stats{
			HP:             FallbackStat,
			Attack:         FallbackStat,
			Defense:        FallbackStat,
			SpecialAttack:  FallbackStat,
			SpecialDefense: FallbackStat,
			Speed:          FallbackStat,
		},
		SpriteURL: fmt.Sprintf(spriteURLFormat, id),
	}
}

func fallbackMove() *entities.Move {
	power := 40
	return &entities.Move{
		ID:          33,
		Name:        "tackle",
		Type:        "normal",
		Power:       &power,
		Accuracy:    100,
		PP:          35,
		DamageClass: entities.DamageClassPhysical,
	}
}

type warningList struct {
	mu    sync.Mutex
	items []string
}

func (w *warningList) add(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = append(w.items, fmt.Sprintf(format, args...))
}

func (w *warningList) sorted() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := slices.Clone(w.items)
	slices.Sort(out)
	return out
}
