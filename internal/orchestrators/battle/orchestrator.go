// Package battle implements the battle state machine that sequences player
// and AI turns for gym battles
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/gym-battle/internal/orchestrators/battle Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/metrics"
	"github.com/KirkDiggler/gym-battle/internal/pkg/clock"
	"github.com/KirkDiggler/gym-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/gym-battle/internal/render"
	"github.com/KirkDiggler/gym-battle/internal/repositories/battles"
	"github.com/KirkDiggler/gym-battle/internal/telemetry"
)

const (
	// DefaultAIDelay paces scheduled AI turns
	DefaultAIDelay = 1500 * time.Millisecond

	// DefaultAbandonRetention matches the battle repository's default TTL
	DefaultAbandonRetention = 2 * time.Hour
)

var tracer = telemetry.Tracer("battle")

// Service defines the battle operations
type Service interface {
	// StartBattle creates a battle in the player phase at turn 1
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// GetBattle returns a snapshot of a battle
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// SubmitPlayerAttack resolves the player's move and hands the turn to the AI
	SubmitPlayerAttack(ctx context.Context, input *SubmitPlayerAttackInput) (*SubmitPlayerAttackOutput, error)

	// SubmitPlayerDefend braces the player's active Pokémon for the next hit
	SubmitPlayerDefend(ctx context.Context, input *SubmitPlayerDefendInput) (*SubmitPlayerDefendOutput, error)

	// SubmitPlayerSwitch swaps the player's active Pokémon
	SubmitPlayerSwitch(ctx context.Context, input *SubmitPlayerSwitchInput) (*SubmitPlayerSwitchOutput, error)

	// RunAITurn resolves the AI's turn immediately
	RunAITurn(ctx context.Context, input *RunAITurnInput) (*RunAITurnOutput, error)

	// AbandonBattle discards a battle and cancels its scheduled work
	AbandonBattle(ctx context.Context, input *AbandonBattleInput) (*AbandonBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  battles.Repository
	IDGenerator idgen.Generator

	// Renderer receives a snapshot after every transition. Defaults to render.Nop.
	Renderer render.Renderer
	// EventBus receives faint and end events. Defaults to a fresh bus.
	EventBus events.EventBus
	Clock    clock.Clock
	Metrics  *metrics.BattleMetrics
	Logger   *slog.Logger

	// AutoAdvance schedules the AI turn after every player action
	AutoAdvance bool
	// AIDelay paces scheduled AI turns. Zero uses DefaultAIDelay.
	AIDelay time.Duration
	// AbandonRetention is how long an abandoned battle ID is refused by the
	// restore path. Zero uses DefaultAbandonRetention.
	AbandonRetention time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.AIDelay < 0 {
		vb.Field("AIDelay", "must not be negative")
	}
	if c.AbandonRetention < 0 {
		vb.Field("AbandonRetention", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	repo        battles.Repository
	idGen       idgen.Generator
	renderer    render.Renderer
	bus         events.EventBus
	clock       clock.Clock
	metrics     *metrics.BattleMetrics
	logger      *slog.Logger
	autoAdvance bool
	aiDelay     time.Duration
	retention   time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
	// abandoned maps battle IDs to the time their tombstone expires
	abandoned map[string]time.Time
}

// session owns one live battle. Every transition holds mu.
type session struct {
	mu         sync.Mutex
	state      *entities.BattleState
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	timer      *time.Timer
}

func newSession(state *entities.BattleState) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		state:  state,
		ctx:    ctx,
		cancel: cancel,
	}
}

// stop cancels scheduled work. Callers hold s.mu.
func (s *session) stop() {
	s.cancel()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		engine:      cfg.Engine,
		repo:        cfg.Repository,
		idGen:       cfg.IDGenerator,
		renderer:    cfg.Renderer,
		bus:         cfg.EventBus,
		clock:       cfg.Clock,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		autoAdvance: cfg.AutoAdvance,
		aiDelay:     cfg.AIDelay,
		retention:   cfg.AbandonRetention,
		sessions:    make(map[string]*session),
		abandoned:   make(map[string]time.Time),
	}
	if o.renderer == nil {
		o.renderer = render.Nop
	}
	if o.bus == nil {
		o.bus = events.NewBus()
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.aiDelay == 0 {
		o.aiDelay = DefaultAIDelay
	}
	if o.retention == 0 {
		o.retention = DefaultAbandonRetention
	}
	return o, nil
}

// StartBattle creates a battle in the player phase at turn 1
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateTeams(input); err != nil {
		return nil, err
	}

	battleID := input.BattleID
	if battleID == "" {
		battleID = o.idGen.Generate()
	}

	ctx, span := tracer.Start(ctx, "battle.StartBattle", trace.WithAttributes(
		attribute.String("battle_id", battleID),
		attribute.Int("player_team_size", len(input.PlayerTeam)),
		attribute.Int("ai_team_size", len(input.AITeam)),
	))
	defer span.End()

	now := o.clock.Now()
	state := &entities.BattleState{
		ID:         battleID,
		Turn:       1,
		Phase:      entities.PhasePlayer,
		PlayerTeam: cloneTeam(input.PlayerTeam),
		AITeam:     cloneTeam(input.AITeam),
		TypeChart:  input.TypeChart,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	state.SetActive(entities.SidePlayer, state.FirstAvailable(entities.SidePlayer))
	state.SetActive(entities.SideAI, state.FirstAvailable(entities.SideAI))
	state.AppendLog(
		fmt.Sprintf(msgSendOutAI, state.Active(entities.SideAI).DisplayName()),
		fmt.Sprintf(msgSendOutPlayer, state.Active(entities.SidePlayer).DisplayName()),
	)

	sess := newSession(state)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	o.mu.Lock()
	previous := o.sessions[battleID]
	o.sessions[battleID] = sess
	delete(o.abandoned, battleID)
	o.mu.Unlock()

	if previous != nil {
		previous.mu.Lock()
		previous.stop()
		previous.mu.Unlock()
		o.metrics.BattleEnded(winnerAbandoned, 0)
		o.forget(ctx, battleID)
		o.logger.InfoContext(ctx, "battle replaced", "battle_id", battleID)
	}

	o.metrics.BattleStarted()
	o.logger.InfoContext(ctx, "battle started",
		"battle_id", battleID,
		"player_team", len(state.PlayerTeam),
		"ai_team", len(state.AITeam),
	)

	o.commit(ctx, sess, state)

	return &StartBattleOutput{Battle: state.Clone()}, nil
}

// GetBattle returns a snapshot of a battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	o.mu.RLock()
	sess := o.sessions[input.BattleID]
	gone := o.isAbandoned(input.BattleID)
	o.mu.RUnlock()

	if sess != nil {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return &GetBattleOutput{Battle: sess.state.Clone()}, nil
	}
	if gone {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	out, err := o.repo.Get(ctx, &battles.GetInput{BattleID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", input.BattleID)
	}
	return &GetBattleOutput{Battle: out.Battle}, nil
}

// SubmitPlayerAttack resolves the player's move and hands the turn to the AI
func (o *orchestrator) SubmitPlayerAttack(ctx context.Context, input *SubmitPlayerAttackInput) (*SubmitPlayerAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.playerAction(ctx, input.BattleID, actionAttack, func(ctx context.Context, next *entities.BattleState) error {
		attacker := next.Active(entities.SidePlayer)
		if input.MoveIndex < 0 || input.MoveIndex >= len(attacker.Moves) || attacker.Moves[input.MoveIndex] == nil {
			return errors.InvalidArgumentf("move index %d is out of range", input.MoveIndex).
				WithMeta(errors.MetaReason, errors.ReasonInvalidSelection)
		}
		return o.attack(ctx, next, entities.SidePlayer, attacker.Moves[input.MoveIndex])
	})
	if err != nil {
		return nil, err
	}
	return &SubmitPlayerAttackOutput{Battle: state}, nil
}

// SubmitPlayerDefend braces the player's active Pokémon for the next hit
func (o *orchestrator) SubmitPlayerDefend(ctx context.Context, input *SubmitPlayerDefendInput) (*SubmitPlayerDefendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.playerAction(ctx, input.BattleID, actionDefend, func(_ context.Context, next *entities.BattleState) error {
		active := next.Active(entities.SidePlayer)
		next.AppendLog(fmt.Sprintf(msgDefending, active.DisplayName()))
		active.Defending = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitPlayerDefendOutput{Battle: state}, nil
}

// SubmitPlayerSwitch swaps the player's active Pokémon
func (o *orchestrator) SubmitPlayerSwitch(ctx context.Context, input *SubmitPlayerSwitchInput) (*SubmitPlayerSwitchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.playerAction(ctx, input.BattleID, actionSwitch, func(_ context.Context, next *entities.BattleState) error {
		team := next.Team(entities.SidePlayer)
		if input.TeamIndex < 0 || input.TeamIndex >= len(team) {
			return errors.InvalidArgumentf("team index %d is out of range", input.TeamIndex).
				WithMeta(errors.MetaReason, errors.ReasonInvalidSelection)
		}
		if input.TeamIndex == next.ActiveIndex(entities.SidePlayer) {
			return errors.InvalidSelection("%s is already in battle", team[input.TeamIndex].DisplayName())
		}
		if team[input.TeamIndex].Fainted {
			return errors.InvalidSelection("%s has fainted and cannot battle", team[input.TeamIndex].DisplayName())
		}

		current := next.Active(entities.SidePlayer)
		next.AppendLog(fmt.Sprintf(msgSwitch, current.DisplayName(), team[input.TeamIndex].DisplayName()))
		current.Defending = false
		next.SetActive(entities.SidePlayer, input.TeamIndex)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitPlayerSwitchOutput{Battle: state}, nil
}

// RunAITurn resolves the AI's turn immediately
func (o *orchestrator) RunAITurn(ctx context.Context, input *RunAITurnInput) (*RunAITurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.session(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.IsOver() {
		return nil, errors.BattleOver(sess.state.ID)
	}
	if !o.current(sess) {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}
	if sess.state.Phase != entities.PhaseAI {
		return nil, errors.InvalidSelection("it is not the AI's turn")
	}

	state, err := o.aiTurn(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &RunAITurnOutput{Battle: state}, nil
}

// AbandonBattle discards a battle and cancels its scheduled work
func (o *orchestrator) AbandonBattle(ctx context.Context, input *AbandonBattleInput) (*AbandonBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	now := o.clock.Now()
	o.mu.Lock()
	sess := o.sessions[input.BattleID]
	delete(o.sessions, input.BattleID)
	for id, until := range o.abandoned {
		if !now.Before(until) {
			delete(o.abandoned, id)
		}
	}
	o.abandoned[input.BattleID] = now.Add(o.retention)
	o.mu.Unlock()

	if sess != nil {
		sess.mu.Lock()
		sess.stop()
		sess.mu.Unlock()
		o.metrics.BattleEnded(winnerAbandoned, 0)
	}

	_, err := o.repo.Delete(ctx, &battles.DeleteInput{BattleID: input.BattleID})
	switch {
	case err == nil:
	case errors.IsNotFound(err) && sess != nil:
		// never persisted
	case errors.IsNotFound(err):
		o.mu.Lock()
		delete(o.abandoned, input.BattleID)
		o.mu.Unlock()
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	default:
		o.logger.ErrorContext(ctx, "failed to delete battle", "battle_id", input.BattleID, "error", err)
	}

	o.forget(ctx, input.BattleID)
	o.logger.InfoContext(ctx, "battle abandoned", "battle_id", input.BattleID)
	return &AbandonBattleOutput{}, nil
}

// playerAction runs one player transition against a copy of the state and
// commits it only when apply succeeds
func (o *orchestrator) playerAction(
	ctx context.Context,
	battleID, action string,
	apply func(ctx context.Context, next *entities.BattleState) error,
) (*entities.BattleState, error) {
	sess, err := o.session(ctx, battleID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.IsOver() {
		return nil, errors.BattleOver(sess.state.ID)
	}
	if !o.current(sess) {
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}
	if sess.state.Phase != entities.PhasePlayer {
		return nil, errors.InvalidSelection("it is not the player's turn")
	}
	if active := sess.state.Active(entities.SidePlayer); active == nil || active.Fainted {
		return nil, errors.Internalf("battle %s has no active player Pokémon", battleID)
	}

	ctx, span := tracer.Start(ctx, "battle.player."+action, trace.WithAttributes(
		attribute.String("battle_id", battleID),
		attribute.Int("turn", sess.state.Turn),
	))
	defer span.End()

	next := sess.state.Clone()
	if err := apply(ctx, next); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if action != actionAttack {
		o.metrics.ActionResolved(string(entities.SidePlayer), action, outcomeOK)
	}

	if !next.IsOver() {
		next.Phase = entities.PhaseAI
	}
	o.commit(ctx, sess, next)

	if o.autoAdvance && next.Phase == entities.PhaseAI {
		o.scheduleAI(sess)
	}
	return next.Clone(), nil
}

// aiTurn resolves the AI's turn. Callers hold sess.mu and have checked the phase.
func (o *orchestrator) aiTurn(ctx context.Context, sess *session) (*entities.BattleState, error) {
	ctx, span := tracer.Start(ctx, "battle.AITurn", trace.WithAttributes(
		attribute.String("battle_id", sess.state.ID),
		attribute.Int("turn", sess.state.Turn),
	))
	defer span.End()

	next := sess.state.Clone()
	attacker := next.Active(entities.SideAI)

	if attacker == nil || attacker.Fainted {
		name := "The gym leader"
		if attacker != nil {
			name = attacker.DisplayName()
		}
		next.AppendLog(fmt.Sprintf(msgCannotAct, name))
		o.metrics.ActionResolved(string(entities.SideAI), actionSkip, outcomeOK)
		next.Phase = entities.PhasePlayer
		o.commit(ctx, sess, next)
		return next.Clone(), nil
	}

	defender := next.Active(entities.SidePlayer)
	idx := engine.SelectAIMove(attacker.Moves, defender.Types, next.TypeChart)
	if idx < 0 {
		next.AppendLog(fmt.Sprintf(msgNoMoves, attacker.DisplayName()))
		o.metrics.ActionResolved(string(entities.SideAI), actionAttack, outcomeNoMove)
	} else if err := o.attack(ctx, next, entities.SideAI, attacker.Moves[idx]); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if !next.IsOver() {
		next.Turn++
		next.Phase = entities.PhasePlayer
	}
	o.commit(ctx, sess, next)
	return next.Clone(), nil
}

// attack runs the accuracy, damage and faint sequence for one side's move
func (o *orchestrator) attack(ctx context.Context, state *entities.BattleState, side entities.Side, move *entities.Move) error {
	attacker := state.Active(side)
	defender := state.Active(side.Opponent())
	if defender == nil || defender.Fainted {
		return errors.Internalf("battle %s has no active %s Pokémon", state.ID, side.Opponent())
	}

	hit, err := o.engine.RollHit(ctx, &engine.RollHitInput{Move: move})
	if err != nil {
		return errors.Wrap(err, "failed to roll accuracy")
	}
	if !hit.Hit {
		state.AppendLog(fmt.Sprintf(msgMissed, attacker.DisplayName()))
		o.metrics.ActionResolved(string(side), actionAttack, outcomeMiss)
		return nil
	}

	result, err := o.engine.ResolveAttack(ctx, &engine.ResolveAttackInput{
		Attacker: attacker,
		Defender: defender,
		Move:     move,
		Chart:    state.TypeChart,
	})
	if err != nil {
		return errors.Wrap(err, "failed to resolve attack")
	}

	damage := result.Damage
	if result.IsCritical {
		damage = engine.ApplyCritical(damage)
	}

	lines := []string{fmt.Sprintf(msgMoveUsed, attacker.DisplayName(), move.DisplayName())}
	if result.IsCritical {
		lines = append(lines, msgCritical)
	}
	if defender.Defending {
		damage = max(damage/2, engine.MinDamage)
		lines = append(lines, fmt.Sprintf(msgBraced, defender.DisplayName()))
	}
	lost := min(damage, defender.HP)
	lines = append(lines, fmt.Sprintf(msgDamage, defender.DisplayName(), lost))
	if msg := engine.EffectivenessMessage(result.Effectiveness); msg != "" {
		lines = append(lines, msg)
	}
	if lost >= defender.HP {
		lines = append(lines, fmt.Sprintf(msgFainted, defender.DisplayName()))
	}

	state.AppendLog(lines...)
	defender.Defending = false
	defender.TakeDamage(damage)

	o.metrics.DamageDealt(lost)
	o.logger.DebugContext(ctx, "attack resolved",
		"battle_id", state.ID,
		"side", side,
		"move", move.Name,
		"damage", lost,
		"effectiveness", result.Effectiveness,
		"critical", result.IsCritical,
	)

	if !defender.Fainted {
		o.metrics.ActionResolved(string(side), actionAttack, outcomeHit)
		return nil
	}

	o.metrics.ActionResolved(string(side), actionAttack, outcomeFaint)
	o.publish(ctx, EventPokemonFainted, attacker, defender)

	loser := side.Opponent()
	replacement := state.FirstAvailable(loser)
	if replacement < 0 {
		if side == entities.SidePlayer {
			state.AppendLog(msgPlayerWins)
		} else {
			state.AppendLog(msgAIWins)
		}
		state.Phase = entities.PhaseOver
		state.Winner = side
		return nil
	}

	incoming := state.Team(loser)[replacement]
	if loser == entities.SidePlayer {
		state.AppendLog(fmt.Sprintf(msgSendOutPlayer, incoming.DisplayName()))
	} else {
		state.AppendLog(fmt.Sprintf(msgSendOutAI, incoming.DisplayName()))
	}
	state.SetActive(loser, replacement)
	return nil
}

// commit installs next as the session state and fans the snapshot out.
// Persistence and render failures are logged; the in-memory state stays
// authoritative. Callers hold sess.mu.
func (o *orchestrator) commit(ctx context.Context, sess *session, next *entities.BattleState) {
	next.UpdatedAt = o.clock.Now()
	sess.state = next
	sess.generation++

	snapshot := next.Clone()
	if _, err := o.repo.Save(ctx, &battles.SaveInput{Battle: snapshot}); err != nil {
		o.logger.ErrorContext(ctx, "failed to save battle", "battle_id", next.ID, "error", err)
	}
	if err := o.renderer.Render(ctx, snapshot); err != nil {
		o.logger.WarnContext(ctx, "failed to render battle", "battle_id", next.ID, "error", err)
	}

	if !next.IsOver() {
		return
	}

	o.metrics.BattleEnded(string(next.Winner), next.UpdatedAt.Sub(next.CreatedAt))
	o.publish(ctx, EventBattleEnded, snapshot, nil)
	o.logger.InfoContext(ctx, "battle ended",
		"battle_id", next.ID,
		"winner", next.Winner,
		"turns", next.Turn,
	)

	sess.stop()
	o.mu.Lock()
	if o.sessions[next.ID] == sess {
		delete(o.sessions, next.ID)
	}
	o.mu.Unlock()
}

// forget tells the renderer a battle ended without a final snapshot
func (o *orchestrator) forget(ctx context.Context, battleID string) {
	if err := o.renderer.Forget(ctx, battleID); err != nil {
		o.logger.WarnContext(ctx, "failed to forget battle", "battle_id", battleID, "error", err)
	}
}

func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := o.bus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		o.logger.WarnContext(ctx, "failed to publish battle event", "type", eventType, "error", err)
	}
}

func validateTeams(input *StartBattleInput) error {
	vb := errors.NewValidationBuilder()
	checkTeam := func(field string, team []*entities.BattlePokemon) {
		if len(team) == 0 {
			vb.RequiredField(field)
			return
		}
		available := false
		for i, p := range team {
			if p == nil {
				vb.Fieldf(field, "member %d is nil", i)
				continue
			}
			if p.MaxHP <= 0 {
				vb.Fieldf(field, "member %d has no max HP", i)
			}
			if !p.Fainted {
				available = true
			}
		}
		if !available {
			vb.Field(field, "has no Pokémon able to battle")
		}
	}
	checkTeam("player_team", input.PlayerTeam)
	checkTeam("ai_team", input.AITeam)
	return vb.Build()
}

func cloneTeam(team []*entities.BattlePokemon) []*entities.BattlePokemon {
	return (&entities.BattleState{PlayerTeam: team}).Clone().PlayerTeam
}
