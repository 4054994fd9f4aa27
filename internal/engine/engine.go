package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/telemetry"
)

// Die sizes used to discretize the uniform rolls
const (
	// AccuracyDie maps a roll r to (r-1)/100, uniform over [0, 100)
	AccuracyDie = 10000
	// CriticalDie crits on a 1
	CriticalDie = 16
	// VarianceDie maps a roll r to 0.85 + (r-1)/10000, uniform over [0.85, 1.00)
	VarianceDie = 1500
)

var tracer = telemetry.Tracer("engine")

// Config holds the engine dependencies
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Roller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

type engine struct {
	roller dice.Roller
}

// New creates an engine backed by the given dice roller
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{roller: cfg.Roller}, nil
}

var _ Engine = (*engine)(nil)

// RollHit rolls uniform [0, 100) and misses when the roll exceeds accuracy
func (e *engine) RollHit(_ context.Context, input *RollHitInput) (*RollHitOutput, error) {
	if input == nil || input.Move == nil {
		return nil, errors.InvalidArgument("move is required")
	}

	r, err := e.roller.Roll(AccuracyDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll accuracy")
	}
	roll := float64(r-1) / 100

	return &RollHitOutput{
		Hit:  roll <= float64(input.Move.Accuracy),
		Roll: roll,
	}, nil
}

// ResolveAttack resolves damage for a move that hit
func (e *engine) ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Attacker == nil {
		vb.RequiredField("attacker")
	}
	if input.Defender == nil {
		vb.RequiredField("defender")
	}
	if input.Move == nil {
		vb.RequiredField("move")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, span := tracer.Start(ctx, "engine.ResolveAttack")
	defer span.End()

	attack, defense := statPair(input.Attacker, input.Defender, input.Move.DamageClass)
	effectiveness := Effectiveness(input.Move.Type, input.Defender.Types, input.Chart)
	stab := input.Attacker.HasType(input.Move.Type)

	varianceRoll, err := e.roller.Roll(VarianceDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll variance")
	}
	variance := 0.85 + float64(varianceRoll-1)/10000

	critRoll, err := e.roller.Roll(CriticalDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll critical")
	}

	damage := CalculateDamage(DamageInput{
		Level:         input.Attacker.Level,
		Power:         input.Move.PowerOrZero(),
		Attack:        attack,
		Defense:       defense,
		Effectiveness: effectiveness,
		STAB:          stab,
		Variance:      variance,
	})

	span.SetAttributes(
		attribute.String("move", input.Move.Name),
		attribute.Int("damage", damage),
		attribute.Float64("effectiveness", effectiveness),
	)

	return &ResolveAttackOutput{
		Damage:        damage,
		Effectiveness: effectiveness,
		IsCritical:    critRoll == 1,
		STAB:          stab,
		Variance:      variance,
	}, nil
}
