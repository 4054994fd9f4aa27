// Package v1alpha1 handles the battle gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/gym"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService battle.Service
	GymService    gym.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.GymService == nil {
		vb.RequiredField("GymService")
	}
	return vb.Build()
}

// Handler implements the battle gRPC service
type Handler struct {
	UnimplementedBattleServiceServer
	battleService battle.Service
	gymService    gym.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService: cfg.BattleService,
		gymService:    cfg.GymService,
	}, nil
}

var _ BattleServiceServer = (*Handler)(nil)

// PrepareBattle assembles both teams and starts a battle.
// Request: region, type, tier, player_species_ids, optional battle_id.
func (h *Handler) PrepareBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	input := &gym.PrepareBattleInput{
		Config: entities.GymConfig{
			Region: requiredString(req, "region", vb),
			Type:   requiredString(req, "type", vb),
			Tier:   requiredInt(req, "tier", vb),
		},
		PlayerSpeciesIDs: requiredIntList(req, "player_species_ids", vb),
		BattleID:         optionalString(req, "battle_id"),
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.PrepareBattle(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	warnings := output.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return h.respond(map[string]any{
		"battle":   battleView(output.Battle),
		"warnings": warnings,
	})
}

// GetBattle returns the current battle state
func (h *Handler) GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	battleID, err := battleIDFrom(req)
	if err != nil {
		return nil, err
	}

	output, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: battleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respondBattle(output.Battle)
}

// SubmitPlayerAttack uses the move at move_index
func (h *Handler) SubmitPlayerAttack(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	input := &battle.SubmitPlayerAttackInput{
		BattleID:  requiredString(req, "battle_id", vb),
		MoveIndex: requiredInt(req, "move_index", vb),
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.SubmitPlayerAttack(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respondBattle(output.Battle)
}

// SubmitPlayerDefend braces the player's active Pokémon
func (h *Handler) SubmitPlayerDefend(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	battleID, err := battleIDFrom(req)
	if err != nil {
		return nil, err
	}

	output, err := h.battleService.SubmitPlayerDefend(ctx, &battle.SubmitPlayerDefendInput{BattleID: battleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respondBattle(output.Battle)
}

// SubmitPlayerSwitch sends out the team member at team_index
func (h *Handler) SubmitPlayerSwitch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	input := &battle.SubmitPlayerSwitchInput{
		BattleID:  requiredString(req, "battle_id", vb),
		TeamIndex: requiredInt(req, "team_index", vb),
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.SubmitPlayerSwitch(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respondBattle(output.Battle)
}

// RunAITurn runs the AI turn immediately instead of waiting for the pacing delay
func (h *Handler) RunAITurn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	battleID, err := battleIDFrom(req)
	if err != nil {
		return nil, err
	}

	output, err := h.battleService.RunAITurn(ctx, &battle.RunAITurnInput{BattleID: battleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respondBattle(output.Battle)
}

// AbandonBattle ends a battle without a winner
func (h *Handler) AbandonBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	battleID, err := battleIDFrom(req)
	if err != nil {
		return nil, err
	}

	if _, err := h.battleService.AbandonBattle(ctx, &battle.AbandonBattleInput{BattleID: battleID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respond(map[string]any{"battle_id": battleID})
}

// ListCandidates lists the species the player may pick
func (h *Handler) ListCandidates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	input := &gym.ListCandidatesInput{
		Region: requiredString(req, "region", vb),
		Type:   requiredString(req, "type", vb),
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.ListCandidates(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	candidates := output.Candidates
	if candidates == nil {
		candidates = []entities.SpeciesRef{}
	}
	return h.respond(map[string]any{"candidates": candidates})
}

// GetTeamSize returns the team size for a gym tier
func (h *Handler) GetTeamSize(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	tier := requiredInt(req, "tier", vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.TeamSize(ctx, &gym.TeamSizeInput{Tier: tier})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.respond(map[string]any{"size": output.Size})
}

func battleIDFrom(req *structpb.Struct) (string, error) {
	vb := errors.NewValidationBuilder()
	battleID := requiredString(req, "battle_id", vb)
	if err := vb.Build(); err != nil {
		return "", errors.ToGRPCError(err)
	}
	return battleID, nil
}

func (h *Handler) respondBattle(state *entities.BattleState) (*structpb.Struct, error) {
	return h.respond(map[string]any{"battle": battleView(state)})
}

func (h *Handler) respond(fields map[string]any) (*structpb.Struct, error) {
	out, err := toStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
