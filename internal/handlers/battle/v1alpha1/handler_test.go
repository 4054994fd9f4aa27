package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/gym-battle/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/gym"
	gymmock "github.com/KirkDiggler/gym-battle/internal/orchestrators/gym/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockBattle *battlemock.MockService
	mockGym    *gymmock.MockService
	handler    *v1alpha1.Handler
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBattle = battlemock.NewMockService(s.ctrl)
	s.mockGym = gymmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService: s.mockBattle,
		GymService:    s.mockGym,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) sampleBattle() *entities.BattleState {
	player := entities.NewBattlePokemon(entities.SidePlayer, 0, &entities.Species{
		ID: 25, Name: "pikachu", Types: []string{"electric"},
	}, nil)
	ai := entities.NewBattlePokemon(entities.SideAI, 0, &entities.Species{
		ID: 74, Name: "geodude", Types: []string{"rock", "ground"},
	}, nil)
	return &entities.BattleState{
		ID:         "battle_1",
		Turn:       1,
		Phase:      entities.PhasePlayer,
		PlayerTeam: []*entities.BattlePokemon{player},
		AITeam:     []*entities.BattlePokemon{ai},
		Log:        []string{"Go, Pikachu!"},
		TypeChart: map[string]*entities.TypeEffectiveness{
			"electric": {Name: "electric"},
		},
	}
}

func (s *HandlerTestSuite) TestNewHandler_MissingServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestPrepareBattle_Success() {
	s.mockGym.EXPECT().
		PrepareBattle(s.ctx, &gym.PrepareBattleInput{
			Config:           entities.GymConfig{Region: "kanto", Type: "electric", Tier: 1},
			PlayerSpeciesIDs: []int{25},
		}).
		Return(&gym.PrepareBattleOutput{
			Battle:   s.sampleBattle(),
			Warnings: []string{"species 74 unavailable, using default stats"},
		}, nil)

	resp, err := s.handler.PrepareBattle(s.ctx, s.request(map[string]any{
		"region":             "kanto",
		"type":               "electric",
		"tier":               1,
		"player_species_ids": []any{25},
	}))
	s.Require().NoError(err)

	b := resp.GetFields()["battle"].GetStructValue()
	s.Require().NotNil(b)
	s.Equal("battle_1", b.GetFields()["id"].GetStringValue())
	s.Equal("player", b.GetFields()["phase"].GetStringValue())
	s.NotContains(b.GetFields(), "type_chart")

	team := b.GetFields()["player_team"].GetListValue().GetValues()
	s.Require().Len(team, 1)
	s.Equal("pikachu", team[0].GetStructValue().GetFields()["name"].GetStringValue())

	warnings := resp.GetFields()["warnings"].GetListValue().GetValues()
	s.Require().Len(warnings, 1)
	s.Equal("species 74 unavailable, using default stats", warnings[0].GetStringValue())
}

func (s *HandlerTestSuite) TestPrepareBattle_MissingFields() {
	_, err := s.handler.PrepareBattle(s.ctx, s.request(map[string]any{
		"region": "kanto",
		"tier":   1.5,
	}))
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
}

func (s *HandlerTestSuite) TestPrepareBattle_MapsErrors() {
	s.mockGym.EXPECT().
		PrepareBattle(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidSelection("species %d is not a candidate", 7))

	_, err := s.handler.PrepareBattle(s.ctx, s.request(map[string]any{
		"region":             "kanto",
		"type":               "grass",
		"tier":               1,
		"player_species_ids": []any{7},
	}))
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestGetBattle() {
	s.mockBattle.EXPECT().
		GetBattle(s.ctx, &battle.GetBattleInput{BattleID: "battle_1"}).
		Return(&battle.GetBattleOutput{Battle: s.sampleBattle()}, nil)

	resp, err := s.handler.GetBattle(s.ctx, s.request(map[string]any{"battle_id": "battle_1"}))
	s.Require().NoError(err)

	b := resp.GetFields()["battle"].GetStructValue()
	s.Equal(float64(1), b.GetFields()["turn"].GetNumberValue())
	log := b.GetFields()["log"].GetListValue().GetValues()
	s.Require().Len(log, 1)
	s.Equal("Go, Pikachu!", log[0].GetStringValue())
}

func (s *HandlerTestSuite) TestGetBattle_NotFound() {
	s.mockBattle.EXPECT().
		GetBattle(s.ctx, &battle.GetBattleInput{BattleID: "missing"}).
		Return(nil, errors.NotFound("battle missing not found"))

	_, err := s.handler.GetBattle(s.ctx, s.request(map[string]any{"battle_id": "missing"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestGetBattle_RequiresID() {
	_, err := s.handler.GetBattle(s.ctx, s.request(map[string]any{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitPlayerAttack() {
	s.mockBattle.EXPECT().
		SubmitPlayerAttack(s.ctx, &battle.SubmitPlayerAttackInput{BattleID: "battle_1", MoveIndex: 2}).
		Return(&battle.SubmitPlayerAttackOutput{Battle: s.sampleBattle()}, nil)

	resp, err := s.handler.SubmitPlayerAttack(s.ctx, s.request(map[string]any{
		"battle_id":  "battle_1",
		"move_index": 2,
	}))
	s.Require().NoError(err)
	s.NotNil(resp.GetFields()["battle"].GetStructValue())
}

func (s *HandlerTestSuite) TestSubmitPlayerAttack_BattleOver() {
	s.mockBattle.EXPECT().
		SubmitPlayerAttack(s.ctx, gomock.Any()).
		Return(nil, errors.BattleOver("battle_1"))

	_, err := s.handler.SubmitPlayerAttack(s.ctx, s.request(map[string]any{
		"battle_id":  "battle_1",
		"move_index": 0,
	}))
	s.Equal(codes.Aborted, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitPlayerAttack_RequiresMoveIndex() {
	_, err := s.handler.SubmitPlayerAttack(s.ctx, s.request(map[string]any{"battle_id": "battle_1"}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitPlayerDefend() {
	s.mockBattle.EXPECT().
		SubmitPlayerDefend(s.ctx, &battle.SubmitPlayerDefendInput{BattleID: "battle_1"}).
		Return(&battle.SubmitPlayerDefendOutput{Battle: s.sampleBattle()}, nil)

	_, err := s.handler.SubmitPlayerDefend(s.ctx, s.request(map[string]any{"battle_id": "battle_1"}))
	s.NoError(err)
}

func (s *HandlerTestSuite) TestSubmitPlayerSwitch() {
	s.mockBattle.EXPECT().
		SubmitPlayerSwitch(s.ctx, &battle.SubmitPlayerSwitchInput{BattleID: "battle_1", TeamIndex: 1}).
		Return(nil, errors.InvalidSelection("%s has fainted", "Squirtle"))

	_, err := s.handler.SubmitPlayerSwitch(s.ctx, s.request(map[string]any{
		"battle_id":  "battle_1",
		"team_index": 1,
	}))
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestRunAITurn() {
	s.mockBattle.EXPECT().
		RunAITurn(s.ctx, &battle.RunAITurnInput{BattleID: "battle_1"}).
		Return(&battle.RunAITurnOutput{Battle: s.sampleBattle()}, nil)

	_, err := s.handler.RunAITurn(s.ctx, s.request(map[string]any{"battle_id": "battle_1"}))
	s.NoError(err)
}

func (s *HandlerTestSuite) TestAbandonBattle() {
	s.mockBattle.EXPECT().
		AbandonBattle(s.ctx, &battle.AbandonBattleInput{BattleID: "battle_1"}).
		Return(&battle.AbandonBattleOutput{}, nil)

	resp, err := s.handler.AbandonBattle(s.ctx, s.request(map[string]any{"battle_id": "battle_1"}))
	s.Require().NoError(err)
	s.Equal("battle_1", resp.GetFields()["battle_id"].GetStringValue())
}

func (s *HandlerTestSuite) TestListCandidates() {
	s.mockGym.EXPECT().
		ListCandidates(s.ctx, &gym.ListCandidatesInput{Region: "kanto", Type: "grass"}).
		Return(&gym.ListCandidatesOutput{Candidates: []entities.SpeciesRef{
			{ID: 1, Name: "bulbasaur"},
			{ID: 43, Name: "oddish"},
		}}, nil)

	resp, err := s.handler.ListCandidates(s.ctx, s.request(map[string]any{
		"region": "kanto",
		"type":   "grass",
	}))
	s.Require().NoError(err)

	candidates := resp.GetFields()["candidates"].GetListValue().GetValues()
	s.Require().Len(candidates, 2)
	first := candidates[0].GetStructValue().GetFields()
	s.Equal(float64(1), first["id"].GetNumberValue())
	s.Equal("bulbasaur", first["name"].GetStringValue())
}

func (s *HandlerTestSuite) TestListCandidates_Unavailable() {
	s.mockGym.EXPECT().
		ListCandidates(s.ctx, gomock.Any()).
		Return(nil, errors.DataUnavailable("type", "grass", errors.Unavailable("pokeapi down")))

	_, err := s.handler.ListCandidates(s.ctx, s.request(map[string]any{
		"region": "kanto",
		"type":   "grass",
	}))
	s.Equal(codes.Unavailable, status.Code(err))
}

func (s *HandlerTestSuite) TestGetTeamSize() {
	s.mockGym.EXPECT().
		TeamSize(s.ctx, &gym.TeamSizeInput{Tier: 3}).
		Return(&gym.TeamSizeOutput{Size: 4}, nil)

	resp, err := s.handler.GetTeamSize(s.ctx, s.request(map[string]any{"tier": 3}))
	s.Require().NoError(err)
	s.Equal(float64(4), resp.GetFields()["size"].GetNumberValue())
}
