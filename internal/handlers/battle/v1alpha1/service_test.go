package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/gym-battle/internal/orchestrators/battle/mock"
	gymmock "github.com/KirkDiggler/gym-battle/internal/orchestrators/gym/mock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockBattle *battlemock.MockService
	server     *grpc.Server
	conn       *grpc.ClientConn
	client     v1alpha1.BattleServiceClient
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBattle = battlemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService: s.mockBattle,
		GymService:    gymmock.NewMockService(s.ctrl),
	})
	s.Require().NoError(err)

	listener := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterBattleServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewBattleServiceClient(s.conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestGetBattleOverTheWire() {
	s.mockBattle.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle_1"}).
		Return(&battle.GetBattleOutput{Battle: &entities.BattleState{
			ID:    "battle_1",
			Turn:  3,
			Phase: entities.PhaseAI,
		}}, nil)

	req, err := structpb.NewStruct(map[string]any{"battle_id": "battle_1"})
	s.Require().NoError(err)

	resp, err := s.client.Call(context.Background(), v1alpha1.BattleServiceGetBattleFullMethodName, req)
	s.Require().NoError(err)

	b := resp.GetFields()["battle"].GetStructValue()
	s.Equal("ai", b.GetFields()["phase"].GetStringValue())
	s.Equal(float64(3), b.GetFields()["turn"].GetNumberValue())
}

func (s *ServiceTestSuite) TestErrorsKeepTheirCode() {
	s.mockBattle.EXPECT().
		SubmitPlayerDefend(gomock.Any(), gomock.Any()).
		Return(nil, errors.BattleOver("battle_1"))

	req, err := structpb.NewStruct(map[string]any{"battle_id": "battle_1"})
	s.Require().NoError(err)

	_, err = s.client.Call(context.Background(), v1alpha1.BattleServiceSubmitPlayerDefendFullMethodName, req)
	s.Require().Error(err)
	s.Equal(codes.Aborted, status.Code(err))
	s.True(errors.IsBattleOver(errors.FromGRPCError(err)))
}

func (s *ServiceTestSuite) TestUnknownMethod() {
	_, err := s.client.Call(context.Background(), "/"+v1alpha1.ServiceName+"/Missing", &structpb.Struct{})
	s.Equal(codes.Unimplemented, status.Code(err))
}
