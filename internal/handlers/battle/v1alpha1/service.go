package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "gymbattle.v1alpha1.BattleService"

// Full method names of the battle service
const (
	BattleServicePrepareBattleFullMethodName      = "/" + ServiceName + "/PrepareBattle"
	BattleServiceGetBattleFullMethodName          = "/" + ServiceName + "/GetBattle"
	BattleServiceSubmitPlayerAttackFullMethodName = "/" + ServiceName + "/SubmitPlayerAttack"
	BattleServiceSubmitPlayerDefendFullMethodName = "/" + ServiceName + "/SubmitPlayerDefend"
	BattleServiceSubmitPlayerSwitchFullMethodName = "/" + ServiceName + "/SubmitPlayerSwitch"
	BattleServiceRunAITurnFullMethodName          = "/" + ServiceName + "/RunAITurn"
	BattleServiceAbandonBattleFullMethodName      = "/" + ServiceName + "/AbandonBattle"
	BattleServiceListCandidatesFullMethodName     = "/" + ServiceName + "/ListCandidates"
	BattleServiceGetTeamSizeFullMethodName        = "/" + ServiceName + "/GetTeamSize"
)

// BattleServiceServer is the server API of the battle service.
// Requests and responses are google.protobuf.Struct messages.
type BattleServiceServer interface {
	PrepareBattle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBattle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitPlayerAttack(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitPlayerDefend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitPlayerSwitch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RunAITurn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AbandonBattle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCandidates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTeamSize(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedBattleServiceServer returns Unimplemented for every method
type UnimplementedBattleServiceServer struct{}

func (UnimplementedBattleServiceServer) PrepareBattle(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PrepareBattle not implemented")
}
func (UnimplementedBattleServiceServer) GetBattle(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBattle not implemented")
}
func (UnimplementedBattleServiceServer) SubmitPlayerAttack(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitPlayerAttack not implemented")
}
func (UnimplementedBattleServiceServer) SubmitPlayerDefend(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitPlayerDefend not implemented")
}
func (UnimplementedBattleServiceServer) SubmitPlayerSwitch(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitPlayerSwitch not implemented")
}
func (UnimplementedBattleServiceServer) RunAITurn(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunAITurn not implemented")
}
func (UnimplementedBattleServiceServer) AbandonBattle(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AbandonBattle not implemented")
}
func (UnimplementedBattleServiceServer) ListCandidates(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCandidates not implemented")
}
func (UnimplementedBattleServiceServer) GetTeamSize(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTeamSize not implemented")
}

// RegisterBattleServiceServer registers the battle service on a gRPC server
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleServiceServiceDesc, srv)
}

type unaryMethod func(BattleServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(
		srv any,
		ctx context.Context,
		dec func(any) error,
		interceptor grpc.UnaryServerInterceptor,
	) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BattleServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BattleServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BattleServiceServiceDesc is the grpc.ServiceDesc of the battle service
var BattleServiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PrepareBattle",
			Handler:    unaryHandler(BattleServicePrepareBattleFullMethodName, BattleServiceServer.PrepareBattle),
		},
		{
			MethodName: "GetBattle",
			Handler:    unaryHandler(BattleServiceGetBattleFullMethodName, BattleServiceServer.GetBattle),
		},
		{
			MethodName: "SubmitPlayerAttack",
			Handler:    unaryHandler(BattleServiceSubmitPlayerAttackFullMethodName, BattleServiceServer.SubmitPlayerAttack),
		},
		{
			MethodName: "SubmitPlayerDefend",
			Handler:    unaryHandler(BattleServiceSubmitPlayerDefendFullMethodName, BattleServiceServer.SubmitPlayerDefend),
		},
		{
			MethodName: "SubmitPlayerSwitch",
			Handler:    unaryHandler(BattleServiceSubmitPlayerSwitchFullMethodName, BattleServiceServer.SubmitPlayerSwitch),
		},
		{
			MethodName: "RunAITurn",
			Handler:    unaryHandler(BattleServiceRunAITurnFullMethodName, BattleServiceServer.RunAITurn),
		},
		{
			MethodName: "AbandonBattle",
			Handler:    unaryHandler(BattleServiceAbandonBattleFullMethodName, BattleServiceServer.AbandonBattle),
		},
		{
			MethodName: "ListCandidates",
			Handler:    unaryHandler(BattleServiceListCandidatesFullMethodName, BattleServiceServer.ListCandidates),
		},
		{
			MethodName: "GetTeamSize",
			Handler:    unaryHandler(BattleServiceGetTeamSizeFullMethodName, BattleServiceServer.GetTeamSize),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gymbattle/v1alpha1/battle.proto",
}

// BattleServiceClient is the client API of the battle service
type BattleServiceClient interface {
	Call(ctx context.Context, fullMethod string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client on an existing connection
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func (c *battleServiceClient) Call(
	ctx context.Context,
	fullMethod string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
