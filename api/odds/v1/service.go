package oddsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name, also used as the
// health check service.
const ServiceName = "riskodds.odds.v1.OddsService"

const (
	RollResultsFullMethodName       = "/" + ServiceName + "/RollResults"
	BattleFullMethodName            = "/" + ServiceName + "/Battle"
	RollRoundFullMethodName         = "/" + ServiceName + "/RollRound"
	ListPresetsFullMethodName       = "/" + ServiceName + "/ListPresets"
	ListBattleRecordsFullMethodName = "/" + ServiceName + "/ListBattleRecords"
)

// OddsServiceServer is the server API for OddsService.
type OddsServiceServer interface {
	RollResults(context.Context, *RollResultsRequest) (*RollResultsResponse, error)
	Battle(context.Context, *BattleRequest) (*BattleResponse, error)
	RollRound(context.Context, *RollRoundRequest) (*RollRoundResponse, error)
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	ListBattleRecords(context.Context, *ListBattleRecordsRequest) (*ListBattleRecordsResponse, error)
}

// OddsService_ServiceDesc is the grpc.ServiceDesc for OddsService.
var OddsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OddsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RollResults", Handler: unaryHandler(RollResultsFullMethodName, OddsServiceServer.RollResults)},
		{MethodName: "Battle", Handler: unaryHandler(BattleFullMethodName, OddsServiceServer.Battle)},
		{MethodName: "RollRound", Handler: unaryHandler(RollRoundFullMethodName, OddsServiceServer.RollRound)},
		{MethodName: "ListPresets", Handler: unaryHandler(ListPresetsFullMethodName, OddsServiceServer.ListPresets)},
		{MethodName: "ListBattleRecords", Handler: unaryHandler(ListBattleRecordsFullMethodName, OddsServiceServer.ListBattleRecords)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "riskodds/odds/v1",
}

// RegisterOddsServiceServer registers srv on s.
func RegisterOddsServiceServer(s grpc.ServiceRegistrar, srv OddsServiceServer) {
	s.RegisterService(&OddsService_ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(OddsServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed := new(Req)
			if err := FromStruct(req.(*structpb.Struct), typed); err != nil {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}
			resp, err := call(srv.(OddsServiceServer), ctx, typed)
			if err != nil {
				return nil, err
			}
			return ToStruct(resp)
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handler)
	}
}

// OddsServiceClient is the client API for OddsService.
type OddsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOddsServiceClient wraps a connection to an odds server.
func NewOddsServiceClient(cc grpc.ClientConnInterface) *OddsServiceClient {
	return &OddsServiceClient{cc: cc}
}

func (c *OddsServiceClient) RollResults(ctx context.Context, in *RollResultsRequest, opts ...grpc.CallOption) (*RollResultsResponse, error) {
	return invoke[RollResultsResponse](ctx, c.cc, RollResultsFullMethodName, in, opts)
}

func (c *OddsServiceClient) Battle(ctx context.Context, in *BattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	return invoke[BattleResponse](ctx, c.cc, BattleFullMethodName, in, opts)
}

func (c *OddsServiceClient) RollRound(ctx context.Context, in *RollRoundRequest, opts ...grpc.CallOption) (*RollRoundResponse, error) {
	return invoke[RollRoundResponse](ctx, c.cc, RollRoundFullMethodName, in, opts)
}

func (c *OddsServiceClient) ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error) {
	return invoke[ListPresetsResponse](ctx, c.cc, ListPresetsFullMethodName, in, opts)
}

func (c *OddsServiceClient) ListBattleRecords(ctx context.Context, in *ListBattleRecordsRequest, opts ...grpc.CallOption) (*ListBattleRecordsResponse, error) {
	return invoke[ListBattleRecordsResponse](ctx, c.cc, ListBattleRecordsFullMethodName, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	req, err := ToStruct(in)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	resp := new(Resp)
	if err := FromStruct(out, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
