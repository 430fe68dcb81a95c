package domain

import (
	"context"

	oddsv1 "github.com/louisbranch/riskodds/api/odds/v1"
	"google.golang.org/grpc"
)

// OddsClient is the subset of the odds gRPC client used by MCP tools.
type OddsClient interface {
	RollResults(ctx context.Context, in *oddsv1.RollResultsRequest, opts ...grpc.CallOption) (*oddsv1.RollResultsResponse, error)
	Battle(ctx context.Context, in *oddsv1.BattleRequest, opts ...grpc.CallOption) (*oddsv1.BattleResponse, error)
	RollRound(ctx context.Context, in *oddsv1.RollRoundRequest, opts ...grpc.CallOption) (*oddsv1.RollRoundResponse, error)
	ListPresets(ctx context.Context, in *oddsv1.ListPresetsRequest, opts ...grpc.CallOption) (*oddsv1.ListPresetsResponse, error)
	ListBattleRecords(ctx context.Context, in *oddsv1.ListBattleRecordsRequest, opts ...grpc.CallOption) (*oddsv1.ListBattleRecordsResponse, error)
}

var _ OddsClient = (*oddsv1.OddsServiceClient)(nil)
