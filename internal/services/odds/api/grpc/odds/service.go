// Package odds implements the riskodds.odds.v1.OddsService gRPC API.
package odds

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	oddsv1 "github.com/louisbranch/riskodds/api/odds/v1"
	"github.com/louisbranch/riskodds/internal/battle"
	apperrors "github.com/louisbranch/riskodds/internal/platform/errors"
	"github.com/louisbranch/riskodds/internal/platform/grpc/pagination"
	"github.com/louisbranch/riskodds/internal/platform/otel"
	"github.com/louisbranch/riskodds/internal/random"
	"github.com/louisbranch/riskodds/internal/services/odds/filter"
	"github.com/louisbranch/riskodds/internal/services/odds/storage"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/status"
)

const (
	defaultListBattleRecordsPageSize = 20
	maxListBattleRecordsPageSize     = 100
)

var tracer = otel.Tracer("github.com/louisbranch/riskodds/internal/services/odds")

// Service exposes odds.v1 gRPC operations over a battle calculator.
type Service struct {
	calc  *battle.Calculator
	store storage.BattleRecordStore
	seed  func(*int64) (int64, bool, error)
}

// NewService creates an odds service. A nil store disables the record log.
func NewService(calc *battle.Calculator, store storage.BattleRecordStore) *Service {
	if calc == nil {
		calc = battle.NewCalculator()
	}
	return &Service{
		calc:  calc,
		store: store,
		seed:  random.ResolveSeed,
	}
}

// RollResults returns the exact distribution for one round.
func (s *Service) RollResults(ctx context.Context, in *oddsv1.RollResultsRequest) (*oddsv1.RollResultsResponse, error) {
	schedule, err := battle.ResolveSchedule(in.Preset, in.DefenderBonus)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	distribution, err := s.calc.RoundDistribution(in.AttackDice, in.DefenseDice, schedule)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	percentages := battle.FormatPercentages(distribution)
	return &oddsv1.RollResultsResponse{
		Counts: oddsv1.Counts{
			AtkWin: distribution.AttackerWin,
			Tie:    distribution.Tie,
			DefWin: distribution.DefenderWin,
		},
		Total: distribution.Total(),
		Percentages: oddsv1.Percentages{
			AtkWin: percentages.AttackerWin,
			Tie:    percentages.Tie,
			DefWin: percentages.DefenderWin,
		},
		Schedule: schedule.Key(),
	}, nil
}

// Battle returns the exact battle expectation and records it in the log.
func (s *Service) Battle(ctx context.Context, in *oddsv1.BattleRequest) (*oddsv1.BattleResponse, error) {
	ctx, span := tracer.Start(ctx, "odds.Battle", trace.WithAttributes(
		attribute.Int("odds.attackers", in.Attackers),
		attribute.Int("odds.defenders", in.Defenders),
	))
	defer span.End()

	schedule, err := battle.ResolveSchedule(in.Preset, in.DefenderBonus)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, handleDomainError(ctx, err)
	}
	span.SetAttributes(attribute.String("odds.schedule", schedule.Key()))

	expectation, err := s.calc.BattleContext(ctx, in.Attackers, in.Defenders, schedule)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, handleDomainError(ctx, err)
	}
	report := battle.FormatExpectation(expectation)
	resp := &oddsv1.BattleResponse{
		AtkWinPerc:     report.AttackerWinPercent,
		AtkAvgLoss:     report.AttackerAverageLoss,
		WinProbability: expectation.WinProbability,
		ExpectedLoss:   expectation.ExpectedLoss,
		Schedule:       schedule.Key(),
	}

	if s.store != nil {
		record, err := s.store.PutBattleRecord(ctx, storage.BattleRecord{
			Attackers:      in.Attackers,
			Defenders:      in.Defenders,
			ScheduleKey:    schedule.Key(),
			WinProbability: expectation.WinProbability,
			ExpectedLoss:   expectation.ExpectedLoss,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "record battle")
			return nil, handleDomainError(ctx, apperrors.Wrap(apperrors.CodeStorageUnavailable, "record battle: "+err.Error(), err))
		}
		resp.Hits = record.Hits
		resp.Cached = record.Hits > 1
	}
	span.SetAttributes(attribute.Bool("odds.cached", resp.Cached))
	return resp, nil
}

// RollRound rolls one seeded random round.
func (s *Service) RollRound(ctx context.Context, in *oddsv1.RollRoundRequest) (*oddsv1.RollRoundResponse, error) {
	schedule, err := battle.ResolveSchedule(in.Preset, in.DefenderBonus)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}

	var requested *int64
	if raw := strings.TrimSpace(in.Seed); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, handleDomainError(ctx, invalidArgument(apperrors.CodeOddsInvalidRequestBody, "seed %q is not an int64", raw))
		}
		requested = &value
	}
	seed, generated, err := s.seed(requested)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}

	round, err := battle.RollRound(seed, in.AttackDice, in.DefenseDice, schedule)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &oddsv1.RollRoundResponse{
		Attack:         round.Attack,
		Defense:        round.Defense,
		AttackerLosses: round.Losses.Attacker,
		DefenderLosses: round.Losses.Defender,
		Bucket:         round.Bucket.String(),
		Seed:           strconv.FormatInt(round.Seed, 10),
		SeedGenerated:  generated,
	}, nil
}

// ListPresets returns the built-in rule presets.
func (s *Service) ListPresets(context.Context, *oddsv1.ListPresetsRequest) (*oddsv1.ListPresetsResponse, error) {
	presets := battle.Presets()
	resp := &oddsv1.ListPresetsResponse{Presets: make([]oddsv1.Preset, 0, len(presets))}
	for _, preset := range presets {
		bonus := []int(preset.Schedule)
		if bonus == nil {
			bonus = []int{}
		}
		resp.Presets = append(resp.Presets, oddsv1.Preset{
			Name:          preset.Name,
			Description:   preset.Description,
			DefenderBonus: bonus,
		})
	}
	return resp, nil
}

// ListBattleRecords pages through the battle record log.
func (s *Service) ListBattleRecords(ctx context.Context, in *oddsv1.ListBattleRecordsRequest) (*oddsv1.ListBattleRecordsResponse, error) {
	if s.store == nil {
		return nil, handleDomainError(ctx, apperrors.New(apperrors.CodeStorageUnavailable, "battle record store is not configured"))
	}

	pageSize := pagination.ClampPageSize(in.PageSize, pagination.PageSizeConfig{
		Default: defaultListBattleRecordsPageSize,
		Max:     maxListBattleRecordsPageSize,
	})
	afterKey, err := pagination.DecodeToken(strings.TrimSpace(in.PageToken))
	if err != nil {
		return nil, handleDomainError(ctx, apperrors.Wrap(apperrors.CodeOddsInvalidPageToken, err.Error(), err))
	}
	cond, err := filter.ParseBattleRecordFilter(in.Filter)
	if err != nil {
		return nil, handleDomainError(ctx, apperrors.Wrap(apperrors.CodeOddsInvalidFilter, "invalid filter: "+err.Error(), err))
	}

	page, err := s.store.ListBattleRecords(ctx, storage.ListBattleRecordsRequest{
		PageSize:     pageSize,
		AfterKey:     afterKey,
		FilterClause: cond.Clause,
		FilterParams: cond.Params,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, status.FromContextError(err).Err()
		}
		return nil, handleDomainError(ctx, apperrors.Wrap(apperrors.CodeStorageUnavailable, "list battle records: "+err.Error(), err))
	}

	resp := &oddsv1.ListBattleRecordsResponse{
		Records:       make([]oddsv1.BattleRecord, 0, len(page.Records)),
		NextPageToken: pagination.EncodeToken(page.NextKey),
	}
	for _, record := range page.Records {
		resp.Records = append(resp.Records, battleRecordToWire(record))
	}
	return resp, nil
}

func battleRecordToWire(record storage.BattleRecord) oddsv1.BattleRecord {
	return oddsv1.BattleRecord{
		Attackers:      record.Attackers,
		Defenders:      record.Defenders,
		Schedule:       record.ScheduleKey,
		WinProbability: record.WinProbability,
		ExpectedLoss:   record.ExpectedLoss,
		Hits:           record.Hits,
		CreatedAt:      record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

var _ oddsv1.OddsServiceServer = (*Service)(nil)
