package domain

import (
	"context"
	"fmt"

	oddsv1 "github.com/louisbranch/riskodds/api/odds/v1"
	"github.com/louisbranch/riskodds/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RollResultsInput represents the MCP tool input for a round distribution.
type RollResultsInput struct {
	AttackDice    int    `json:"attack_dice" jsonschema:"attacker dice rolled this round (0-3)"`
	DefenseDice   int    `json:"defense_dice" jsonschema:"defender dice rolled this round (0-2)"`
	DefenderBonus []int  `json:"defender_bonus,omitempty" jsonschema:"per-pairing bonus added to the defender die, highest pairing first"`
	Preset        string `json:"preset,omitempty" jsonschema:"named bonus schedule (classic, bunker, fortification, ammo_shortage)"`
	AsPercentages bool   `json:"as_percentages,omitempty" jsonschema:"return two-decimal percentages instead of raw counts"`
}

// RollResultsResult represents the MCP tool output for a round distribution.
type RollResultsResult struct {
	AtkWin   string `json:"atk_win" jsonschema:"outcomes where the attacker lost nothing"`
	Tie      string `json:"tie" jsonschema:"outcomes where both sides lost units"`
	DefWin   string `json:"def_win" jsonschema:"outcomes where the defender lost nothing"`
	Total    int    `json:"total" jsonschema:"number of enumerated outcomes"`
	Schedule string `json:"schedule" jsonschema:"normalized bonus schedule key"`
}

// RollResultsTool defines the MCP tool schema for round distributions.
func RollResultsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "odds_roll_results",
		Description: "Enumerates every outcome of one combat round and counts attacker wins, ties and defender wins",
	}
}

// RollResultsHandler executes a round distribution request.
func RollResultsHandler(client OddsClient) mcp.ToolHandlerFor[RollResultsInput, RollResultsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollResultsInput) (*mcp.CallToolResult, RollResultsResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		response, err := client.RollResults(callCtx, &oddsv1.RollResultsRequest{
			AttackDice:    input.AttackDice,
			DefenseDice:   input.DefenseDice,
			DefenderBonus: input.DefenderBonus,
			Preset:        input.Preset,
		})
		if err != nil {
			return nil, RollResultsResult{}, fmt.Errorf("roll results failed: %w", err)
		}
		if response == nil {
			return nil, RollResultsResult{}, fmt.Errorf("roll results response is missing")
		}

		result := RollResultsResult{Total: response.Total, Schedule: response.Schedule}
		if input.AsPercentages {
			result.AtkWin = response.Percentages.AtkWin
			result.Tie = response.Percentages.Tie
			result.DefWin = response.Percentages.DefWin
		} else {
			result.AtkWin = fmt.Sprint(response.Counts.AtkWin)
			result.Tie = fmt.Sprint(response.Counts.Tie)
			result.DefWin = fmt.Sprint(response.Counts.DefWin)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// BattleInput represents the MCP tool input for battle odds.
type BattleInput struct {
	Attackers     int    `json:"attackers" jsonschema:"attacking units committed to the battle"`
	Defenders     int    `json:"defenders" jsonschema:"defending units"`
	DefenderBonus []int  `json:"defender_bonus,omitempty" jsonschema:"per-pairing bonus added to the defender die"`
	Preset        string `json:"preset,omitempty" jsonschema:"named bonus schedule"`
}

// BattleResult represents the MCP tool output for battle odds.
type BattleResult struct {
	AtkWinPerc     string  `json:"atk_win_perc" jsonschema:"attacker win chance as a two-decimal percentage"`
	AtkAvgLoss     string  `json:"atk_avg_loss" jsonschema:"expected attacker losses with two decimals"`
	WinProbability float64 `json:"win_probability" jsonschema:"attacker win probability in [0,1]"`
	ExpectedLoss   float64 `json:"expected_loss" jsonschema:"expected attacker losses"`
	Schedule       string  `json:"schedule" jsonschema:"normalized bonus schedule key"`
	Cached         bool    `json:"cached" jsonschema:"true when the battle was already in the record log"`
}

// BattleTool defines the MCP tool schema for battle odds.
func BattleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "odds_battle",
		Description: "Computes the exact attacker win chance and expected attacker losses for a battle fought to elimination",
	}
}

// BattleHandler executes a battle odds request.
func BattleHandler(client OddsClient) mcp.ToolHandlerFor[BattleInput, BattleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BattleInput) (*mcp.CallToolResult, BattleResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		response, err := client.Battle(callCtx, &oddsv1.BattleRequest{
			Attackers:     input.Attackers,
			Defenders:     input.Defenders,
			DefenderBonus: input.DefenderBonus,
			Preset:        input.Preset,
		})
		if err != nil {
			return nil, BattleResult{}, fmt.Errorf("battle failed: %w", err)
		}
		if response == nil {
			return nil, BattleResult{}, fmt.Errorf("battle response is missing")
		}

		return &mcp.CallToolResult{}, BattleResult{
			AtkWinPerc:     response.AtkWinPerc,
			AtkAvgLoss:     response.AtkAvgLoss,
			WinProbability: response.WinProbability,
			ExpectedLoss:   response.ExpectedLoss,
			Schedule:       response.Schedule,
			Cached:         response.Cached,
		}, nil
	}
}

// RollRoundInput represents the MCP tool input for a random round.
type RollRoundInput struct {
	AttackDice    int    `json:"attack_dice" jsonschema:"attacker dice rolled (0-3)"`
	DefenseDice   int    `json:"defense_dice" jsonschema:"defender dice rolled (0-2)"`
	DefenderBonus []int  `json:"defender_bonus,omitempty" jsonschema:"per-pairing bonus added to the defender die"`
	Preset        string `json:"preset,omitempty" jsonschema:"named bonus schedule"`
	Seed          string `json:"seed,omitempty" jsonschema:"optional decimal seed for a reproducible roll"`
}

// RollRoundResult represents the MCP tool output for a random round.
type RollRoundResult struct {
	Attack         []int  `json:"attack" jsonschema:"attacker dice, highest first"`
	Defense        []int  `json:"defense" jsonschema:"defender dice, highest first"`
	AttackerLosses int    `json:"attacker_losses" jsonschema:"units the attacker lost"`
	DefenderLosses int    `json:"defender_losses" jsonschema:"units the defender lost"`
	Bucket         string `json:"bucket" jsonschema:"atk_win, tie, def_win, or unspecified"`
	Seed           string `json:"seed" jsonschema:"seed that reproduces this roll"`
}

// RollRoundTool defines the MCP tool schema for a random round.
func RollRoundTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "odds_roll_round",
		Description: "Rolls one combat round with random dice and reports the losses on each side",
	}
}

// RollRoundHandler executes a random round request.
func RollRoundHandler(client OddsClient) mcp.ToolHandlerFor[RollRoundInput, RollRoundResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollRoundInput) (*mcp.CallToolResult, RollRoundResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		response, err := client.RollRound(callCtx, &oddsv1.RollRoundRequest{
			AttackDice:    input.AttackDice,
			DefenseDice:   input.DefenseDice,
			DefenderBonus: input.DefenderBonus,
			Preset:        input.Preset,
			Seed:          input.Seed,
		})
		if err != nil {
			return nil, RollRoundResult{}, fmt.Errorf("roll round failed: %w", err)
		}
		if response == nil {
			return nil, RollRoundResult{}, fmt.Errorf("roll round response is missing")
		}

		return &mcp.CallToolResult{}, RollRoundResult{
			Attack:         response.Attack,
			Defense:        response.Defense,
			AttackerLosses: response.AttackerLosses,
			DefenderLosses: response.DefenderLosses,
			Bucket:         response.Bucket,
			Seed:           response.Seed,
		}, nil
	}
}

// PresetsInput represents the MCP tool input for listing presets.
type PresetsInput struct{}

// PresetSummary describes one named bonus schedule.
type PresetSummary struct {
	Name          string `json:"name" jsonschema:"preset name"`
	Description   string `json:"description" jsonschema:"what the preset models"`
	DefenderBonus []int  `json:"defender_bonus" jsonschema:"bonus schedule applied by the preset"`
}

// PresetsResult represents the MCP tool output for listing presets.
type PresetsResult struct {
	Presets []PresetSummary `json:"presets" jsonschema:"available presets"`
}

// PresetsTool defines the MCP tool schema for listing presets.
func PresetsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "odds_presets",
		Description: "Lists the named defender bonus schedules",
	}
}

// PresetsHandler executes a preset listing request.
func PresetsHandler(client OddsClient) mcp.ToolHandlerFor[PresetsInput, PresetsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PresetsInput) (*mcp.CallToolResult, PresetsResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		response, err := client.ListPresets(callCtx, &oddsv1.ListPresetsRequest{})
		if err != nil {
			return nil, PresetsResult{}, fmt.Errorf("list presets failed: %w", err)
		}
		if response == nil {
			return nil, PresetsResult{}, fmt.Errorf("list presets response is missing")
		}

		result := PresetsResult{Presets: make([]PresetSummary, 0, len(response.Presets))}
		for _, preset := range response.Presets {
			result.Presets = append(result.Presets, PresetSummary{
				Name:          preset.Name,
				Description:   preset.Description,
				DefenderBonus: preset.DefenderBonus,
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// BattleRecordsInput represents the MCP tool input for listing recorded battles.
type BattleRecordsInput struct {
	Filter    string `json:"filter,omitempty" jsonschema:"AIP-160 filter, e.g. attackers > 10 AND win_probability >= 0.5"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum records to return (default 20, max 100)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// BattleRecordSummary is one recorded battle.
type BattleRecordSummary struct {
	Attackers      int     `json:"attackers" jsonschema:"attacking units"`
	Defenders      int     `json:"defenders" jsonschema:"defending units"`
	Schedule       string  `json:"schedule" jsonschema:"bonus schedule key"`
	WinProbability float64 `json:"win_probability" jsonschema:"attacker win probability"`
	ExpectedLoss   float64 `json:"expected_loss" jsonschema:"expected attacker losses"`
	Hits           int     `json:"hits" jsonschema:"times the battle was requested"`
	UpdatedAt      string  `json:"updated_at" jsonschema:"RFC3339 timestamp of the last request"`
}

// BattleRecordsResult represents the MCP tool output for recorded battles.
type BattleRecordsResult struct {
	Records       []BattleRecordSummary `json:"records" jsonschema:"recorded battles"`
	NextPageToken string                `json:"next_page_token,omitempty" jsonschema:"token for the next page"`
}

// BattleRecordsTool defines the MCP tool schema for recorded battles.
func BattleRecordsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "odds_battle_records",
		Description: "Lists previously computed battles with optional filtering and paging",
	}
}

// BattleRecordsHandler executes a recorded battle listing request.
func BattleRecordsHandler(client OddsClient) mcp.ToolHandlerFor[BattleRecordsInput, BattleRecordsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BattleRecordsInput) (*mcp.CallToolResult, BattleRecordsResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		response, err := client.ListBattleRecords(callCtx, &oddsv1.ListBattleRecordsRequest{
			Filter:    input.Filter,
			PageSize:  int32(input.PageSize),
			PageToken: input.PageToken,
		})
		if err != nil {
			return nil, BattleRecordsResult{}, fmt.Errorf("list battle records failed: %w", err)
		}
		if response == nil {
			return nil, BattleRecordsResult{}, fmt.Errorf("list battle records response is missing")
		}

		result := BattleRecordsResult{
			Records:       make([]BattleRecordSummary, 0, len(response.Records)),
			NextPageToken: response.NextPageToken,
		}
		for _, record := range response.Records {
			result.Records = append(result.Records, BattleRecordSummary{
				Attackers:      record.Attackers,
				Defenders:      record.Defenders,
				Schedule:       record.Schedule,
				WinProbability: record.WinProbability,
				ExpectedLoss:   record.ExpectedLoss,
				Hits:           record.Hits,
				UpdatedAt:      record.UpdatedAt,
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}
