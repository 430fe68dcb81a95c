// Package errors provides structured errors that map to gRPC statuses with
// localized user messages.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Odds errors
	CodeOddsInvalidDiceCount   Code = "ODDS_INVALID_DICE_COUNT"
	CodeOddsInvalidUnitCount   Code = "ODDS_INVALID_UNIT_COUNT"
	CodeOddsUnitCountTooLarge  Code = "ODDS_UNIT_COUNT_TOO_LARGE"
	CodeOddsUnknownPreset      Code = "ODDS_UNKNOWN_PRESET"
	CodeOddsPresetWithBonus    Code = "ODDS_PRESET_WITH_BONUS"
	CodeOddsInvalidFilter      Code = "ODDS_INVALID_FILTER"
	CodeOddsInvalidPageToken   Code = "ODDS_INVALID_PAGE_TOKEN"
	CodeOddsInvalidRequestBody Code = "ODDS_INVALID_REQUEST_BODY"

	// Dice errors
	CodeDiceMissing     Code = "DICE_MISSING"
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"

	// Storage errors
	CodeNotFound           Code = "NOT_FOUND"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOddsInvalidDiceCount,
		CodeOddsInvalidUnitCount,
		CodeOddsUnknownPreset,
		CodeOddsPresetWithBonus,
		CodeOddsInvalidFilter,
		CodeOddsInvalidPageToken,
		CodeOddsInvalidRequestBody,
		CodeDiceMissing,
		CodeDiceInvalidSpec:
		return codes.InvalidArgument

	// The request is well formed but beyond what the calculator will table.
	case CodeOddsUnitCountTooLarge:
		return codes.OutOfRange

	case CodeNotFound:
		return codes.NotFound

	case CodeStorageUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
