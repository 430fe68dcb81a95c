package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Codes mirror internal/platform/errors; duplicated to avoid an import cycle.
const (
	codeUnknown                = "UNKNOWN"
	codeOddsInvalidDiceCount   = "ODDS_INVALID_DICE_COUNT"
	codeOddsInvalidUnitCount   = "ODDS_INVALID_UNIT_COUNT"
	codeOddsUnitCountTooLarge  = "ODDS_UNIT_COUNT_TOO_LARGE"
	codeOddsUnknownPreset      = "ODDS_UNKNOWN_PRESET"
	codeOddsPresetWithBonus    = "ODDS_PRESET_WITH_BONUS"
	codeOddsInvalidFilter      = "ODDS_INVALID_FILTER"
	codeOddsInvalidPageToken   = "ODDS_INVALID_PAGE_TOKEN"
	codeOddsInvalidRequestBody = "ODDS_INVALID_REQUEST_BODY"
	codeDiceMissing            = "DICE_MISSING"
	codeDiceInvalidSpec        = "DICE_INVALID_SPEC"
	codeNotFound               = "NOT_FOUND"
	codeStorageUnavailable     = "STORAGE_UNAVAILABLE"
)

// userMessages holds the English text, which doubles as the message fallback.
var userMessages = map[string]string{
	codeUnknown:                "Something went wrong. Please try again.",
	codeOddsInvalidDiceCount:   "The attacker rolls 0 to 3 dice and the defender 0 to 2.",
	codeOddsInvalidUnitCount:   "Unit counts cannot be negative.",
	codeOddsUnitCountTooLarge:  "That battle is too large to calculate.",
	codeOddsUnknownPreset:      "That rule preset does not exist.",
	codeOddsPresetWithBonus:    "Choose a preset or a defender bonus, not both.",
	codeOddsInvalidFilter:      "The filter could not be understood.",
	codeOddsInvalidPageToken:   "The page token is not valid.",
	codeOddsInvalidRequestBody: "The request could not be read.",
	codeDiceMissing:            "At least one die must be rolled.",
	codeDiceInvalidSpec:        "Dice need a positive number of sides and count.",
	codeNotFound:               "The requested record was not found.",
	codeStorageUnavailable:     "Battle records are unavailable right now.",
}

var portugueseMessages = map[string]string{
	codeUnknown:                "Algo deu errado. Tente novamente.",
	codeOddsInvalidDiceCount:   "O atacante rola de 0 a 3 dados e o defensor de 0 a 2.",
	codeOddsInvalidUnitCount:   "O número de tropas não pode ser negativo.",
	codeOddsUnitCountTooLarge:  "Essa batalha é grande demais para calcular.",
	codeOddsUnknownPreset:      "Essa regra predefinida não existe.",
	codeOddsPresetWithBonus:    "Escolha uma regra predefinida ou um bônus de defesa, não ambos.",
	codeOddsInvalidFilter:      "O filtro não pôde ser interpretado.",
	codeOddsInvalidPageToken:   "O token de página não é válido.",
	codeOddsInvalidRequestBody: "A requisição não pôde ser lida.",
	codeDiceMissing:            "Pelo menos um dado deve ser rolado.",
	codeDiceInvalidSpec:        "Os dados precisam de lados e quantidade positivos.",
	codeNotFound:               "O registro solicitado não foi encontrado.",
	codeStorageUnavailable:     "Os registros de batalha estão indisponíveis agora.",
}

func init() {
	for code, text := range userMessages {
		_ = message.SetString(language.AmericanEnglish, code, text)
	}
	for code, text := range portugueseMessages {
		_ = message.SetString(language.BrazilianPortuguese, code, text)
	}
}
