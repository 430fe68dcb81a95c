package oddstable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyRoundTitle   = "oddstable.round.title"
	keyRoundHeader  = "oddstable.round.header"
	keyBattleTitle  = "oddstable.battle.title"
	keyBattleCorner = "oddstable.battle.corner"
	keyBonusNone    = "oddstable.bonus.none"
)

var englishMessages = map[string]string{
	keyRoundTitle:   "Round odds: %s (defender bonus: %s)",
	keyRoundHeader:  "Attack\tDefense\tAttacker wins\tTie\tDefender wins",
	keyBattleTitle:  "Battle odds: %s (attacker win %% / expected attacker losses)",
	keyBattleCorner: "Atk \\ Def",
	keyBonusNone:    "none",
}

var portugueseMessages = map[string]string{
	keyRoundTitle:   "Chances por rodada: %s (bônus do defensor: %s)",
	keyRoundHeader:  "Ataque\tDefesa\tVitória do atacante\tEmpate\tVitória do defensor",
	keyBattleTitle:  "Chances de batalha: %s (vitória do atacante %% / perdas esperadas do atacante)",
	keyBattleCorner: "Atq \\ Def",
	keyBonusNone:    "nenhum",
}

func init() {
	for key, value := range englishMessages {
		_ = message.SetString(language.English, key, value)
	}
	for key, value := range portugueseMessages {
		_ = message.SetString(language.BrazilianPortuguese, key, value)
	}
}
