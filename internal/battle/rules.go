package battle

// RulesMetadata describes the combat rules the calculator implements.
type RulesMetadata struct {
	DiceModel      string
	MaxAttackDice  int
	MaxDefenseDice int
	PairingRule    string
	TieRule        string
	BonusRule      string
	Buckets        []Bucket
}

// Rules returns the static combat rules metadata.
func Rules() RulesMetadata {
	return RulesMetadata{
		DiceModel:      "d6",
		MaxAttackDice:  MaxAttackDice,
		MaxDefenseDice: MaxDefenseDice,
		PairingRule:    "dice sorted high to low and paired by rank; unpaired dice are ignored",
		TieRule:        "defender wins ties",
		BonusRule:      "bonus at rank i is added to the defender die at rank i",
		Buckets:        []Bucket{BucketAttackerWin, BucketTie, BucketDefenderWin},
	}
}
