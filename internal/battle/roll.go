package battle

import (
	"fmt"

	"github.com/louisbranch/riskodds/internal/core/dice"
)

// RoundRoll is one randomly rolled round.
type RoundRoll struct {
	Seed    int64
	Attack  []int
	Defense []int
	Losses  RoundLosses
	Bucket  Bucket
}

// RollRound rolls one round with a seeded random source and resolves it.
// The same seed and dice counts always produce the same round.
func RollRound(seed int64, attackDice, defenseDice int, schedule BonusSchedule) (RoundRoll, error) {
	if err := validateDice(attackDice, defenseDice); err != nil {
		return RoundRoll{}, err
	}

	specs := make([]dice.Spec, 0, 2)
	if attackDice > 0 {
		specs = append(specs, dice.Spec{Sides: dice.Faces, Count: attackDice})
	}
	if defenseDice > 0 {
		specs = append(specs, dice.Spec{Sides: dice.Faces, Count: defenseDice})
	}

	roll := RoundRoll{Seed: seed, Attack: []int{}, Defense: []int{}}
	if len(specs) > 0 {
		result, err := dice.RollDice(dice.Request{Dice: specs, Seed: seed})
		if err != nil {
			return RoundRoll{}, fmt.Errorf("roll round: %w", err)
		}
		next := 0
		if attackDice > 0 {
			roll.Attack = result.Rolls[next].Results
			next++
		}
		if defenseDice > 0 {
			roll.Defense = result.Rolls[next].Results
		}
	}

	roll.Losses = ResolveRound(roll.Attack, roll.Defense, schedule)
	roll.Bucket = roll.Losses.Bucket()
	if attackDice == 0 || defenseDice == 0 {
		roll.Bucket = BucketUnspecified
	}
	return roll, nil
}
