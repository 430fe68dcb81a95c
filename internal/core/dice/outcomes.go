package dice

// Outcomes enumerates every ordered outcome of rolling count six-sided dice.
//
// Outcomes are produced in descending lexicographic order: for each outcome
// of count-1 dice, each face from 6 down to 1 is prepended. Rolling zero dice
// has exactly one outcome, the empty one.
//
// The result holds 6^count outcomes, so callers are expected to keep count
// small; combat never rolls more than three dice per side.
func Outcomes(count int) ([][]int, error) {
	if count < 0 {
		return nil, ErrInvalidDiceCount
	}

	outcomes := [][]int{{}}
	for n := 1; n <= count; n++ {
		next := make([][]int, 0, len(outcomes)*Faces)
		for _, prev := range outcomes {
			for face := Faces; face >= 1; face-- {
				outcome := make([]int, 0, n)
				outcome = append(outcome, face)
				outcome = append(outcome, prev...)
				next = append(next, outcome)
			}
		}
		outcomes = next
	}
	return outcomes, nil
}

// OutcomeCount returns the number of outcomes Outcomes produces for count dice.
func OutcomeCount(count int) int {
	if count < 0 {
		return 0
	}
	total := 1
	for i := 0; i < count; i++ {
		total *= Faces
	}
	return total
}
