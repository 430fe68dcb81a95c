// Package check resolves a single opposed die comparison.
package check

import "math"

// Beats reports whether roll strictly exceeds target. A tie goes to the target.
func Beats(roll, target int) bool {
	return roll > target
}

// Margin calculates the margin of the roll over the target.
// Positive values indicate the roll won, zero or negative that it lost.
func Margin(roll, target int) int {
	return roll - target
}

// Result represents the outcome of an opposed comparison.
type Result struct {
	Success bool
	Margin  int
}

// Contest compares an attacking die against a defending die adjusted by bonus.
// Success means the attacker won the pair; the defender wins ties.
// The comparison holds for any bonus, including values near the int limits.
func Contest(attack, defense, bonus int) Result {
	diff := attack - defense
	return Result{
		Success: diff > bonus,
		Margin:  saturatingSub(diff, bonus),
	}
}

func saturatingSub(a, b int) int {
	r := a - b
	switch {
	case b > 0 && r > a:
		return math.MinInt
	case b < 0 && r < a:
		return math.MaxInt
	}
	return r
}
