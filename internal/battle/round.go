package battle

import (
	"sort"

	"github.com/louisbranch/riskodds/internal/core/check"
)

// ResolveRound compares one attacker outcome against one defender outcome.
//
// Both outcomes are sorted from highest to lowest (the inputs are left
// untouched) and paired by rank up to the shorter side. The defender die at
// rank i is adjusted by schedule.Bonus(i). Every pair costs its loser one
// unit, and the defender wins ties.
func ResolveRound(attack, defense []int, schedule BonusSchedule) RoundLosses {
	attackSorted := sortedDescending(attack)
	defenseSorted := sortedDescending(defense)

	pairs := min(len(attackSorted), len(defenseSorted))
	var losses RoundLosses
	for i := 0; i < pairs; i++ {
		if check.Contest(attackSorted[i], defenseSorted[i], schedule.Bonus(i)).Success {
			losses.Defender++
		} else {
			losses.Attacker++
		}
	}
	return losses
}

func sortedDescending(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
