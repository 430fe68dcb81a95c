package battle

import (
	"fmt"
	"strconv"
)

// FormatPercentages renders each bucket as a two-decimal percentage of the
// distribution total. An empty distribution keeps its raw counts.
func FormatPercentages(d Distribution) Percentages {
	total := d.Total()
	if total == 0 {
		return Percentages{
			AttackerWin: strconv.Itoa(d.AttackerWin),
			Tie:         strconv.Itoa(d.Tie),
			DefenderWin: strconv.Itoa(d.DefenderWin),
		}
	}
	return Percentages{
		AttackerWin: percentOf(d.AttackerWin, total),
		Tie:         percentOf(d.Tie, total),
		DefenderWin: percentOf(d.DefenderWin, total),
	}
}

// FormatExpectation renders the win probability as a percentage and the
// expected loss in units, both with two decimals.
func FormatExpectation(e Expectation) BattleReport {
	return BattleReport{
		AttackerWinPercent:  fmt.Sprintf("%0.2f", e.WinProbability*100),
		AttackerAverageLoss: fmt.Sprintf("%0.2f", e.ExpectedLoss),
	}
}

func percentOf(count, total int) string {
	return fmt.Sprintf("%0.2f", 100*float64(count)/float64(total))
}
