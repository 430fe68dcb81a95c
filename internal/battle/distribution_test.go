package battle

import (
	"errors"
	"math"
	"testing"
)

func TestRoundDistributionTotals(t *testing.T) {
	calc := NewCalculator()
	for attackDice := 1; attackDice <= MaxAttackDice; attackDice++ {
		for defenseDice := 1; defenseDice <= MaxDefenseDice; defenseDice++ {
			for _, schedule := range []BonusSchedule{nil, {1}, {1, 1}, {-1}} {
				got, err := calc.RoundDistribution(attackDice, defenseDice, schedule)
				if err != nil {
					t.Fatalf("RoundDistribution(%d, %d, %v): %v", attackDice, defenseDice, schedule, err)
				}
				want := pow6(attackDice + defenseDice)
				if got.Total() != want {
					t.Errorf("RoundDistribution(%d, %d, %v) total = %d, want %d", attackDice, defenseDice, schedule, got.Total(), want)
				}
				if minDice := min(attackDice, defenseDice); minDice == 1 && got.Tie != 0 {
					t.Errorf("RoundDistribution(%d, %d, %v) tie = %d, want 0 with a single pair", attackDice, defenseDice, schedule, got.Tie)
				}
			}
		}
	}
}

func TestRoundDistributionCounts(t *testing.T) {
	tests := []struct {
		name        string
		attackDice  int
		defenseDice int
		schedule    BonusSchedule
		want        Distribution
	}{
		{"one vs one", 1, 1, nil, Distribution{AttackerWin: 15, DefenderWin: 21}},
		{"two vs two", 2, 2, nil, Distribution{AttackerWin: 295, Tie: 420, DefenderWin: 581}},
		{"three vs two", 3, 2, nil, Distribution{AttackerWin: 2890, Tie: 2611, DefenderWin: 2275}},
		{"bunker two vs two", 2, 2, BonusSchedule{1}, Distribution{AttackerWin: 190, Tie: 415, DefenderWin: 691}},
		{"ammo shortage one vs one", 1, 1, BonusSchedule{-1}, Distribution{AttackerWin: 21, DefenderWin: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RollResults(tt.attackDice, tt.defenseDice, tt.schedule)
			if err != nil {
				t.Fatalf("RollResults: %v", err)
			}
			if got != tt.want {
				t.Errorf("RollResults(%d, %d, %v) = %+v, want %+v", tt.attackDice, tt.defenseDice, tt.schedule, got, tt.want)
			}
		})
	}
}

func TestRoundDistributionZeroDice(t *testing.T) {
	calc := NewCalculator()
	for _, pair := range [][2]int{{0, 0}, {0, 2}, {3, 0}} {
		got, err := calc.RoundDistribution(pair[0], pair[1], nil)
		if err != nil {
			t.Fatalf("RoundDistribution(%d, %d): %v", pair[0], pair[1], err)
		}
		if got != (Distribution{}) {
			t.Errorf("RoundDistribution(%d, %d) = %+v, want zero", pair[0], pair[1], got)
		}
	}
}

func TestRoundDistributionRejectsDiceCounts(t *testing.T) {
	calc := NewCalculator()
	for _, pair := range [][2]int{{4, 1}, {1, 3}, {-1, 1}, {1, -1}} {
		_, err := calc.RoundDistribution(pair[0], pair[1], nil)
		if !errors.Is(err, ErrInvalidDiceCount) {
			t.Errorf("RoundDistribution(%d, %d) error = %v, want ErrInvalidDiceCount", pair[0], pair[1], err)
		}
	}
}

func TestRoundDistributionMemoized(t *testing.T) {
	calc := NewCalculator()
	if _, err := calc.RoundDistribution(3, 2, []int{1}); err != nil {
		t.Fatalf("RoundDistribution: %v", err)
	}
	// Freshly built schedules with the same values share an entry.
	if _, err := calc.RoundDistribution(3, 2, []int{1, 0}); err != nil {
		t.Fatalf("RoundDistribution: %v", err)
	}

	stats := calc.Stats()
	if stats.DistributionsComputed != 1 {
		t.Errorf("DistributionsComputed = %d, want 1", stats.DistributionsComputed)
	}
	if stats.DistributionHits != 1 {
		t.Errorf("DistributionHits = %d, want 1", stats.DistributionHits)
	}
}

func TestRoundDistributionHugeBonus(t *testing.T) {
	calc := NewCalculator()
	tests := []struct {
		schedule BonusSchedule
		want     Distribution
	}{
		{BonusSchedule{math.MaxInt}, Distribution{DefenderWin: 36}},
		{BonusSchedule{math.MinInt}, Distribution{AttackerWin: 36}},
		{BonusSchedule{6}, Distribution{DefenderWin: 36}},
	}
	for _, tt := range tests {
		got, err := calc.RoundDistribution(1, 1, tt.schedule)
		if err != nil {
			t.Fatalf("RoundDistribution(1, 1, %v): %v", tt.schedule, err)
		}
		if got != tt.want {
			t.Errorf("RoundDistribution(1, 1, %v) = %+v, want %+v", tt.schedule, got, tt.want)
		}
	}
	// {math.MaxInt} and {6} are the same schedule.
	if stats := calc.Stats(); stats.DistributionsComputed != 2 || stats.DistributionHits != 1 {
		t.Errorf("stats = %+v, want 2 computed and 1 hit", stats)
	}
}

func pow6(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 6
	}
	return out
}
