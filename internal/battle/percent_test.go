package battle

import "testing"

func TestRollResultsAsPercentages(t *testing.T) {
	tests := []struct {
		attackDice  int
		defenseDice int
		schedule    BonusSchedule
		want        Percentages
	}{
		{1, 1, nil, Percentages{DefenderWin: "58.33", Tie: "0.00", AttackerWin: "41.67"}},
		{1, 2, nil, Percentages{DefenderWin: "74.54", Tie: "0.00", AttackerWin: "25.46"}},
		{2, 1, nil, Percentages{DefenderWin: "42.13", Tie: "0.00", AttackerWin: "57.87"}},
		{2, 2, nil, Percentages{DefenderWin: "44.83", Tie: "32.41", AttackerWin: "22.76"}},
		{3, 1, nil, Percentages{DefenderWin: "34.03", Tie: "0.00", AttackerWin: "65.97"}},
		{3, 2, nil, Percentages{DefenderWin: "29.26", Tie: "33.58", AttackerWin: "37.17"}},
		{2, 2, BonusSchedule{1}, Percentages{DefenderWin: "53.32", Tie: "32.02", AttackerWin: "14.66"}},
		{3, 2, BonusSchedule{1}, Percentages{DefenderWin: "35.24", Tie: "40.84", AttackerWin: "23.92"}},
		{3, 1, BonusSchedule{1}, Percentages{DefenderWin: "50.62", Tie: "0.00", AttackerWin: "49.38"}},
		{2, 2, BonusSchedule{1, 1}, Percentages{DefenderWin: "65.28", Tie: "24.69", AttackerWin: "10.03"}},
		{3, 2, BonusSchedule{1, 1}, Percentages{DefenderWin: "49.77", Tie: "31.33", AttackerWin: "18.90"}},
		{1, 1, BonusSchedule{-1}, Percentages{DefenderWin: "41.67", Tie: "0.00", AttackerWin: "58.33"}},
		{1, 2, BonusSchedule{-1}, Percentages{DefenderWin: "57.87", Tie: "0.00", AttackerWin: "42.13"}},
		{2, 1, BonusSchedule{-1}, Percentages{DefenderWin: "25.46", Tie: "0.00", AttackerWin: "74.54"}},
		{2, 2, BonusSchedule{-1}, Percentages{DefenderWin: "31.25", Tie: "37.50", AttackerWin: "31.25"}},
		{3, 1, BonusSchedule{-1}, Percentages{DefenderWin: "17.36", Tie: "0.00", AttackerWin: "82.64"}},
		{3, 2, BonusSchedule{-1}, Percentages{DefenderWin: "18.38", Tie: "30.57", AttackerWin: "51.05"}},
	}

	for _, tt := range tests {
		got, err := RollResultsAsPercentages(tt.attackDice, tt.defenseDice, tt.schedule)
		if err != nil {
			t.Fatalf("RollResultsAsPercentages(%d, %d, %v): %v", tt.attackDice, tt.defenseDice, tt.schedule, err)
		}
		if got != tt.want {
			t.Errorf("RollResultsAsPercentages(%d, %d, %v) = %+v, want %+v", tt.attackDice, tt.defenseDice, tt.schedule, got, tt.want)
		}
	}
}

func TestFormatPercentagesZeroTotal(t *testing.T) {
	got := FormatPercentages(Distribution{})
	want := Percentages{AttackerWin: "0", Tie: "0", DefenderWin: "0"}
	if got != want {
		t.Errorf("FormatPercentages(zero) = %+v, want %+v", got, want)
	}
}

func TestFormatExpectation(t *testing.T) {
	got := FormatExpectation(Expectation{WinProbability: 0.41666, ExpectedLoss: 0.58333})
	want := BattleReport{AttackerWinPercent: "41.67", AttackerAverageLoss: "0.58"}
	if got != want {
		t.Errorf("FormatExpectation = %+v, want %+v", got, want)
	}
}
