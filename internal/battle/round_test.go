package battle

import (
	"slices"
	"testing"
)

func TestResolveRound(t *testing.T) {
	tests := []struct {
		name     string
		attack   []int
		defense  []int
		schedule BonusSchedule
		want     RoundLosses
	}{
		{"attacker sweeps", []int{6, 5, 1}, []int{4, 3}, nil, RoundLosses{Defender: 2}},
		{"ties go to defender", []int{5, 5}, []int{5, 5}, nil, RoundLosses{Attacker: 2}},
		{"split", []int{6, 2}, []int{5, 4}, nil, RoundLosses{Attacker: 1, Defender: 1}},
		{"unsorted input", []int{1, 6, 5}, []int{3, 4}, nil, RoundLosses{Defender: 2}},
		{"extra attacker dice ignored", []int{1, 1, 6}, []int{5}, nil, RoundLosses{Defender: 1}},
		{"extra defender dice ignored", []int{4}, []int{1, 6}, nil, RoundLosses{Attacker: 1}},
		{"bonus on highest die", []int{6, 6}, []int{5, 5}, BonusSchedule{1}, RoundLosses{Attacker: 1, Defender: 1}},
		{"bonus on both dice", []int{6, 6}, []int{5, 5}, BonusSchedule{1, 1}, RoundLosses{Attacker: 2}},
		{"penalty breaks tie", []int{3}, []int{3}, BonusSchedule{-1}, RoundLosses{Defender: 1}},
		{"empty attack", nil, []int{3}, nil, RoundLosses{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRound(tt.attack, tt.defense, tt.schedule); got != tt.want {
				t.Errorf("ResolveRound(%v, %v, %v) = %+v, want %+v", tt.attack, tt.defense, tt.schedule, got, tt.want)
			}
		})
	}
}

func TestResolveRoundDoesNotMutateInputs(t *testing.T) {
	attack := []int{1, 6, 3}
	defense := []int{2, 5}
	ResolveRound(attack, defense, BonusSchedule{1})

	if !slices.Equal(attack, []int{1, 6, 3}) {
		t.Errorf("attack mutated: %v", attack)
	}
	if !slices.Equal(defense, []int{2, 5}) {
		t.Errorf("defense mutated: %v", defense)
	}
}

func TestResolveRoundOrderIndependent(t *testing.T) {
	attack := []int{2, 6, 4}
	defense := []int{5, 3}
	want := ResolveRound(attack, defense, BonusSchedule{1})

	permutations := [][]int{{2, 4, 6}, {4, 2, 6}, {4, 6, 2}, {6, 2, 4}, {6, 4, 2}}
	for _, p := range permutations {
		for _, d := range [][]int{{5, 3}, {3, 5}} {
			if got := ResolveRound(p, d, BonusSchedule{1}); got != want {
				t.Errorf("ResolveRound(%v, %v) = %+v, want %+v", p, d, got, want)
			}
		}
	}
}

func TestRoundLossesBucket(t *testing.T) {
	tests := []struct {
		losses RoundLosses
		want   Bucket
	}{
		{RoundLosses{}, BucketTie},
		{RoundLosses{Attacker: 1, Defender: 1}, BucketTie},
		{RoundLosses{Attacker: 2}, BucketDefenderWin},
		{RoundLosses{Defender: 1}, BucketAttackerWin},
	}
	for _, tt := range tests {
		if got := tt.losses.Bucket(); got != tt.want {
			t.Errorf("%+v.Bucket() = %v, want %v", tt.losses, got, tt.want)
		}
	}
}
