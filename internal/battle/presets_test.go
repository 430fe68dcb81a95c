package battle

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name string
		want BonusSchedule
	}{
		{"classic", nil},
		{"bunker", BonusSchedule{1}},
		{" Fortification ", BonusSchedule{1, 1}},
		{"AMMO_SHORTAGE", BonusSchedule{-1}},
	}
	for _, tt := range tests {
		preset, err := PresetByName(tt.name)
		if err != nil {
			t.Fatalf("PresetByName(%q): %v", tt.name, err)
		}
		if !slices.Equal(preset.Schedule, tt.want) {
			t.Errorf("PresetByName(%q) schedule = %v, want %v", tt.name, preset.Schedule, tt.want)
		}
		if preset.Description == "" {
			t.Errorf("PresetByName(%q) has no description", tt.name)
		}
	}

	if _, err := PresetByName("siege"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("PresetByName(siege) error = %v, want ErrUnknownPreset", err)
	}
}

func TestResolveSchedule(t *testing.T) {
	got, err := ResolveSchedule("", []int{1, 0, 0})
	if err != nil {
		t.Fatalf("ResolveSchedule: %v", err)
	}
	if !slices.Equal(got, BonusSchedule{1}) {
		t.Errorf("ResolveSchedule bonus = %v, want [1]", got)
	}

	got, err = ResolveSchedule("fortification", nil)
	if err != nil {
		t.Fatalf("ResolveSchedule: %v", err)
	}
	if got.Key() != "1,1" {
		t.Errorf("ResolveSchedule preset key = %q, want 1,1", got.Key())
	}

	if _, err := ResolveSchedule("bunker", []int{1}); !errors.Is(err, ErrPresetWithBonus) {
		t.Errorf("ResolveSchedule both error = %v, want ErrPresetWithBonus", err)
	}
	if _, err := ResolveSchedule("nope", nil); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ResolveSchedule unknown error = %v, want ErrUnknownPreset", err)
	}
}

func TestBonusScheduleKey(t *testing.T) {
	tests := []struct {
		schedule BonusSchedule
		want     string
	}{
		{nil, ""},
		{BonusSchedule{0, 0}, ""},
		{BonusSchedule{1}, "1"},
		{BonusSchedule{1, 0}, "1"},
		{BonusSchedule{0, 1}, "0,1"},
		{BonusSchedule{-1, 2}, "-1,2"},
		{BonusSchedule{1, 1, 7}, "1,1"},
		{BonusSchedule{0, 0, 5}, ""},
		{BonusSchedule{7}, "6"},
		{BonusSchedule{-9, 0}, "-6"},
		{BonusSchedule{math.MaxInt, math.MinInt}, "6,-6"},
	}
	for _, tt := range tests {
		if got := tt.schedule.Key(); got != tt.want {
			t.Errorf("%v.Key() = %q, want %q", tt.schedule, got, tt.want)
		}
	}
}

func TestRules(t *testing.T) {
	rules := Rules()
	if rules.MaxAttackDice != 3 || rules.MaxDefenseDice != 2 {
		t.Errorf("Rules dice caps = %d/%d, want 3/2", rules.MaxAttackDice, rules.MaxDefenseDice)
	}
	names := make([]string, len(rules.Buckets))
	for i, b := range rules.Buckets {
		names[i] = b.String()
	}
	if !slices.Equal(names, []string{"atk_win", "tie", "def_win"}) {
		t.Errorf("Rules buckets = %v", names)
	}
}
