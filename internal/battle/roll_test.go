package battle

import (
	"errors"
	"slices"
	"testing"
)

func TestRollRoundDeterministic(t *testing.T) {
	first, err := RollRound(42, 3, 2, nil)
	if err != nil {
		t.Fatalf("RollRound: %v", err)
	}
	second, err := RollRound(42, 3, 2, nil)
	if err != nil {
		t.Fatalf("RollRound: %v", err)
	}
	if !slices.Equal(first.Attack, second.Attack) || !slices.Equal(first.Defense, second.Defense) {
		t.Fatalf("same seed rolled %v/%v then %v/%v", first.Attack, first.Defense, second.Attack, second.Defense)
	}
	if len(first.Attack) != 3 || len(first.Defense) != 2 {
		t.Fatalf("dice lengths = %d/%d, want 3/2", len(first.Attack), len(first.Defense))
	}
	for _, v := range append(slices.Clone(first.Attack), first.Defense...) {
		if v < 1 || v > 6 {
			t.Fatalf("die value %d out of range", v)
		}
	}
	if want := ResolveRound(first.Attack, first.Defense, nil); first.Losses != want {
		t.Errorf("losses = %+v, want %+v", first.Losses, want)
	}
	if first.Bucket != first.Losses.Bucket() {
		t.Errorf("bucket = %v, want %v", first.Bucket, first.Losses.Bucket())
	}
	if first.Losses.Attacker+first.Losses.Defender != 2 {
		t.Errorf("losses = %+v, want two units lost", first.Losses)
	}
}

func TestRollRoundZeroDice(t *testing.T) {
	got, err := RollRound(7, 0, 2, nil)
	if err != nil {
		t.Fatalf("RollRound: %v", err)
	}
	if len(got.Attack) != 0 || len(got.Defense) != 2 {
		t.Errorf("dice lengths = %d/%d, want 0/2", len(got.Attack), len(got.Defense))
	}
	if got.Losses != (RoundLosses{}) || got.Bucket != BucketUnspecified {
		t.Errorf("round = %+v, want no losses and unspecified bucket", got)
	}
}

func TestRollRoundRejectsDiceCounts(t *testing.T) {
	if _, err := RollRound(1, 4, 2, nil); !errors.Is(err, ErrInvalidDiceCount) {
		t.Errorf("RollRound error = %v, want ErrInvalidDiceCount", err)
	}
}
