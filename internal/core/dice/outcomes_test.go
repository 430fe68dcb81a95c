package dice

import (
	"errors"
	"reflect"
	"testing"
)

func TestOutcomes_CountAndRange(t *testing.T) {
	for count := 0; count <= 4; count++ {
		outcomes, err := Outcomes(count)
		if err != nil {
			t.Fatalf("Outcomes(%d) error = %v", count, err)
		}
		if want := OutcomeCount(count); len(outcomes) != want {
			t.Fatalf("Outcomes(%d) len = %d, want %d", count, len(outcomes), want)
		}

		seen := make(map[string]bool, len(outcomes))
		for _, outcome := range outcomes {
			if len(outcome) != count {
				t.Fatalf("Outcomes(%d) produced outcome of length %d", count, len(outcome))
			}
			for _, face := range outcome {
				if face < 1 || face > Faces {
					t.Fatalf("Outcomes(%d) produced face %d", count, face)
				}
			}
			key := string(intsToBytes(outcome))
			if seen[key] {
				t.Fatalf("Outcomes(%d) produced duplicate %v", count, outcome)
			}
			seen[key] = true
		}
	}
}

func TestOutcomes_ZeroDiceIsSingleEmptyOutcome(t *testing.T) {
	outcomes, err := Outcomes(0)
	if err != nil {
		t.Fatalf("Outcomes(0) error = %v", err)
	}
	if len(outcomes) != 1 || len(outcomes[0]) != 0 {
		t.Fatalf("Outcomes(0) = %v, want one empty outcome", outcomes)
	}
}

func TestOutcomes_Order(t *testing.T) {
	one, err := Outcomes(1)
	if err != nil {
		t.Fatalf("Outcomes(1) error = %v", err)
	}
	if want := [][]int{{6}, {5}, {4}, {3}, {2}, {1}}; !reflect.DeepEqual(one, want) {
		t.Fatalf("Outcomes(1) = %v, want %v", one, want)
	}

	two, err := Outcomes(2)
	if err != nil {
		t.Fatalf("Outcomes(2) error = %v", err)
	}
	checks := map[int][]int{
		0:  {6, 6},
		1:  {5, 6},
		5:  {1, 6},
		6:  {6, 5},
		35: {1, 1},
	}
	for index, want := range checks {
		if !reflect.DeepEqual(two[index], want) {
			t.Errorf("Outcomes(2)[%d] = %v, want %v", index, two[index], want)
		}
	}
}

func TestOutcomes_NegativeCount(t *testing.T) {
	if _, err := Outcomes(-1); !errors.Is(err, ErrInvalidDiceCount) {
		t.Fatalf("Outcomes(-1) error = %v, want %v", err, ErrInvalidDiceCount)
	}
	if got := OutcomeCount(-1); got != 0 {
		t.Fatalf("OutcomeCount(-1) = %d, want 0", got)
	}
}

func intsToBytes(values []int) []byte {
	out := make([]byte, len(values))
	for i, v := range values {
		out[i] = byte(v)
	}
	return out
}
