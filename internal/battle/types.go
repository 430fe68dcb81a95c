package battle

import (
	"errors"
	"strconv"
	"strings"

	"github.com/louisbranch/riskodds/internal/core/dice"
)

const (
	// MaxAttackDice is the most dice an attacker rolls in one round.
	MaxAttackDice = 3
	// MaxDefenseDice is the most dice a defender rolls in one round.
	MaxDefenseDice = 2
	// DefaultMaxUnits caps the unit counts a Calculator accepts.
	DefaultMaxUnits = 1000
)

// ErrInvalidDiceCount indicates a dice count outside the per-side limits.
var ErrInvalidDiceCount = errors.New("attack dice must be between 0 and 3 and defense dice between 0 and 2")

// ErrInvalidUnitCount indicates a negative attacker or defender count.
var ErrInvalidUnitCount = errors.New("unit counts must be non-negative")

// ErrUnitCountTooLarge indicates a unit count above the calculator limit.
var ErrUnitCountTooLarge = errors.New("unit count exceeds the calculator limit")

// ErrUnknownPreset indicates a rule preset name that is not registered.
var ErrUnknownPreset = errors.New("unknown rule preset")

// ErrPresetWithBonus indicates a request named both a preset and an explicit bonus schedule.
var ErrPresetWithBonus = errors.New("preset and defender bonus are mutually exclusive")

// Bucket classifies a round by which side lost more units.
type Bucket int

const (
	BucketUnspecified Bucket = iota
	BucketAttackerWin
	BucketTie
	BucketDefenderWin
)

// String returns the wire name of the bucket.
func (b Bucket) String() string {
	switch b {
	case BucketAttackerWin:
		return "atk_win"
	case BucketTie:
		return "tie"
	case BucketDefenderWin:
		return "def_win"
	default:
		return "unspecified"
	}
}

// BonusSchedule holds the bonus added to each defender die, by rank.
// Index 0 applies to the highest defender die. Dice past the end get no bonus.
type BonusSchedule []int

// Bonus returns the bonus for the defender die at rank i.
func (s BonusSchedule) Bonus(i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// Normalize returns the canonical copy of the schedule. Ranks past
// MaxDefenseDice are dropped, each bonus is clamped to [-dice.Faces,
// dice.Faces] and trailing zeros are removed. A bonus of at least dice.Faces
// already decides every pair for the defender, and one of at most
// -dice.Faces decides every pair for the attacker.
func (s BonusSchedule) Normalize() BonusSchedule {
	end := min(len(s), MaxDefenseDice)
	out := make(BonusSchedule, end)
	for i := range out {
		out[i] = max(-dice.Faces, min(dice.Faces, s[i]))
	}
	for end > 0 && out[end-1] == 0 {
		end--
	}
	if end == 0 {
		return nil
	}
	return out[:end:end]
}

// Key returns the canonical cache key for the schedule, e.g. "1,1".
// Schedules with the same Normalize form share a key.
func (s BonusSchedule) Key() string {
	normalized := s.Normalize()
	parts := make([]string, len(normalized))
	for i, bonus := range normalized {
		parts[i] = strconv.Itoa(bonus)
	}
	return strings.Join(parts, ",")
}

// RoundLosses counts the units each side lost in one round.
type RoundLosses struct {
	Attacker int
	Defender int
}

// Bucket classifies the losses.
func (l RoundLosses) Bucket() Bucket {
	switch {
	case l.Attacker == l.Defender:
		return BucketTie
	case l.Attacker > l.Defender:
		return BucketDefenderWin
	default:
		return BucketAttackerWin
	}
}

// Distribution counts enumerated outcome pairs per round bucket.
type Distribution struct {
	AttackerWin int `json:"atk_win"`
	Tie         int `json:"tie"`
	DefenderWin int `json:"def_win"`
}

// Total returns the number of outcome pairs counted.
func (d Distribution) Total() int {
	return d.AttackerWin + d.Tie + d.DefenderWin
}

// Count returns the count for a bucket.
func (d Distribution) Count(bucket Bucket) int {
	switch bucket {
	case BucketAttackerWin:
		return d.AttackerWin
	case BucketTie:
		return d.Tie
	case BucketDefenderWin:
		return d.DefenderWin
	default:
		return 0
	}
}

func (d *Distribution) add(bucket Bucket) {
	switch bucket {
	case BucketAttackerWin:
		d.AttackerWin++
	case BucketTie:
		d.Tie++
	case BucketDefenderWin:
		d.DefenderWin++
	}
}

// Percentages is the human-readable view of a Distribution.
type Percentages struct {
	AttackerWin string `json:"atk_win"`
	Tie         string `json:"tie"`
	DefenderWin string `json:"def_win"`
}

// Expectation is the exact outcome of a whole battle.
type Expectation struct {
	// WinProbability is the chance the attacker eliminates the defender, in [0,1].
	WinProbability float64
	// ExpectedLoss is the expected number of attacker units lost.
	ExpectedLoss float64
}

// BattleReport is the human-readable view of an Expectation.
type BattleReport struct {
	AttackerWinPercent  string `json:"atk_win_perc"`
	AttackerAverageLoss string `json:"atk_avg_loss"`
}
