package battle

import "sync"

// Stats reports cache activity for a Calculator.
type Stats struct {
	// DistributionsComputed counts round distributions enumerated from scratch.
	DistributionsComputed int
	// DistributionHits counts round distributions served from the cache.
	DistributionHits int
	// ExpectationCells counts battle states computed from scratch.
	ExpectationCells int
	// ExpectationHits counts battle queries answered from an existing table.
	ExpectationHits int
}

type distributionKey struct {
	attackDice  int
	defenseDice int
	schedule    string
}

// expectationTable holds battle outcomes for one normalized bonus schedule,
// indexed [attackers][defenders]. mu guards every field.
type expectationTable struct {
	mu       sync.Mutex
	schedule BonusSchedule
	cells    [][]Expectation
	width    int
	rounds   [MaxAttackDice + 1][MaxDefenseDice + 1]*Distribution
}

// Calculator computes round distributions and battle expectations with
// process-lifetime caches. It is safe for concurrent use.
//
// mu guards the distribution cache, the table index and stats. Each table
// has its own lock so growing one schedule never blocks another schedule or
// round distribution queries. Locks are taken table first, calculator second.
type Calculator struct {
	maxUnits int

	mu            sync.Mutex
	distributions map[distributionKey]Distribution
	tables        map[string]*expectationTable
	stats         Stats
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithMaxUnits caps the attacker and defender counts accepted by Battle.
// Non-positive values keep the default.
func WithMaxUnits(maxUnits int) Option {
	return func(c *Calculator) {
		if maxUnits > 0 {
			c.maxUnits = maxUnits
		}
	}
}

// NewCalculator creates a Calculator with empty caches.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		maxUnits:      DefaultMaxUnits,
		distributions: make(map[distributionKey]Distribution),
		tables:        make(map[string]*expectationTable),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxUnits returns the largest unit count the calculator accepts.
func (c *Calculator) MaxUnits() int {
	return c.maxUnits
}

// Stats returns a snapshot of cache activity.
func (c *Calculator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

var defaultCalculator = NewCalculator()

// RollResults returns the exact round distribution using the shared calculator.
func RollResults(attackDice, defenseDice int, schedule BonusSchedule) (Distribution, error) {
	return defaultCalculator.RoundDistribution(attackDice, defenseDice, schedule)
}

// RollResultsAsPercentages returns the round distribution as percentages using the shared calculator.
func RollResultsAsPercentages(attackDice, defenseDice int, schedule BonusSchedule) (Percentages, error) {
	return defaultCalculator.Percentages(attackDice, defenseDice, schedule)
}

// Battle returns the exact battle expectation using the shared calculator.
func Battle(attackers, defenders int, schedule BonusSchedule) (Expectation, error) {
	return defaultCalculator.Battle(attackers, defenders, schedule)
}

// Run returns the formatted battle expectation using the shared calculator.
func Run(attackers, defenders int, schedule BonusSchedule) (BattleReport, error) {
	return defaultCalculator.Run(attackers, defenders, schedule)
}
