package battle

import "github.com/louisbranch/riskodds/internal/core/dice"

// RoundDistribution enumerates every attacker and defender outcome for the
// given dice counts and counts the resulting round buckets.
//
// For non-zero dice counts the counts sum to 6^attackDice * 6^defenseDice.
// When either side rolls no dice nothing is compared and every bucket is zero.
func (c *Calculator) RoundDistribution(attackDice, defenseDice int, schedule BonusSchedule) (Distribution, error) {
	if err := validateDice(attackDice, defenseDice); err != nil {
		return Distribution{}, err
	}
	schedule = schedule.Normalize()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distributionLocked(attackDice, defenseDice, schedule)
}

// Percentages returns RoundDistribution formatted as two-decimal percentages.
func (c *Calculator) Percentages(attackDice, defenseDice int, schedule BonusSchedule) (Percentages, error) {
	distribution, err := c.RoundDistribution(attackDice, defenseDice, schedule)
	if err != nil {
		return Percentages{}, err
	}
	return FormatPercentages(distribution), nil
}

func validateDice(attackDice, defenseDice int) error {
	if attackDice < 0 || attackDice > MaxAttackDice || defenseDice < 0 || defenseDice > MaxDefenseDice {
		return ErrInvalidDiceCount
	}
	return nil
}

// distributionLocked requires c.mu to be held and schedule to be normalized.
func (c *Calculator) distributionLocked(attackDice, defenseDice int, schedule BonusSchedule) (Distribution, error) {
	if attackDice == 0 || defenseDice == 0 {
		return Distribution{}, nil
	}

	key := distributionKey{attackDice: attackDice, defenseDice: defenseDice, schedule: schedule.Key()}
	if cached, ok := c.distributions[key]; ok {
		c.stats.DistributionHits++
		return cached, nil
	}

	distribution, err := enumerateRound(attackDice, defenseDice, schedule)
	if err != nil {
		return Distribution{}, err
	}
	c.distributions[key] = distribution
	c.stats.DistributionsComputed++
	return distribution, nil
}

func enumerateRound(attackDice, defenseDice int, schedule BonusSchedule) (Distribution, error) {
	attackOutcomes, err := dice.Outcomes(attackDice)
	if err != nil {
		return Distribution{}, err
	}
	defenseOutcomes, err := dice.Outcomes(defenseDice)
	if err != nil {
		return Distribution{}, err
	}

	var distribution Distribution
	for _, attack := range attackOutcomes {
		for _, defense := range defenseOutcomes {
			distribution.add(ResolveRound(attack, defense, schedule).Bucket())
		}
	}
	return distribution, nil
}
