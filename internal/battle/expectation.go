package battle

import "context"

// Battle returns the exact probability that the attacker eliminates the
// defender together with the expected number of attacker units lost.
//
// Results come from a per-schedule table filled bottom-up in row-major order.
// Each (attackers, defenders) cell is computed once for the life of the
// calculator and later queries inside the filled area are table lookups.
func (c *Calculator) Battle(attackers, defenders int, schedule BonusSchedule) (Expectation, error) {
	return c.BattleContext(context.Background(), attackers, defenders, schedule)
}

// BattleContext is Battle with cancellation. Growth stops between table rows
// once ctx is done and returns ctx.Err(); rows already filled are kept.
func (c *Calculator) BattleContext(ctx context.Context, attackers, defenders int, schedule BonusSchedule) (Expectation, error) {
	if attackers < 0 || defenders < 0 {
		return Expectation{}, ErrInvalidUnitCount
	}
	if attackers > c.maxUnits || defenders > c.maxUnits {
		return Expectation{}, ErrUnitCountTooLarge
	}
	if attackers == 0 {
		return Expectation{}, nil
	}
	if defenders == 0 {
		return Expectation{WinProbability: 1}, nil
	}

	table := c.table(schedule.Normalize())
	table.mu.Lock()
	defer table.mu.Unlock()

	if table.has(attackers, defenders) {
		c.mu.Lock()
		c.stats.ExpectationHits++
		c.mu.Unlock()
		return table.cells[attackers][defenders], nil
	}

	cells, err := c.grow(ctx, table, attackers, defenders)
	c.mu.Lock()
	c.stats.ExpectationCells += cells
	c.mu.Unlock()
	if err != nil {
		return Expectation{}, err
	}
	return table.cells[attackers][defenders], nil
}

// Run returns Battle formatted for display.
func (c *Calculator) Run(attackers, defenders int, schedule BonusSchedule) (BattleReport, error) {
	expectation, err := c.Battle(attackers, defenders, schedule)
	if err != nil {
		return BattleReport{}, err
	}
	return FormatExpectation(expectation), nil
}

// table returns the table for a normalized schedule, creating it on first use.
func (c *Calculator) table(schedule BonusSchedule) *expectationTable {
	key := schedule.Key()
	c.mu.Lock()
	defer c.mu.Unlock()
	table, ok := c.tables[key]
	if !ok {
		table = &expectationTable{schedule: schedule}
		c.tables[key] = table
	}
	return table
}

func (t *expectationTable) has(attackers, defenders int) bool {
	return attackers < len(t.cells) && defenders < len(t.cells[attackers])
}

// lookup resolves terminal states before reading the table.
func (t *expectationTable) lookup(attackers, defenders int) Expectation {
	if attackers <= 0 {
		return Expectation{}
	}
	if defenders <= 0 {
		return Expectation{WinProbability: 1}
	}
	return t.cells[attackers][defenders]
}

// grow extends the table to cover (attackers, defenders) and reports how
// many cells it computed. Every dependency of a cell sits in an earlier row
// or an earlier column of the same row, so row-major order sees them
// already filled. ctx is checked between rows; a stopped growth leaves
// only fully computed cells in the table. Requires t.mu to be held.
func (c *Calculator) grow(ctx context.Context, t *expectationTable, attackers, defenders int) (int, error) {
	width := max(t.width, defenders+1)
	rows := max(len(t.cells), attackers+1)
	if len(t.cells) == 0 {
		t.cells = append(t.cells, nil)
	}
	computed := 0
	for a := 1; a < rows; a++ {
		if a < len(t.cells) && len(t.cells[a]) >= width {
			continue
		}
		if err := ctx.Err(); err != nil {
			return computed, err
		}
		if a == len(t.cells) {
			t.cells = append(t.cells, nil)
		}
		row := t.cells[a]
		for d := len(row); d < width; d++ {
			if d == 0 {
				row = append(row, Expectation{WinProbability: 1})
				continue
			}
			t.cells[a] = row
			cell, err := c.cell(t, a, d)
			if err != nil {
				return computed, err
			}
			row = append(row, cell)
			computed++
		}
		t.cells[a] = row
	}
	t.width = width
	return computed, nil
}

// round returns the distribution for a dice pair, loading it from the
// calculator cache once per table. Requires t.mu to be held.
func (c *Calculator) round(t *expectationTable, attackDice, defenseDice int) (Distribution, error) {
	if cached := t.rounds[attackDice][defenseDice]; cached != nil {
		return *cached, nil
	}
	c.mu.Lock()
	distribution, err := c.distributionLocked(attackDice, defenseDice, t.schedule)
	c.mu.Unlock()
	if err != nil {
		return Distribution{}, err
	}
	t.rounds[attackDice][defenseDice] = &distribution
	return distribution, nil
}

type branch struct {
	count     int
	attackers int
	defenders int
	lost      int
}

func (c *Calculator) cell(t *expectationTable, attackers, defenders int) (Expectation, error) {
	distribution, err := c.round(t, min(MaxAttackDice, attackers), min(MaxDefenseDice, defenders))
	if err != nil {
		return Expectation{}, err
	}
	total := distribution.Total()
	if total == 0 {
		return Expectation{}, nil
	}

	defenderWinLoss := min(defenders, MaxDefenseDice)
	branches := [...]branch{
		{count: distribution.DefenderWin, attackers: attackers - defenderWinLoss, defenders: defenders, lost: defenderWinLoss},
		{count: distribution.Tie, attackers: attackers - 1, defenders: defenders - 1, lost: 1},
		{count: distribution.AttackerWin, attackers: attackers, defenders: defenders - min(attackers, MaxAttackDice)},
	}

	var result Expectation
	for _, b := range branches {
		p := float64(b.count) / float64(total)
		next := t.lookup(b.attackers, b.defenders)
		result.WinProbability += p * next.WinProbability
		result.ExpectedLoss += p * (next.ExpectedLoss + float64(b.lost))
	}
	return result, nil
}
