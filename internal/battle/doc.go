// Package battle computes exact odds for Risk-style dice combat.
//
// An attacker rolls up to three six-sided dice and a defender up to two. Both
// sides sort their dice from highest to lowest and compare them pair by pair;
// the defender may add a positional bonus (or penalty) to each of its dice.
//
// # Core Mechanics
//
//   - Pairs are compared up to the shorter side; extra dice are ignored.
//   - The attacker wins a pair only when its die strictly beats the
//     defender's die plus bonus. Ties go to the defender.
//   - Each lost pair costs the loser one unit.
//
// # Round Buckets
//
// A round (every die of both sides rolled once) is classified by the units
// each side lost:
//   - atk_win: the defender lost more units.
//   - tie: both sides lost the same number of units.
//   - def_win: the attacker lost more units.
//
// # Battles
//
// A battle repeats rounds until one side has no units left. The attacker rolls
// min(3, attackers) dice and the defender min(2, defenders). Expectation
// reports the probability the attacker eliminates the defender and the
// expected number of attacker units lost on the way.
//
// # Exactness
//
// Every figure is derived by enumerating all dice outcomes; nothing is
// sampled. RollRound is the only random helper and exists to replay a single
// round from a seed.
//
// # Caching
//
// A Calculator memoizes round distributions per (dice, dice, schedule) and
// keeps one battle table per bonus schedule. Caches only grow and live as long
// as the Calculator.
package battle
