// Package roulette simulates a single-zero (European) roulette table played
// by strategy-driven players.
//
// Each round every solvent player asks its Strategy for one Bet, the stake
// leaves the balance, the wheel spins and Payout returns winnings to the
// balance. Payout counts the full amount handed back:
//
//	number         stake × 35
//	color, parity  stake × 2
//	dozen, column  stake × 3
//	half           stake × 2
//
// Zero is green, neither even nor odd and in no half, dozen or column.
package roulette
