// Package blackjack is a small multi-seat blackjack table.
//
// A Game owns a shoe of one or more 52-card decks, a Dealer and any number
// of Players. Each Player delegates its choices to a Decider: a Bot plays a
// fixed Strategy and BettingStyle, a Human reads answers from an io.Reader.
//
// Rules:
//
//   - Blackjack (two cards totalling 21) pays 3:2, so the player receives
//     2.5× the stake, rounded down. Other wins return 2× the stake.
//   - The dealer draws below 17 and on soft 17.
//   - A dealer blackjack ends the round at once: players with blackjack push,
//     everyone else loses.
//   - Doubling doubles the stake, draws exactly one card and ends the turn.
//   - An empty shoe is rebuilt and reshuffled transparently.
//
// All randomness comes from the *rand.Rand given to the Game, so seeded games
// replay identically.
package blackjack
