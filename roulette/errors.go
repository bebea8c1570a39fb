package roulette

import "errors"

var (
	// ErrInvalidBet is returned for an unknown bet kind, a value outside the
	// kind's range, or a non-positive stake.
	ErrInvalidBet = errors.New("roulette: invalid bet")

	// ErrInvalidNumber is returned for pockets outside 0..36.
	ErrInvalidNumber = errors.New("roulette: number must be 0-36")

	// ErrUnderage is returned when a player is younger than 18.
	ErrUnderage = errors.New("roulette: player must be at least 18 years old")

	// ErrInvalidBalance is returned for a negative starting balance.
	ErrInvalidBalance = errors.New("roulette: balance must not be negative")

	// ErrNilStrategy is returned when a player has no strategy.
	ErrNilStrategy = errors.New("roulette: player needs a strategy")

	// ErrNoPlayers is returned by NewGame without players.
	ErrNoPlayers = errors.New("roulette: no players at the table")

	// ErrInvalidRounds is returned when the round limit is not positive.
	ErrInvalidRounds = errors.New("roulette: max rounds must be positive")

	// ErrGameOver is returned by PlayRound once the game has finished.
	ErrGameOver = errors.New("roulette: game over")
)
