package blackjack

import "errors"

var (
	// ErrInvalidDecks is returned when a shoe would hold no decks.
	ErrInvalidDecks = errors.New("blackjack: number of decks must be positive")

	// ErrInvalidRounds is returned when the round limit is not positive.
	ErrInvalidRounds = errors.New("blackjack: max rounds must be positive")

	// ErrInvalidRank is returned by NewCard for an unknown rank.
	ErrInvalidRank = errors.New("blackjack: unknown card rank")

	// ErrInvalidChips is returned when a player would start with negative chips.
	ErrInvalidChips = errors.New("blackjack: chips must not be negative")

	// ErrNilDecider is returned when a player has no decision maker.
	ErrNilDecider = errors.New("blackjack: player needs a decider")

	// ErrInvalidBet is returned for a stake that is not positive or exceeds the player's chips.
	ErrInvalidBet = errors.New("blackjack: invalid bet amount")

	// ErrInsufficientChips is returned when a double down cannot be covered.
	ErrInsufficientChips = errors.New("blackjack: not enough chips")

	// ErrNoPlayers is returned by Start when nobody is seated.
	ErrNoPlayers = errors.New("blackjack: no players at the table")

	// ErrAlreadyStarted is returned by Start on a running game.
	ErrAlreadyStarted = errors.New("blackjack: game already started")

	// ErrNotStarted is returned by PlayRound before Start.
	ErrNotStarted = errors.New("blackjack: game not started")

	// ErrGameOver is returned by PlayRound once the game has finished.
	ErrGameOver = errors.New("blackjack: game over")

	// ErrRoundNotFound is returned by Report for a round that was never played.
	ErrRoundNotFound = errors.New("blackjack: no such round")

	// ErrInputClosed is returned by a Human whose input ends mid-decision.
	ErrInputClosed = errors.New("blackjack: input closed")
)
