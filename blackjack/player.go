package blackjack

import (
	"fmt"
	"math/rand/v2"
)

// Action is a playing decision.
type Action int

const (
	Stand Action = iota
	Hit
	Double
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Double:
		return "double"
	default:
		return "stand"
	}
}

// Decider makes the betting and playing choices for a Player.
type Decider interface {
	// Bet returns the stake for the coming round. Zero sits the round out.
	Bet(p *Player, rng *rand.Rand) (int, error)
	// Decide picks the next action given the dealer's face-up card.
	Decide(p *Player, up Card) (Action, error)
	// Kind names the decider for reports, e.g. "Bot" or "Human".
	Kind() string
}

// Player is a seat at the table with a chip stack.
type Player struct {
	name     string
	chips    int
	bet      int
	hand     Hand
	standing bool
	busted   bool
	decider  Decider
}

// NewPlayer seats name with chips, delegating decisions to d.
func NewPlayer(name string, chips int, d Decider) (*Player, error) {
	if d == nil {
		return nil, fmt.Errorf("NewPlayer(%q): %w", name, ErrNilDecider)
	}
	if chips < 0 {
		return nil, fmt.Errorf("NewPlayer(%q, %d): %w", name, chips, ErrInvalidChips)
	}

	return &Player{name: name, chips: chips, decider: d}, nil
}

// NewBot seats a bot playing s and betting in the given style.
func NewBot(name string, s Strategy, style BettingStyle, chips int) (*Player, error) {
	if s == nil {
		return nil, fmt.Errorf("NewBot(%q): %w", name, ErrNilDecider)
	}

	return NewPlayer(name, chips, &Bot{Strategy: s, Style: style})
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Chips returns the stack not currently on the table.
func (p *Player) Chips() int { return p.chips }

// Bet returns the stake for the current round, zero when sitting out.
func (p *Player) Bet() int { return p.bet }

// Hand returns the player's current hand.
func (p *Player) Hand() *Hand { return &p.hand }

// Busted reports whether the hand went over 21 this round.
func (p *Player) Busted() bool { return p.busted }

// Standing reports whether the player has finished acting this round.
func (p *Player) Standing() bool { return p.standing }

// Kind returns the decider's kind, "Bot" or "Human".
func (p *Player) Kind() string { return p.decider.Kind() }

// PlaceBet moves amount from the stack onto the table.
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 || amount > p.chips {
		return fmt.Errorf("PlaceBet(%d) with %d chips: %w", amount, p.chips, ErrInvalidBet)
	}
	p.bet = amount
	p.chips -= amount

	return nil
}

// DoubleDown matches the current stake from the stack.
func (p *Player) DoubleDown() error {
	if p.bet == 0 || p.chips < p.bet {
		return fmt.Errorf("DoubleDown(%d) with %d chips: %w", p.bet, p.chips, ErrInsufficientChips)
	}
	p.chips -= p.bet
	p.bet *= 2

	return nil
}

// Win returns twice the stake and clears it.
func (p *Player) Win() int {
	paid := 2 * p.bet
	p.chips += paid
	p.bet = 0

	return paid
}

// BlackjackWin returns 2.5× the stake, rounded down, and clears it.
func (p *Player) BlackjackWin() int {
	paid := p.bet * 5 / 2
	p.chips += paid
	p.bet = 0

	return paid
}

// Push returns the stake and clears it.
func (p *Player) Push() int {
	paid := p.bet
	p.chips += paid
	p.bet = 0

	return paid
}

// Lose forfeits the stake.
func (p *Player) Lose() int {
	p.bet = 0

	return 0
}

func (p *Player) resetRound() {
	p.hand.Reset()
	p.bet = 0
	p.standing = false
	p.busted = false
}

func (p *Player) inPlay() bool {
	return p.bet > 0 && !p.busted && !p.standing
}

// Dealer plays the house hand by fixed rules.
type Dealer struct {
	hand Hand
}

// Hand returns the dealer's hand.
func (d *Dealer) Hand() *Hand {
	return &d.hand
}

// ShouldHit reports whether house rules require another card.
func (d *Dealer) ShouldHit() bool {
	v := d.hand.Value()

	return v < 17 || (v == 17 && d.hand.Soft())
}

// UpCard returns the dealer's first, face-up card.
func (d *Dealer) UpCard() (Card, bool) {
	if d.hand.Len() == 0 {
		return Card{}, false
	}

	return d.hand.cards[0], true
}
