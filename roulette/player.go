package roulette

import "fmt"

// MinAge is the youngest age allowed at the table.
const MinAge = 18

// Player is a gambler with a balance and a betting strategy.
type Player struct {
	name     string
	age      int
	balance  int
	strategy Strategy
}

// NewPlayer seats a player.
func NewPlayer(name string, balance, age int, s Strategy) (*Player, error) {
	switch {
	case age < MinAge:
		return nil, fmt.Errorf("NewPlayer(%q, age %d): %w", name, age, ErrUnderage)
	case balance < 0:
		return nil, fmt.Errorf("NewPlayer(%q, balance %d): %w", name, balance, ErrInvalidBalance)
	case s == nil:
		return nil, fmt.Errorf("NewPlayer(%q): %w", name, ErrNilStrategy)
	}

	return &Player{name: name, age: age, balance: balance, strategy: s}, nil
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Age returns the player's age in years.
func (p *Player) Age() int { return p.age }

// Balance returns the chips the player holds.
func (p *Player) Balance() int { return p.balance }

// Strategy returns the betting strategy the player follows.
func (p *Player) Strategy() Strategy { return p.strategy }

// Bankrupt reports an empty balance.
func (p *Player) Bankrupt() bool {
	return p.balance <= 0
}
