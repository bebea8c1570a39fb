package roulette

import (
	"math/rand/v2"
	"strconv"
)

// Strategy chooses a player's bet for the coming spin.
type Strategy interface {
	NextBet(p *Player, rng *rand.Rand) (Bet, error)
	Name() string
}

// Observer is implemented by strategies that adapt to the previous result.
type Observer interface {
	Observe(won bool)
}

func tenth(balance int) int {
	return max(1, balance/10)
}

// Conservative alternates red and black, starting with red, staking 10% of
// the balance.
type Conservative struct {
	last Color
}

// NextBet stakes a tenth of the balance on the other color.
func (s *Conservative) NextBet(p *Player, _ *rand.Rand) (Bet, error) {
	if s.last == Red {
		s.last = Black
	} else {
		s.last = Red
	}

	return NewBet(KindColor, string(s.last), tenth(p.Balance()))
}

// Name returns "conservative".
func (s *Conservative) Name() string { return "conservative" }

// Risk stakes 10% of the balance on a random number.
type Risk struct{}

// NextBet stakes a tenth of the balance on a random pocket.
func (Risk) NextBet(p *Player, rng *rand.Rand) (Bet, error) {
	return NewBet(KindNumber, strconv.Itoa(rng.IntN(Pockets)), tenth(p.Balance()))
}

// Name returns "risk".
func (Risk) Name() string { return "risk" }

// MegaRisk stakes half the balance on zero.
type MegaRisk struct{}

// NextBet stakes half the balance on zero.
func (MegaRisk) NextBet(p *Player, _ *rand.Rand) (Bet, error) {
	return NewBet(KindNumber, "0", max(1, p.Balance()/2))
}

// Name returns "mega-risk".
func (MegaRisk) Name() string { return "mega-risk" }

// Martingale alternates colors starting with black, doubling the stake
// after every loss and returning to one chip after a win.
type Martingale struct {
	stake   int
	last    Color
	lostOne bool
}

// NextBet doubles the stake after a loss and switches color.
func (s *Martingale) NextBet(p *Player, _ *rand.Rand) (Bet, error) {
	if s.lostOne && s.stake > 0 {
		s.stake *= 2
	} else {
		s.stake = 1
	}
	if s.last == Black {
		s.last = Red
	} else {
		s.last = Black
	}

	return NewBet(KindColor, string(s.last), max(1, min(s.stake, p.Balance())))
}

// Observe records the last spin's result.
func (s *Martingale) Observe(won bool) {
	s.lostOne = !won
}

// Name returns "martingale".
func (s *Martingale) Name() string { return "martingale" }
