package blackjack

import "math/rand/v2"

// BettingStyle sizes a bot's stake as a share of its stack.
type BettingStyle int

const (
	StyleStandard     BettingStyle = iota // 10-20%
	StyleConservative                     // 5-10%
	StyleAggressive                       // 15-25%
)

// String names the style.
func (s BettingStyle) String() string {
	switch s {
	case StyleConservative:
		return "conservative"
	case StyleAggressive:
		return "aggressive"
	default:
		return "standard"
	}
}

// Range returns the inclusive stake bounds for a stack of chips, before
// capping at the stack itself.
func (s BettingStyle) Range(chips int) (lo, hi int) {
	switch s {
	case StyleConservative:
		return max(10, chips/20), max(20, chips/10)
	case StyleAggressive:
		return max(20, chips/7), max(50, chips/4)
	default:
		return max(15, chips/10), max(30, chips/5)
	}
}

// Bot decides with a Strategy and bets with a BettingStyle.
type Bot struct {
	Strategy Strategy
	Style    BettingStyle
}

// Bet draws a stake uniformly from the style's range, capped at the stack.
func (b *Bot) Bet(p *Player, rng *rand.Rand) (int, error) {
	if p.Chips() <= 0 {
		return 0, nil
	}
	lo, hi := b.Style.Range(p.Chips())

	return min(lo+rng.IntN(hi-lo+1), p.Chips()), nil
}

// Decide hits while the strategy says so.
func (b *Bot) Decide(p *Player, up Card) (Action, error) {
	if b.Strategy.ShouldHit(p.Hand(), up) {
		return Hit, nil
	}

	return Stand, nil
}

// Kind returns "Bot".
func (b *Bot) Kind() string { return "Bot" }
