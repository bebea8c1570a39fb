package blackjack

import (
	"slices"
	"strings"
)

const (
	blackjackTotal = 21
	aceDemotion    = 10 // 11 → 1
)

// Hand is the cards held by one seat.
type Hand struct {
	cards    []Card
	value    int
	softAces int // aces still counted as 11
}

// Add puts c into the hand, demoting aces from 11 to 1 while the hand would bust.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
	h.value += c.Value
	if c.IsAce() {
		h.softAces++
	}
	for h.value > blackjackTotal && h.softAces > 0 {
		h.value -= aceDemotion
		h.softAces--
	}
}

// Value returns the best total not above 21 when one exists.
func (h *Hand) Value() int {
	return h.value
}

// Soft reports whether an ace is still counted as 11.
func (h *Hand) Soft() bool {
	return h.softAces > 0
}

// Len returns the number of cards.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in dealing order.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// IsBlackjack reports a two-card 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.value == blackjackTotal
}

// IsBusted reports a total above 21.
func (h *Hand) IsBusted() bool {
	return h.value > blackjackTotal
}

// Reset empties the hand.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.value = 0
	h.softAces = 0
}

// String lists the cards in the order dealt.
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}

	return strings.Join(parts, ", ")
}
