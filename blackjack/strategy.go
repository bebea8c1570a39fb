package blackjack

import "slices"

// Strategy decides whether a bot draws another card.
type Strategy interface {
	ShouldHit(h *Hand, up Card) bool
	Name() string
}

// Conservative draws only below 13.
type Conservative struct{}

// ShouldHit draws below 13.
func (Conservative) ShouldHit(h *Hand, _ Card) bool { return h.Value() < 13 }

// Name returns "conservative".
func (Conservative) Name() string { return "conservative" }

// Aggressive draws below 17, on 17 against a dealer 7 or higher, and on 18.
type Aggressive struct{}

// ShouldHit applies the aggressive thresholds.
func (Aggressive) ShouldHit(h *Hand, up Card) bool {
	v := h.Value()
	if v < 17 {
		return true
	}
	if v == 17 && up.Value >= 7 {
		return true
	}

	return v < 19
}

// Name returns "aggressive".
func (Aggressive) Name() string { return "aggressive" }

// Basic follows a simplified basic-strategy table over soft and hard totals.
type Basic struct{}

// ShouldHit looks the hand up in the basic-strategy table.
func (Basic) ShouldHit(h *Hand, up Card) bool {
	v, d := h.Value(), up.Value
	if h.Soft() {
		switch {
		case v <= 17:
			return true
		case v == 18:
			return d >= 9 // 9, 10 or ace
		default:
			return false
		}
	}

	switch {
	case v <= 11:
		return true
	case v == 12:
		return !slices.Contains([]int{4, 5, 6}, d)
	case v <= 16:
		return d >= 7
	default:
		return false
	}
}

// Name returns "basic".
func (Basic) Name() string { return "basic" }
