package roulette

import (
	"fmt"
	"math/rand/v2"
)

// Pockets is the number of pockets on a single-zero wheel.
const Pockets = 37

// Color is a pocket color.
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
	Green Color = "green"
)

// Half is the low/high split of the non-zero pockets.
type Half string

const (
	Low    Half = "1-18"
	High   Half = "19-36"
	NoHalf Half = "zero"
)

const halfSize = 18

var redPockets = [Pockets]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true, 16: true, 18: true,
	19: true, 21: true, 23: true, 25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Outcome describes the pocket the ball landed in.
type Outcome struct {
	Number int
	Color  Color
	Even   bool // false for zero
	Half   Half
}

// String formats the outcome as "7 (red)".
func (o Outcome) String() string {
	return fmt.Sprintf("%d (%s)", o.Number, o.Color)
}

// OutcomeOf returns the Outcome for pocket n.
func OutcomeOf(n int) (Outcome, error) {
	if n < 0 || n >= Pockets {
		return Outcome{}, fmt.Errorf("OutcomeOf(%d): %w", n, ErrInvalidNumber)
	}
	if n == 0 {
		return Outcome{Number: 0, Color: Green, Half: NoHalf}, nil
	}
	o := Outcome{Number: n, Color: Black, Even: n%2 == 0, Half: High}
	if redPockets[n] {
		o.Color = Red
	}
	if n <= halfSize {
		o.Half = Low
	}

	return o, nil
}

// Spinner produces the outcome of one spin.
type Spinner interface {
	Spin(rng *rand.Rand) Outcome
}

// Wheel is a fair single-zero wheel.
type Wheel struct{}

// Spin lands uniformly on one of the 37 pockets.
func (Wheel) Spin(rng *rand.Rand) Outcome {
	o, _ := OutcomeOf(rng.IntN(Pockets))

	return o
}
