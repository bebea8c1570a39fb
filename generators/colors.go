package generators

import (
	"fmt"
	"iter"
)

const (
	channelLevels = 256
	alphaMax      = 100
	alphaStep     = 2
	alphaLevels   = alphaMax/alphaStep + 1

	// TotalColors is the number of values Colors yields.
	TotalColors = channelLevels * channelLevels * channelLevels * alphaLevels
)

// RGBA is a color with 8-bit channels and an alpha percentage.
type RGBA struct {
	R, G, B uint8
	A       uint8 // 0..100, even values only
}

func (c RGBA) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Colors yields every RGBA with R, G, B in 0..255 and A in 0..100 step 2,
// alpha varying fastest and red slowest.
func Colors() iter.Seq[RGBA] {
	return func(yield func(RGBA) bool) {
		for r := 0; r < channelLevels; r++ {
			for g := 0; g < channelLevels; g++ {
				for b := 0; b < channelLevels; b++ {
					for a := 0; a <= alphaMax; a += alphaStep {
						if !yield(RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}) {
							return
						}
					}
				}
			}
		}
	}
}

// ColorAt returns the i-th value of Colors, counting from 1, in O(1).
func ColorAt(i int) (RGBA, error) {
	if i < 1 || i > TotalColors {
		return RGBA{}, fmt.Errorf("ColorAt(%d): %w", i, ErrInvalidIndex)
	}
	idx := i - 1
	a := idx % alphaLevels
	idx /= alphaLevels
	b := idx % channelLevels
	idx /= channelLevels
	g := idx % channelLevels
	r := idx / channelLevels

	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a * alphaStep)}, nil
}
