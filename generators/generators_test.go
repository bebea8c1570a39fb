package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/generators"
	"github.com/katalvlaran/drills/pipeline"
)

func TestPrimesPrefix(t *testing.T) {
	got := pipeline.Collect(pipeline.Take[int](10)(generators.Primes()))
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestKthPrime(t *testing.T) {
	cases := map[int]int{1: 2, 2: 3, 5: 11, 100: 541, 1000: 7919}
	for k, want := range cases {
		got, err := generators.KthPrime(k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d", k)
	}

	for _, k := range []int{0, -1} {
		_, err := generators.KthPrime(k)
		assert.ErrorIs(t, err, generators.ErrInvalidIndex)
	}
}

func TestColorsOrder(t *testing.T) {
	got := pipeline.Collect(pipeline.Take[generators.RGBA](3)(generators.Colors()))
	assert.Equal(t, []generators.RGBA{{A: 0}, {A: 2}, {A: 4}}, got)
}

func TestColorAtMatchesColors(t *testing.T) {
	i := 0
	for c := range generators.Colors() {
		i++
		at, err := generators.ColorAt(i)
		require.NoError(t, err)
		require.Equal(t, c, at, "index %d", i)
		if i == 5000 {
			break
		}
	}
}

func TestColorAt(t *testing.T) {
	c, err := generators.ColorAt(52)
	require.NoError(t, err)
	assert.Equal(t, generators.RGBA{R: 0, G: 0, B: 1, A: 0}, c)

	c, err = generators.ColorAt(51)
	require.NoError(t, err)
	assert.Equal(t, generators.RGBA{R: 0, G: 0, B: 0, A: 100}, c)

	last, err := generators.ColorAt(generators.TotalColors)
	require.NoError(t, err)
	assert.Equal(t, generators.RGBA{R: 255, G: 255, B: 255, A: 100}, last)
	assert.Equal(t, "(255, 255, 255, 100)", last.String())

	for _, i := range []int{0, -5, generators.TotalColors + 1} {
		_, err = generators.ColorAt(i)
		assert.ErrorIs(t, err, generators.ErrInvalidIndex, "i=%d", i)
	}
}
