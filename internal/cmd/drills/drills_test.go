package drills

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/blackjack"
	"github.com/katalvlaran/drills/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestRunUsage(t *testing.T) {
	_, stderr, err := run(t, "")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, stderr, "commands:")

	_, _, err = run(t, "", "poker")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestRunPrimes(t *testing.T) {
	out, _, err := run(t, "", "primes", "5")
	require.NoError(t, err)
	assert.Equal(t, "2 3 5 7 11\n", out)

	out, _, err = run(t, "", "primes", "--kth", "10")
	require.NoError(t, err)
	assert.Equal(t, "29\n", out)

	_, _, err = run(t, "", "primes", "-3")
	assert.Error(t, err)
}

func TestRunColors(t *testing.T) {
	out, _, err := run(t, "", "colors", "1", "52")
	require.NoError(t, err)
	assert.Equal(t, "1: (0, 0, 0, 0)\n52: (0, 0, 1, 0)\n", out)

	_, _, err = run(t, "", "colors", "red")
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestRunCartesian(t *testing.T) {
	out, _, err := run(t, "", "cartesian", "--workers", "2", "--closed-form", "1,2", "3,4")
	require.NoError(t, err)
	// (1+3)+(1+4)+(2+3)+(2+4)
	assert.Equal(t, "20\n20\n", out)

	_, _, err = run(t, "", "cartesian", "1,x")
	assert.ErrorIs(t, err, ErrBadArgument)

	_, _, err = run(t, "", "cartesian", "--workers", "0", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunTreap(t *testing.T) {
	out, _, err := run(t, "", "treap", "--seed", "3", "pear", "apple", "pear", "fig")
	require.NoError(t, err)
	assert.Equal(t, "apple 1\nfig 1\npear 2\n", out)
}

func TestRunPool(t *testing.T) {
	out, _, err := run(t, "", "pool", "--workers", "3", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "sum of first 10 primes: 129 (10/10 tasks ok)")
	assert.Contains(t, out, `drills_workerpool_tasks_total{outcome="ok",pool="primes"} 10`)
	assert.Contains(t, out, `drills_workerpool_queue_depth{pool="primes"} 0`)
}

func TestRunRouletteIsSeeded(t *testing.T) {
	a, _, err := run(t, "", "roulette", "--seed", "11", "--rounds", "5")
	require.NoError(t, err)
	b, _, err := run(t, "", "roulette", "--seed", "11", "--rounds", "5")
	require.NoError(t, err)

	// game IDs differ between runs
	strip := func(s string) string { return s[strings.Index(s, "\n")+1:] }
	assert.Equal(t, strip(a), strip(b))
	assert.Contains(t, a, "round 5:")
	assert.Contains(t, a, "finished after")
}

func TestRunBlackjack(t *testing.T) {
	out, _, err := run(t, "", "blackjack", "--seed", "4", "--rounds", "3", "--decks", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Round 1 ===")
	assert.Contains(t, out, "Carl (Bot)")
	assert.Contains(t, out, "Bob (Bot)")
}

func TestRunBlackjackHumanClosedInput(t *testing.T) {
	_, _, err := run(t, "", "blackjack", "--seed", "4", "--rounds", "3", "--human", "Ann")
	assert.ErrorIs(t, err, blackjack.ErrInputClosed)
}
