package roulette_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/roulette"
)

// rigged lands on the given pockets in turn, repeating the last one.
type rigged struct {
	pockets []int
	i       int
}

func (r *rigged) Spin(*rand.Rand) roulette.Outcome {
	n := r.pockets[min(r.i, len(r.pockets)-1)]
	r.i++
	o, _ := roulette.OutcomeOf(n)

	return o
}

func mustPlayer(t *testing.T, name string, balance int, s roulette.Strategy) *roulette.Player {
	t.Helper()
	p, err := roulette.NewPlayer(name, balance, 30, s)
	require.NoError(t, err)

	return p
}

func TestNewPlayerValidation(t *testing.T) {
	_, err := roulette.NewPlayer("kid", 100, 17, roulette.Risk{})
	assert.ErrorIs(t, err, roulette.ErrUnderage)
	_, err = roulette.NewPlayer("debt", -1, 40, roulette.Risk{})
	assert.ErrorIs(t, err, roulette.ErrInvalidBalance)
	_, err = roulette.NewPlayer("none", 1, 40, nil)
	assert.ErrorIs(t, err, roulette.ErrNilStrategy)

	p, err := roulette.NewPlayer("adult", 100, 18, roulette.Risk{})
	require.NoError(t, err)
	assert.Equal(t, 18, p.Age())
	assert.Equal(t, "risk", p.Strategy().Name())
}

func TestConservativeRound(t *testing.T) {
	p := mustPlayer(t, "careful", 1000, &roulette.Conservative{})
	g, err := roulette.NewGame([]*roulette.Player{p}, roulette.WithSpinner(&rigged{pockets: []int{1, 1}}))
	require.NoError(t, err)

	rep, err := g.PlayRound()
	require.NoError(t, err)
	require.Len(t, rep.Bets, 1)
	assert.Equal(t, roulette.Bet{Kind: roulette.KindColor, Value: "red", Amount: 100}, rep.Bets[0].Bet)
	assert.Equal(t, 200, rep.Bets[0].Payout)
	assert.Equal(t, 1100, p.Balance())
	assert.Equal(t, map[string]int{"careful": 1100}, rep.Balances)

	rep, err = g.PlayRound()
	require.NoError(t, err)
	assert.Equal(t, "black", rep.Bets[0].Bet.Value, "colors alternate")
	assert.Equal(t, 110, rep.Bets[0].Bet.Amount)
	assert.Zero(t, rep.Bets[0].Payout)
	assert.Equal(t, 990, p.Balance())
}

func TestMegaRiskBankruptcy(t *testing.T) {
	p := mustPlayer(t, "mega", 3, roulette.MegaRisk{})
	g, err := roulette.NewGame([]*roulette.Player{p},
		roulette.WithSpinner(&rigged{pockets: []int{5}}), roulette.WithMaxRounds(10))
	require.NoError(t, err)

	history, err := g.Run()
	require.NoError(t, err)
	// 3 → 2 → 1 → 0
	assert.Len(t, history, 3)
	assert.True(t, p.Bankrupt())
	assert.True(t, g.IsOver())

	_, err = g.PlayRound()
	assert.ErrorIs(t, err, roulette.ErrGameOver)
}

func TestMegaRiskHitsZero(t *testing.T) {
	p := mustPlayer(t, "mega", 100, roulette.MegaRisk{})
	g, err := roulette.NewGame([]*roulette.Player{p}, roulette.WithSpinner(&rigged{pockets: []int{0}}))
	require.NoError(t, err)

	_, err = g.PlayRound()
	require.NoError(t, err)
	assert.Equal(t, 50+50*35, p.Balance())
}

func TestMartingaleDoublesOnLoss(t *testing.T) {
	// colors alternate from black; pockets 1 (red), then 2 (black)
	p := mustPlayer(t, "m", 100, &roulette.Martingale{})
	g, err := roulette.NewGame([]*roulette.Player{p},
		roulette.WithSpinner(&rigged{pockets: []int{1, 2, 2, 2}}), roulette.WithMaxRounds(4))
	require.NoError(t, err)

	history, err := g.Run()
	require.NoError(t, err)
	require.Len(t, history, 4)

	type step struct {
		color  string
		amount int
		payout int
	}
	var got []step
	for _, r := range history {
		b := r.Bets[0]
		got = append(got, step{b.Bet.Value, b.Bet.Amount, b.Payout})
	}
	assert.Equal(t, []step{
		{"black", 1, 0}, // 1 is red: lose
		{"red", 2, 0},   // 2 is black: lose
		{"black", 4, 8}, // win
		{"red", 1, 0},   // reset after win, lose
	}, got)
	assert.Equal(t, 100-1-2-4+8-1, p.Balance())
}

func TestGameRoundLimitAndDropouts(t *testing.T) {
	broke := mustPlayer(t, "broke", 0, roulette.Risk{})
	rich := mustPlayer(t, "rich", 500, &roulette.Conservative{})
	g, err := roulette.NewGame([]*roulette.Player{broke, rich}, roulette.WithSeed(11), roulette.WithMaxRounds(5))
	require.NoError(t, err)

	history, err := g.Run()
	require.NoError(t, err)
	assert.Len(t, history, 5)
	assert.Equal(t, 5, g.Round())
	for _, r := range history {
		assert.Equal(t, []string{"broke"}, r.Dropped)
		assert.Len(t, r.Bets, 1)
	}

	st := g.Standings()
	assert.Equal(t, "rich", st[0].Name)
	assert.Equal(t, "broke", st[1].Name)
}

func TestNewGameValidation(t *testing.T) {
	_, err := roulette.NewGame(nil)
	assert.ErrorIs(t, err, roulette.ErrNoPlayers)

	p := mustPlayer(t, "p", 10, roulette.Risk{})
	_, err = roulette.NewGame([]*roulette.Player{p}, roulette.WithMaxRounds(0))
	assert.ErrorIs(t, err, roulette.ErrInvalidRounds)
}

func TestSeededGamesReplay(t *testing.T) {
	play := func() []roulette.Standing {
		players := []*roulette.Player{
			mustPlayer(t, "c", 1000, &roulette.Conservative{}),
			mustPlayer(t, "r", 1000, roulette.Risk{}),
			mustPlayer(t, "mr", 1000, roulette.MegaRisk{}),
			mustPlayer(t, "m", 1000, &roulette.Martingale{}),
		}
		g, err := roulette.NewGame(players, roulette.WithSeed(99))
		require.NoError(t, err)
		_, err = g.Run()
		require.NoError(t, err)

		return g.Standings()
	}
	assert.Equal(t, play(), play())
}

var errStrategy = errors.New("strategy failed")

// failing stakes nothing and always errors.
type failing struct{}

func (failing) NextBet(*roulette.Player, *rand.Rand) (roulette.Bet, error) {
	return roulette.Bet{}, errStrategy
}

func (failing) Name() string { return "failing" }

// badStake returns a bet that fails validation.
type badStake struct{}

func (badStake) NextBet(*roulette.Player, *rand.Rand) (roulette.Bet, error) {
	return roulette.Bet{Kind: roulette.KindNumber, Value: "37", Amount: 5}, nil
}

func (badStake) Name() string { return "bad-stake" }

func TestFailedRoundChangesNothing(t *testing.T) {
	for _, s := range []roulette.Strategy{failing{}, badStake{}} {
		t.Run(s.Name(), func(t *testing.T) {
			a := mustPlayer(t, "A", 100, roulette.MegaRisk{})
			b := mustPlayer(t, "B", 100, s)
			g, err := roulette.NewGame([]*roulette.Player{a, b}, roulette.WithSpinner(&rigged{pockets: []int{0}}))
			require.NoError(t, err)

			_, err = g.PlayRound()
			require.Error(t, err)
			if _, ok := s.(failing); ok {
				assert.ErrorIs(t, err, errStrategy)
			} else {
				assert.ErrorIs(t, err, roulette.ErrInvalidBet)
			}
			assert.Equal(t, 0, g.Round())
			assert.Empty(t, g.History())
			assert.Equal(t, 100, a.Balance())
			assert.Equal(t, 100, b.Balance())
		})
	}
}
