package blackjack_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/blackjack"
)

// cards builds cards from "rank/suit-initial" codes such as "A/s" or "10/h".
func cards(t *testing.T, codes ...string) []blackjack.Card {
	t.Helper()
	suits := map[byte]blackjack.Suit{
		's': blackjack.Spades, 'c': blackjack.Clubs,
		'h': blackjack.Hearts, 'd': blackjack.Diamonds,
	}
	out := make([]blackjack.Card, 0, len(codes))
	for _, code := range codes {
		n := len(code)
		require.Greater(t, n, 2, "bad code %q", code)
		c, err := blackjack.NewCard(code[:n-2], suits[code[n-1]])
		require.NoError(t, err)
		out = append(out, c)
	}

	return out
}

func handOf(t *testing.T, codes ...string) *blackjack.Hand {
	t.Helper()
	h := &blackjack.Hand{}
	for _, c := range cards(t, codes...) {
		h.Add(c)
	}

	return h
}

// scripted bets a fixed amount and replays actions, standing when they run out.
type scripted struct {
	bet     int
	actions []blackjack.Action
	asked   int
}

func (s *scripted) Bet(p *blackjack.Player, _ *rand.Rand) (int, error) {
	return min(s.bet, p.Chips()), nil
}

func (s *scripted) Decide(*blackjack.Player, blackjack.Card) (blackjack.Action, error) {
	s.asked++
	if len(s.actions) == 0 {
		return blackjack.Stand, nil
	}
	a := s.actions[0]
	s.actions = s.actions[1:]

	return a, nil
}

func (s *scripted) Kind() string { return "Script" }

// stackedGame seats one scripted player with 1000 chips over a stacked shoe.
func stackedGame(t *testing.T, d *scripted, codes ...string) (*blackjack.Game, *blackjack.Player) {
	t.Helper()
	deck := blackjack.NewStackedDeck(rand.New(rand.NewPCG(1, 1)), cards(t, codes...)...)
	g, err := blackjack.NewGame(blackjack.WithDeck(deck), blackjack.WithMaxRounds(10))
	require.NoError(t, err)
	p, err := blackjack.NewPlayer("alice", 1000, d)
	require.NoError(t, err)
	require.NoError(t, g.AddPlayer(p))
	require.NoError(t, g.Start())

	return g, p
}
