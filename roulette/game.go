package roulette

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/katalvlaran/drills/internal/log"
)

const defaultMaxRounds = 20

// Option configures a Game.
type Option func(*options)

type options struct {
	maxRounds int
	rng       *rand.Rand
	spinner   Spinner
}

// WithMaxRounds caps the number of rounds (default 20).
func WithMaxRounds(n int) Option {
	return func(o *options) { o.maxRounds = n }
}

// WithSeed makes spins and random strategies deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r for all randomness. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSpinner replaces the fair Wheel. A nil s is ignored.
func WithSpinner(s Spinner) Option {
	return func(o *options) {
		if s != nil {
			o.spinner = s
		}
	}
}

// PlacedBet is one player's stake in a round and what it returned.
type PlacedBet struct {
	Player string
	Bet    Bet
	Payout int
}

// RoundReport records one spin.
type RoundReport struct {
	Round    int
	Outcome  Outcome
	Bets     []PlacedBet
	Dropped  []string // bankrupt players who sat the round out
	Balances map[string]int
}

// Standing is a player's name and balance.
type Standing struct {
	Name    string
	Balance int
}

// Game is a roulette table with a fixed set of players.
type Game struct {
	id        uuid.UUID
	players   []*Player
	maxRounds int
	round     int
	rng       *rand.Rand
	spinner   Spinner
	history   []RoundReport
}

// NewGame seats players at a new table.
func NewGame(players []*Player, opts ...Option) (*Game, error) {
	o := options{maxRounds: defaultMaxRounds, spinner: Wheel{}}
	for _, fn := range opts {
		fn(&o)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("NewGame: %w", ErrNoPlayers)
	}
	if o.maxRounds <= 0 {
		return nil, fmt.Errorf("NewGame(%d rounds): %w", o.maxRounds, ErrInvalidRounds)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Game{
		id:        uuid.New(),
		players:   slices.Clone(players),
		maxRounds: o.maxRounds,
		rng:       o.rng,
		spinner:   o.spinner,
	}, nil
}

// ID identifies the game in logs.
func (g *Game) ID() uuid.UUID { return g.id }

// Round returns the number of rounds played.
func (g *Game) Round() int { return g.round }

// IsOver reports whether the round limit is reached or every player is bankrupt.
func (g *Game) IsOver() bool {
	if g.round >= g.maxRounds {
		return true
	}

	return lo.EveryBy(g.players, func(p *Player) bool { return p.Bankrupt() })
}

// PlayRound collects bets, spins and settles. Every bet is validated and
// every payout computed before any balance changes, so a failing round
// leaves balances, the round counter and history untouched.
func (g *Game) PlayRound() (*RoundReport, error) {
	if g.IsOver() {
		return nil, fmt.Errorf("PlayRound: %w", ErrGameOver)
	}
	round := g.round + 1
	rep := &RoundReport{Round: round}

	var bettors []*Player // parallel to rep.Bets
	for _, p := range g.players {
		if p.Bankrupt() {
			rep.Dropped = append(rep.Dropped, p.name)
			continue
		}
		b, err := p.strategy.NextBet(p, g.rng)
		if err != nil {
			return nil, fmt.Errorf("PlayRound %d: %s: %w", round, p.name, err)
		}
		b.Amount = min(b.Amount, p.balance)
		if err = b.Validate(); err != nil {
			return nil, fmt.Errorf("PlayRound %d: %s: %w", round, p.name, err)
		}
		rep.Bets = append(rep.Bets, PlacedBet{Player: p.name, Bet: b})
		bettors = append(bettors, p)
	}

	rep.Outcome = g.spinner.Spin(g.rng)
	for i := range rep.Bets {
		won, err := Payout(rep.Bets[i].Bet, rep.Outcome)
		if err != nil {
			return nil, fmt.Errorf("PlayRound %d: %s: %w", round, bettors[i].name, err)
		}
		rep.Bets[i].Payout = won
	}

	g.round = round
	for _, name := range rep.Dropped {
		log.Verbosef("[roulette]\t%s dropped out", name)
	}
	for i, pb := range rep.Bets {
		p := bettors[i]
		log.Verbosef("[roulette]\t%s puts %s", p.name, pb.Bet)
		p.balance += pb.Payout - pb.Bet.Amount
		if obs, ok := p.strategy.(Observer); ok {
			obs.Observe(pb.Payout > 0)
		}
	}
	log.Verbosef("[roulette]\tround %d came up %s", g.round, rep.Outcome)

	rep.Balances = lo.Associate(g.players, func(p *Player) (string, int) { return p.name, p.balance })
	g.history = append(g.history, *rep)

	return rep, nil
}

// Run plays rounds until the game is over and returns every report.
func (g *Game) Run() ([]RoundReport, error) {
	for !g.IsOver() {
		if _, err := g.PlayRound(); err != nil {
			return g.History(), err
		}
	}

	return g.History(), nil
}

// History returns the reports of all rounds played.
func (g *Game) History() []RoundReport {
	return slices.Clone(g.history)
}

// Standings returns players ordered by balance, richest first.
func (g *Game) Standings() []Standing {
	out := lo.Map(g.players, func(p *Player, _ int) Standing { return Standing{Name: p.name, Balance: p.balance} })
	slices.SortStableFunc(out, func(a, b Standing) int { return b.Balance - a.Balance })

	return out
}
