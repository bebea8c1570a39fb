package blackjack

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/katalvlaran/drills/internal/log"
)

const (
	defaultDecks     = 6
	defaultMaxRounds = 100
)

// Option configures a Game at construction time.
type Option func(*options)

type options struct {
	decks     int
	maxRounds int
	rng       *rand.Rand
	deck      *Deck
}

// WithDecks sets the number of decks in the shoe (default 6).
func WithDecks(n int) Option {
	return func(o *options) { o.decks = n }
}

// WithMaxRounds caps the number of rounds (default 100).
func WithMaxRounds(n int) Option {
	return func(o *options) { o.maxRounds = n }
}

// WithSeed makes shuffling and bot bets deterministic.
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

// WithDeck replaces the shoe, e.g. with a NewStackedDeck. Start will not
// shuffle a deck supplied this way.
func WithDeck(d *Deck) Option {
	return func(o *options) { o.deck = d }
}

// Game runs rounds of blackjack between a Dealer and seated Players.
type Game struct {
	id        uuid.UUID
	deck      *Deck
	preset    bool
	dealer    Dealer
	players   []*Player
	round     int
	maxRounds int
	active    bool
	finished  bool
	history   []RoundReport
	rng       *rand.Rand
}

// NewGame returns a game with an empty table.
func NewGame(opts ...Option) (*Game, error) {
	o := options{decks: defaultDecks, maxRounds: defaultMaxRounds}
	for _, fn := range opts {
		fn(&o)
	}
	if o.maxRounds <= 0 {
		return nil, fmt.Errorf("NewGame: %w", ErrInvalidRounds)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := &Game{id: uuid.New(), maxRounds: o.maxRounds, rng: o.rng}
	if o.deck != nil {
		g.deck, g.preset = o.deck, true
	} else {
		d, err := NewDeck(o.decks, o.rng)
		if err != nil {
			return nil, fmt.Errorf("NewGame: %w", err)
		}
		g.deck = d
	}

	return g, nil
}

// ID identifies this game in logs and reports.
func (g *Game) ID() uuid.UUID { return g.id }

// Round returns the number of rounds played.
func (g *Game) Round() int { return g.round }

// Active reports whether more rounds can be played.
func (g *Game) Active() bool { return g.active }

// Players returns the seated players in seating order.
func (g *Game) Players() []*Player { return slices.Clone(g.players) }

// Dealer returns the house seat.
func (g *Game) Dealer() *Dealer { return &g.dealer }

// AddPlayer seats p.
func (g *Game) AddPlayer(p *Player) error {
	if p == nil {
		return fmt.Errorf("AddPlayer: %w", ErrNilDecider)
	}
	g.players = append(g.players, p)

	return nil
}

// Start shuffles the shoe and opens the table.
func (g *Game) Start() error {
	switch {
	case g.active || g.finished:
		return fmt.Errorf("Start: %w", ErrAlreadyStarted)
	case len(g.players) == 0:
		return fmt.Errorf("Start: %w", ErrNoPlayers)
	}
	if !g.preset {
		g.deck.Shuffle()
	}
	g.active = true
	g.round = 0

	names := lo.Map(g.players, func(p *Player, _ int) string { return p.name })
	log.Verbosef("[blackjack]\tgame %s started: players %s, max rounds %d",
		g.id, strings.Join(names, ", "), g.maxRounds)

	return nil
}

// PlayRound plays one full round and returns its report.
func (g *Game) PlayRound() (*RoundReport, error) {
	switch {
	case g.finished:
		return nil, fmt.Errorf("PlayRound: %w", ErrGameOver)
	case !g.active:
		return nil, fmt.Errorf("PlayRound: %w", ErrNotStarted)
	}

	bets, err := g.collectBets()
	if err != nil {
		return nil, fmt.Errorf("PlayRound %d: %w", g.round+1, err)
	}

	g.round++
	rep := &RoundReport{Round: g.round}
	log.Verbosef("[blackjack]\tgame %s round %d", g.id, g.round)

	g.dealer.hand.Reset()
	for _, p := range g.players {
		p.resetRound()
	}
	g.placeBets(rep, bets)
	g.dealInitial(rep)

	if g.dealer.hand.IsBlackjack() {
		rep.DealerBlackjack = true
		g.settleDealerBlackjack(rep)
	} else {
		if err := g.playTurns(rep); err != nil {
			return nil, fmt.Errorf("PlayRound %d: %w", g.round, err)
		}
		g.playDealer(rep)
		g.settle(rep)
	}

	rep.DealerHand = g.dealer.hand.String()
	rep.DealerTotal = g.dealer.hand.Value()
	rep.DealerBusted = g.dealer.hand.IsBusted()
	g.checkStatus()
	rep.State = g.State()
	g.history = append(g.history, *rep)

	return rep, nil
}

// collectBets asks every player with chips for a stake and checks it
// against the stack. Nothing is debited, so a failure leaves the game as it was.
func (g *Game) collectBets() ([]int, error) {
	bets := make([]int, len(g.players))
	for i, p := range g.players {
		if p.chips <= 0 {
			log.Verbosef("[blackjack]\t%s sits out, no chips", p.name)
			continue
		}
		amount, err := p.decider.Bet(p, g.rng)
		if err != nil {
			return nil, fmt.Errorf("bet for %s: %w", p.name, err)
		}
		if amount < 0 || amount > p.chips {
			return nil, fmt.Errorf("bet for %s: %d with %d chips: %w", p.name, amount, p.chips, ErrInvalidBet)
		}
		bets[i] = amount
	}

	return bets, nil
}

// placeBets debits the stakes returned by collectBets.
func (g *Game) placeBets(rep *RoundReport, bets []int) {
	for i, p := range g.players {
		if bets[i] == 0 {
			continue
		}
		p.bet = bets[i]
		p.chips -= bets[i]
		rep.Bets = append(rep.Bets, BetRecord{Player: p.name, Amount: bets[i]})
	}
}

func (g *Game) dealInitial(rep *RoundReport) {
	for pass := 0; pass < 2; pass++ {
		for _, p := range g.players {
			if p.bet > 0 {
				p.hand.Add(g.deck.Deal())
			}
		}
		g.dealer.hand.Add(g.deck.Deal())
	}
	rep.DealerUp, _ = g.dealer.UpCard()

	for _, p := range g.players {
		if p.bet > 0 && p.hand.IsBlackjack() {
			p.standing = true
		}
	}
}

func (g *Game) playTurns(rep *RoundReport) error {
	up := rep.DealerUp
	for circle := 1; ; circle++ {
		active := lo.Filter(g.players, func(p *Player, _ int) bool { return p.inPlay() })
		if len(active) == 0 {
			return nil
		}
		for _, p := range active {
			act, err := p.decider.Decide(p, up)
			if err != nil {
				return fmt.Errorf("decision for %s: %w", p.name, err)
			}
			turn := Turn{Circle: circle, Player: p.name, Action: act}
			switch act {
			case Hit:
				turn.Card, turn.Drew = g.deck.Deal(), true
				p.hand.Add(turn.Card)
			case Double:
				if err = p.DoubleDown(); err != nil {
					return fmt.Errorf("decision for %s: %w", p.name, err)
				}
				turn.Card, turn.Drew = g.deck.Deal(), true
				p.hand.Add(turn.Card)
				p.standing = true
			default:
				p.standing = true
			}
			if p.hand.IsBusted() {
				p.busted = true
				log.Verbosef("[blackjack]\t%s busts with %d", p.name, p.hand.Value())
			}
			turn.Total, turn.Busted = p.hand.Value(), p.busted
			rep.Turns = append(rep.Turns, turn)
		}
	}
}

func (g *Game) playDealer(rep *RoundReport) {
	for g.dealer.ShouldHit() {
		c := g.deck.Deal()
		g.dealer.hand.Add(c)
		rep.DealerDraws = append(rep.DealerDraws, c)
	}
	log.Verbosef("[blackjack]\tdealer stands on %d", g.dealer.hand.Value())
}

func (g *Game) settleDealerBlackjack(rep *RoundReport) {
	for _, p := range g.players {
		if p.bet == 0 {
			continue
		}
		r := Result{Player: p.name, Hand: p.hand.String(), Total: p.hand.Value(), Stake: p.bet}
		if p.hand.IsBlackjack() {
			r.Outcome, r.Paid = OutcomePush, p.Push()
		} else {
			r.Outcome, r.Paid = OutcomeLose, p.Lose()
		}
		rep.Results = append(rep.Results, r)
	}
}

func (g *Game) settle(rep *RoundReport) {
	dv, dealerBust := g.dealer.hand.Value(), g.dealer.hand.IsBusted()
	for _, p := range g.players {
		if p.bet == 0 {
			continue
		}
		r := Result{Player: p.name, Hand: p.hand.String(), Total: p.hand.Value(), Stake: p.bet}
		switch pv := p.hand.Value(); {
		case p.hand.IsBlackjack():
			r.Outcome, r.Paid = OutcomeBlackjack, p.BlackjackWin()
		case p.busted:
			r.Outcome, r.Paid = OutcomeBust, p.Lose()
		case dealerBust, pv > dv:
			r.Outcome, r.Paid = OutcomeWin, p.Win()
		case pv == dv:
			r.Outcome, r.Paid = OutcomePush, p.Push()
		default:
			r.Outcome, r.Paid = OutcomeLose, p.Lose()
		}
		rep.Results = append(rep.Results, r)
	}
}

func (g *Game) checkStatus() {
	solvent := lo.CountBy(g.players, func(p *Player) bool { return p.chips > 0 })
	switch {
	case solvent == 0:
		log.Verbosef("[blackjack]\tgame %s over: every player is bankrupt", g.id)
	case g.round >= g.maxRounds:
		log.Verbosef("[blackjack]\tgame %s over: reached %d rounds", g.id, g.maxRounds)
	default:
		return
	}
	g.active, g.finished = false, true
}

// History returns every round report in play order.
func (g *Game) History() []RoundReport {
	return slices.Clone(g.history)
}

// Report returns the report of round n, counting from 1.
func (g *Game) Report(n int) (RoundReport, error) {
	if n < 1 || n > len(g.history) {
		return RoundReport{}, fmt.Errorf("Report(%d): %w", n, ErrRoundNotFound)
	}

	return g.history[n-1], nil
}

// State returns a snapshot of the table.
func (g *Game) State() State {
	return State{
		GameID:        g.id.String(),
		Round:         g.round,
		MaxRounds:     g.maxRounds,
		Active:        g.active,
		ActivePlayers: lo.CountBy(g.players, func(p *Player) bool { return p.chips > 0 }),
		DeckCards:     g.deck.Len(),
		TotalChips:    lo.SumBy(g.players, func(p *Player) int { return p.chips }),
		Players:       lo.Map(g.players, func(p *Player, _ int) PlayerState { return p.state() }),
		Dealer: DealerState{
			Hand:      g.dealer.hand.String(),
			HandValue: g.dealer.hand.Value(),
			Busted:    g.dealer.hand.IsBusted(),
		},
	}
}

// Standings returns the players ordered by chips, richest first. Ties keep
// seating order.
func (g *Game) Standings() []PlayerState {
	out := lo.Map(g.players, func(p *Player, _ int) PlayerState { return p.state() })
	slices.SortStableFunc(out, func(a, b PlayerState) int { return b.Chips - a.Chips })

	return out
}
