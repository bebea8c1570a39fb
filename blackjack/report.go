package blackjack

import (
	"fmt"
	"strings"
)

// Outcome is how a player's stake was settled.
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeWin
	OutcomePush
	OutcomeBlackjack
	OutcomeBust
)

// String returns the outcome's display name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeBust:
		return "bust"
	default:
		return "lose"
	}
}

// BetRecord is one stake placed at the start of a round.
type BetRecord struct {
	Player string
	Amount int
}

// Turn is one decision taken during the players' phase.
type Turn struct {
	Circle int
	Player string
	Action Action
	Card   Card // valid when Drew
	Drew   bool
	Total  int
	Busted bool
}

// Result is the settlement of one player's stake.
type Result struct {
	Player  string
	Hand    string
	Total   int
	Outcome Outcome
	Stake   int
	Paid    int // chips returned to the player, stake included
}

// PlayerState is a snapshot of one seat.
type PlayerState struct {
	Name      string
	Kind      string
	Chips     int
	Bet       int
	Hand      string
	HandValue int
	Busted    bool
}

// DealerState is a snapshot of the house hand.
type DealerState struct {
	Hand      string
	HandValue int
	Busted    bool
}

// State is a snapshot of the whole table.
type State struct {
	GameID        string
	Round         int
	MaxRounds     int
	Active        bool
	ActivePlayers int
	DeckCards     int
	TotalChips    int
	Players       []PlayerState
	Dealer        DealerState
}

// RoundReport records everything that happened in one round.
type RoundReport struct {
	Round           int
	Bets            []BetRecord
	DealerUp        Card
	DealerBlackjack bool
	Turns           []Turn
	DealerDraws     []Card
	DealerHand      string
	DealerTotal     int
	DealerBusted    bool
	Results         []Result
	State           State // table after settlement
}

func (p *Player) state() PlayerState {
	return PlayerState{
		Name:      p.name,
		Kind:      p.Kind(),
		Chips:     p.chips,
		Bet:       p.bet,
		Hand:      p.hand.String(),
		HandValue: p.hand.Value(),
		Busted:    p.busted,
	}
}

// String renders the report as human-readable text.
func (r RoundReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Round %d ===\n", r.Round)

	sb.WriteString("--- Bets ---\n")
	for _, b := range r.Bets {
		fmt.Fprintf(&sb, "%s bets %d\n", b.Player, b.Amount)
	}

	fmt.Fprintf(&sb, "--- Players ---\nDealer shows %s\n", r.DealerUp)
	if r.DealerBlackjack {
		sb.WriteString("Dealer has blackjack\n")
	}
	for _, t := range r.Turns {
		switch {
		case t.Drew:
			fmt.Fprintf(&sb, "[%d] %s %ss: %s (total %d)\n", t.Circle, t.Player, t.Action, t.Card, t.Total)
		default:
			fmt.Fprintf(&sb, "[%d] %s stands on %d\n", t.Circle, t.Player, t.Total)
		}
		if t.Busted {
			fmt.Fprintf(&sb, "[%d] %s busts\n", t.Circle, t.Player)
		}
	}

	sb.WriteString("--- Dealer ---\n")
	for _, c := range r.DealerDraws {
		fmt.Fprintf(&sb, "Dealer draws %s\n", c)
	}
	fmt.Fprintf(&sb, "Dealer: %s (total %d)\n", r.DealerHand, r.DealerTotal)

	sb.WriteString("--- Results ---\n")
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "%s: %s (total %d) %s, stake %d, paid %d\n",
			res.Player, res.Hand, res.Total, res.Outcome, res.Stake, res.Paid)
	}

	fmt.Fprintf(&sb, "--- Chips after round %d/%d ---\n", r.State.Round, r.State.MaxRounds)
	for _, p := range r.State.Players {
		if p.Chips == 0 {
			fmt.Fprintf(&sb, "%s (%s): bankrupt\n", p.Name, p.Kind)
			continue
		}
		fmt.Fprintf(&sb, "%s (%s): %d\n", p.Name, p.Kind, p.Chips)
	}

	return sb.String()
}
