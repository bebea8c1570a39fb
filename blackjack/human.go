package blackjack

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Human asks for decisions on out and reads the answers line by line from in.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman seats a player who answers prompts on in.
func NewHuman(name string, chips int, in io.Reader, out io.Writer) (*Player, error) {
	if out == nil {
		out = io.Discard
	}

	return NewPlayer(name, chips, &Human{in: bufio.NewScanner(in), out: out})
}

// Kind returns "Human".
func (h *Human) Kind() string { return "Human" }

func (h *Human) readLine() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		return "", ErrInputClosed
	}

	return strings.ToLower(strings.TrimSpace(h.in.Text())), nil
}

// Bet asks for a stake until a valid one is entered. Over-bets offer to go all in.
func (h *Human) Bet(p *Player, _ *rand.Rand) (int, error) {
	if p.Chips() <= 0 {
		return 0, nil
	}
	for {
		fmt.Fprintf(h.out, "%s, chips available: %d. Your bet: ", p.Name(), p.Chips())
		line, err := h.readLine()
		if err != nil {
			return 0, err
		}
		amount, err := strconv.Atoi(line)
		switch {
		case err != nil:
			fmt.Fprintln(h.out, "Please enter a number.")
		case amount <= 0:
			fmt.Fprintln(h.out, "The bet must be positive.")
		case amount > p.Chips():
			fmt.Fprintf(h.out, "Not enough chips. Bet all %d? (y/n): ", p.Chips())
			answer, err := h.readLine()
			if err != nil {
				return 0, err
			}
			if answer == "y" || answer == "yes" {
				return p.Chips(), nil
			}
		default:
			return amount, nil
		}
	}
}

// Decide asks hit, stand or double until a valid answer is entered.
func (h *Human) Decide(p *Player, up Card) (Action, error) {
	fmt.Fprintf(h.out, "%s: %s (total %d), dealer shows %s, chips %d, bet %d\n",
		p.Name(), p.Hand(), p.Hand().Value(), up, p.Chips(), p.Bet())
	for {
		fmt.Fprint(h.out, "Hit (h), stand (s) or double (d): ")
		line, err := h.readLine()
		if err != nil {
			return Stand, err
		}
		switch line {
		case "h", "hit":
			return Hit, nil
		case "s", "stand":
			return Stand, nil
		case "d", "double":
			if p.Chips() >= p.Bet() {
				return Double, nil
			}
			fmt.Fprintln(h.out, "Not enough chips to double.")
		default:
			fmt.Fprintln(h.out, "Invalid choice, try again.")
		}
	}
}
