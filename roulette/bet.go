package roulette

import (
	"fmt"
	"strconv"
)

// Kind is a bet type.
type Kind string

const (
	KindNumber Kind = "number"
	KindColor  Kind = "color"
	KindParity Kind = "even_odd"
	KindDozen  Kind = "dozen"
	KindColumn Kind = "column"
	KindHalf   Kind = "half"
)

const (
	payoutNumber  = 35
	payoutEven    = 2
	payoutThirds  = 3
	dozenSize     = 12
	columnsOnWall = 3
)

var dozens = map[string]int{"1st": 1, "2nd": 2, "3rd": 3}

// Bet is a stake of Amount on Value, whose meaning depends on Kind:
//
//	number  "0".."36"
//	color   "red", "black"
//	parity  "even", "odd"
//	dozen   "1st", "2nd", "3rd"
//	column  "1", "2", "3"
//	half    "1-18", "19-36"
type Bet struct {
	Kind   Kind
	Value  string
	Amount int
}

// NewBet returns a validated Bet.
func NewBet(kind Kind, value string, amount int) (Bet, error) {
	b := Bet{Kind: kind, Value: value, Amount: amount}
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}

	return b, nil
}

// String formats the bet as "10 on color red".
func (b Bet) String() string {
	return fmt.Sprintf("%d on %s %s", b.Amount, b.Kind, b.Value)
}

// Validate checks the kind, the value for that kind and the stake.
func (b Bet) Validate() error {
	if b.Amount <= 0 {
		return fmt.Errorf("bet %s: stake %d: %w", b.Kind, b.Amount, ErrInvalidBet)
	}
	ok := false
	switch b.Kind {
	case KindNumber:
		n, err := strconv.Atoi(b.Value)
		ok = err == nil && n >= 0 && n < Pockets
	case KindColor:
		ok = b.Value == string(Red) || b.Value == string(Black)
	case KindParity:
		ok = b.Value == "even" || b.Value == "odd"
	case KindDozen:
		_, ok = dozens[b.Value]
	case KindColumn:
		n, err := strconv.Atoi(b.Value)
		ok = err == nil && n >= 1 && n <= columnsOnWall
	case KindHalf:
		ok = b.Value == string(Low) || b.Value == string(High)
	default:
		return fmt.Errorf("bet kind %q: %w", b.Kind, ErrInvalidBet)
	}
	if !ok {
		return fmt.Errorf("bet %s %q: %w", b.Kind, b.Value, ErrInvalidBet)
	}

	return nil
}

// Payout returns the chips handed back for b given o, stake included;
// zero when the bet loses.
func Payout(b Bet, o Outcome) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if wins(b, o) {
		return b.Amount * multiplier(b.Kind), nil
	}

	return 0, nil
}

func wins(b Bet, o Outcome) bool {
	n := o.Number
	switch b.Kind {
	case KindNumber:
		v, _ := strconv.Atoi(b.Value)
		return v == n
	case KindColor:
		return Color(b.Value) == o.Color
	case KindParity:
		return n != 0 && (b.Value == "even") == o.Even
	case KindDozen:
		return n != 0 && (n-1)/dozenSize+1 == dozens[b.Value]
	case KindColumn:
		col, _ := strconv.Atoi(b.Value)
		return n != 0 && (n-1)%columnsOnWall+1 == col
	case KindHalf:
		return Half(b.Value) == o.Half
	}

	return false
}

func multiplier(k Kind) int {
	switch k {
	case KindNumber:
		return payoutNumber
	case KindDozen, KindColumn:
		return payoutThirds
	default:
		return payoutEven
	}
}
