package blackjack

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Suit is one of the four French suits.
type Suit string

const (
	Spades   Suit = "Spades"
	Clubs    Suit = "Clubs"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
)

// Suits lists the suits in deck-building order.
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

type rankValue struct {
	rank  string
	value int
}

// Aces are worth 11 here; Hand demotes them to 1 when needed.
var ranks = []rankValue{
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7}, {"8", 8},
	{"9", 9}, {"10", 10}, {"J", 10}, {"Q", 10}, {"K", 10}, {"A", 11},
}

// Card is a playing card. Value is its blackjack value, aces counting 11.
type Card struct {
	Suit  Suit
	Rank  string
	Value int
}

// NewCard returns the card of the given rank ("2".."10", "J", "Q", "K", "A") and suit.
func NewCard(rank string, suit Suit) (Card, error) {
	for _, rv := range ranks {
		if rv.rank == rank {
			return Card{Suit: suit, Rank: rank, Value: rv.value}, nil
		}
	}

	return Card{}, fmt.Errorf("NewCard(%q): %w", rank, ErrInvalidRank)
}

// IsAce reports whether c is an ace.
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// String formats the card as "Q of Hearts".
func (c Card) String() string {
	return c.Rank + " of " + string(c.Suit)
}

// Deck is a shoe of one or more standard decks. Cards are dealt from the top.
type Deck struct {
	decks int
	cards []Card // top of the shoe is the last element
	rng   *rand.Rand
}

// NewDeck returns an unshuffled shoe of n standard decks.
func NewDeck(n int, rng *rand.Rand) (*Deck, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDeck(%d): %w", n, ErrInvalidDecks)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Deck{decks: n, rng: rng}
	d.build()

	return d, nil
}

// NewStackedDeck returns a single-deck shoe that deals cards in exactly the
// given order. Once exhausted it behaves like a freshly shuffled deck.
func NewStackedDeck(rng *rand.Rand, cards ...Card) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	stack := slices.Clone(cards)
	slices.Reverse(stack)

	return &Deck{decks: 1, cards: stack, rng: rng}
}

func (d *Deck) build() {
	d.cards = make([]Card, 0, d.decks*len(Suits)*len(ranks))
	for range d.decks {
		for _, s := range Suits {
			for _, rv := range ranks {
				d.cards = append(d.cards, Card{Suit: s, Rank: rv.rank, Value: rv.value})
			}
		}
	}
}

// Shuffle randomizes the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card, rebuilding and reshuffling the
// shoe first when it is empty.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.build()
		d.Shuffle()
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]

	return c
}

// Len returns the number of cards left in the shoe.
func (d *Deck) Len() int {
	return len(d.cards)
}
