package card

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidRank    = errors.New("card: invalid rank")
	ErrInvalidSuit    = errors.New("card: invalid suit")
	ErrInvalidCount   = errors.New("card: invalid count")
	ErrNotEnoughCards = errors.New("card: cannot deal more cards than there are in the deck")
)

// Suit of a standard 52-card deck.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

func (s Suit) Valid() bool {
	return s <= Clubs
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

type Card struct {
	Suit Suit
	Rank int
}

// NewCard returns the card of the given suit and rank, Ace=1 through King=13.
func NewCard(suit Suit, rank int) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, uint8(suit))
	}
	if rank < Ace || rank > King {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Ace:
		rank = "Ace"
	case Jack:
		rank = "Jack"
	case Queen:
		rank = "Queen"
	case King:
		rank = "King"
	default:
		rank = strconv.Itoa(c.Rank)
	}
	return rank + " of " + c.Suit.String()
}
