package card

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it, which
// lets tests pass a seeded source.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is an ordered pile of cards; the top of the deck is index 0.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []Card
}

// NewDeck returns all 52 cards ordered by suit, then rank.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits())*King)
	for _, s := range Suits() {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Count() int {
	return len(d.cards)
}

func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Shuffle permutes the deck in place. A nil rng uses the global source.
func (d *Deck) Shuffle(rng Shuffler) {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if rng == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	rng.Shuffle(len(d.cards), swap)
}

// Deal removes the top n cards and returns them.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, len(d.cards))
	}
	dealt := slices.Clone(d.cards[:n])
	d.cards = slices.Delete(d.cards, 0, n)
	return dealt, nil
}

// Add puts cards back at the bottom of the deck.
func (d *Deck) Add(cards ...Card) error {
	for _, c := range cards {
		if _, err := NewCard(c.Suit, c.Rank); err != nil {
			return err
		}
	}
	d.cards = append(d.cards, cards...)
	return nil
}
