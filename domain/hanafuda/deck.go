package hanafuda

import (
	"fmt"
	"slices"
)

// DeckSize is the number of cards in a full Hanafuda deck.
const DeckSize = 48

// Shuffler is the random source used by Deck.Shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is the card supply of a round. The top of the deck is the last card
// of the underlying slice.
type Deck struct {
	cards []Card
}

// NewDeck returns an initialized, unshuffled deck.
func NewDeck() *Deck {
	d := &Deck{}
	d.Initialize()
	return d
}

// Initialize refills the deck with all 48 legal cards in construction order:
// month by month, and within a month Light, Seed, Ribbon, Chaff.
func (d *Deck) Initialize() {
	d.cards = d.cards[:0]
	for m := January; m <= December; m++ {
		for design := Light; design <= Chaff; design++ {
			for range Copies(m, design) {
				d.cards = append(d.cards, Card{month: m, design: design})
			}
		}
	}
}

// Shuffle permutes the remaining cards uniformly.
func (d *Deck) Shuffle(src Shuffler) {
	src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrUnderflow
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// DrawN draws n cards, failing without removing anything if fewer remain.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d cards, %d left", ErrUnderflow, n, len(d.cards))
	}
	drawn := make([]Card, 0, n)
	for range n {
		c, _ := d.Draw()
		drawn = append(drawn, c)
	}
	return drawn, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int { return len(d.cards) }

// Empty reports whether no card is left.
func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Clear removes every card.
func (d *Deck) Clear() { d.cards = d.cards[:0] }

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card { return slices.Clone(d.cards) }

// NewDeckOf builds a deck holding exactly cards, the last one on top.
// It is used to replay a recorded deal.
func NewDeckOf(cards ...Card) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}
