package hanafuda

import (
	"fmt"
	"slices"
)

// Collection is an ordered set of cards kept in canonical order. It models a
// hand and the table.
type Collection struct {
	cards []Card
}

// NewCollection builds a collection from the given cards.
func NewCollection(cards ...Card) *Collection {
	c := &Collection{}
	for _, card := range cards {
		c.AddCard(card)
	}
	return c
}

// AddCard inserts card at its sorted position.
func (c *Collection) AddCard(card Card) {
	i, _ := slices.BinarySearchFunc(c.cards, card, Card.Compare)
	c.cards = slices.Insert(c.cards, i, card)
}

// PlayCard removes and returns the card at index.
func (c *Collection) PlayCard(index int) (Card, error) {
	card, err := c.Get(index)
	if err != nil {
		return Card{}, err
	}
	c.cards = slices.Delete(c.cards, index, index+1)
	return card, nil
}

// Get returns the card at index without removing it.
func (c *Collection) Get(index int) (Card, error) {
	if index < 0 || index >= len(c.cards) {
		return Card{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.cards))
	}
	return c.cards[index], nil
}

func (c *Collection) Len() int { return len(c.cards) }

// Cards returns a copy of the contents in canonical order.
func (c *Collection) Cards() []Card { return slices.Clone(c.cards) }

// Clear empties the collection.
func (c *Collection) Clear() { c.cards = c.cards[:0] }

func (c *Collection) CountMonth(m Month) int {
	n := 0
	for _, card := range c.cards {
		if card.month == m {
			n++
		}
	}
	return n
}

func (c *Collection) CountDesign(d Design) int {
	n := 0
	for _, card := range c.cards {
		if card.design == d {
			n++
		}
	}
	return n
}

func (c *Collection) CountCard(target Card) int {
	n := 0
	for _, card := range c.cards {
		if card == target {
			n++
		}
	}
	return n
}

// CountFunc counts the cards satisfying pred.
func (c *Collection) CountFunc(pred func(Card) bool) int {
	n := 0
	for _, card := range c.cards {
		if pred(card) {
			n++
		}
	}
	return n
}

// Contains reports whether some card satisfies pred.
func (c *Collection) Contains(pred func(Card) bool) bool {
	return slices.ContainsFunc(c.cards, pred)
}

// FindFirstIndex returns the index of the first card equal to target, or -1.
func (c *Collection) FindFirstIndex(target Card) int {
	return slices.Index(c.cards, target)
}

// FindFirstMatch returns the index of the first card of month m, or -1.
func (c *Collection) FindFirstMatch(m Month) int {
	return slices.IndexFunc(c.cards, func(card Card) bool { return card.month == m })
}

func (c *Collection) HasRainy() bool { return c.Contains(Card.IsRainy) }

// InstantWin2222 reports four pairs: exactly four months holding exactly two cards each.
func (c *Collection) InstantWin2222() bool {
	pairs := 0
	for m := January; m <= December; m++ {
		if c.CountMonth(m) == 2 {
			pairs++
		}
	}
	return pairs == 4
}

// InstantWin4 reports whether every card of some month is present.
func (c *Collection) InstantWin4() bool {
	for m := January; m <= December; m++ {
		if c.CountMonth(m) == CardsPerMonth {
			return true
		}
	}
	return false
}

// InstantWin reports either instant-win condition.
func (c *Collection) InstantWin() bool {
	return c.InstantWin2222() || c.InstantWin4()
}

func (c *Collection) String() string {
	return fmt.Sprint(c.cards)
}
