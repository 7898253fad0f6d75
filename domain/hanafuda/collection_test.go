package hanafuda

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func isSorted(cards []Card) bool {
	return slices.IsSortedFunc(cards, Card.Compare)
}

func TestCollectionStaysSorted(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	d := NewDeck()
	d.Shuffle(r)
	c := NewCollection()
	for range 20 {
		card, _ := d.Draw()
		c.AddCard(card)
		if !isSorted(c.Cards()) {
			t.Fatalf("collection not sorted after AddCard: %v", c.Cards())
		}
	}
	for c.Len() > 0 {
		if _, err := c.PlayCard(r.IntN(c.Len())); err != nil {
			t.Fatal(err)
		}
		if !isSorted(c.Cards()) {
			t.Fatalf("collection not sorted after PlayCard: %v", c.Cards())
		}
	}
}

func TestPlayCardOutOfRange(t *testing.T) {
	c := NewCollection(MustCard(May, Seed), MustCard(June, Chaff))
	for _, idx := range []int{-1, 2, 100} {
		if _, err := c.PlayCard(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
		if _, err := c.Get(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange from Get, got %v", idx, err)
		}
	}
	if c.Len() != 2 {
		t.Fatal("failed play must not remove cards")
	}
	got, err := c.PlayCard(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != MustCard(May, Seed) {
		t.Fatalf("expected May seed, got %s", got.Name())
	}
}

func TestCollectionQueries(t *testing.T) {
	c := NewCollection(
		MustCard(March, Chaff),
		MustCard(March, Light),
		MustCard(March, Chaff),
		MustCard(November, Chaff),
	)
	if c.CountMonth(March) != 3 || c.CountDesign(Chaff) != 3 || c.CountCard(MustCard(March, Chaff)) != 2 {
		t.Fatalf("unexpected counts for %v", c.Cards())
	}
	if i := c.FindFirstIndex(MustCard(March, Chaff)); i != 1 {
		t.Fatalf("expected March chaff at 1, got %d", i)
	}
	if i := c.FindFirstIndex(MustCard(March, Ribbon)); i != -1 {
		t.Fatalf("expected -1, got %d", i)
	}
	if i := c.FindFirstMatch(November); i != 3 {
		t.Fatalf("expected November at 3, got %d", i)
	}
	if i := c.FindFirstMatch(April); i != -1 {
		t.Fatalf("expected -1, got %d", i)
	}
	if !c.HasRainy() {
		t.Fatal("lightning is rainy")
	}
	c.Clear()
	if c.Len() != 0 || c.HasRainy() {
		t.Fatal("clear should empty the collection")
	}
}

func TestInstantWin2222(t *testing.T) {
	hand := NewCollection(
		MustCard(January, Light), MustCard(January, Ribbon),
		MustCard(February, Seed), MustCard(February, Ribbon),
		MustCard(March, Light), MustCard(March, Ribbon),
		MustCard(April, Seed), MustCard(April, Ribbon),
	)
	if !hand.InstantWin2222() {
		t.Fatal("four pairs should trigger InstantWin2222")
	}
	if hand.InstantWin4() {
		t.Fatal("four pairs is not four of a kind")
	}

	three := NewCollection(
		MustCard(January, Light), MustCard(January, Ribbon),
		MustCard(February, Seed), MustCard(February, Ribbon),
		MustCard(March, Light), MustCard(March, Ribbon),
		MustCard(April, Seed), MustCard(May, Ribbon),
	)
	if three.InstantWin2222() {
		t.Fatal("three pairs should not trigger")
	}
}

func TestInstantWin4(t *testing.T) {
	hand := NewCollection(
		MustCard(December, Light), MustCard(December, Chaff),
		MustCard(December, Chaff), MustCard(December, Chaff),
		MustCard(January, Light), MustCard(May, Seed),
		MustCard(June, Seed), MustCard(July, Seed),
	)
	if !hand.InstantWin4() || !hand.InstantWin() {
		t.Fatal("four December cards should trigger InstantWin4")
	}
}
