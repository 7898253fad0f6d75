package hanafuda

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func countPairs(cards []Card) map[Card]int {
	counts := map[Card]int{}
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

func assertFullDeck(t *testing.T, cards []Card) {
	t.Helper()
	if len(cards) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(cards))
	}
	for c, n := range countPairs(cards) {
		if !Legal(c.Month(), c.Design()) {
			t.Fatalf("illegal card %v in deck", c)
		}
		if n != Copies(c.Month(), c.Design()) {
			t.Fatalf("%s: expected %d copies, got %d", c.Name(), Copies(c.Month(), c.Design()), n)
		}
	}
}

func TestNewDeckIsComplete(t *testing.T) {
	d := NewDeck()
	assertFullDeck(t, d.Cards())
	cards := d.Cards()
	if cards[0] != MustCard(January, Light) || cards[1] != MustCard(January, Ribbon) {
		t.Fatalf("unexpected construction order: %v %v", cards[0].Name(), cards[1].Name())
	}
}

func TestDrawTakesTop(t *testing.T) {
	d := NewDeck()
	c, err := d.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if c != MustCard(December, Chaff) {
		t.Fatalf("expected December chaff on top, got %s", c.Name())
	}
	if d.Len() != DeckSize-1 {
		t.Fatalf("expected %d cards left, got %d", DeckSize-1, d.Len())
	}
}

func TestDrawUnderflow(t *testing.T) {
	d := NewDeck()
	for range DeckSize {
		if _, err := d.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := d.Draw(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
	if !d.Empty() {
		t.Fatal("deck should be empty")
	}
}

func TestDrawNUnderflowKeepsCards(t *testing.T) {
	d := NewDeck()
	if _, err := d.DrawN(40); err != nil {
		t.Fatal(err)
	}
	if _, err := d.DrawN(9); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
	if d.Len() != 8 {
		t.Fatalf("a failed DrawN must not remove cards, %d left", d.Len())
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewDeck()
	before := d.Cards()
	d.Shuffle(rand.New(rand.NewPCG(1, 2)))
	after := d.Cards()
	assertFullDeck(t, after)
	moved := 0
	for i := range before {
		if before[i] != after[i] {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("shuffle left the deck unchanged")
	}
}

func TestInitializeResets(t *testing.T) {
	d := NewDeck()
	d.DrawN(30)
	d.Initialize()
	assertFullDeck(t, d.Cards())
	d.Clear()
	if d.Len() != 0 {
		t.Fatal("clear should empty the deck")
	}
}
