package cpu

import (
	"context"
	"slices"
	"testing"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
	"github.com/brentyelle/koikoi-server-client/rng"
)

// constSource always draws the same value.
type constSource int

func (c constSource) IntN(n int) int              { return int(c) % n }
func (c constSource) Shuffle(int, func(i, j int)) {}

func TestKoiKoiChance(t *testing.T) {
	cases := map[int]int{0: 25, 2: 25, 3: 50, 6: 50, 7: 75, 10: 75, 11: 90, 40: 90}
	for raw, want := range cases {
		if got := KoiKoiChance(raw); got != want {
			t.Fatalf("raw %d: expected %d, got %d", raw, want, got)
		}
	}
}

func TestContinueDecisionThreshold(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		draw int
		raw  int
		want bool
	}{
		{24, 1, true},
		{25, 1, false},
		{49, 5, true},
		{50, 5, false},
		{74, 8, true},
		{75, 8, false},
		{89, 11, true},
		{90, 11, false},
	}
	for _, c := range cases {
		p := New(constSource(c.draw))
		got, err := p.ContinueDecision(ctx, koikoi.ContinueRequest{OwnRawScore: c.raw})
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("draw %d raw %d: expected %v, got %v", c.draw, c.raw, c.want, got)
		}
	}
}

func TestHandIndexPicksMatchingCard(t *testing.T) {
	p := New(rng.NewSeeded(4))
	hand := hanafuda.NewCollection(
		hanafuda.MustCard(hanafuda.January, hanafuda.Chaff),
		hanafuda.MustCard(hanafuda.May, hanafuda.Seed),
		hanafuda.MustCard(hanafuda.July, hanafuda.Ribbon),
		hanafuda.MustCard(hanafuda.December, hanafuda.Light),
	).Cards()
	table := []hanafuda.Card{hanafuda.MustCard(hanafuda.July, hanafuda.Chaff)}
	req := koikoi.HandRequest{Hand: hand, Table: table, Valid: []int{2}}
	for range 50 {
		i, err := p.HandIndex(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if i != 2 {
			t.Fatalf("only the July ribbon matches, got index %d", i)
		}
	}
}

func TestGiveUpCoversHand(t *testing.T) {
	p := New(rng.NewSeeded(8))
	hand := hanafuda.NewCollection(
		hanafuda.MustCard(hanafuda.January, hanafuda.Chaff),
		hanafuda.MustCard(hanafuda.May, hanafuda.Seed),
		hanafuda.MustCard(hanafuda.July, hanafuda.Ribbon),
	).Cards()
	seen := map[int]bool{}
	for range 200 {
		i, err := p.HandIndex(context.Background(), koikoi.HandRequest{Hand: hand, Valid: []int{0, 1, 2}, GiveUp: true})
		if err != nil {
			t.Fatal(err)
		}
		seen[i] = true
	}
	if len(seen) != 3 {
		t.Fatalf("give-up choice should reach every card, saw %v", seen)
	}
}

func TestTableIndexFromValid(t *testing.T) {
	p := New(rng.NewSeeded(2))
	valid := []int{1, 3, 4}
	for range 100 {
		j, err := p.TableIndex(context.Background(), koikoi.TableRequest{Valid: valid})
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(valid, j) {
			t.Fatalf("index %d not in %v", j, valid)
		}
	}
}
