package koikoi

import (
	"context"
	"slices"
	"testing"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
)

// fixedSource arranges the deck in the queued orders, one per Shuffle call,
// and leaves it in construction order once the queue is empty.
type fixedSource struct {
	orders [][]hanafuda.Card
	n      int
}

func (s *fixedSource) IntN(n int) int { return s.n % n }

func (s *fixedSource) Shuffle(n int, swap func(i, j int)) {
	if len(s.orders) == 0 {
		return
	}
	target := s.orders[0]
	s.orders = s.orders[1:]
	cur := hanafuda.NewDeck().Cards()
	for i := range target {
		for j := i; j < n; j++ {
			if cur[j] == target[i] {
				swap(i, j)
				cur[i], cur[j] = cur[j], cur[i]
				break
			}
		}
	}
}

// arrange builds a deck order dealing the given cards, with draws coming off
// the deck in the listed order after the deal.
func arrange(t *testing.T, nonDealer, table, dealer, draws []hanafuda.Card) []hanafuda.Card {
	t.Helper()
	rest := hanafuda.NewDeck().Cards()
	for _, group := range [][]hanafuda.Card{nonDealer, table, dealer, draws} {
		for _, c := range group {
			i := slices.Index(rest, c)
			if i < 0 {
				t.Fatalf("card %s used too many times", c.Name())
			}
			rest = slices.Delete(rest, i, i+1)
		}
	}
	out := rest
	for i := len(draws) - 1; i >= 0; i-- {
		out = append(out, draws[i])
	}
	out = append(out, dealer...)
	out = append(out, table...)
	out = append(out, nonDealer...)
	return out
}

// scripted answers from its queues, falling back to the first valid index
// and to koiKoi for continue decisions.
type scripted struct {
	hand   []int
	table  []int
	cont   []bool
	koiKoi bool

	handReqs  []HandRequest
	tableReqs []TableRequest
	contReqs  []ContinueRequest
}

func (s *scripted) HandIndex(_ context.Context, req HandRequest) (int, error) {
	s.handReqs = append(s.handReqs, req)
	if len(s.hand) > 0 {
		i := s.hand[0]
		s.hand = s.hand[1:]
		return i, nil
	}
	return req.Valid[0], nil
}

func (s *scripted) TableIndex(_ context.Context, req TableRequest) (int, error) {
	s.tableReqs = append(s.tableReqs, req)
	if len(s.table) > 0 {
		i := s.table[0]
		s.table = s.table[1:]
		return i, nil
	}
	return req.Valid[0], nil
}

func (s *scripted) ContinueDecision(_ context.Context, req ContinueRequest) (bool, error) {
	s.contReqs = append(s.contReqs, req)
	if len(s.cont) > 0 {
		c := s.cont[0]
		s.cont = s.cont[1:]
		return c, nil
	}
	return s.koiKoi, nil
}

type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds(k EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func card(m hanafuda.Month, d hanafuda.Design) hanafuda.Card { return hanafuda.MustCard(m, d) }

func assertConserved(t *testing.T, g *Game) {
	t.Helper()
	all := g.Deck()
	all = append(all, g.Table()...)
	for _, s := range Sides {
		all = append(all, g.Hand(s)...)
		all = append(all, g.Pile(s)...)
	}
	if len(all) != hanafuda.DeckSize {
		t.Fatalf("expected %d cards in play, got %d", hanafuda.DeckSize, len(all))
	}
	counts := map[hanafuda.Card]int{}
	for _, c := range all {
		counts[c]++
	}
	for c, n := range counts {
		if n != hanafuda.Copies(c.Month(), c.Design()) {
			t.Fatalf("%s appears %d times", c.Name(), n)
		}
	}
}
