package hanafuda

import (
	"slices"
	"testing"
)

func TestMatchingAsymmetry(t *testing.T) {
	lightning := MustCard(November, Chaff)
	for _, x := range NewDeck().Cards() {
		if x.IsLightning() {
			continue
		}
		if !Matches(lightning, x) {
			t.Fatalf("lightning should match %s", x.Name())
		}
		if Matches(x, lightning) != (x.Month() == November) {
			t.Fatalf("%s matching lightning on the table should depend on month", x.Name())
		}
	}
}

func TestFindMatches(t *testing.T) {
	table := NewCollection(
		MustCard(January, Chaff),
		MustCard(March, Light),
		MustCard(March, Chaff),
		MustCard(November, Chaff),
	)
	if got := FindMatches(MustCard(March, Ribbon), table); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", got)
	}
	if got := FindMatches(MustCard(November, Chaff), table); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("lightning should match everything, got %v", got)
	}
	if got := FindMatches(MustCard(November, Light), table); !slices.Equal(got, []int{3}) {
		t.Fatalf("expected [3], got %v", got)
	}
	if got := FindMatches(MustCard(June, Seed), table); len(got) != 0 {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestHasAnyMatch(t *testing.T) {
	table := NewCollection(MustCard(January, Chaff), MustCard(February, Chaff))
	hand := NewCollection(MustCard(May, Seed), MustCard(June, Seed))
	if HasAnyMatch(hand, table) {
		t.Fatal("no hand card shares a month with the table")
	}
	hand.AddCard(MustCard(November, Chaff))
	if !HasAnyMatch(hand, table) {
		t.Fatal("lightning in hand should match")
	}
	if got := MatchableHand(hand, table); !slices.Equal(got, []int{2}) {
		t.Fatalf("expected [2], got %v", got)
	}
	if HasAnyMatch(hand, NewCollection()) {
		t.Fatal("nothing matches an empty table")
	}
}
