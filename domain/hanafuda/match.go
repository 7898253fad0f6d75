package hanafuda

// Matches reports whether matcher, offered from a hand or the deck, can capture target.
// Lightning captures anything; otherwise the months must agree.
func Matches(matcher, target Card) bool {
	return matcher.IsLightning() || matcher.month == target.month
}

// FindMatches returns the table indices matcher can capture, in table order.
func FindMatches(matcher Card, table *Collection) []int {
	var idx []int
	for i, target := range table.cards {
		if Matches(matcher, target) {
			idx = append(idx, i)
		}
	}
	return idx
}

// HasAnyMatch reports whether some hand card can capture some table card.
func HasAnyMatch(hand, table *Collection) bool {
	return len(MatchableHand(hand, table)) > 0
}

// MatchableHand returns the hand indices having at least one match on the table.
func MatchableHand(hand, table *Collection) []int {
	var idx []int
	for i, card := range hand.cards {
		if len(FindMatches(card, table)) > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
