package koikoi

import "fmt"

// Side identifies one of the two seats at the table.
type Side int

const (
	Player Side = iota
	CPU
)

// Sides lists both seats in index order.
var Sides = [2]Side{Player, CPU}

func (s Side) Other() Side { return 1 - s }

func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case CPU:
		return "cpu"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "player":
		*s = Player
	case "cpu":
		*s = CPU
	default:
		return fmt.Errorf("unknown side %q", b)
	}
	return nil
}

// Rules holds the table parameters of a game.
type Rules struct {
	HandSize         int
	TableSize        int
	InstantWinPoints int
	MaxRounds        int
}

// DefaultRules is the standard two-player setup: 8 cards per hand, 8 on the
// table, 24 left in the deck.
func DefaultRules() Rules {
	return Rules{
		HandSize:         8,
		TableSize:        8,
		InstantWinPoints: 6,
		MaxRounds:        12,
	}
}
