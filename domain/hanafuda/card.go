package hanafuda

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
)

// Month of a card, January = 1 through December = 12.
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Design constants are declared in display rank order.
type Design uint8

const (
	Light Design = iota
	Seed
	Ribbon
	Chaff
)

// CardsPerMonth is the number of cards of every month in a full deck.
const CardsPerMonth = 4

var monthNames = [...]string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

var flowerNames = [...]string{"", "Pine", "Plum", "Cherry", "Wisteria", "Iris", "Peony",
	"Clover", "Silvergrass", "Chrysanthemum", "Maple", "Willow", "Paulownia"}

var seedNames = map[Month]string{
	February:  "Bush Warbler",
	April:     "Cuckoo",
	May:       "Bridge",
	June:      "Butterflies",
	July:      "Boar",
	August:    "Geese",
	September: "Sake Cup",
	October:   "Deer",
	November:  "Swallow",
}

var lightNames = map[Month]string{
	January:  "Crane & Sun",
	March:    "Curtain",
	August:   "Full Moon",
	November: "Rain Man",
	December: "Phoenix",
}

// monthLayout lists, per month, how many cards of each design exist.
var monthLayout = [13][4]int{
	January:   {1, 0, 1, 2},
	February:  {0, 1, 1, 2},
	March:     {1, 0, 1, 2},
	April:     {0, 1, 1, 2},
	May:       {0, 1, 1, 2},
	June:      {0, 1, 1, 2},
	July:      {0, 1, 1, 2},
	August:    {1, 1, 0, 2},
	September: {0, 1, 1, 2},
	October:   {0, 1, 1, 2},
	November:  {1, 1, 1, 1},
	December:  {1, 0, 0, 3},
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", uint8(m))
	}
	return monthNames[m]
}

// Flower returns the plant associated with the month.
func (m Month) Flower() string {
	if m < January || m > December {
		return "?"
	}
	return flowerNames[m]
}

func (d Design) String() string {
	switch d {
	case Light:
		return "Light"
	case Seed:
		return "Seed"
	case Ribbon:
		return "Ribbon"
	case Chaff:
		return "Chaff"
	default:
		return fmt.Sprintf("Design(%d)", uint8(d))
	}
}

// Copies reports how many cards with this month and design a full deck holds.
func Copies(month Month, design Design) int {
	if month < January || month > December || design > Chaff {
		return 0
	}
	return monthLayout[month][design]
}

// Legal reports whether (month, design) is one of the deck's combinations.
func Legal(month Month, design Design) bool {
	return Copies(month, design) > 0
}

// Card is a single Hanafuda card.
type Card struct {
	month  Month
	design Design
}

// NewCard creates a Card, rejecting combinations that do not exist in the deck.
func NewCard(month Month, design Design) (Card, error) {
	if !Legal(month, design) {
		return Card{}, fmt.Errorf("%w: month %d, design %d", ErrIllegalCard, month, design)
	}
	return Card{month: month, design: design}, nil
}

// MustCard is like NewCard but panics on an illegal combination.
func MustCard(month Month, design Design) Card {
	c, err := NewCard(month, design)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Month() Month   { return c.month }
func (c Card) Design() Design { return c.design }

func (c Card) IsLight() bool    { return c.design == Light }
func (c Card) IsDryLight() bool { return c.IsLight() && c.month != November }
func (c Card) IsRainMan() bool  { return c.IsLight() && c.month == November }

func (c Card) IsRibbon() bool { return c.design == Ribbon }

func (c Card) IsRedRibbon() bool {
	if !c.IsRibbon() {
		return false
	}
	switch c.month {
	case April, May, July, November:
		return true
	}
	return false
}

func (c Card) IsBlueRibbon() bool {
	if !c.IsRibbon() {
		return false
	}
	switch c.month {
	case June, September, October:
		return true
	}
	return false
}

func (c Card) IsPoetryRibbon() bool {
	return c.IsRibbon() && c.month >= January && c.month <= March
}

func (c Card) IsSeed() bool { return c.design == Seed }

func (c Card) isSeedOf(m Month) bool { return c.IsSeed() && c.month == m }

func (c Card) IsBushWarbler() bool { return c.isSeedOf(February) }
func (c Card) IsCuckoo() bool      { return c.isSeedOf(April) }
func (c Card) IsBridge() bool      { return c.isSeedOf(May) }
func (c Card) IsButterflies() bool { return c.isSeedOf(June) }
func (c Card) IsBoar() bool        { return c.isSeedOf(July) }
func (c Card) IsGeese() bool       { return c.isSeedOf(August) }
func (c Card) IsSakeCup() bool     { return c.isSeedOf(September) }
func (c Card) IsDeer() bool        { return c.isSeedOf(October) }
func (c Card) IsSwallow() bool     { return c.isSeedOf(November) }

func (c Card) IsChaff() bool      { return c.design == Chaff }
func (c Card) IsPlainChaff() bool { return c.IsChaff() && c.month != November }
func (c Card) IsLightning() bool  { return c.IsChaff() && c.month == November }

// IsRainy reports whether the card is Rain Man or Lightning.
func (c Card) IsRainy() bool { return c.IsRainMan() || c.IsLightning() }

// Less orders cards by month, then by design rank. The order only affects display.
func (c Card) Less(o Card) bool {
	if c.month != o.month {
		return c.month < o.month
	}
	return c.design < o.design
}

// Compare returns -1, 0 or +1 following Less.
func (c Card) Compare(o Card) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	}
	return 0
}

// DesignName returns the specific name of the card, e.g. "Sake Cup" or "Poetry Ribbon".
func (c Card) DesignName() string {
	switch c.design {
	case Light:
		return lightNames[c.month]
	case Seed:
		return seedNames[c.month]
	case Ribbon:
		switch {
		case c.IsPoetryRibbon():
			return "Poetry Ribbon"
		case c.IsBlueRibbon():
			return "Blue Ribbon"
		default:
			return "Red Ribbon"
		}
	default:
		if c.IsLightning() {
			return "Lightning"
		}
		return "Plain Chaff"
	}
}

// Name returns the uncoloured display name, for example
// "November (Willow) Light ~ Rain Man [Rainy]".
func (c Card) Name() string {
	name := fmt.Sprintf("%s (%s) %s", c.month, c.month.Flower(), c.design)
	if c.IsPlainChaff() {
		return name
	}
	name += " ~ " + c.DesignName()
	if c.IsRainy() {
		name += " [Rainy]"
	}
	return name
}

// String returns Name coloured by design for terminal output.
func (c Card) String() string {
	switch c.design {
	case Light:
		return pterm.LightYellow(c.Name())
	case Seed:
		return pterm.LightGreen(c.Name())
	case Ribbon:
		return pterm.LightRed(c.Name())
	default:
		return pterm.Gray(c.Name())
	}
}

type cardJSON struct {
	Month  Month  `json:"month"`
	Design string `json:"design"`
	Name   string `json:"name,omitempty"`
}

// MarshalJSON encodes the card as its month, design and display name.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Month: c.month, Design: c.design.String(), Name: c.Name()})
}

// UnmarshalJSON decodes a card written by MarshalJSON and checks its legality.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	design, err := ParseDesign(raw.Design)
	if err != nil {
		return err
	}
	card, err := NewCard(raw.Month, design)
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// ParseDesign converts "Light", "Seed", "Ribbon" or "Chaff" to a Design.
func ParseDesign(s string) (Design, error) {
	for d := Light; d <= Chaff; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown design %q", ErrIllegalCard, s)
}
