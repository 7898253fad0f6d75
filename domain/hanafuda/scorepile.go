package hanafuda

// KoiKoiThreshold is the raw score from which a settled hand is doubled.
const KoiKoiThreshold = 7

// CardView is the read-only access a Scorer needs.
type CardView interface {
	CountFunc(pred func(Card) bool) int
	CountMonth(m Month) int
}

// Yaku is a named scoring combination and the points it contributes.
type Yaku struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type yakuRule struct {
	name  string
	score func(Scorer) int
}

// Every rule is evaluated independently and the results are summed, so the
// same card can contribute to several yaku.
var yakuRules = []yakuRule{
	{"Sakura Viewing", Scorer.SakuraViewing},
	{"Moon Viewing", Scorer.MoonViewing},
	{"Lights", Scorer.Lights},
	{"Ino-Shika-Cho", Scorer.InoShikaCho},
	{"Seeds", Scorer.Seeds},
	{"Poetry Ribbons", Scorer.PoetryRibbons},
	{"Blue Ribbons", Scorer.BlueRibbons},
	{"Ribbons", Scorer.Ribbons},
	{"Four of a Kind", Scorer.FourOfAKind},
	{"Chaff", Scorer.Chaff},
}

// Scorer evaluates yaku over a read-only view of captured cards.
type Scorer struct {
	view CardView
}

func NewScorer(view CardView) Scorer { return Scorer{view: view} }

func (s Scorer) has(pred func(Card) bool) bool { return s.view.CountFunc(pred) > 0 }

func (s Scorer) noRain() bool { return !s.has(Card.IsRainy) }

func isMarchLight(c Card) bool  { return c.IsLight() && c.month == March }
func isAugustLight(c Card) bool { return c.IsLight() && c.month == August }

func (s Scorer) SakuraViewing() int {
	if s.has(Card.IsSakeCup) && s.has(isMarchLight) && s.noRain() {
		return 5
	}
	return 0
}

func (s Scorer) MoonViewing() int {
	if s.has(Card.IsSakeCup) && s.has(isAugustLight) && s.noRain() {
		return 5
	}
	return 0
}

func (s Scorer) Lights() int {
	switch s.view.CountFunc(Card.IsLight) {
	case 3:
		return 6
	case 4:
		if s.has(Card.IsRainMan) {
			return 7
		}
		return 8
	case 5:
		return 15
	}
	return 0
}

func (s Scorer) InoShikaCho() int {
	if s.has(Card.IsBoar) && s.has(Card.IsDeer) && s.has(Card.IsButterflies) {
		return 5
	}
	return 0
}

func (s Scorer) Seeds() int {
	return over(s.view.CountFunc(Card.IsSeed), 4)
}

func (s Scorer) PoetryRibbons() int {
	if s.view.CountFunc(Card.IsPoetryRibbon) == 3 {
		return 5
	}
	return 0
}

func (s Scorer) BlueRibbons() int {
	if s.view.CountFunc(Card.IsBlueRibbon) == 3 {
		return 5
	}
	return 0
}

func (s Scorer) Ribbons() int {
	return over(s.view.CountFunc(Card.IsRibbon), 4)
}

func (s Scorer) FourOfAKind() int {
	pts := 0
	for m := January; m <= December; m++ {
		if s.view.CountMonth(m) == CardsPerMonth {
			pts += 4
		}
	}
	return pts
}

func (s Scorer) Chaff() int {
	return over(s.view.CountFunc(Card.IsChaff), 9)
}

// over returns n-base once n exceeds base, otherwise 0.
func over(n, base int) int {
	if n > base {
		return n - base
	}
	return 0
}

// Yaku lists the combinations currently scoring, in evaluation order.
func (s Scorer) Yaku() []Yaku {
	var out []Yaku
	for _, r := range yakuRules {
		if p := r.score(s); p > 0 {
			out = append(out, Yaku{Name: r.name, Points: p})
		}
	}
	return out
}

// RawScore sums every yaku.
func (s Scorer) RawScore() int {
	total := 0
	for _, r := range yakuRules {
		total += r.score(s)
	}
	return total
}

// FinalScore doubles a raw score of at least KoiKoiThreshold, then doubles
// again when the opponent has called koi-koi.
func (s Scorer) FinalScore(opponentCalledKoiKoi bool) int {
	return FinalScore(s.RawScore(), opponentCalledKoiKoi)
}

// FinalScore applies the settlement multipliers to a raw score.
func FinalScore(raw int, opponentCalledKoiKoi bool) int {
	score := raw
	if raw >= KoiKoiThreshold {
		score *= 2
	}
	if opponentCalledKoiKoi {
		score *= 2
	}
	return score
}

// ScorePile holds one side's captured cards. It only grows during a round.
type ScorePile struct {
	cards Collection
}

func NewScorePile(cards ...Card) *ScorePile {
	p := &ScorePile{}
	p.Add(cards...)
	return p
}

// Add puts captured cards on the pile.
func (p *ScorePile) Add(cards ...Card) {
	for _, c := range cards {
		p.cards.AddCard(c)
	}
}

func (p *ScorePile) Len() int                           { return p.cards.Len() }
func (p *ScorePile) Cards() []Card                      { return p.cards.Cards() }
func (p *ScorePile) Clear()                             { p.cards.Clear() }
func (p *ScorePile) CountDesign(d Design) int           { return p.cards.CountDesign(d) }
func (p *ScorePile) CountFunc(pred func(Card) bool) int { return p.cards.CountFunc(pred) }
func (p *ScorePile) CountMonth(m Month) int             { return p.cards.CountMonth(m) }
func (p *ScorePile) HasRainy() bool                     { return p.cards.HasRainy() }

// Scorer returns the yaku evaluator over this pile.
func (p *ScorePile) Scorer() Scorer { return NewScorer(p) }

func (p *ScorePile) RawScore() int { return p.Scorer().RawScore() }

func (p *ScorePile) FinalScore(opponentCalledKoiKoi bool) int {
	return p.Scorer().FinalScore(opponentCalledKoiKoi)
}

func (p *ScorePile) Yaku() []Yaku { return p.Scorer().Yaku() }
