package koikoi

import "github.com/brentyelle/koikoi-server-client/domain/hanafuda"

type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventInstantWin   EventKind = "instant_win"
	EventState        EventKind = "state"
	EventDeckDraw     EventKind = "deck_draw"
	EventCardToTable  EventKind = "card_to_table"
	EventMatch        EventKind = "match"
	EventKoiKoi       EventKind = "koikoi"
	EventSettled      EventKind = "settled"
	EventNoScore      EventKind = "no_score"
	EventGameOver     EventKind = "game_over"
)

// Event describes one step of a game. GameID, Round, Dealer, DeckSize and
// Totals are filled by the game for every event; the other fields depend on
// Kind.
type Event struct {
	Kind     EventKind       `json:"kind"`
	GameID   string          `json:"game_id"`
	Round    int             `json:"round"`
	Dealer   Side            `json:"dealer"`
	Side     Side            `json:"side"`
	Card     *hanafuda.Card  `json:"card,omitempty"`
	Matched  *hanafuda.Card  `json:"matched,omitempty"`
	Hand     []hanafuda.Card `json:"hand,omitempty"`
	Table    []hanafuda.Card `json:"table,omitempty"`
	Pile     []hanafuda.Card `json:"pile,omitempty"`
	Yaku     []hanafuda.Yaku `json:"yaku,omitempty"`
	DeckSize int             `json:"deck_size"`
	Points   int             `json:"points,omitempty"`
	Totals   [2]int          `json:"totals"`
	Redeal   bool            `json:"redeal,omitempty"`
	Summary  *Summary        `json:"summary,omitempty"`
}

// Observer receives game events synchronously while the game runs. Observe
// may read the Game but must not modify it.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
