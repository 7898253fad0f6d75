package koikoi

import (
	"encoding/json"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
)

// State is the serializable view of a game between two turns.
type State struct {
	GameID   string             `json:"game_id"`
	Round    int                `json:"round"`
	Dealer   Side               `json:"dealer"`
	DeckSize int                `json:"deck_size"`
	Table    []hanafuda.Card    `json:"table"`
	Hands    [2][]hanafuda.Card `json:"hands"`
	Piles    [2][]hanafuda.Card `json:"piles"`
	KoiKoi   [2]bool            `json:"koikoi"`
	Totals   [2]int             `json:"totals"`
	Redeals  int                `json:"redeals"`
}

// State captures the current round.
func (g *Game) State() State {
	s := State{
		GameID:   g.ID.String(),
		Round:    g.round + 1,
		Dealer:   g.dealer,
		DeckSize: g.deck.Len(),
		Table:    g.table.Cards(),
		KoiKoi:   g.koikoi,
		Totals:   g.totals,
		Redeals:  g.redeals,
	}
	for _, side := range Sides {
		s.Hands[side] = g.hands[side].Cards()
		s.Piles[side] = g.piles[side].Cards()
	}
	return s
}

// Snapshot serializes the current state to JSON.
func (g *Game) Snapshot() ([]byte, error) {
	return json.Marshal(g.State())
}
