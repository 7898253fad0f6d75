package koikoi

import (
	"context"
	"fmt"
	"slices"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
)

// HandRequest asks for a hand card. When GiveUp is set nothing in the hand
// matches the table and the chosen card is placed on the table.
type HandRequest struct {
	Side   Side            `json:"side"`
	Hand   []hanafuda.Card `json:"hand"`
	Table  []hanafuda.Card `json:"table"`
	Valid  []int           `json:"valid"`
	GiveUp bool            `json:"give_up"`
}

// TableRequest asks which table card Matcher captures.
type TableRequest struct {
	Side    Side            `json:"side"`
	Matcher hanafuda.Card   `json:"matcher"`
	Table   []hanafuda.Card `json:"table"`
	Valid   []int           `json:"valid"`
}

// ContinueRequest is sent when a turn changed the side's raw score.
type ContinueRequest struct {
	Side                 Side            `json:"side"`
	OwnRawScore          int             `json:"own_raw_score"`
	OwnFinalScore        int             `json:"own_final_score"`
	OpponentScore        int             `json:"opponent_score"`
	OpponentCalledKoiKoi bool            `json:"opponent_called_koikoi"`
	Yaku                 []hanafuda.Yaku `json:"yaku"`
}

// Decider supplies the choices of one side. Returned indices must belong to
// the request's Valid set. ContinueDecision returns true to call koi-koi and
// false to settle.
type Decider interface {
	HandIndex(ctx context.Context, req HandRequest) (int, error)
	TableIndex(ctx context.Context, req TableRequest) (int, error)
	ContinueDecision(ctx context.Context, req ContinueRequest) (bool, error)
}

func checkChoice(choice int, valid []int) error {
	if !slices.Contains(valid, choice) {
		return fmt.Errorf("%w: %d not in %v", ErrInvalidChoice, choice, valid)
	}
	return nil
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
