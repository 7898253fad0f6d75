// Package cpu implements the automated Koi-Koi opponent.
package cpu

import (
	"context"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
	"github.com/brentyelle/koikoi-server-client/rng"
)

// Policy picks uniformly among legal moves and calls koi-koi with a
// probability that grows with its raw score. It never blocks.
type Policy struct {
	src rng.Source
}

func New(src rng.Source) *Policy {
	return &Policy{src: src}
}

// KoiKoiChance returns the percentage chance of calling koi-koi at raw score.
func KoiKoiChance(raw int) int {
	switch {
	case raw < 3:
		return 25
	case raw < 7:
		return 50
	case raw < 11:
		return 75
	default:
		return 90
	}
}

// HandIndex samples the whole hand, resampling until the card has a match.
// With GiveUp set any card will do.
func (p *Policy) HandIndex(_ context.Context, req koikoi.HandRequest) (int, error) {
	table := hanafuda.NewCollection(req.Table...)
	if req.GiveUp || !hanafuda.HasAnyMatch(hanafuda.NewCollection(req.Hand...), table) {
		return p.src.IntN(len(req.Hand)), nil
	}
	for {
		i := p.src.IntN(len(req.Hand))
		if len(hanafuda.FindMatches(req.Hand[i], table)) > 0 {
			return i, nil
		}
	}
}

func (p *Policy) TableIndex(_ context.Context, req koikoi.TableRequest) (int, error) {
	return req.Valid[p.src.IntN(len(req.Valid))], nil
}

func (p *Policy) ContinueDecision(_ context.Context, req koikoi.ContinueRequest) (bool, error) {
	return p.src.IntN(100) < KoiKoiChance(req.OwnRawScore), nil
}

var _ koikoi.Decider = (*Policy)(nil)
