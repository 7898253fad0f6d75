package koikoi

import (
	"context"
	"fmt"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
)

// Phase is a step of a single turn.
type Phase int

const (
	PhaseHand Phase = iota
	PhaseDeck
	PhaseContinue
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseHand:
		return "hand"
	case PhaseDeck:
		return "deck"
	case PhaseContinue:
		return "continue"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// playTurn runs one side's turn and reports whether that side settled.
func (g *Game) playTurn(ctx context.Context, side Side) (bool, error) {
	before := g.piles[side].RawScore()
	settled := false
	for phase := PhaseHand; phase != PhaseDone; {
		var err error
		next := phase + 1
		switch phase {
		case PhaseHand:
			err = g.handPhase(ctx, side)
		case PhaseDeck:
			err = g.deckPhase(ctx, side)
		case PhaseContinue:
			settled, err = g.continuePhase(ctx, side, before)
		}
		if err != nil {
			return false, fmt.Errorf("%s phase: %w", phase, err)
		}
		phase = next
	}
	return settled, nil
}

func (g *Game) handPhase(ctx context.Context, side Side) error {
	hand := g.hands[side]
	if hand.Len() == 0 {
		g.logger.Debug("empty hand, skipping hand phase", "side", side)
		return nil
	}
	d := g.deciders[side]

	valid := hanafuda.MatchableHand(hand, g.table)
	if len(valid) == 0 {
		valid = indices(hand.Len())
		i, err := d.HandIndex(ctx, HandRequest{Side: side, Hand: hand.Cards(), Table: g.table.Cards(), Valid: valid, GiveUp: true})
		if err != nil {
			return err
		}
		if err := checkChoice(i, valid); err != nil {
			return err
		}
		card, err := hand.PlayCard(i)
		if err != nil {
			return err
		}
		g.table.AddCard(card)
		g.emit(Event{Kind: EventCardToTable, Side: side, Card: &card})
		return nil
	}

	i, err := d.HandIndex(ctx, HandRequest{Side: side, Hand: hand.Cards(), Table: g.table.Cards(), Valid: valid})
	if err != nil {
		return err
	}
	if err := checkChoice(i, valid); err != nil {
		return err
	}
	card, err := hand.Get(i)
	if err != nil {
		return err
	}
	target, err := g.capture(ctx, side, card)
	if err != nil {
		return err
	}
	if _, err := hand.PlayCard(i); err != nil {
		return err
	}
	g.piles[side].Add(card, target)
	g.emit(Event{Kind: EventMatch, Side: side, Card: &card, Matched: &target})
	return nil
}

func (g *Game) deckPhase(ctx context.Context, side Side) error {
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}
	g.emit(Event{Kind: EventDeckDraw, Side: side, Card: &card})

	if len(hanafuda.FindMatches(card, g.table)) == 0 {
		g.table.AddCard(card)
		g.emit(Event{Kind: EventCardToTable, Side: side, Card: &card})
		return nil
	}
	target, err := g.capture(ctx, side, card)
	if err != nil {
		return err
	}
	g.piles[side].Add(card, target)
	g.emit(Event{Kind: EventMatch, Side: side, Card: &card, Matched: &target})
	return nil
}

// capture asks side which table card matcher takes and removes it from the table.
func (g *Game) capture(ctx context.Context, side Side, matcher hanafuda.Card) (hanafuda.Card, error) {
	valid := hanafuda.FindMatches(matcher, g.table)
	j, err := g.deciders[side].TableIndex(ctx, TableRequest{Side: side, Matcher: matcher, Table: g.table.Cards(), Valid: valid})
	if err != nil {
		return hanafuda.Card{}, err
	}
	if err := checkChoice(j, valid); err != nil {
		return hanafuda.Card{}, err
	}
	return g.table.PlayCard(j)
}

func (g *Game) continuePhase(ctx context.Context, side Side, before int) (bool, error) {
	pile := g.piles[side]
	raw := pile.RawScore()
	if raw == before {
		return false, nil
	}
	opp := side.Other()
	req := ContinueRequest{
		Side:                 side,
		OwnRawScore:          raw,
		OwnFinalScore:        pile.FinalScore(g.koikoi[opp]),
		OpponentScore:        g.piles[opp].FinalScore(g.koikoi[side]),
		OpponentCalledKoiKoi: g.koikoi[opp],
		Yaku:                 pile.Yaku(),
	}
	kk, err := g.deciders[side].ContinueDecision(ctx, req)
	if err != nil {
		return false, err
	}
	if !kk {
		return true, nil
	}
	g.koikoi[side] = true
	g.logger.Debug("koi-koi", "side", side, "raw", raw)
	g.emit(Event{Kind: EventKoiKoi, Side: side, Points: raw, Yaku: req.Yaku})
	return false, nil
}
