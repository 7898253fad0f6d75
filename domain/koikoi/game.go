package koikoi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
	"github.com/brentyelle/koikoi-server-client/rng"
)

// Reason tells how a round ended.
type Reason string

const (
	ReasonSettled    Reason = "settled"
	ReasonInstantWin Reason = "instant_win"
	ReasonExhausted  Reason = "exhausted"
)

// RoundResult is the outcome of one counted round.
type RoundResult struct {
	Round   int    `json:"round"`
	Dealer  Side   `json:"dealer"`
	Scored  bool   `json:"scored"`
	Scorer  Side   `json:"scorer"`
	Points  int    `json:"points"`
	Reason  Reason `json:"reason"`
	Redeals int    `json:"redeals"`
	Totals  [2]int `json:"totals"`
}

// Summary is the final report of a game.
type Summary struct {
	GameID   string     `json:"game_id"`
	Rounds   int        `json:"rounds"`
	Redeals  int        `json:"redeals"`
	Totals   [2]int     `json:"totals"`
	Averages [2]float64 `json:"averages"`
	Winner   Side       `json:"winner"`
	Tie      bool       `json:"tie"`
}

// Game is a two-sided Koi-Koi match. It owns every card collection; deciders
// and observers only ever receive copies.
type Game struct {
	ID uuid.UUID

	rules     Rules
	src       rng.Source
	deciders  [2]Decider
	observers []Observer
	onRound   []func(RoundResult) error
	logger    *slog.Logger

	dealer    Side
	dealerSet bool

	deck   *hanafuda.Deck
	hands  [2]*hanafuda.Collection
	table  *hanafuda.Collection
	piles  [2]*hanafuda.ScorePile
	koikoi [2]bool
	totals [2]int

	round   int
	redeals int
}

// Option configures a Game.
type Option func(*Game)

func WithRules(r Rules) Option {
	return func(g *Game) { g.rules = r }
}

// WithDealer fixes the first dealer instead of drawing it at random.
func WithDealer(s Side) Option {
	return func(g *Game) {
		g.dealer = s
		g.dealerSet = true
	}
}

func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

// WithRoundHook registers f to run after every counted round. An error from f
// stops Play.
func WithRoundHook(f func(RoundResult) error) Option {
	return func(g *Game) { g.onRound = append(g.onRound, f) }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

func WithID(id uuid.UUID) Option {
	return func(g *Game) { g.ID = id }
}

// New creates a game between the player and cpu deciders. src drives the
// shuffle and, unless WithDealer is given, the choice of the first dealer.
func New(player, cpu Decider, src rng.Source, opts ...Option) *Game {
	g := &Game{
		ID:       uuid.New(),
		rules:    DefaultRules(),
		src:      src,
		deciders: [2]Decider{player, cpu},
		logger:   slog.New(slog.DiscardHandler),
		deck:     hanafuda.NewDeck(),
		hands:    [2]*hanafuda.Collection{hanafuda.NewCollection(), hanafuda.NewCollection()},
		table:    hanafuda.NewCollection(),
		piles:    [2]*hanafuda.ScorePile{hanafuda.NewScorePile(), hanafuda.NewScorePile()},
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.dealerSet {
		g.dealer = Side(src.IntN(2))
	}
	g.logger = g.logger.With("game", g.ID.String())
	return g
}

func (g *Game) Rules() Rules       { return g.rules }
func (g *Game) Dealer() Side       { return g.dealer }
func (g *Game) Round() int         { return g.round }
func (g *Game) Redeals() int       { return g.redeals }
func (g *Game) Totals() [2]int     { return g.totals }
func (g *Game) KoiKoi(s Side) bool { return g.koikoi[s] }
func (g *Game) DeckSize() int      { return g.deck.Len() }

func (g *Game) Hand(s Side) []hanafuda.Card { return g.hands[s].Cards() }
func (g *Game) Table() []hanafuda.Card      { return g.table.Cards() }
func (g *Game) Pile(s Side) []hanafuda.Card { return g.piles[s].Cards() }
func (g *Game) Deck() []hanafuda.Card       { return g.deck.Cards() }
func (g *Game) RawScore(s Side) int         { return g.piles[s].RawScore() }
func (g *Game) Yaku(s Side) []hanafuda.Yaku { return g.piles[s].Yaku() }

// Cleanup empties every collection, clears the koi-koi flags and refills the
// deck with all 48 cards.
func (g *Game) Cleanup() {
	for _, s := range Sides {
		g.hands[s].Clear()
		g.piles[s].Clear()
		g.koikoi[s] = false
	}
	g.table.Clear()
	g.deck.Initialize()
}

// Setup resets the round, shuffles, and deals the non-dealer, the table and
// the dealer in that order.
func (g *Game) Setup() error {
	g.Cleanup()
	g.deck.Shuffle(g.src)

	deal := func(dst *hanafuda.Collection, n int) error {
		cards, err := g.deck.DrawN(n)
		if err != nil {
			return err
		}
		for _, c := range cards {
			dst.AddCard(c)
		}
		return nil
	}
	if err := deal(g.hands[g.dealer.Other()], g.rules.HandSize); err != nil {
		return fmt.Errorf("dealing non-dealer: %w", err)
	}
	if err := deal(g.table, g.rules.TableSize); err != nil {
		return fmt.Errorf("dealing table: %w", err)
	}
	if err := deal(g.hands[g.dealer], g.rules.HandSize); err != nil {
		return fmt.Errorf("dealing dealer: %w", err)
	}

	want := hanafuda.DeckSize - 2*g.rules.HandSize - g.rules.TableSize
	if g.deck.Len() != want {
		return fmt.Errorf("%w: %d cards left in deck, want %d", ErrDealMismatch, g.deck.Len(), want)
	}
	return nil
}

// instantWinner checks the dealer's hand, then the non-dealer's.
func (g *Game) instantWinner() (Side, bool) {
	for _, s := range []Side{g.dealer, g.dealer.Other()} {
		if g.hands[s].InstantWin() {
			return s, true
		}
	}
	return 0, false
}

// PlayRound plays one counted round, redealing as often as the table asks
// for it.
func (g *Game) PlayRound(ctx context.Context) (RoundResult, error) {
	redeals := 0
	for {
		if err := ctx.Err(); err != nil {
			return RoundResult{}, err
		}
		if err := g.Setup(); err != nil {
			return RoundResult{}, fmt.Errorf("round %d setup: %w", g.round+1, err)
		}
		g.emit(Event{Kind: EventRoundStarted, Side: g.dealer})

		if s, ok := g.instantWinner(); ok {
			g.logger.Info("instant win", "round", g.round+1, "side", s)
			g.emit(Event{Kind: EventInstantWin, Side: s, Hand: g.hands[s].Cards(), Points: g.rules.InstantWinPoints})
			return g.finish(s, true, g.rules.InstantWinPoints, ReasonInstantWin, redeals)
		}
		if !g.table.InstantWin() {
			break
		}
		redeals++
		g.redeals++
		g.logger.Info("table instant win, redealing", "round", g.round+1)
		g.emit(Event{Kind: EventInstantWin, Table: g.table.Cards(), Redeal: true})
	}

	turn := g.dealer
	for {
		if err := ctx.Err(); err != nil {
			return RoundResult{}, err
		}
		g.emit(Event{
			Kind:  EventState,
			Side:  turn,
			Hand:  g.hands[turn].Cards(),
			Table: g.table.Cards(),
			Pile:  g.piles[turn].Cards(),
			Yaku:  g.piles[turn].Yaku(),
		})
		settled, err := g.playTurn(ctx, turn)
		if err != nil {
			return RoundResult{}, fmt.Errorf("round %d, %s turn: %w", g.round+1, turn, err)
		}
		if settled {
			pts := g.piles[turn].FinalScore(g.koikoi[turn.Other()])
			return g.finish(turn, true, pts, ReasonSettled, redeals)
		}
		if g.deck.Empty() {
			return g.finish(0, false, 0, ReasonExhausted, redeals)
		}
		turn = turn.Other()
	}
}

func (g *Game) finish(scorer Side, scored bool, points int, reason Reason, redeals int) (RoundResult, error) {
	res := RoundResult{
		Round:   g.round + 1,
		Dealer:  g.dealer,
		Scored:  scored,
		Scorer:  scorer,
		Points:  points,
		Reason:  reason,
		Redeals: redeals,
	}
	if scored {
		g.totals[scorer] += points
		g.dealer = scorer
		g.emit(Event{Kind: EventSettled, Side: scorer, Points: points, Pile: g.piles[scorer].Cards(), Yaku: g.piles[scorer].Yaku()})
	} else {
		g.emit(Event{Kind: EventNoScore})
	}
	g.round++
	res.Totals = g.totals
	g.logger.Info("round over", "round", res.Round, "reason", reason, "scorer", scorer, "points", points, "totals", g.totals)

	for _, f := range g.onRound {
		if err := f(res); err != nil {
			return res, fmt.Errorf("round %d hook: %w", res.Round, err)
		}
	}
	return res, nil
}

// Play runs the given number of counted rounds and reports the result.
func (g *Game) Play(ctx context.Context, rounds int) (Summary, error) {
	if rounds < 1 || rounds > g.rules.MaxRounds {
		return Summary{}, fmt.Errorf("%w: %d, want 1..%d", ErrInvalidRounds, rounds, g.rules.MaxRounds)
	}
	for range rounds {
		if _, err := g.PlayRound(ctx); err != nil {
			return Summary{}, err
		}
	}
	s := g.Summary()
	g.emit(Event{Kind: EventGameOver, Side: s.Winner, Summary: &s})
	return s, nil
}

// Summary reports totals and averages over the rounds played so far.
func (g *Game) Summary() Summary {
	s := Summary{
		GameID:  g.ID.String(),
		Rounds:  g.round,
		Redeals: g.redeals,
		Totals:  g.totals,
	}
	if g.round > 0 {
		for _, side := range Sides {
			s.Averages[side] = float64(g.totals[side]) / float64(g.round)
		}
	}
	switch {
	case g.totals[Player] > g.totals[CPU]:
		s.Winner = Player
	case g.totals[CPU] > g.totals[Player]:
		s.Winner = CPU
	default:
		s.Tie = true
	}
	return s
}

func (g *Game) emit(e Event) {
	e.GameID = g.ID.String()
	e.Round = g.round + 1
	e.Dealer = g.dealer
	e.DeckSize = g.deck.Len()
	e.Totals = g.totals
	for _, o := range g.observers {
		o.Observe(e)
	}
}
