package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/brentyelle/koikoi-server-client/domain/cpu"
	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
	"github.com/brentyelle/koikoi-server-client/internal/config"
	"github.com/brentyelle/koikoi-server-client/ledger"
	"github.com/brentyelle/koikoi-server-client/rng"
)

type simStats struct {
	Games   int
	Wins    [2]int
	Ties    int
	Points  [2]int
	Rounds  int
	Redeals int
}

func (s *simStats) add(sum koikoi.Summary) {
	s.Games++
	if sum.Tie {
		s.Ties++
	} else {
		s.Wins[sum.Winner]++
	}
	for _, side := range koikoi.Sides {
		s.Points[side] += sum.Totals[side]
	}
	s.Rounds += sum.Rounds
	s.Redeals += sum.Redeals
}

func (s simStats) table() pterm.TableData {
	avg := func(side koikoi.Side) string {
		if s.Rounds == 0 {
			return "0.00"
		}
		return fmt.Sprintf("%.2f", float64(s.Points[side])/float64(s.Rounds))
	}
	return pterm.TableData{
		{"Side", "Wins", "Points", "Per round"},
		{"First CPU", strconv.Itoa(s.Wins[koikoi.Player]), strconv.Itoa(s.Points[koikoi.Player]), avg(koikoi.Player)},
		{"Second CPU", strconv.Itoa(s.Wins[koikoi.CPU]), strconv.Itoa(s.Points[koikoi.CPU]), avg(koikoi.CPU)},
		{"Ties", strconv.Itoa(s.Ties), "", ""},
	}
}

// simulate plays games CPU against CPU and checks each round history.
func simulate(ctx context.Context, games, rounds int, src rng.Source, logger *slog.Logger, progress func()) (simStats, error) {
	var stats simStats
	for i := range games {
		var history *ledger.Blockchain
		g := koikoi.New(cpu.New(src), cpu.New(src), src,
			koikoi.WithLogger(logger),
			koikoi.WithRoundHook(func(r koikoi.RoundResult) error {
				return history.Append(r)
			}),
		)
		history = ledger.NewBlockchain(g.ID.String())
		sum, err := g.Play(ctx, rounds)
		if err != nil {
			return stats, fmt.Errorf("game %d: %w", i+1, err)
		}
		if err := history.Verify(); err != nil {
			return stats, fmt.Errorf("game %d history: %w", i+1, err)
		}
		stats.add(sum)
		if progress != nil {
			progress()
		}
	}
	return stats, nil
}

func runSim(ctx context.Context, cfg config.Config, src rng.Source, logger *slog.Logger) error {
	bar, err := pterm.DefaultProgressbar.WithTotal(cfg.Games).WithTitle("Simulating games").Start()
	if err != nil {
		return err
	}
	stats, err := simulate(ctx, cfg.Games, cfg.Rounds, src, logger, func() { bar.Increment() })
	if _, stopErr := bar.Stop(); stopErr != nil {
		logger.Warn("stopping progress bar", "error", stopErr)
	}
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%d games, %d rounds, %d redeals", stats.Games, stats.Rounds, stats.Redeals)
	return pterm.DefaultTable.WithHasHeader().WithData(stats.table()).Render()
}
