package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/brentyelle/koikoi-server-client/domain/cpu"
	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
	"github.com/brentyelle/koikoi-server-client/internal/config"
	"github.com/brentyelle/koikoi-server-client/ledger"
	"github.com/brentyelle/koikoi-server-client/rng"
)

func main() {
	envFile := flag.String("env", ".env", "optional file with KOIKOI_* settings")
	rounds := flag.Int("rounds", 0, "rounds to play, 1-12 (0 asks)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	sim := flag.Bool("sim", false, "let two CPU players play against each other")
	games := flag.Int("games", 100, "games to simulate with -sim")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = *rounds
		case "seed":
			cfg.Seed = *seed
		case "sim":
			if *sim {
				cfg.Mode = config.ModeSim
			}
		case "games":
			cfg.Games = *games
		case "log-level":
			if lvl, err := config.ParseLogLevel(*logLevel); err == nil {
				cfg.LogLevel = lvl
			} else {
				pterm.Warning.Println(err.Error())
			}
		}
	})
	if cfg.Mode == config.ModeSim && cfg.Rounds == 0 {
		cfg.Rounds = 12
	}
	if err := cfg.Validate(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	pterm.DefaultLogger.Level = ptermLevel(cfg.LogLevel)
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	var src rng.Source = rng.New()
	if cfg.Seed != 0 {
		src = rng.NewSeeded(cfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Mode == config.ModeSim {
		if err := runSim(ctx, cfg, src, logger); err != nil {
			logger.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Koi", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("-", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Koi", pterm.FgRed.ToStyle()),
	).Render()

	if cfg.Rounds == 0 {
		cfg.Rounds = askRounds()
	}
	if err := runGame(ctx, cfg.Rounds, src, logger); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// runGame plays the person at the terminal against the CPU.
func runGame(ctx context.Context, rounds int, src rng.Source, logger *slog.Logger) error {
	human := koikoi.Player
	var history *ledger.Blockchain
	g := koikoi.New(humanDecider{}, cpu.New(src), src,
		koikoi.WithLogger(logger),
		koikoi.WithObserver(renderer{human: human}),
		koikoi.WithRoundHook(func(r koikoi.RoundResult) error {
			return history.Append(r)
		}),
	)
	history = ledger.NewBlockchain(g.ID.String())
	logger.Debug("game created", "id", g.ID.String(), "dealer", g.Dealer())

	if _, err := g.Play(ctx, rounds); err != nil {
		return err
	}
	if err := history.Verify(); err != nil {
		return fmt.Errorf("round history: %w", err)
	}
	pterm.DefaultSection.Println("Round history")
	return pterm.DefaultTable.WithHasHeader().WithData(ledgerTable(history.Results(), human)).Render()
}
