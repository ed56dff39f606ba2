// runestone finds the best placement of a fixed set of rune stones on a
// small board. It takes no arguments; see config for RUNESTONE_*
// environment overrides and the optional puzzle file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/runestone/config"
	"github.com/domino14/runestone/solver"
)

func setUpLogging(level string) zerolog.Logger {
	var logger zerolog.Logger
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	logger = zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}

func newSolver(cfg *config.Config) (*solver.Solver, error) {
	mode, err := solver.ParseMode(cfg.GetString(config.ConfigMode))
	if err != nil {
		return nil, err
	}
	s := new(solver.Solver)
	s.Init()
	s.SetMode(mode)
	s.SetThreshold(cfg.GetInt(config.ConfigThreshold))
	s.SetThresholdCap(cfg.GetInt(config.ConfigThresholdCap))
	s.SetAllowSkip(cfg.GetBool(config.ConfigAllowSkip))
	s.SetTranspositionTableOptim(cfg.GetBool(config.ConfigTranspositionTable))
	s.SetTableMemoryFraction(cfg.GetFloat64(config.ConfigTableMemoryFraction))
	return s, nil
}

// run solves the configured puzzle and prints the result to w.
func run(cfg *config.Config, w io.Writer) error {
	s, err := newSolver(cfg)
	if err != nil {
		return err
	}
	pieces, err := cfg.Pieces()
	if err != nil {
		return err
	}
	start := time.Now()
	best, err := s.Solve(cfg.NewBoard(), pieces)
	elapsed := time.Since(start)
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Fprintln(w, "no solution found")
		fmt.Fprintf(w, "elapsed: %s\n", elapsed)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, best.String())
	fmt.Fprintf(w, "elapsed: %s\n", elapsed)
	return nil
}

func main() {
	cfg := config.DefaultConfig()
	err := cfg.Load()
	logger := setUpLogging(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		logger.Fatal().Err(err).Msg("bad-config")
	}
	logger.Debug().Msgf("Loaded config: %v", cfg.AllSettings())

	if err := run(cfg, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("search-failed")
	}
}
