package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/kula-app/guess-the-number/internal/config"
	"github.com/kula-app/guess-the-number/internal/game"
	"github.com/kula-app/guess-the-number/internal/logging"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the player guessed the number.
// If the run function returns an error, the game could not be completed.
func run(ctx context.Context, args []string, environ []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// The game takes no flags, but -h should still print usage
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s\n\nGuess a secret number between %d and %d, one guess per line on stdin.\n", flags.Name(), game.MinValue, game.MaxValue)
	}
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	cfg, err := config.Load(environ)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so they never mix with the game on stdout
	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	logger.Info("configuration loaded", "log_level", cfg.LogLevel, "seeded", cfg.Seed != 0)

	secret := game.NewSecret(newRand(cfg.Seed))
	logger.Debug("secret number drawn", "min", game.MinValue, "max", game.MaxValue)

	if err := game.New(logger, secret).Play(ctx, stdin, stdout); err != nil {
		return fmt.Errorf("game ended: %w", err)
	}
	return nil
}

// newRand returns a generator seeded with seed, or randomly when seed is 0
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
