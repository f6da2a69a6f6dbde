package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when input ends before the secret is found
var ErrInputClosed = errors.New("input closed before the number was guessed")

// Game runs the read/parse/compare/report cycle against a single secret
type Game struct {
	logger *slog.Logger
	secret Secret
}

// New creates a new game around secret
func New(logger *slog.Logger, secret Secret) *Game {
	return &Game{
		logger: logger,
		secret: secret,
	}
}

// Play prompts for guesses on in and reports on out until the secret is found.
//
// Non-numeric lines are reported and skipped. A read failure, end of input or
// an out-of-range guess ends the game with an error.
func (g *Game) Play(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Guess the number!")
	fmt.Fprintln(out, "Please input your guess.")

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read line: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			return ErrInputClosed
		}

		n, parseErr := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
		if parseErr != nil {
			g.logger.Debug("rejected input", "input", strings.TrimSpace(line), "error", parseErr)
			fmt.Fprintln(out, "Please input a number")
			if err != nil {
				return ErrInputClosed
			}
			continue
		}

		guess, guessErr := NewGuess(int(n))
		if guessErr != nil {
			return guessErr
		}

		fmt.Fprintf(out, "You guessed: %d\n", guess.Value())
		outcome := g.secret.Compare(guess)
		fmt.Fprintln(out, outcome)
		g.logger.Debug("guess evaluated", "guess", guess.Value(), "outcome", outcome)

		if outcome == Win {
			return nil
		}
		if err != nil {
			return ErrInputClosed
		}
	}
}
