package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Bounds of the guessing range, inclusive
const (
	MinValue = 1
	MaxValue = 100
)

// ErrOutOfRange is returned when a value falls outside [MinValue, MaxValue]
var ErrOutOfRange = errors.New("value out of range")

// Guess is a validated candidate number submitted by the player
type Guess struct {
	value int
}

// NewGuess validates v and wraps it in a Guess
func NewGuess(v int) (Guess, error) {
	if v < MinValue || v > MaxValue {
		return Guess{}, fmt.Errorf("guess value must be between %d and %d, got %d: %w", MinValue, MaxValue, v, ErrOutOfRange)
	}
	return Guess{value: v}, nil
}

// Value returns the guessed number
func (g Guess) Value() int {
	return g.value
}

// Outcome is the result of comparing a guess against the secret
type Outcome int

const (
	TooSmall Outcome = iota
	TooBig
	Win
)

func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "Too small!"
	case TooBig:
		return "Too big!"
	case Win:
		return "You win!"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Secret is the number the player has to find. It never changes once drawn.
type Secret struct {
	value int
}

// NewSecret draws a secret uniformly from [MinValue, MaxValue]
func NewSecret(r *rand.Rand) Secret {
	return Secret{value: MinValue + r.IntN(MaxValue-MinValue+1)}
}

// Value returns the secret number
func (s Secret) Value() int {
	return s.value
}

// Compare reports how g relates to the secret
func (s Secret) Compare(g Guess) Outcome {
	switch {
	case g.value < s.value:
		return TooSmall
	case g.value > s.value:
		return TooBig
	default:
		return Win
	}
}
