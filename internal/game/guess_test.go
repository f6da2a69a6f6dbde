package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestNewGuess_InRange(t *testing.T) {
	for v := MinValue; v <= MaxValue; v++ {
		g, err := NewGuess(v)
		if err != nil {
			t.Fatalf("NewGuess(%d) returned error: %v", v, err)
		}
		if g.Value() != v {
			t.Errorf("NewGuess(%d).Value() = %d, want %d", v, g.Value(), v)
		}
	}
}

func TestNewGuess_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{name: "zero", value: 0},
		{name: "just above max", value: 101},
		{name: "negative", value: -5},
		{name: "large", value: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGuess(tt.value)
			if err == nil {
				t.Fatalf("NewGuess(%d) expected error, got nil", tt.value)
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NewGuess(%d) error = %v, want ErrOutOfRange", tt.value, err)
			}
		})
	}
}

func TestNewSecret_WithinBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := make(map[int]bool)

	for i := 0; i < 10000; i++ {
		s := NewSecret(r)
		if s.Value() < MinValue || s.Value() > MaxValue {
			t.Fatalf("NewSecret() = %d, want value in [%d, %d]", s.Value(), MinValue, MaxValue)
		}
		seen[s.Value()] = true
	}

	// Both ends of the range must be reachable
	if !seen[MinValue] {
		t.Errorf("NewSecret() never produced %d", MinValue)
	}
	if !seen[MaxValue] {
		t.Errorf("NewSecret() never produced %d", MaxValue)
	}
}

func TestNewSecret_SameSeed(t *testing.T) {
	a := NewSecret(rand.New(rand.NewPCG(42, 42)))
	b := NewSecret(rand.New(rand.NewPCG(42, 42)))

	if a.Value() != b.Value() {
		t.Errorf("secrets from equal seeds differ: %d != %d", a.Value(), b.Value())
	}
}

func TestSecret_Compare(t *testing.T) {
	secret := Secret{value: 50}

	tests := []struct {
		guess int
		want  Outcome
	}{
		{guess: 1, want: TooSmall},
		{guess: 30, want: TooSmall},
		{guess: 49, want: TooSmall},
		{guess: 50, want: Win},
		{guess: 51, want: TooBig},
		{guess: 70, want: TooBig},
		{guess: 100, want: TooBig},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("guess %d", tt.guess), func(t *testing.T) {
			g, err := NewGuess(tt.guess)
			if err != nil {
				t.Fatalf("NewGuess(%d) returned error: %v", tt.guess, err)
			}
			if got := secret.Compare(g); got != tt.want {
				t.Errorf("Compare(%d) = %v, want %v", tt.guess, got, tt.want)
			}
		})
	}
}
