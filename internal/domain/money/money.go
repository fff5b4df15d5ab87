package money

import (
	"fmt"
	"math"

	"hotel-management/internal/pkg/errs"
)

// MaxDollars bounds a single amount read from a client.
const MaxDollars = 1_000_000

var (
	ErrNegativeAmount = errs.New("money cannot be negative")
	ErrAmountTooLarge = errs.New("money exceeds maximum amount")
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromDollars rounds to the nearest cent.
func FromDollars(d float64) (Money, error) {
	if d < 0 || math.IsNaN(d) {
		return Money{}, ErrNegativeAmount
	}
	if d > MaxDollars {
		return Money{}, ErrAmountTooLarge
	}
	return Money{cents: int64(math.Round(d * 100))}, nil
}

// MustCents is for trusted values read back from storage.
func MustCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
