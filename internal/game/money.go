package game

import "fmt"

// Money is an amount in cents. Whole-unit bets and the payout ratios used by
// Rules always divide evenly, so no rounding is ever observed in play.
type Money int64

// Dollars returns n whole currency units as Money.
func Dollars(n int64) Money {
	return Money(n * 100)
}

// Cents returns the raw number of cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Half returns half of m.
func (m Money) Half() Money {
	return m / 2
}

// Units returns m expressed as a multiple of unit, e.g. bets won per round.
func (m Money) Units(unit Money) float64 {
	if unit == 0 {
		return 0
	}
	return float64(m) / float64(unit)
}

// IsWhole reports whether m is a whole number of currency units.
func (m Money) IsWhole() bool {
	return m%100 == 0
}

// String formats m as "$12.50" or "-$5.00".
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// Ratio is an exact payout or cost multiplier such as 3:2.
type Ratio struct {
	Num int64
	Den int64
}

// Of applies the ratio to m.
func (r Ratio) Of(m Money) Money {
	return Money(int64(m) * r.Num / r.Den)
}

// String returns the ratio in "3:2" form.
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}
