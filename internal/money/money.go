// Package money handles monetary amounts as integer cents.
//
// Amounts enter the system as decimal numbers on the JSON boundary and are
// converted to cents exactly once; every aggregation after that is plain
// int64 addition, so totals never drift.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// Money is a monetary amount in cents.
type Money int64

// FromFloat converts a decimal amount to cents with half-up rounding.
func FromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float64 returns the decimal value for JSON responses.
func (m Money) Float64() float64 {
	return float64(m) / 100.0
}

// FormatBRL renders the amount in Brazilian currency notation, e.g.
// "R$ 1.234,56". Negative amounts render as "-R$ 1.234,56".
func (m Money) FormatBRL() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	intPart := strconv.FormatInt(cents/100, 10)
	grouped := ""
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped += "."
		}
		grouped += string(digit)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, cents%100)
}
