// Package money converts between decimal amounts and the integer minor units
// (kopecks) they are stored as.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

const Scale = 2

var (
	minorFactor = decimal.New(1, Scale)
	// MaxAmount is the largest amount whose minor units fit into an int64.
	MaxAmount = FromMinor(math.MaxInt64)
)

// FromMinor turns stored minor units into a decimal amount.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -Scale)
}

// ToMinor turns a decimal amount into minor units. Amounts with more than
// two fraction digits are rounded half away from zero.
func ToMinor(d decimal.Decimal) int64 {
	return d.Mul(minorFactor).Round(0).IntPart()
}

// Fits reports whether d can be stored as minor units without overflow.
func Fits(d decimal.Decimal) bool {
	return d.Round(Scale).Abs().LessThanOrEqual(MaxAmount)
}

// HasScale reports whether d fits into two fraction digits without rounding.
func HasScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(Scale))
}

// Format renders d with exactly two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
