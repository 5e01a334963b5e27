package money

import (
	"github.com/shopspring/decimal"
)

// Amounts are plain decimals; every published monetary field is rounded to
// two fractional digits so a displayed breakdown sums exactly to the
// displayed total.

var Zero = decimal.Zero

// Round2 rounds half-up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns round2(base * percent / 100).
func Percent(base, percent decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(percent).Div(decimal.NewFromInt(100)))
}

// ClampToReference caps an amount at reference, flooring at zero.
func ClampToReference(amount, reference decimal.Decimal) decimal.Decimal {
	if amount.GreaterThan(reference) {
		return reference
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
