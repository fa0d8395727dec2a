// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

/*
Package money provides rounding helpers for monetary values.

All amounts in Sellora are carried as [decimal.Decimal] to avoid binary
floating point drift. This package centralizes the rounding policy so that
every subsystem (invoicing, payments, statistics) produces identical cents.

Policy:

  - Round2: half-away-from-zero at 2 decimal places. Applied after each
    arithmetic step that produces a client-visible amount.
  - RoundWhole: half-away-from-zero to the nearest whole currency unit.
    Used only by the invoice round-off option.
*/
package money

import "github.com/shopspring/decimal"

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// Round2 rounds an amount to 2 decimal places, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// RoundWhole rounds an amount to the nearest whole currency unit.
func RoundWhole(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// Floor0 clamps a negative amount to zero. Positive amounts pass through.
func Floor0(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Percent returns base * rate / 100 without intermediate rounding.
//
// Callers round the result themselves so that accumulation (e.g. summing
// per-line discounts) happens on the exact value.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(decimal.NewFromInt(100))
}

// HasMaxScale reports whether the amount carries at most `places` decimal
// digits. Used to reject payment amounts with sub-cent precision.
func HasMaxScale(amount decimal.Decimal, places int32) bool {
	return amount.Equal(amount.Truncate(places))
}
