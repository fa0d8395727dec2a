// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/sellora/sellora/pkg/money"
)

// Recompute derives every stored monetary figure on the invoice from its
// line items. It runs before each persist so the summary can never drift
// from the items, and it is idempotent.
//
// Per line: the subtotal is quantity * rate, the discount is either a
// percentage of that subtotal or a fixed amount (deliberately not capped to
// the line value), and the item total is the discounted subtotal rounded to
// cents and clamped at zero.
//
// The invoice-level subtotal and discount accumulate the exact per-line
// values and are rounded once at the end, so cumulative cent drift cannot
// build up across many lines. An uncapped fixed discount can push the grand
// total negative; it is clamped at zero as well. When the round-off option
// is set the grand total snaps to the nearest whole currency unit.
func (invoice *Invoice) Recompute() {
	subtotal := money.Zero
	totalDiscount := money.Zero

	for i := range invoice.Items {
		item := &invoice.Items[i]

		lineSubtotal := item.Quantity.Mul(item.Rate)

		var discount decimal.Decimal
		switch item.DiscountType {
		case DiscountPercentage:
			discount = money.Percent(lineSubtotal, item.DiscountValue)
		case DiscountFixed:
			discount = item.DiscountValue
		}

		item.Total = money.Floor0(money.Round2(lineSubtotal.Sub(discount)))

		subtotal = subtotal.Add(lineSubtotal)
		totalDiscount = totalDiscount.Add(discount)
	}

	invoice.Subtotal = money.Round2(subtotal)
	invoice.TotalDiscount = money.Round2(totalDiscount)
	invoice.GrandTotal = money.Floor0(money.Round2(subtotal.Sub(totalDiscount)))

	if invoice.RoundOffTotal {
		invoice.GrandTotal = money.RoundWhole(invoice.GrandTotal)
	}

	invoice.PaidAmount = money.Round2(invoice.PaidAmount)
	invoice.DueAmount = money.Round2(money.Floor0(invoice.GrandTotal.Sub(invoice.PaidAmount)))
}

// PaymentPercent reports how much of the grand total has been settled, as a
// percentage rounded to 2 decimals. A zero grand total reports 0 rather
// than dividing.
func (invoice *Invoice) PaymentPercent() decimal.Decimal {
	if invoice.GrandTotal.IsZero() {
		return money.Zero
	}
	return money.Round2(invoice.PaidAmount.Div(invoice.GrandTotal).Mul(decimal.NewFromInt(100)))
}
