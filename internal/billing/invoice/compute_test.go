// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/billing/invoice"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func percentageItem(quantity, rate, discount string) invoice.Item {
	return invoice.Item{
		ProductID:     "0198d3a0-0000-7000-8000-000000000001",
		Quantity:      dec(quantity),
		Rate:          dec(rate),
		DiscountType:  invoice.DiscountPercentage,
		DiscountValue: dec(discount),
	}
}

func fixedItem(quantity, rate, discount string) invoice.Item {
	item := percentageItem(quantity, rate, discount)
	item.DiscountType = invoice.DiscountFixed
	return item
}

/*
TestRecompute verifies the monetary derivation of line totals and the
invoice summary under both discount types, clamping, and round-off.
*/
func TestRecompute(t *testing.T) {
	tests := []struct {
		name                  string
		invoice               invoice.Invoice
		expectedItemTotals    []string
		expectedSubtotal      string
		expectedTotalDiscount string
		expectedGrandTotal    string
		expectedDueAmount     string
	}{
		{
			name: "single_item_percentage_discount",
			invoice: invoice.Invoice{
				Items: []invoice.Item{percentageItem("2", "100", "10")},
			},
			expectedItemTotals:    []string{"180"},
			expectedSubtotal:      "200",
			expectedTotalDiscount: "20",
			expectedGrandTotal:    "180",
			expectedDueAmount:     "180",
		},
		{
			name: "fixed_discount_exceeding_line_floors_item_at_zero",
			invoice: invoice.Invoice{
				Items: []invoice.Item{fixedItem("1", "50", "60")},
			},
			expectedItemTotals:    []string{"0"},
			expectedSubtotal:      "50",
			expectedTotalDiscount: "60",
			expectedGrandTotal:    "0", // negative grand total clamps to zero
			expectedDueAmount:     "0",
		},
		{
			name: "mixed_items_accumulate_before_rounding",
			invoice: invoice.Invoice{
				Items: []invoice.Item{
					percentageItem("3", "33.33", "5"),
					fixedItem("1", "120.50", "20"),
				},
			},
			// 99.99 - 4.9995 = 94.9905 -> 94.99; 120.50 - 20 = 100.50
			expectedItemTotals:    []string{"94.99", "100.5"},
			expectedSubtotal:      "220.49",
			expectedTotalDiscount: "25",
			expectedGrandTotal:    "195.49",
			expectedDueAmount:     "195.49",
		},
		{
			name: "round_off_snaps_grand_total_to_whole_unit",
			invoice: invoice.Invoice{
				RoundOffTotal: true,
				Items:         []invoice.Item{fixedItem("1", "180.40", "0")},
			},
			expectedItemTotals:    []string{"180.4"},
			expectedSubtotal:      "180.4",
			expectedTotalDiscount: "0",
			expectedGrandTotal:    "180",
			expectedDueAmount:     "180",
		},
		{
			name: "paid_amount_reduces_due",
			invoice: invoice.Invoice{
				PaidAmount: dec("100"),
				Items:      []invoice.Item{percentageItem("2", "100", "10")},
			},
			expectedItemTotals:    []string{"180"},
			expectedSubtotal:      "200",
			expectedTotalDiscount: "20",
			expectedGrandTotal:    "180",
			expectedDueAmount:     "80",
		},
		{
			name: "overpayment_floors_due_at_zero",
			invoice: invoice.Invoice{
				PaidAmount: dec("250"),
				Items:      []invoice.Item{percentageItem("2", "100", "0")},
			},
			expectedItemTotals:    []string{"200"},
			expectedSubtotal:      "200",
			expectedTotalDiscount: "0",
			expectedGrandTotal:    "200",
			expectedDueAmount:     "0",
		},
		{
			name: "no_items_zeroes_summary",
			invoice: invoice.Invoice{
				Items: nil,
			},
			expectedItemTotals:    nil,
			expectedSubtotal:      "0",
			expectedTotalDiscount: "0",
			expectedGrandTotal:    "0",
			expectedDueAmount:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.invoice.Recompute()

			require.Len(t, tt.invoice.Items, len(tt.expectedItemTotals))
			for i, expected := range tt.expectedItemTotals {
				assert.Equal(t, expected, tt.invoice.Items[i].Total.String(), "item %d total", i)
			}
			assert.Equal(t, tt.expectedSubtotal, tt.invoice.Subtotal.String())
			assert.Equal(t, tt.expectedTotalDiscount, tt.invoice.TotalDiscount.String())
			assert.Equal(t, tt.expectedGrandTotal, tt.invoice.GrandTotal.String())
			assert.Equal(t, tt.expectedDueAmount, tt.invoice.DueAmount.String())
		})
	}
}

/*
TestRecomputeIdempotent verifies that re-running the derivation on an
already-computed invoice changes nothing.
*/
func TestRecomputeIdempotent(t *testing.T) {
	inv := invoice.Invoice{
		RoundOffTotal: true,
		PaidAmount:    dec("75.333"),
		Items: []invoice.Item{
			percentageItem("3", "33.33", "12.5"),
			fixedItem("2", "49.95", "10"),
		},
	}

	inv.Recompute()
	// Snapshot with its own item slice so the second run cannot write
	// through shared backing storage.
	first := inv
	first.Items = append([]invoice.Item(nil), inv.Items...)

	inv.Recompute()

	assert.Equal(t, first.Subtotal.String(), inv.Subtotal.String())
	assert.Equal(t, first.TotalDiscount.String(), inv.TotalDiscount.String())
	assert.Equal(t, first.GrandTotal.String(), inv.GrandTotal.String())
	assert.Equal(t, first.PaidAmount.String(), inv.PaidAmount.String())
	assert.Equal(t, first.DueAmount.String(), inv.DueAmount.String())
	for i := range first.Items {
		assert.Equal(t, first.Items[i].Total.String(), inv.Items[i].Total.String())
	}
}

/*
TestPaymentPercent verifies the settled-percentage derivation, including the
zero grand total guard.
*/
func TestPaymentPercent(t *testing.T) {
	tests := []struct {
		name       string
		grandTotal string
		paidAmount string
		expected   string
	}{
		{"partially_paid", "180", "100", "55.56"},
		{"fully_paid", "180", "180", "100"},
		{"unpaid", "180", "0", "0"},
		{"zero_grand_total_reports_zero", "0", "50", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := invoice.Invoice{
				GrandTotal: dec(tt.grandTotal),
				PaidAmount: dec(tt.paidAmount),
			}
			assert.Equal(t, tt.expected, inv.PaymentPercent().String())
		})
	}
}
