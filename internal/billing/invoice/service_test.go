// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/billing/invoice"
	"github.com/sellora/sellora/internal/platform/dberr"
)

type fakeInvoiceRepository struct {
	invoices map[string]*invoice.Invoice
}

func newFakeInvoiceRepository() *fakeInvoiceRepository {
	return &fakeInvoiceRepository{invoices: map[string]*invoice.Invoice{}}
}

func (repo *fakeInvoiceRepository) ListInvoices(_ context.Context, _ invoice.Filter, _, _ int) ([]*invoice.Invoice, int, error) {
	var out []*invoice.Invoice
	for _, inv := range repo.invoices {
		out = append(out, inv)
	}
	return out, len(out), nil
}

func (repo *fakeInvoiceRepository) GetInvoice(_ context.Context, id string) (*invoice.Invoice, error) {
	inv, ok := repo.invoices[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *inv
	return &clone, nil
}

func (repo *fakeInvoiceRepository) CreateInvoice(_ context.Context, inv *invoice.Invoice) error {
	clone := *inv
	repo.invoices[inv.ID] = &clone
	return nil
}

func (repo *fakeInvoiceRepository) UpdateInvoice(_ context.Context, inv *invoice.Invoice) error {
	if _, ok := repo.invoices[inv.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *inv
	repo.invoices[inv.ID] = &clone
	return nil
}

func (repo *fakeInvoiceRepository) UpdateStatus(_ context.Context, id string, status invoice.Status) error {
	inv, ok := repo.invoices[id]
	if !ok {
		return dberr.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (repo *fakeInvoiceRepository) UpdatePaid(_ context.Context, id string, paid, due decimal.Decimal) error {
	inv, ok := repo.invoices[id]
	if !ok {
		return dberr.ErrNotFound
	}
	inv.PaidAmount = paid
	inv.DueAmount = due
	return nil
}

func (repo *fakeInvoiceRepository) DeleteInvoice(_ context.Context, id string) error {
	if _, ok := repo.invoices[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.invoices, id)
	return nil
}

func (repo *fakeInvoiceRepository) StatsByStatus(_ context.Context, _ invoice.StatsFilter) ([]invoice.StatusStats, error) {
	return nil, nil
}

type fakeCostLookup struct {
	costs map[string]decimal.Decimal
}

func (lookup *fakeCostLookup) BaseCost(_ context.Context, productID string) (decimal.Decimal, error) {
	cost, ok := lookup.costs[productID]
	if !ok {
		return decimal.Zero, dberr.ErrNotFound
	}
	return cost, nil
}

func newInvoiceService(repo invoice.Repository, costs invoice.CostLookup) *invoice.Service {
	logger := slog.New(slog.DiscardHandler)
	return invoice.NewService(repo, costs, logger)
}

func validInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		Number:     "INV-2026-0001",
		CustomerID: "0198d3a0-0000-7000-8000-00000000c001",
		IssueDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		IssuerName: "Sellora GmbH",
		Items: []invoice.Item{
			{
				ProductID:     "0198d3a0-0000-7000-8000-000000000001",
				Quantity:      dec("2"),
				Rate:          dec("100"),
				DiscountType:  invoice.DiscountPercentage,
				DiscountValue: dec("10"),
			},
		},
	}
}

func TestCreateInvoiceRecomputesBeforePersist(t *testing.T) {
	repo := newFakeInvoiceRepository()
	service := newInvoiceService(repo, &fakeCostLookup{})

	input := validInvoice()
	// Caller-supplied summary figures must be ignored
	input.GrandTotal = dec("999999")
	input.Subtotal = dec("123")

	err := service.CreateInvoice(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, input.ID)

	stored, err := repo.GetInvoice(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, "200", stored.Subtotal.String())
	assert.Equal(t, "20", stored.TotalDiscount.String())
	assert.Equal(t, "180", stored.GrandTotal.String())
	assert.Equal(t, "180", stored.DueAmount.String())
	assert.Equal(t, invoice.StatusDraft, stored.Status)
}

func TestCreateInvoiceValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(inv *invoice.Invoice)
	}{
		{"missing_number", func(inv *invoice.Invoice) { inv.Number = "" }},
		{"bad_customer_id", func(inv *invoice.Invoice) { inv.CustomerID = "not-a-uuid" }},
		{"zero_issue_date", func(inv *invoice.Invoice) { inv.IssueDate = time.Time{} }},
		{"no_items", func(inv *invoice.Invoice) { inv.Items = nil }},
		{"zero_quantity", func(inv *invoice.Invoice) { inv.Items[0].Quantity = dec("0") }},
		{"negative_rate", func(inv *invoice.Invoice) { inv.Items[0].Rate = dec("-1") }},
		{"unknown_discount_type", func(inv *invoice.Invoice) { inv.Items[0].DiscountType = "coupon" }},
		{"unknown_status", func(inv *invoice.Invoice) { inv.Status = "archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeInvoiceRepository()
			service := newInvoiceService(repo, &fakeCostLookup{})

			input := validInvoice()
			tt.mutate(input)

			err := service.CreateInvoice(context.Background(), input)
			assert.Error(t, err)
			assert.Empty(t, repo.invoices)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeInvoiceRepository()
	service := newInvoiceService(repo, &fakeCostLookup{})

	input := validInvoice()
	require.NoError(t, service.CreateInvoice(context.Background(), input))

	err := service.UpdateStatus(context.Background(), input.ID, invoice.StatusConfirmed)
	require.NoError(t, err)

	stored, err := repo.GetInvoice(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusConfirmed, stored.Status)

	assert.Error(t, service.UpdateStatus(context.Background(), input.ID, "archived"))
}

func TestAdjustPaidAmount(t *testing.T) {
	repo := newFakeInvoiceRepository()
	service := newInvoiceService(repo, &fakeCostLookup{})

	input := validInvoice()
	require.NoError(t, service.CreateInvoice(context.Background(), input))

	// Record a payment of 100 against a 180 grand total
	require.NoError(t, service.AdjustPaidAmount(context.Background(), input.ID, dec("100")))

	stored, err := repo.GetInvoice(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", stored.PaidAmount.String())
	assert.Equal(t, "80", stored.DueAmount.String())

	// Reversing more than was paid floors the paid total at zero
	require.NoError(t, service.AdjustPaidAmount(context.Background(), input.ID, dec("-250")))

	stored, err = repo.GetInvoice(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, "0", stored.PaidAmount.String())
	assert.Equal(t, "180", stored.DueAmount.String())
}

func TestGetSummaryProfit(t *testing.T) {
	repo := newFakeInvoiceRepository()
	costs := &fakeCostLookup{costs: map[string]decimal.Decimal{
		"0198d3a0-0000-7000-8000-000000000001": dec("60"),
	}}
	service := newInvoiceService(repo, costs)

	input := validInvoice()
	require.NoError(t, service.CreateInvoice(context.Background(), input))
	require.NoError(t, service.AdjustPaidAmount(context.Background(), input.ID, dec("100")))

	summary, err := service.GetSummary(context.Background(), input.ID)
	require.NoError(t, err)

	// Line total 180 minus 2 * 60 base cost
	assert.Equal(t, "60", summary.Profit.String())
	assert.Equal(t, "55.56", summary.PaymentPercent.String())
	assert.Equal(t, "180", summary.GrandTotal.String())
	assert.Equal(t, "80", summary.DueAmount.String())
}
