// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package payment_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/billing/payment"
	"github.com/sellora/sellora/internal/platform/dberr"
)

type fakePaymentRepository struct {
	payments map[string]*payment.Payment
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{payments: map[string]*payment.Payment{}}
}

func (repo *fakePaymentRepository) ListPayments(_ context.Context, _ payment.Filter, _, _ int) ([]*payment.Payment, int, error) {
	var out []*payment.Payment
	for _, p := range repo.payments {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (repo *fakePaymentRepository) GetPayment(_ context.Context, id string) (*payment.Payment, error) {
	p, ok := repo.payments[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (repo *fakePaymentRepository) CreatePayment(_ context.Context, p *payment.Payment) error {
	clone := *p
	repo.payments[p.ID] = &clone
	return nil
}

func (repo *fakePaymentRepository) DeletePayment(_ context.Context, id string) error {
	if _, ok := repo.payments[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.payments, id)
	return nil
}

func (repo *fakePaymentRepository) StatsByType(_ context.Context, _ payment.StatsFilter) ([]payment.TypeStats, error) {
	return nil, nil
}

// fakeLedger records every paid-amount adjustment per invoice.
type fakeLedger struct {
	adjustments map[string][]decimal.Decimal
	known       map[string]bool
}

func newFakeLedger(invoiceIDs ...string) *fakeLedger {
	ledger := &fakeLedger{
		adjustments: map[string][]decimal.Decimal{},
		known:       map[string]bool{},
	}
	for _, id := range invoiceIDs {
		ledger.known[id] = true
	}
	return ledger
}

func (ledger *fakeLedger) AdjustPaidAmount(_ context.Context, invoiceID string, delta decimal.Decimal) error {
	if !ledger.known[invoiceID] {
		return dberr.ErrNotFound
	}
	ledger.adjustments[invoiceID] = append(ledger.adjustments[invoiceID], delta)
	return nil
}

const testInvoiceID = "0198d3a0-0000-7000-8000-00000000b001"

func validPayment() *payment.Payment {
	return &payment.Payment{
		InvoiceID: testInvoiceID,
		Type:      payment.TypeCash,
		Date:      time.Now().Add(-time.Hour),
		Amount:    decimal.RequireFromString("100.50"),
	}
}

func newPaymentService(repo payment.Repository, ledger payment.InvoiceLedger) *payment.Service {
	return payment.NewService(repo, ledger, slog.New(slog.DiscardHandler))
}

func TestCreatePaymentAdjustsInvoice(t *testing.T) {
	repo := newFakePaymentRepository()
	ledger := newFakeLedger(testInvoiceID)
	service := newPaymentService(repo, ledger)

	input := validPayment()
	err := service.CreatePayment(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, input.ID)

	require.Len(t, ledger.adjustments[testInvoiceID], 1)
	assert.Equal(t, "100.5", ledger.adjustments[testInvoiceID][0].String())
	assert.Len(t, repo.payments, 1)
}

func TestCreatePaymentUnknownInvoice(t *testing.T) {
	repo := newFakePaymentRepository()
	service := newPaymentService(repo, newFakeLedger())

	err := service.CreatePayment(context.Background(), validPayment())
	assert.Error(t, err)
	// No orphan payment row when the invoice does not exist
	assert.Empty(t, repo.payments)
}

func TestCreatePaymentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *payment.Payment)
	}{
		{"bad_invoice_id", func(p *payment.Payment) { p.InvoiceID = "not-a-uuid" }},
		{"unknown_type", func(p *payment.Payment) { p.Type = "barter" }},
		{"zero_date", func(p *payment.Payment) { p.Date = time.Time{} }},
		{"future_date", func(p *payment.Payment) { p.Date = time.Now().Add(48 * time.Hour) }},
		{"zero_amount", func(p *payment.Payment) { p.Amount = decimal.Zero }},
		{"negative_amount", func(p *payment.Payment) { p.Amount = decimal.RequireFromString("-5") }},
		{"sub_cent_amount", func(p *payment.Payment) { p.Amount = decimal.RequireFromString("10.005") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePaymentRepository()
			ledger := newFakeLedger(testInvoiceID)
			service := newPaymentService(repo, ledger)

			input := validPayment()
			tt.mutate(input)

			err := service.CreatePayment(context.Background(), input)
			assert.Error(t, err)
			assert.Empty(t, ledger.adjustments)
			assert.Empty(t, repo.payments)
		})
	}
}

func TestDeletePaymentReversesAdjustment(t *testing.T) {
	repo := newFakePaymentRepository()
	ledger := newFakeLedger(testInvoiceID)
	service := newPaymentService(repo, ledger)

	input := validPayment()
	require.NoError(t, service.CreatePayment(context.Background(), input))
	require.NoError(t, service.DeletePayment(context.Background(), input.ID))

	deltas := ledger.adjustments[testInvoiceID]
	require.Len(t, deltas, 2)
	assert.Equal(t, "100.5", deltas[0].String())
	assert.Equal(t, "-100.5", deltas[1].String())
	assert.Empty(t, repo.payments)
}

func TestDeletePaymentUnknown(t *testing.T) {
	service := newPaymentService(newFakePaymentRepository(), newFakeLedger())

	err := service.DeletePayment(context.Background(), "0198d3a0-0000-7000-8000-00000000dead")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
