// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package payment

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sellora/sellora/internal/platform/validate"
	"github.com/sellora/sellora/pkg/uuid"
)

// InvoiceLedger shifts the paid/due mirror on an invoice when a payment is
// recorded or reversed. The invoice service satisfies it.
type InvoiceLedger interface {
	AdjustPaidAmount(context context.Context, invoiceID string, delta decimal.Decimal) error
}

type Service struct {
	repo   Repository
	ledger InvoiceLedger
	logger *slog.Logger
}

func NewService(repo Repository, ledger InvoiceLedger, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		logger: logger,
	}
}

func (service *Service) ListPayments(context context.Context, filter Filter, limit, offset int) ([]*Payment, int, error) {
	return service.repo.ListPayments(context, filter, limit, offset)
}

func (service *Service) GetPayment(context context.Context, id string) (*Payment, error) {
	return service.repo.GetPayment(context, id)
}

// CreatePayment records a settlement. The linked invoice must exist; its
// paid and due totals are shifted by the payment amount before the payment
// row is written, so a missing invoice rejects the payment up front.
//
// The adjustment and the insert are separate writes. A crash between them
// leaves the invoice mirror ahead of the recorded payments; reconcile by
// re-aggregating the invoice from its surviving payment rows.
func (service *Service) CreatePayment(context context.Context, p *Payment) error {
	if err := service.validatePayment(p); err != nil {
		return err
	}

	if err := service.ledger.AdjustPaidAmount(context, p.InvoiceID, p.Amount); err != nil {
		return err
	}

	p.ID = uuid.New()
	if err := service.repo.CreatePayment(context, p); err != nil {
		return err
	}

	service.logger.Info("payment_recorded",
		slog.String("payment_id", p.ID),
		slog.String("invoice_id", p.InvoiceID),
		slog.String("type", string(p.Type)),
		slog.String("amount", p.Amount.String()),
	)
	return nil
}

// DeletePayment reverses a settlement: the payment row is soft-deleted and
// the invoice paid/due mirror is shifted back by its amount. As with
// CreatePayment, the two writes are not transactional; a failure after the
// delete leaves the mirror high until re-aggregated.
func (service *Service) DeletePayment(context context.Context, id string) error {
	p, err := service.repo.GetPayment(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeletePayment(context, id); err != nil {
		return err
	}

	if err := service.ledger.AdjustPaidAmount(context, p.InvoiceID, p.Amount.Neg()); err != nil {
		return err
	}

	service.logger.Warn("payment_reversed",
		slog.String("payment_id", id),
		slog.String("invoice_id", p.InvoiceID),
		slog.String("amount", p.Amount.String()),
	)
	return nil
}

func (service *Service) StatsByType(context context.Context, filter StatsFilter) ([]TypeStats, error) {
	return service.repo.StatsByType(context, filter)
}

func (service *Service) validatePayment(p *Payment) error {
	validator := &validate.Validator{}

	validator.UUID(FieldInvoiceID, p.InvoiceID)
	validator.Custom(FieldType, !p.Type.Valid(), "must be one of cash, cheque, upi")
	validator.NotZeroTime(FieldDate, p.Date).NotFuture(FieldDate, p.Date)
	validator.Positive(FieldAmount, p.Amount).MaxScale(FieldAmount, p.Amount, 2)

	return validator.Err()
}
