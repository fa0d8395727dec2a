// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sellora/sellora/internal/platform/validate"
	"github.com/sellora/sellora/pkg/money"
	"github.com/sellora/sellora/pkg/uuid"
)

// CostLookup resolves the recorded base cost of a product. The catalog
// service satisfies it; profit reporting is the only consumer.
type CostLookup interface {
	BaseCost(context context.Context, productID string) (decimal.Decimal, error)
}

type Service struct {
	repo   Repository
	costs  CostLookup
	logger *slog.Logger
}

func NewService(repo Repository, costs CostLookup, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		costs:  costs,
		logger: logger,
	}
}

func (service *Service) ListInvoices(context context.Context, filter Filter, limit, offset int) ([]*Invoice, int, error) {
	return service.repo.ListInvoices(context, filter, limit, offset)
}

func (service *Service) GetInvoice(context context.Context, id string) (*Invoice, error) {
	return service.repo.GetInvoice(context, id)
}

func (service *Service) CreateInvoice(context context.Context, inv *Invoice) error {
	if inv.Status == "" {
		inv.Status = StatusDraft
	}
	if err := service.validateInvoice(inv); err != nil {
		return err
	}

	inv.ID = uuid.New()
	inv.Recompute()
	if err := service.repo.CreateInvoice(context, inv); err != nil {
		return err
	}

	service.logger.Info("invoice_created",
		slog.String("invoice_id", inv.ID),
		slog.String("number", inv.Number),
		slog.String("grand_total", inv.GrandTotal.String()),
	)
	return nil
}

func (service *Service) UpdateInvoice(context context.Context, id string, inv *Invoice) error {
	inv.ID = id
	if inv.Status == "" {
		inv.Status = StatusDraft
	}
	if err := service.validateInvoice(inv); err != nil {
		return err
	}

	inv.Recompute()
	if err := service.repo.UpdateInvoice(context, inv); err != nil {
		return err
	}

	service.logger.Info("invoice_updated",
		slog.String("invoice_id", inv.ID),
		slog.String("grand_total", inv.GrandTotal.String()),
	)
	return nil
}

func (service *Service) UpdateStatus(context context.Context, id string, status Status) error {
	v := &validate.Validator{}
	v.Custom(FieldStatus, !status.Valid(), "must be a valid invoice status")
	if err := v.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("invoice_status_changed",
		slog.String("invoice_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

func (service *Service) DeleteInvoice(context context.Context, id string) error {
	if err := service.repo.DeleteInvoice(context, id); err != nil {
		return err
	}

	service.logger.Warn("invoice_deleted", slog.String("invoice_id", id))
	return nil
}

// AdjustPaidAmount shifts the recorded paid total of an invoice by delta
// (positive when a payment is recorded, negative when one is reversed) and
// re-derives the due amount. The paid total never goes below zero.
func (service *Service) AdjustPaidAmount(context context.Context, invoiceID string, delta decimal.Decimal) error {
	inv, err := service.repo.GetInvoice(context, invoiceID)
	if err != nil {
		return err
	}

	inv.PaidAmount = money.Floor0(money.Round2(inv.PaidAmount.Add(delta)))
	inv.Recompute()

	return service.repo.UpdatePaid(context, inv.ID, inv.PaidAmount, inv.DueAmount)
}

// GetSummary assembles the financial digest of one invoice, including the
// derived profit (line totals minus quantity * product base cost) and the
// settled percentage. Neither derived figure is stored.
func (service *Service) GetSummary(context context.Context, id string) (*Summary, error) {
	inv, err := service.repo.GetInvoice(context, id)
	if err != nil {
		return nil, err
	}

	profit := money.Zero
	for _, item := range inv.Items {
		baseCost, err := service.costs.BaseCost(context, item.ProductID)
		if err != nil {
			return nil, err
		}
		profit = profit.Add(item.Total.Sub(item.Quantity.Mul(baseCost)))
	}

	return &Summary{
		InvoiceID:      inv.ID,
		Subtotal:       inv.Subtotal,
		TotalDiscount:  inv.TotalDiscount,
		GrandTotal:     inv.GrandTotal,
		PaidAmount:     inv.PaidAmount,
		DueAmount:      inv.DueAmount,
		PaymentPercent: inv.PaymentPercent(),
		Profit:         money.Round2(profit),
	}, nil
}

func (service *Service) StatsByStatus(context context.Context, filter StatsFilter) ([]StatusStats, error) {
	return service.repo.StatsByStatus(context, filter)
}

func (service *Service) validateInvoice(inv *Invoice) error {
	validator := &validate.Validator{}

	validator.Required(FieldNumber, inv.Number).MaxLen(FieldNumber, inv.Number, 50)
	validator.UUID(FieldCustomerID, inv.CustomerID)
	validator.NotZeroTime(FieldIssueDate, inv.IssueDate)
	validator.Required(FieldIssuerName, inv.IssuerName).MaxLen(FieldIssuerName, inv.IssuerName, 200)
	validator.Custom(FieldStatus, !inv.Status.Valid(), "must be a valid invoice status")
	validator.Custom(FieldItems, len(inv.Items) == 0, "must contain at least one line item")

	for i, item := range inv.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		validator.UUID(prefix+"product_id", item.ProductID)
		validator.Positive(prefix+"quantity", item.Quantity)
		validator.NonNegative(prefix+"rate", item.Rate)
		validator.OneOf(prefix+"discount_type", string(item.DiscountType),
			string(DiscountPercentage), string(DiscountFixed))
		validator.NonNegative(prefix+"discount_value", item.DiscountValue)
	}

	return validator.Err()
}
