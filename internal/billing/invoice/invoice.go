// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package invoice implements invoice management and the monetary
// recomputation engine behind it.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid lifecycle state, in order.
var Statuses = []Status{
	StatusDraft, StatusPending, StatusConfirmed,
	StatusInProgress, StatusCompleted, StatusCancelled,
}

// Valid reports whether the status is a known lifecycle state.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// DiscountType selects how a line item's discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Item is a single billable line on an invoice. Total is derived by
// [Invoice.Recompute] and never trusted from caller input.
type Item struct {
	ProductID     string          `json:"product_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Total         decimal.Decimal `json:"total"`
}

// Invoice represents a billing document issued to a customer. The summary
// fields (Subtotal through DueAmount) are derived from Items on every
// mutation.
type Invoice struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	CustomerID    string          `json:"customer_id"`
	IssueDate     time.Time       `json:"issue_date"`
	IssuerName    string          `json:"issuer_name"`
	IssuerAddress *string         `json:"issuer_address"`
	Note          *string         `json:"note"`
	Status        Status          `json:"status"`
	Items         []Item          `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	RoundOffTotal bool            `json:"round_off_total"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated invoice search.
type Filter struct {
	Query      string // Case-insensitive search against the invoice number
	CustomerID string // Restrict to a single customer when set
	Status     Status // Restrict to a single lifecycle state when set
	From       *time.Time
	To         *time.Time
}

// Summary is the read-only financial digest of one invoice, including the
// figures derived on demand rather than stored.
type Summary struct {
	InvoiceID      string          `json:"invoice_id"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	DueAmount      decimal.Decimal `json:"due_amount"`
	PaymentPercent decimal.Decimal `json:"payment_percent"`
	Profit         decimal.Decimal `json:"profit"`
}

// StatusStats is one row of the aggregate invoice report, grouped by status.
type StatusStats struct {
	Status      Status          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	TotalDue    decimal.Decimal `json:"total_due"`
	Average     decimal.Decimal `json:"average"`
}

// StatsFilter restricts aggregate reports to an issue-date range.
type StatsFilter struct {
	From *time.Time
	To   *time.Time
}

// Global field names for validation
const (
	FieldNumber     = "number"
	FieldCustomerID = "customer_id"
	FieldIssueDate  = "issue_date"
	FieldIssuerName = "issuer_name"
	FieldStatus     = "status"
	FieldItems      = "items"
)
