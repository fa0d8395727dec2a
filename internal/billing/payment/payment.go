// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package payment records settlements against invoices and keeps the
// invoice paid/due mirror in sync.
package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the settlement channel of a payment.
type Type string

const (
	TypeCash   Type = "cash"
	TypeCheque Type = "cheque"
	TypeUPI    Type = "upi"
)

// Types lists every valid settlement channel.
var Types = []Type{TypeCash, TypeCheque, TypeUPI}

// Valid reports whether the type is a known settlement channel.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Payment is a single settlement recorded against an invoice. Payments are
// immutable once recorded; corrections are made by deleting and re-recording.
type Payment struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Type      Type            `json:"type"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated payment search.
type Filter struct {
	InvoiceID string // Restrict to a single invoice when set
	Type      Type   // Restrict to a single settlement channel when set
	From      *time.Time
	To        *time.Time
}

// TypeStats is one row of the aggregate payment report, grouped by
// settlement channel.
type TypeStats struct {
	Type        Type            `json:"type"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Average     decimal.Decimal `json:"average"`
}

// StatsFilter restricts aggregate reports to a payment-date range.
type StatsFilter struct {
	From *time.Time
	To   *time.Time
}

// Global field names for validation
const (
	FieldInvoiceID = "invoice_id"
	FieldType      = "type"
	FieldDate      = "date"
	FieldAmount    = "amount"
)
