// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package product implements CRUD for the sellable product catalog.
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item referenced by invoice line items.
//
// UnitPrice is the default rate offered when the product is added to an
// invoice; BaseCost feeds the profit queries on the billing side.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BaseCost    decimal.Decimal `json:"base_cost"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated product search.
type Filter struct {
	Query string // Case-insensitive search against name and description
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldUnitPrice   = "unit_price"
	FieldBaseCost    = "base_cost"
	FieldCurrency    = "currency"
)
