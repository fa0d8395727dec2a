// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package company implements CRUD for the CRM company directory.
package company

import "time"

// Company represents an organization that customers belong to.
type Company struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Address   *string    `json:"address"`
	Website   *string    `json:"website"`
	TaxNumber *string    `json:"tax_number"`
	Notes     *string    `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated company search.
type Filter struct {
	Query string // Case-insensitive search against name and email
}

// Global field names for validation
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldWebsite   = "website"
	FieldTaxNumber = "tax_number"
)
