// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package customer implements CRUD for the CRM customer directory.
package customer

import "time"

// Customer represents a billable contact in the CRM directory.
type Customer struct {
	ID        string     `json:"id"`
	CompanyID *string    `json:"company_id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Address   *string    `json:"address"`
	Notes     *string    `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated customer search.
type Filter struct {
	Query     string // Case-insensitive search against name, email and phone
	CompanyID string // Restrict to a single company when set
}

// Global field names for validation
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldNotes     = "notes"
	FieldCompanyID = "company_id"
)
