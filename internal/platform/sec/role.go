// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can manage CRM records, invoices, and payments
	RoleManager UserRole = "manager"

	// Default role for standard registered users
	RoleStaff UserRole = "staff"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleManager:
		return 20
	case RoleStaff:
		return 10
	default:
		return 0
	}
}
