// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package task implements CRUD for work assignments handed to operators.
package task

import "time"

// Status is the workflow state of a task.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid workflow state, in order.
var Statuses = []Status{
	StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled,
}

// Valid reports whether the status is a known workflow state.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Task represents a unit of work assigned to an operator, optionally
// tied to a customer.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  string     `json:"assignee_id"`
	CustomerID  *string    `json:"customer_id"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated task search.
type Filter struct {
	Query      string // Case-insensitive search against title
	AssigneeID string // Restrict to a single assignee when set
	CustomerID string // Restrict to a single customer when set
	Status     string // Restrict to a single workflow state when set
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAssigneeID  = "assignee_id"
	FieldCustomerID  = "customer_id"
	FieldStatus      = "status"
	FieldDueDate     = "due_date"
)
