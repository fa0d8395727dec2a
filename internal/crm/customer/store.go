// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package customer

import "context"

type Repository interface {
	ListCustomers(context context.Context, f Filter, limit, offset int) ([]*Customer, int, error)
	GetCustomer(context context.Context, id string) (*Customer, error)
	CreateCustomer(context context.Context, c *Customer) error
	UpdateCustomer(context context.Context, c *Customer) error
	DeleteCustomer(context context.Context, id string) error
}
