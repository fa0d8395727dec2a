// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package company

import "context"

type Repository interface {
	ListCompanies(context context.Context, f Filter, limit, offset int) ([]*Company, int, error)
	GetCompany(context context.Context, id string) (*Company, error)
	CreateCompany(context context.Context, c *Company) error
	UpdateCompany(context context.Context, c *Company) error
	DeleteCompany(context context.Context, id string) error
}
