// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	ListInvoices(context context.Context, f Filter, limit, offset int) ([]*Invoice, int, error)
	GetInvoice(context context.Context, id string) (*Invoice, error)
	CreateInvoice(context context.Context, inv *Invoice) error
	UpdateInvoice(context context.Context, inv *Invoice) error
	UpdateStatus(context context.Context, id string, status Status) error
	UpdatePaid(context context.Context, id string, paid, due decimal.Decimal) error
	DeleteInvoice(context context.Context, id string) error
	StatsByStatus(context context.Context, f StatsFilter) ([]StatusStats, error)
}
