// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package payment

import "context"

type Repository interface {
	ListPayments(context context.Context, f Filter, limit, offset int) ([]*Payment, int, error)
	GetPayment(context context.Context, id string) (*Payment, error)
	CreatePayment(context context.Context, p *Payment) error
	DeletePayment(context context.Context, id string) error
	StatsByType(context context.Context, f StatsFilter) ([]TypeStats, error)
}
