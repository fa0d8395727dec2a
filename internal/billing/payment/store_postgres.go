// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sellora/sellora/internal/platform/database/schema"
	"github.com/sellora/sellora/internal/platform/dberr"
	"github.com/sellora/sellora/pkg/money"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListPayments(context context.Context, f Filter, limit, offset int) ([]*Payment, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.BillingPayment.ID, schema.BillingPayment.InvoiceID, schema.BillingPayment.PaymentType,
		schema.BillingPayment.PaymentDate, schema.BillingPayment.Amount, schema.BillingPayment.Note,
		schema.BillingPayment.CreatedAt, schema.BillingPayment.UpdatedAt,
		schema.BillingPayment.Table, schema.BillingPayment.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.BillingPayment.Table, schema.BillingPayment.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	appendClause := func(clause string, value any) {
		query += clause
		countQuery += clause
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.InvoiceID != "" {
		appendClause(fmt.Sprintf(` AND %s = $%d`, schema.BillingPayment.InvoiceID, len(args)+1), f.InvoiceID)
	}
	if f.Type != "" {
		appendClause(fmt.Sprintf(` AND %s = $%d`, schema.BillingPayment.PaymentType, len(args)+1), string(f.Type))
	}
	if f.From != nil {
		appendClause(fmt.Sprintf(` AND %s >= $%d`, schema.BillingPayment.PaymentDate, len(args)+1), *f.From)
	}
	if f.To != nil {
		appendClause(fmt.Sprintf(` AND %s <= $%d`, schema.BillingPayment.PaymentDate, len(args)+1), *f.To)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.BillingPayment.PaymentDate) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_payments")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_payments")
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		var paymentType string
		if err := rows.Scan(
			&p.ID, &p.InvoiceID, &paymentType, &p.Date, &p.Amount, &p.Note,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_payment")
		}
		p.Type = Type(paymentType)
		payments = append(payments, p)
	}

	return payments, total, nil
}

func (repository *PostgresRepository) GetPayment(context context.Context, id string) (*Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.BillingPayment.ID, schema.BillingPayment.InvoiceID, schema.BillingPayment.PaymentType,
		schema.BillingPayment.PaymentDate, schema.BillingPayment.Amount, schema.BillingPayment.Note,
		schema.BillingPayment.CreatedAt, schema.BillingPayment.UpdatedAt,
		schema.BillingPayment.Table, schema.BillingPayment.ID, schema.BillingPayment.DeletedAt,
	)
	p := &Payment{}
	var paymentType string

	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.InvoiceID, &paymentType, &p.Date, &p.Amount, &p.Note,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_payment")
	}

	p.Type = Type(paymentType)
	return p, nil
}

func (repository *PostgresRepository) CreatePayment(context context.Context, p *Payment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.BillingPayment.Table,
		schema.BillingPayment.ID, schema.BillingPayment.InvoiceID, schema.BillingPayment.PaymentType,
		schema.BillingPayment.PaymentDate, schema.BillingPayment.Amount, schema.BillingPayment.Note,
		schema.BillingPayment.CreatedAt, schema.BillingPayment.UpdatedAt,
		schema.BillingPayment.CreatedAt, schema.BillingPayment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.InvoiceID, string(p.Type), p.Date, p.Amount, p.Note,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_payment")
}

func (repository *PostgresRepository) DeletePayment(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.BillingPayment.Table, schema.BillingPayment.DeletedAt,
		schema.BillingPayment.ID, schema.BillingPayment.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_payment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) StatsByType(context context.Context, f StatsFilter) ([]TypeStats, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			count(*),
			COALESCE(sum(%s), 0),
			COALESCE(avg(%s), 0)
		FROM %s
		WHERE %s IS NULL
	`,
		schema.BillingPayment.PaymentType,
		schema.BillingPayment.Amount, schema.BillingPayment.Amount,
		schema.BillingPayment.Table, schema.BillingPayment.DeletedAt,
	)

	args := []any{}
	if f.From != nil {
		query += fmt.Sprintf(` AND %s >= $%d`, schema.BillingPayment.PaymentDate, len(args)+1)
		args = append(args, *f.From)
	}
	if f.To != nil {
		query += fmt.Sprintf(` AND %s <= $%d`, schema.BillingPayment.PaymentDate, len(args)+1)
		args = append(args, *f.To)
	}

	query += fmt.Sprintf(` GROUP BY %s ORDER BY %s ASC`,
		schema.BillingPayment.PaymentType, schema.BillingPayment.PaymentType)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "payment_stats")
	}
	defer rows.Close()

	var stats []TypeStats
	for rows.Next() {
		var row TypeStats
		var paymentType string
		if err := rows.Scan(&paymentType, &row.Count, &row.TotalAmount, &row.Average); err != nil {
			return nil, dberr.Wrap(err, "scan_payment_stats")
		}
		row.Type = Type(paymentType)
		row.Average = money.Round2(row.Average)
		stats = append(stats, row)
	}

	return stats, nil
}
