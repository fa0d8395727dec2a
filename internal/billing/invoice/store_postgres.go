// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

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

// invoiceColumns is the SELECT list shared by every read query. Items is a
// jsonb column holding the full line-item array.
func invoiceColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.BillingInvoice.ID, schema.BillingInvoice.Number, schema.BillingInvoice.CustomerID,
		schema.BillingInvoice.IssueDate, schema.BillingInvoice.IssuerName, schema.BillingInvoice.IssuerAddress,
		schema.BillingInvoice.Note, schema.BillingInvoice.Status, schema.BillingInvoice.Items,
		schema.BillingInvoice.Subtotal, schema.BillingInvoice.TotalDiscount, schema.BillingInvoice.GrandTotal,
		schema.BillingInvoice.RoundOff, schema.BillingInvoice.PaidAmount, schema.BillingInvoice.DueAmount,
		schema.BillingInvoice.CreatedAt, schema.BillingInvoice.UpdatedAt,
	)
}

func scanInvoice(row interface{ Scan(dest ...any) error }) (*Invoice, error) {
	inv := &Invoice{}
	var itemsJSON []byte
	var status string

	err := row.Scan(
		&inv.ID, &inv.Number, &inv.CustomerID,
		&inv.IssueDate, &inv.IssuerName, &inv.IssuerAddress,
		&inv.Note, &status, &itemsJSON,
		&inv.Subtotal, &inv.TotalDiscount, &inv.GrandTotal,
		&inv.RoundOffTotal, &inv.PaidAmount, &inv.DueAmount,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.Status = Status(status)
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("decode invoice items: %w", err)
	}
	return inv, nil
}

func (repository *PostgresRepository) ListInvoices(context context.Context, f Filter, limit, offset int) ([]*Invoice, int, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
	`, invoiceColumns(), schema.BillingInvoice.Table, schema.BillingInvoice.DeletedAt)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.BillingInvoice.Table, schema.BillingInvoice.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	appendClause := func(clause string, value any) {
		query += clause
		countQuery += clause
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Query != "" {
		appendClause(fmt.Sprintf(` AND %s ILIKE $%d`, schema.BillingInvoice.Number, len(args)+1),
			"%"+f.Query+"%")
	}
	if f.CustomerID != "" {
		appendClause(fmt.Sprintf(` AND %s = $%d`, schema.BillingInvoice.CustomerID, len(args)+1), f.CustomerID)
	}
	if f.Status != "" {
		appendClause(fmt.Sprintf(` AND %s = $%d`, schema.BillingInvoice.Status, len(args)+1), string(f.Status))
	}
	if f.From != nil {
		appendClause(fmt.Sprintf(` AND %s >= $%d`, schema.BillingInvoice.IssueDate, len(args)+1), *f.From)
	}
	if f.To != nil {
		appendClause(fmt.Sprintf(` AND %s <= $%d`, schema.BillingInvoice.IssueDate, len(args)+1), *f.To)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.BillingInvoice.IssueDate) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_invoices")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_invoices")
	}
	defer rows.Close()

	var invoices []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_invoice")
		}
		invoices = append(invoices, inv)
	}

	return invoices, total, nil
}

func (repository *PostgresRepository) GetInvoice(context context.Context, id string) (*Invoice, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, invoiceColumns(), schema.BillingInvoice.Table,
		schema.BillingInvoice.ID, schema.BillingInvoice.DeletedAt)

	inv, err := scanInvoice(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_invoice")
	}
	return inv, nil
}

func (repository *PostgresRepository) CreateInvoice(context context.Context, inv *Invoice) error {
	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.BillingInvoice.Table,
		schema.BillingInvoice.ID, schema.BillingInvoice.Number, schema.BillingInvoice.CustomerID,
		schema.BillingInvoice.IssueDate, schema.BillingInvoice.IssuerName, schema.BillingInvoice.IssuerAddress,
		schema.BillingInvoice.Note, schema.BillingInvoice.Status, schema.BillingInvoice.Items,
		schema.BillingInvoice.Subtotal, schema.BillingInvoice.TotalDiscount, schema.BillingInvoice.GrandTotal,
		schema.BillingInvoice.RoundOff, schema.BillingInvoice.PaidAmount, schema.BillingInvoice.DueAmount,
		schema.BillingInvoice.CreatedAt, schema.BillingInvoice.UpdatedAt,
		schema.BillingInvoice.CreatedAt, schema.BillingInvoice.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		inv.ID, inv.Number, inv.CustomerID,
		inv.IssueDate, inv.IssuerName, inv.IssuerAddress,
		inv.Note, string(inv.Status), itemsJSON,
		inv.Subtotal, inv.TotalDiscount, inv.GrandTotal,
		inv.RoundOffTotal, inv.PaidAmount, inv.DueAmount,
	).Scan(&inv.CreatedAt, &inv.UpdatedAt)
	return dberr.Wrap(err, "create_invoice")
}

func (repository *PostgresRepository) UpdateInvoice(context context.Context, inv *Invoice) error {
	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15,
			%s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.BillingInvoice.Table,
		schema.BillingInvoice.Number, schema.BillingInvoice.CustomerID, schema.BillingInvoice.IssueDate,
		schema.BillingInvoice.IssuerName, schema.BillingInvoice.IssuerAddress, schema.BillingInvoice.Note,
		schema.BillingInvoice.Status, schema.BillingInvoice.Items, schema.BillingInvoice.Subtotal,
		schema.BillingInvoice.TotalDiscount, schema.BillingInvoice.GrandTotal, schema.BillingInvoice.RoundOff,
		schema.BillingInvoice.PaidAmount, schema.BillingInvoice.DueAmount,
		schema.BillingInvoice.UpdatedAt,
		schema.BillingInvoice.ID, schema.BillingInvoice.DeletedAt,
		schema.BillingInvoice.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		inv.ID, inv.Number, inv.CustomerID, inv.IssueDate,
		inv.IssuerName, inv.IssuerAddress, inv.Note,
		string(inv.Status), itemsJSON, inv.Subtotal,
		inv.TotalDiscount, inv.GrandTotal, inv.RoundOffTotal,
		inv.PaidAmount, inv.DueAmount,
	).Scan(&inv.UpdatedAt)
	return dberr.Wrap(err, "update_invoice")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, status Status) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.BillingInvoice.Table, schema.BillingInvoice.Status, schema.BillingInvoice.UpdatedAt,
		schema.BillingInvoice.ID, schema.BillingInvoice.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, string(status))
	if err != nil {
		return dberr.Wrap(err, "update_invoice_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdatePaid(context context.Context, id string, paid, due decimal.Decimal) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.BillingInvoice.Table, schema.BillingInvoice.PaidAmount, schema.BillingInvoice.DueAmount,
		schema.BillingInvoice.UpdatedAt,
		schema.BillingInvoice.ID, schema.BillingInvoice.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, paid, due)
	if err != nil {
		return dberr.Wrap(err, "update_invoice_paid")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteInvoice(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.BillingInvoice.Table, schema.BillingInvoice.DeletedAt,
		schema.BillingInvoice.ID, schema.BillingInvoice.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_invoice")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) StatsByStatus(context context.Context, f StatsFilter) ([]StatusStats, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			count(*),
			COALESCE(sum(%s), 0),
			COALESCE(sum(%s), 0),
			COALESCE(sum(%s), 0),
			COALESCE(avg(%s), 0)
		FROM %s
		WHERE %s IS NULL
	`,
		schema.BillingInvoice.Status,
		schema.BillingInvoice.GrandTotal, schema.BillingInvoice.PaidAmount,
		schema.BillingInvoice.DueAmount, schema.BillingInvoice.GrandTotal,
		schema.BillingInvoice.Table, schema.BillingInvoice.DeletedAt,
	)

	args := []any{}
	if f.From != nil {
		query += fmt.Sprintf(` AND %s >= $%d`, schema.BillingInvoice.IssueDate, len(args)+1)
		args = append(args, *f.From)
	}
	if f.To != nil {
		query += fmt.Sprintf(` AND %s <= $%d`, schema.BillingInvoice.IssueDate, len(args)+1)
		args = append(args, *f.To)
	}

	query += fmt.Sprintf(` GROUP BY %s ORDER BY %s ASC`,
		schema.BillingInvoice.Status, schema.BillingInvoice.Status)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "invoice_stats")
	}
	defer rows.Close()

	var stats []StatusStats
	for rows.Next() {
		var row StatusStats
		var status string
		if err := rows.Scan(&status, &row.Count, &row.TotalAmount, &row.TotalPaid, &row.TotalDue, &row.Average); err != nil {
			return nil, dberr.Wrap(err, "scan_invoice_stats")
		}
		row.Status = Status(status)
		row.Average = money.Round2(row.Average)
		stats = append(stats, row)
	}

	return stats, nil
}
