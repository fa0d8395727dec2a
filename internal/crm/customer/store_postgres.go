// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package customer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sellora/sellora/internal/platform/database/schema"
	"github.com/sellora/sellora/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCustomers(context context.Context, f Filter, limit, offset int) ([]*Customer, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CRMCustomer.ID, schema.CRMCustomer.CompanyID, schema.CRMCustomer.Name,
		schema.CRMCustomer.Email, schema.CRMCustomer.Phone, schema.CRMCustomer.Address,
		schema.CRMCustomer.Notes, schema.CRMCustomer.CreatedAt, schema.CRMCustomer.UpdatedAt,
		schema.CRMCustomer.Table, schema.CRMCustomer.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.CRMCustomer.Table, schema.CRMCustomer.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND (name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)`,
			len(args)+1, len(args)+1, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.CompanyID != "" {
		clause := fmt.Sprintf(` AND companyid = $%d`, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.CompanyID)
		countArgs = append(countArgs, f.CompanyID)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CRMCustomer.Name) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_customers")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_customers")
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_customer")
		}
		customers = append(customers, c)
	}

	return customers, total, nil
}

func (repository *PostgresRepository) GetCustomer(context context.Context, id string) (*Customer, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CRMCustomer.ID, schema.CRMCustomer.CompanyID, schema.CRMCustomer.Name,
		schema.CRMCustomer.Email, schema.CRMCustomer.Phone, schema.CRMCustomer.Address,
		schema.CRMCustomer.Notes, schema.CRMCustomer.CreatedAt, schema.CRMCustomer.UpdatedAt,
		schema.CRMCustomer.Table, schema.CRMCustomer.ID, schema.CRMCustomer.DeletedAt,
	)
	c := &Customer{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_customer")
	}

	return c, nil
}

func (repository *PostgresRepository) CreateCustomer(context context.Context, c *Customer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CRMCustomer.Table, schema.CRMCustomer.ID, schema.CRMCustomer.CompanyID,
		schema.CRMCustomer.Name, schema.CRMCustomer.Email, schema.CRMCustomer.Phone,
		schema.CRMCustomer.Address, schema.CRMCustomer.Notes,
		schema.CRMCustomer.CreatedAt, schema.CRMCustomer.UpdatedAt,
		schema.CRMCustomer.CreatedAt, schema.CRMCustomer.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.CompanyID, c.Name, c.Email, c.Phone, c.Address, c.Notes,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_customer")
}

func (repository *PostgresRepository) UpdateCustomer(context context.Context, c *Customer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CRMCustomer.Table, schema.CRMCustomer.CompanyID, schema.CRMCustomer.Name,
		schema.CRMCustomer.Email, schema.CRMCustomer.Phone, schema.CRMCustomer.Address,
		schema.CRMCustomer.Notes, schema.CRMCustomer.UpdatedAt,
		schema.CRMCustomer.ID, schema.CRMCustomer.DeletedAt,
		schema.CRMCustomer.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.CompanyID, c.Name, c.Email, c.Phone, c.Address, c.Notes,
	).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_customer")
}

func (repository *PostgresRepository) DeleteCustomer(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CRMCustomer.Table, schema.CRMCustomer.DeletedAt,
		schema.CRMCustomer.ID, schema.CRMCustomer.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_customer")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
