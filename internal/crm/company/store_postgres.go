// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package company

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

func (repository *PostgresRepository) ListCompanies(context context.Context, f Filter, limit, offset int) ([]*Company, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CRMCompany.ID, schema.CRMCompany.Name, schema.CRMCompany.Email,
		schema.CRMCompany.Phone, schema.CRMCompany.Address, schema.CRMCompany.Website,
		schema.CRMCompany.TaxNumber, schema.CRMCompany.Notes,
		schema.CRMCompany.CreatedAt, schema.CRMCompany.UpdatedAt,
		schema.CRMCompany.Table, schema.CRMCompany.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.CRMCompany.Table, schema.CRMCompany.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` AND (name ILIKE $1 OR email ILIKE $1)`
		countQuery += ` AND (name ILIKE $1 OR email ILIKE $1)`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CRMCompany.Name) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_companies")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_companies")
	}
	defer rows.Close()

	var companies []*Company
	for rows.Next() {
		c := &Company{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Website,
			&c.TaxNumber, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_company")
		}
		companies = append(companies, c)
	}

	return companies, total, nil
}

func (repository *PostgresRepository) GetCompany(context context.Context, id string) (*Company, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CRMCompany.ID, schema.CRMCompany.Name, schema.CRMCompany.Email,
		schema.CRMCompany.Phone, schema.CRMCompany.Address, schema.CRMCompany.Website,
		schema.CRMCompany.TaxNumber, schema.CRMCompany.Notes,
		schema.CRMCompany.CreatedAt, schema.CRMCompany.UpdatedAt,
		schema.CRMCompany.Table, schema.CRMCompany.ID, schema.CRMCompany.DeletedAt,
	)
	c := &Company{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Website,
		&c.TaxNumber, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_company")
	}

	return c, nil
}

func (repository *PostgresRepository) CreateCompany(context context.Context, c *Company) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CRMCompany.Table, schema.CRMCompany.ID, schema.CRMCompany.Name,
		schema.CRMCompany.Email, schema.CRMCompany.Phone, schema.CRMCompany.Address,
		schema.CRMCompany.Website, schema.CRMCompany.TaxNumber, schema.CRMCompany.Notes,
		schema.CRMCompany.CreatedAt, schema.CRMCompany.UpdatedAt,
		schema.CRMCompany.CreatedAt, schema.CRMCompany.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Website, c.TaxNumber, c.Notes,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_company")
}

func (repository *PostgresRepository) UpdateCompany(context context.Context, c *Company) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CRMCompany.Table, schema.CRMCompany.Name, schema.CRMCompany.Email,
		schema.CRMCompany.Phone, schema.CRMCompany.Address, schema.CRMCompany.Website,
		schema.CRMCompany.TaxNumber, schema.CRMCompany.Notes, schema.CRMCompany.UpdatedAt,
		schema.CRMCompany.ID, schema.CRMCompany.DeletedAt,
		schema.CRMCompany.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Website, c.TaxNumber, c.Notes,
	).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_company")
}

func (repository *PostgresRepository) DeleteCompany(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CRMCompany.Table, schema.CRMCompany.DeletedAt,
		schema.CRMCompany.ID, schema.CRMCompany.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_company")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
