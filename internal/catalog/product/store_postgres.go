// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package product

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

func (repository *PostgresRepository) ListProducts(context context.Context, f Filter, limit, offset int) ([]*Product, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Description,
		schema.CatalogProduct.UnitPrice, schema.CatalogProduct.BaseCost, schema.CatalogProduct.Currency,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` AND (name ILIKE $1 OR description ILIKE $1)`
		countQuery += ` AND (name ILIKE $1 OR description ILIKE $1)`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CatalogProduct.Name) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_products")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.UnitPrice, &p.BaseCost,
			&p.Currency, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}

	return products, total, nil
}

func (repository *PostgresRepository) GetProduct(context context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Description,
		schema.CatalogProduct.UnitPrice, schema.CatalogProduct.BaseCost, schema.CatalogProduct.Currency,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID, schema.CatalogProduct.DeletedAt,
	)
	p := &Product{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.UnitPrice, &p.BaseCost,
		&p.Currency, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}

	return p, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID, schema.CatalogProduct.Name,
		schema.CatalogProduct.Description, schema.CatalogProduct.UnitPrice,
		schema.CatalogProduct.BaseCost, schema.CatalogProduct.Currency,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.Description, p.UnitPrice, p.BaseCost, p.Currency,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CatalogProduct.Table, schema.CatalogProduct.Name, schema.CatalogProduct.Description,
		schema.CatalogProduct.UnitPrice, schema.CatalogProduct.BaseCost, schema.CatalogProduct.Currency,
		schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.ID, schema.CatalogProduct.DeletedAt,
		schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.Description, p.UnitPrice, p.BaseCost, p.Currency,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_product")
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
		schema.CatalogProduct.ID, schema.CatalogProduct.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
