// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package account

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sellora/sellora/internal/platform/database/schema"
	"github.com/sellora/sellora/internal/platform/dberr"
	"github.com/sellora/sellora/internal/users/auth"
	"github.com/sellora/sellora/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.UserAccount.ID, schema.UserAccount.FullName, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.LastLoginAt, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	user := &auth.User{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password, &user.Role,
		&user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_id")
	}
	return user, nil
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*auth.User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.UserAccount.ID, schema.UserAccount.FullName, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.LastLoginAt, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.Email, schema.UserAccount.DeletedAt,
	)

	user := &auth.User{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password, &user.Role,
		&user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_email")
	}
	return user, nil
}

func (repository *PostgresRepository) List(context context.Context, search string, params pagination.Params) ([]auth.User, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.UserAccount.ID, schema.UserAccount.FullName, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.LastLoginAt, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.UserAccount.Table, schema.UserAccount.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	if search != "" {
		searchTerm := "%" + search + "%"
		query += ` AND (fullname ILIKE $1 OR email ILIKE $1)`
		countQuery += ` AND (fullname ILIKE $1 OR email ILIKE $1)`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.UserAccount.CreatedAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, params.Limit, params.Offset())

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_accounts")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_accounts")
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		user := auth.User{}
		if err := rows.Scan(
			&user.ID, &user.FullName, &user.Email, &user.Password, &user.Role,
			&user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_account")
		}
		users = append(users, user)
	}

	return users, total, nil
}

func (repository *PostgresRepository) Create(context context.Context, user *auth.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.FullName,
		schema.UserAccount.Email, schema.UserAccount.Password, schema.UserAccount.Role,
		schema.UserAccount.IsActive, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.FullName, user.Email, user.Password, user.Role, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_account")
}

func (repository *PostgresRepository) Update(context context.Context, user *auth.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.UserAccount.Table, schema.UserAccount.FullName, schema.UserAccount.Role,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID, schema.UserAccount.DeletedAt,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, user.ID, user.FullName, user.Role).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_account")
}

func (repository *PostgresRepository) SetActive(context context.Context, id string, active bool) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.UserAccount.Table, schema.UserAccount.IsActive, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_account_active")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 AND %s IS NULL`,
		schema.UserAccount.Table, schema.UserAccount.DeletedAt,
		schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, time.Now())
	if err != nil {
		return dberr.Wrap(err, "delete_account")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
