// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package task

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

func (repository *PostgresRepository) ListTasks(context context.Context, f Filter, limit, offset int) ([]*Task, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CRMTask.ID, schema.CRMTask.Title, schema.CRMTask.Description,
		schema.CRMTask.AssigneeID, schema.CRMTask.CustomerID, schema.CRMTask.Status,
		schema.CRMTask.DueDate, schema.CRMTask.CreatedAt, schema.CRMTask.UpdatedAt,
		schema.CRMTask.Table, schema.CRMTask.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.CRMTask.Table, schema.CRMTask.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND title ILIKE $%d`, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.AssigneeID != "" {
		clause := fmt.Sprintf(` AND assigneeid = $%d`, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.AssigneeID)
		countArgs = append(countArgs, f.AssigneeID)
	}

	if f.CustomerID != "" {
		clause := fmt.Sprintf(` AND customerid = $%d`, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.CustomerID)
		countArgs = append(countArgs, f.CustomerID)
	}

	if f.Status != "" {
		clause := fmt.Sprintf(` AND status = $%d`, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Status)
		countArgs = append(countArgs, f.Status)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC NULLS LAST, %s DESC LIMIT $", schema.CRMTask.DueDate, schema.CRMTask.CreatedAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tasks")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tasks")
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		t := &Task{}
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.AssigneeID, &t.CustomerID,
			&t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_task")
		}
		tasks = append(tasks, t)
	}

	return tasks, total, nil
}

func (repository *PostgresRepository) GetTask(context context.Context, id string) (*Task, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CRMTask.ID, schema.CRMTask.Title, schema.CRMTask.Description,
		schema.CRMTask.AssigneeID, schema.CRMTask.CustomerID, schema.CRMTask.Status,
		schema.CRMTask.DueDate, schema.CRMTask.CreatedAt, schema.CRMTask.UpdatedAt,
		schema.CRMTask.Table, schema.CRMTask.ID, schema.CRMTask.DeletedAt,
	)
	t := &Task{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.AssigneeID, &t.CustomerID,
		&t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_task")
	}

	return t, nil
}

func (repository *PostgresRepository) CreateTask(context context.Context, t *Task) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CRMTask.Table, schema.CRMTask.ID, schema.CRMTask.Title,
		schema.CRMTask.Description, schema.CRMTask.AssigneeID, schema.CRMTask.CustomerID,
		schema.CRMTask.Status, schema.CRMTask.DueDate,
		schema.CRMTask.CreatedAt, schema.CRMTask.UpdatedAt,
		schema.CRMTask.CreatedAt, schema.CRMTask.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		t.ID, t.Title, t.Description, t.AssigneeID, t.CustomerID, t.Status, t.DueDate,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return dberr.Wrap(err, "create_task")
}

func (repository *PostgresRepository) UpdateTask(context context.Context, t *Task) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CRMTask.Table, schema.CRMTask.Title, schema.CRMTask.Description,
		schema.CRMTask.AssigneeID, schema.CRMTask.CustomerID, schema.CRMTask.Status,
		schema.CRMTask.DueDate, schema.CRMTask.UpdatedAt,
		schema.CRMTask.ID, schema.CRMTask.DeletedAt,
		schema.CRMTask.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		t.ID, t.Title, t.Description, t.AssigneeID, t.CustomerID, t.Status, t.DueDate,
	).Scan(&t.UpdatedAt)
	return dberr.Wrap(err, "update_task")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, status Status) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL
	`,
		schema.CRMTask.Table, schema.CRMTask.Status, schema.CRMTask.UpdatedAt,
		schema.CRMTask.ID, schema.CRMTask.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "update_task_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteTask(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CRMTask.Table, schema.CRMTask.DeletedAt,
		schema.CRMTask.ID, schema.CRMTask.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_task")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
