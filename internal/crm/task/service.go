// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package task

import (
	"context"
	"log/slog"

	"github.com/sellora/sellora/internal/platform/validate"
	"github.com/sellora/sellora/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTasks(context context.Context, filter Filter, limit, offset int) ([]*Task, int, error) {
	return service.repo.ListTasks(context, filter, limit, offset)
}

func (service *Service) GetTask(context context.Context, id string) (*Task, error) {
	return service.repo.GetTask(context, id)
}

func (service *Service) CreateTask(context context.Context, task *Task) error {
	if task.Status == "" {
		task.Status = StatusOpen
	}
	if err := service.validateTask(task); err != nil {
		return err
	}

	task.ID = uuid.New()
	if err := service.repo.CreateTask(context, task); err != nil {
		return err
	}

	service.logger.Info("task_created",
		slog.String("task_id", task.ID),
		slog.String("assignee_id", task.AssigneeID),
	)
	return nil
}

func (service *Service) UpdateTask(context context.Context, id string, task *Task) error {
	task.ID = id
	if err := service.validateTask(task); err != nil {
		return err
	}

	if err := service.repo.UpdateTask(context, task); err != nil {
		return err
	}

	service.logger.Info("task_updated", slog.String("task_id", task.ID))
	return nil
}

func (service *Service) UpdateStatus(context context.Context, id string, status Status) error {
	v := &validate.Validator{}
	v.Custom(FieldStatus, !status.Valid(), "must be a valid task status")
	if err := v.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("task_status_changed",
		slog.String("task_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

func (service *Service) DeleteTask(context context.Context, id string) error {
	if err := service.repo.DeleteTask(context, id); err != nil {
		return err
	}

	service.logger.Warn("task_deleted", slog.String("task_id", id))
	return nil
}

func (service *Service) validateTask(task *Task) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, task.Title).MaxLen(FieldTitle, task.Title, 200)
	validator.Required(FieldAssigneeID, task.AssigneeID).UUID(FieldAssigneeID, task.AssigneeID)
	validator.Custom(FieldStatus, !task.Status.Valid(), "must be a valid task status")

	if task.Description != nil {
		validator.MaxLen(FieldDescription, *task.Description, 2000)
	}
	if task.CustomerID != nil && *task.CustomerID != "" {
		validator.UUID(FieldCustomerID, *task.CustomerID)
	}
	if task.DueDate != nil {
		validator.NotZeroTime(FieldDueDate, *task.DueDate)
	}

	return validator.Err()
}
