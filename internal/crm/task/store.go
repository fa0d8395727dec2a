// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package task

import "context"

type Repository interface {
	ListTasks(context context.Context, f Filter, limit, offset int) ([]*Task, int, error)
	GetTask(context context.Context, id string) (*Task, error)
	CreateTask(context context.Context, t *Task) error
	UpdateTask(context context.Context, t *Task) error
	UpdateStatus(context context.Context, id string, status Status) error
	DeleteTask(context context.Context, id string) error
}
