// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package task_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/crm/task"
	"github.com/sellora/sellora/internal/platform/dberr"
	"github.com/sellora/sellora/pkg/pointer"
)

type fakeTaskRepository struct {
	tasks map[string]*task.Task
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{tasks: map[string]*task.Task{}}
}

func (repo *fakeTaskRepository) ListTasks(_ context.Context, f task.Filter, _, _ int) ([]*task.Task, int, error) {
	var out []*task.Task
	for _, t := range repo.tasks {
		if f.AssigneeID != "" && t.AssigneeID != f.AssigneeID {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (repo *fakeTaskRepository) GetTask(_ context.Context, id string) (*task.Task, error) {
	t, ok := repo.tasks[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (repo *fakeTaskRepository) CreateTask(_ context.Context, t *task.Task) error {
	clone := *t
	repo.tasks[t.ID] = &clone
	return nil
}

func (repo *fakeTaskRepository) UpdateTask(_ context.Context, t *task.Task) error {
	if _, ok := repo.tasks[t.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *t
	repo.tasks[t.ID] = &clone
	return nil
}

func (repo *fakeTaskRepository) UpdateStatus(_ context.Context, id string, status task.Status) error {
	t, ok := repo.tasks[id]
	if !ok {
		return dberr.ErrNotFound
	}
	t.Status = status
	return nil
}

func (repo *fakeTaskRepository) DeleteTask(_ context.Context, id string) error {
	if _, ok := repo.tasks[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.tasks, id)
	return nil
}

const testAssigneeID = "0198d3a0-0000-7000-8000-00000000c001"

func validTask() *task.Task {
	due := time.Now().Add(72 * time.Hour)
	return &task.Task{
		Title:       "Follow up on renewal quote",
		Description: pointer.To("Customer asked for updated pricing before the quarter closes."),
		AssigneeID:  testAssigneeID,
		Status:      task.StatusOpen,
		DueDate:     &due,
	}
}

func newTaskService(repo task.Repository) *task.Service {
	return task.NewService(repo, slog.New(slog.DiscardHandler))
}

func TestCreateTask(t *testing.T) {
	repo := newFakeTaskRepository()
	service := newTaskService(repo)

	input := validTask()
	err := service.CreateTask(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, input.ID)
	assert.Len(t, repo.tasks, 1)
}

func TestCreateTaskDefaultsToOpen(t *testing.T) {
	repo := newFakeTaskRepository()
	service := newTaskService(repo)

	input := validTask()
	input.Status = ""
	err := service.CreateTask(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, task.StatusOpen, repo.tasks[input.ID].Status)
}

func TestCreateTaskValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *task.Task)
	}{
		{"empty_title", func(tk *task.Task) { tk.Title = "" }},
		{"long_title", func(tk *task.Task) { tk.Title = strings.Repeat("x", 201) }},
		{"missing_assignee", func(tk *task.Task) { tk.AssigneeID = "" }},
		{"bad_assignee_id", func(tk *task.Task) { tk.AssigneeID = "not-a-uuid" }},
		{"bad_customer_id", func(tk *task.Task) { tk.CustomerID = pointer.To("not-a-uuid") }},
		{"unknown_status", func(tk *task.Task) { tk.Status = "snoozed" }},
		{"zero_due_date", func(tk *task.Task) { tk.DueDate = &time.Time{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeTaskRepository()
			service := newTaskService(repo)

			input := validTask()
			tc.mutate(input)

			err := service.CreateTask(context.Background(), input)
			assert.Error(t, err)
			assert.Empty(t, repo.tasks)
		})
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	repo := newFakeTaskRepository()
	service := newTaskService(repo)

	input := validTask()
	require.NoError(t, service.CreateTask(context.Background(), input))

	err := service.UpdateStatus(context.Background(), input.ID, task.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, repo.tasks[input.ID].Status)

	err = service.UpdateStatus(context.Background(), input.ID, "snoozed")
	assert.Error(t, err)
	assert.Equal(t, task.StatusCompleted, repo.tasks[input.ID].Status)
}

func TestListTasksByAssignee(t *testing.T) {
	repo := newFakeTaskRepository()
	service := newTaskService(repo)

	mine := validTask()
	require.NoError(t, service.CreateTask(context.Background(), mine))

	other := validTask()
	other.AssigneeID = "0198d3a0-0000-7000-8000-00000000c002"
	require.NoError(t, service.CreateTask(context.Background(), other))

	tasks, total, err := service.ListTasks(context.Background(), task.Filter{AssigneeID: testAssigneeID}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, mine.ID, tasks[0].ID)
}

func TestDeleteTaskUnknown(t *testing.T) {
	service := newTaskService(newFakeTaskRepository())

	err := service.DeleteTask(context.Background(), "0198d3a0-0000-7000-8000-00000000c009")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
