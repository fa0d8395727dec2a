// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sellora/sellora/internal/platform/middleware"
	requestutil "github.com/sellora/sellora/internal/platform/request"
	"github.com/sellora/sellora/internal/platform/respond"
	"github.com/sellora/sellora/internal/platform/sec"
	"github.com/sellora/sellora/internal/platform/validate"
	"github.com/sellora/sellora/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// All assignment access requires an authenticated operator
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listTasks)
	router.Get("/{id}", handler.getTask)
	router.Post("/", handler.createTask)
	router.Put("/{id}", handler.updateTask)
	router.Patch("/{id}/status", handler.updateTaskStatus)

	// Destructive operations need manager rank
	router.With(middleware.RequireRole(sec.RoleManager)).Delete("/{id}", handler.deleteTask)
}

func (handler *Handler) listTasks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:      request.URL.Query().Get("q"),
		AssigneeID: request.URL.Query().Get("assignee_id"),
		CustomerID: request.URL.Query().Get("customer_id"),
		Status:     request.URL.Query().Get("status"),
	}

	v := &validate.Validator{}
	if filter.Status != "" {
		v.Custom("status", !Status(filter.Status).Valid(), "must be a valid task status")
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tasks, total, err := handler.service.ListTasks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tasks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getTask(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	task, err := handler.service.GetTask(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, task)
}

func (handler *Handler) createTask(writer http.ResponseWriter, request *http.Request) {
	var input Task
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateTask(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateTask(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Task
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateTask(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) updateTaskStatus(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateStatus(request.Context(), id, Status(input.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id, "status": input.Status})
}

func (handler *Handler) deleteTask(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTask(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
