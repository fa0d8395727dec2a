// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package customer

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
	// All directory access requires an authenticated operator
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listCustomers)
	router.Get("/{id}", handler.getCustomer)
	router.Post("/", handler.createCustomer)
	router.Put("/{id}", handler.updateCustomer)

	// Destructive operations need manager rank
	router.With(middleware.RequireRole(sec.RoleManager)).Delete("/{id}", handler.deleteCustomer)
}

func (handler *Handler) listCustomers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:     request.URL.Query().Get("q"),
		CompanyID: request.URL.Query().Get("company_id"),
	}

	customers, total, err := handler.service.ListCustomers(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, customers, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCustomer(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	customer, err := handler.service.GetCustomer(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, customer)
}

func (handler *Handler) createCustomer(writer http.ResponseWriter, request *http.Request) {
	var input Customer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCustomer(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCustomer(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Customer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCustomer(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCustomer(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCustomer(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
