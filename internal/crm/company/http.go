// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package company

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

	router.Get("/", handler.listCompanies)
	router.Get("/{id}", handler.getCompany)
	router.Post("/", handler.createCompany)
	router.Put("/{id}", handler.updateCompany)

	// Destructive operations need manager rank
	router.With(middleware.RequireRole(sec.RoleManager)).Delete("/{id}", handler.deleteCompany)
}

func (handler *Handler) listCompanies(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	companies, total, err := handler.service.ListCompanies(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, companies, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCompany(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	company, err := handler.service.GetCompany(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, company)
}

func (handler *Handler) createCompany(writer http.ResponseWriter, request *http.Request) {
	var input Company
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCompany(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCompany(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Company
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCompany(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCompany(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCompany(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
