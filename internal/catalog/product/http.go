// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package product

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
	// All catalog access requires an authenticated operator
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)

	// Catalog mutations need manager rank
	router.Group(func(managerRoute chi.Router) {
		managerRoute.Use(middleware.RequireRole(sec.RoleManager))

		managerRoute.Post("/", handler.createProduct)
		managerRoute.Put("/{id}", handler.updateProduct)
		managerRoute.Delete("/{id}", handler.deleteProduct)
	})
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	products, total, err := handler.service.ListProducts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.GetProduct(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input Product
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateProduct(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Product
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateProduct(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProduct(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
