// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package invoice

import (
	"net/http"
	"time"

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
	// All billing access requires an authenticated operator
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listInvoices)
	router.Get("/stats", handler.invoiceStats)
	router.Get("/{id}", handler.getInvoice)
	router.Get("/{id}/summary", handler.getInvoiceSummary)
	router.Post("/", handler.createInvoice)
	router.Put("/{id}", handler.updateInvoice)
	router.Patch("/{id}/status", handler.updateInvoiceStatus)

	// Destructive operations need manager rank
	router.With(middleware.RequireRole(sec.RoleManager)).Delete("/{id}", handler.deleteInvoice)
}

// parseDateParam accepts a plain calendar date (2006-01-02) or a full
// RFC 3339 timestamp. A plain date used as an upper bound is widened to the
// last instant of that day so the whole day falls inside the range. Returns
// nil when the parameter is absent.
func parseDateParam(request *http.Request, key string, upperBound bool) (*time.Time, bool) {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		if upperBound {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		return &parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, true
	}
	return nil, false
}

func (handler *Handler) listInvoices(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	from, fromOK := parseDateParam(request, "from", false)
	to, toOK := parseDateParam(request, "to", true)

	v := &validate.Validator{}
	v.Custom("from", !fromOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	v.Custom("to", !toOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	if status := request.URL.Query().Get("status"); status != "" {
		v.Custom("status", !Status(status).Valid(), "must be a valid invoice status")
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Query:      request.URL.Query().Get("q"),
		CustomerID: request.URL.Query().Get("customer_id"),
		Status:     Status(request.URL.Query().Get("status")),
		From:       from,
		To:         to,
	}

	invoices, total, err := handler.service.ListInvoices(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, invoices, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getInvoice(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	inv, err := handler.service.GetInvoice(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, inv)
}

func (handler *Handler) getInvoiceSummary(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.GetSummary(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) createInvoice(writer http.ResponseWriter, request *http.Request) {
	var input Invoice
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateInvoice(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateInvoice(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Invoice
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateInvoice(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) updateInvoiceStatus(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) deleteInvoice(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteInvoice(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) invoiceStats(writer http.ResponseWriter, request *http.Request) {
	from, fromOK := parseDateParam(request, "from", false)
	to, toOK := parseDateParam(request, "to", true)

	v := &validate.Validator{}
	v.Custom("from", !fromOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	v.Custom("to", !toOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.StatsByStatus(request.Context(), StatsFilter{From: from, To: to})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
