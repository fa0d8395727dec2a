// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package payment

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

	router.Get("/", handler.listPayments)
	router.Get("/stats", handler.paymentStats)
	router.Get("/{id}", handler.getPayment)
	router.Post("/", handler.createPayment)

	// Reversing a payment needs manager rank
	router.With(middleware.RequireRole(sec.RoleManager)).Delete("/{id}", handler.deletePayment)
}

// parseDateParam accepts a plain calendar date (2006-01-02) or a full
// RFC 3339 timestamp. A plain date used as an upper bound is widened to the
// last instant of that day so the whole day falls inside the range.
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

func (handler *Handler) listPayments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	from, fromOK := parseDateParam(request, "from", false)
	to, toOK := parseDateParam(request, "to", true)

	v := &validate.Validator{}
	v.Custom("from", !fromOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	v.Custom("to", !toOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	if paymentType := request.URL.Query().Get("type"); paymentType != "" {
		v.Custom("type", !Type(paymentType).Valid(), "must be one of cash, cheque, upi")
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		InvoiceID: request.URL.Query().Get("invoice_id"),
		Type:      Type(request.URL.Query().Get("type")),
		From:      from,
		To:        to,
	}

	payments, total, err := handler.service.ListPayments(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, payments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPayment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.GetPayment(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) createPayment(writer http.ResponseWriter, request *http.Request) {
	var input Payment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePayment(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deletePayment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePayment(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) paymentStats(writer http.ResponseWriter, request *http.Request) {
	from, fromOK := parseDateParam(request, "from", false)
	to, toOK := parseDateParam(request, "to", true)

	v := &validate.Validator{}
	v.Custom("from", !fromOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	v.Custom("to", !toOK, "must be a date (2006-01-02) or RFC 3339 timestamp")
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.StatsByType(request.Context(), StatsFilter{From: from, To: to})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
