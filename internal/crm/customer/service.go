// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package customer

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

func (service *Service) ListCustomers(context context.Context, filter Filter, limit, offset int) ([]*Customer, int, error) {
	return service.repo.ListCustomers(context, filter, limit, offset)
}

func (service *Service) GetCustomer(context context.Context, id string) (*Customer, error) {
	return service.repo.GetCustomer(context, id)
}

func (service *Service) CreateCustomer(context context.Context, customer *Customer) error {
	if err := service.validateCustomer(customer); err != nil {
		return err
	}

	customer.ID = uuid.New()
	if err := service.repo.CreateCustomer(context, customer); err != nil {
		return err
	}

	service.logger.Info("customer_created",
		slog.String("customer_id", customer.ID),
		slog.String("name", customer.Name),
	)
	return nil
}

func (service *Service) UpdateCustomer(context context.Context, id string, customer *Customer) error {
	customer.ID = id
	if err := service.validateCustomer(customer); err != nil {
		return err
	}

	if err := service.repo.UpdateCustomer(context, customer); err != nil {
		return err
	}

	service.logger.Info("customer_updated", slog.String("customer_id", customer.ID))
	return nil
}

func (service *Service) DeleteCustomer(context context.Context, id string) error {
	if err := service.repo.DeleteCustomer(context, id); err != nil {
		return err
	}

	service.logger.Warn("customer_deleted", slog.String("customer_id", id))
	return nil
}

func (service *Service) validateCustomer(customer *Customer) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, customer.Name).MaxLen(FieldName, customer.Name, 200)

	if customer.Email != nil && *customer.Email != "" {
		validator.Email(FieldEmail, *customer.Email)
	}
	if customer.Phone != nil {
		validator.MaxLen(FieldPhone, *customer.Phone, 30)
	}
	if customer.CompanyID != nil && *customer.CompanyID != "" {
		validator.UUID(FieldCompanyID, *customer.CompanyID)
	}

	return validator.Err()
}
