// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package company

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

func (service *Service) ListCompanies(context context.Context, filter Filter, limit, offset int) ([]*Company, int, error) {
	return service.repo.ListCompanies(context, filter, limit, offset)
}

func (service *Service) GetCompany(context context.Context, id string) (*Company, error) {
	return service.repo.GetCompany(context, id)
}

func (service *Service) CreateCompany(context context.Context, company *Company) error {
	if err := service.validateCompany(company); err != nil {
		return err
	}

	company.ID = uuid.New()
	if err := service.repo.CreateCompany(context, company); err != nil {
		return err
	}

	service.logger.Info("company_created",
		slog.String("company_id", company.ID),
		slog.String("name", company.Name),
	)
	return nil
}

func (service *Service) UpdateCompany(context context.Context, id string, company *Company) error {
	company.ID = id
	if err := service.validateCompany(company); err != nil {
		return err
	}

	if err := service.repo.UpdateCompany(context, company); err != nil {
		return err
	}

	service.logger.Info("company_updated", slog.String("company_id", company.ID))
	return nil
}

func (service *Service) DeleteCompany(context context.Context, id string) error {
	if err := service.repo.DeleteCompany(context, id); err != nil {
		return err
	}

	service.logger.Warn("company_deleted", slog.String("company_id", id))
	return nil
}

func (service *Service) validateCompany(company *Company) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, company.Name).MaxLen(FieldName, company.Name, 200)

	if company.Email != nil && *company.Email != "" {
		validator.Email(FieldEmail, *company.Email)
	}
	if company.Phone != nil {
		validator.MaxLen(FieldPhone, *company.Phone, 30)
	}
	if company.TaxNumber != nil {
		validator.MaxLen(FieldTaxNumber, *company.TaxNumber, 50)
	}

	return validator.Err()
}
