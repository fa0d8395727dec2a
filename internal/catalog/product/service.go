// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

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

func (service *Service) ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	return service.repo.ListProducts(context, filter, limit, offset)
}

func (service *Service) GetProduct(context context.Context, id string) (*Product, error) {
	return service.repo.GetProduct(context, id)
}

// BaseCost returns the recorded base cost for a single product. Billing uses
// it to derive per-invoice profit.
func (service *Service) BaseCost(context context.Context, id string) (decimal.Decimal, error) {
	item, err := service.repo.GetProduct(context, id)
	if err != nil {
		return decimal.Zero, err
	}
	return item.BaseCost, nil
}

func (service *Service) CreateProduct(context context.Context, product *Product) error {
	if err := service.validateProduct(product); err != nil {
		return err
	}

	product.ID = uuid.New()
	product.Currency = strings.ToUpper(product.Currency)

	if err := service.repo.CreateProduct(context, product); err != nil {
		return err
	}

	service.logger.Info("product_created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
	)
	return nil
}

func (service *Service) UpdateProduct(context context.Context, id string, product *Product) error {
	product.ID = id
	if err := service.validateProduct(product); err != nil {
		return err
	}

	product.Currency = strings.ToUpper(product.Currency)

	if err := service.repo.UpdateProduct(context, product); err != nil {
		return err
	}

	service.logger.Info("product_updated", slog.String("product_id", product.ID))
	return nil
}

func (service *Service) DeleteProduct(context context.Context, id string) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.String("product_id", id))
	return nil
}

func (service *Service) validateProduct(product *Product) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, product.Name).MaxLen(FieldName, product.Name, 200)

	// Prices carry at most 2 decimal places and are never negative
	validator.NonNegative(FieldUnitPrice, product.UnitPrice).
		MaxScale(FieldUnitPrice, product.UnitPrice, 2).
		NonNegative(FieldBaseCost, product.BaseCost).
		MaxScale(FieldBaseCost, product.BaseCost, 2)

	validator.Required(FieldCurrency, product.Currency).
		Custom(FieldCurrency, len(product.Currency) != 3, "must be a 3-letter ISO code")

	return validator.Err()
}
