package service

import (
	"context"
	"strings"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/utils"
	"go.uber.org/zap"
)

type CatalogService struct {
	repo   port.CatalogStore
	stock  port.StockGuard
	logger *zap.Logger
}

func NewCatalogService(repo port.CatalogStore, stock port.StockGuard, logger *zap.Logger) (*CatalogService, error) {
	return &CatalogService{
		repo:   repo,
		stock:  stock,
		logger: logger,
	}, nil
}

func validateProduct(product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return domain.Validationf("product name is required")
	}
	if product.Price.IsNeg() {
		return domain.Validationf("price must not be negative")
	}
	if product.Price.Scale() > utils.MoneyScale {
		return domain.Validationf("price must have at most %d decimals", utils.MoneyScale)
	}
	if product.Stock < 0 {
		return domain.Validationf("stock must not be negative")
	}
	return nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListProducts(ctx, page)
	if err != nil {
		return nil, storeError(s.logger, "List products", err)
	}
	return list, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, storeError(s.logger, "Get product", err)
	}
	return product, nil
}

// GetProductIncludingDeleted serves administrative reconciliation.
func (s *CatalogService) GetProductIncludingDeleted(ctx context.Context, actor domain.Actor, productID uint64) (*domain.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	product, err := s.repo.GetProductIncludingDeleted(ctx, productID)
	if err != nil {
		return nil, storeError(s.logger, "Get product", err)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, actor domain.Actor, product *domain.Product) (*domain.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	product.Deleted = false

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, storeError(s.logger, "Create product", err)
	}
	return created, nil
}

// UpdateProduct changes name, description and price. Stock only moves through the stock guard.
func (s *CatalogService) UpdateProduct(ctx context.Context, actor domain.Actor, product *domain.Product) (*domain.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProduct(ctx, product.ID)
	if err != nil {
		return nil, storeError(s.logger, "Get product", err)
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	if err := validateProduct(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProduct(ctx, existing)
	if err != nil {
		return nil, storeError(s.logger, "Update product", err)
	}
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, actor domain.Actor, productID uint64) (*domain.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, storeError(s.logger, "Get product", err)
	}
	existing.Deleted = true

	deleted, err := s.repo.UpdateProduct(ctx, existing)
	if err != nil {
		return nil, storeError(s.logger, "Update product", err)
	}
	s.logger.Info("Product deleted", zap.Uint64("product", productID))
	return deleted, nil
}

func (s *CatalogService) Restock(ctx context.Context, actor domain.Actor, productID uint64, qty int) (*domain.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.stock.Increment(ctx, productID, qty); err != nil {
		return nil, err
	}
	product, err := s.repo.GetProductIncludingDeleted(ctx, productID)
	if err != nil {
		return nil, storeError(s.logger, "Get product", err)
	}
	return product, nil
}
