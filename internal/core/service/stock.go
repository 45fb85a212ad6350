package service

import (
	"context"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"go.uber.org/zap"
)

type StockGuard struct {
	catalog port.CatalogStore
	tx      port.Transactor
	logger  *zap.Logger
}

func NewStockGuard(catalog port.CatalogStore, tx port.Transactor, logger *zap.Logger) (*StockGuard, error) {
	return &StockGuard{
		catalog: catalog,
		tx:      tx,
		logger:  logger,
	}, nil
}

type stockLine struct {
	productID uint64
	quantity  int
}

// aggregate sums quantities of lines sharing a product, keeping first-seen order.
func aggregate(items []domain.OrderItem) []stockLine {
	index := make(map[uint64]int, len(items))
	lines := make([]stockLine, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			lines[i].quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, stockLine{productID: item.ProductID, quantity: item.Quantity})
	}
	return lines
}

// Validate checks every item against current stock and reports all short products together.
func (g *StockGuard) Validate(ctx context.Context, items []domain.OrderItem) error {
	report := domain.NewInsufficientStockError()

	for _, line := range aggregate(items) {
		product, err := g.catalog.GetProduct(ctx, line.productID)
		if err != nil {
			return storeError(g.logger, "Get product", err)
		}
		if product.Stock < line.quantity {
			report.Add(product.Name, domain.StockShortage{
				ProductID: product.ID,
				Requested: line.quantity,
				Available: product.Stock,
			})
		}
	}

	if !report.Empty() {
		return report
	}
	return nil
}

// DecrementBatch takes the stock of all items or of none of them.
func (g *StockGuard) DecrementBatch(ctx context.Context, items []domain.OrderItem) error {
	return g.tx.InTransaction(ctx, func(ctx context.Context) error {
		report := domain.NewInsufficientStockError()

		for _, line := range aggregate(items) {
			applied, err := g.catalog.DecrementStock(ctx, line.productID, line.quantity)
			if err != nil {
				return storeError(g.logger, "Decrement stock", err)
			}
			if applied {
				continue
			}

			product, err := g.catalog.GetProductIncludingDeleted(ctx, line.productID)
			if err != nil {
				return storeError(g.logger, "Get product", err)
			}
			available := product.Stock
			if product.Deleted {
				available = 0
			}
			report.Add(product.Name, domain.StockShortage{
				ProductID: product.ID,
				Requested: line.quantity,
				Available: available,
			})
		}

		if !report.Empty() {
			g.logger.Info("Stock decrement refused", zap.Error(report))
			return report
		}
		return nil
	})
}

func (g *StockGuard) Increment(ctx context.Context, productID uint64, qty int) error {
	if qty <= 0 {
		return domain.Validationf("quantity must be positive")
	}
	err := g.catalog.IncrementStock(ctx, productID, qty)
	if err != nil {
		return storeError(g.logger, "Increment stock", err)
	}
	return nil
}
