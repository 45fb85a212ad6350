package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/utils"
	"go.uber.org/zap"
)

type OrderService struct {
	repo    port.Repository
	pricing port.PricingEngine
	stock   port.StockGuard
	promo   port.PromoRegistry
	clients port.ClientLedger
	now     func() time.Time
	logger  *zap.Logger
}

func NewOrderService(repo port.Repository,
	pricing port.PricingEngine,
	stock port.StockGuard,
	promo port.PromoRegistry,
	clients port.ClientLedger,
	logger *zap.Logger,
) (*OrderService, error) {
	return &OrderService{
		repo:    repo,
		pricing: pricing,
		stock:   stock,
		promo:   promo,
		clients: clients,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}, nil
}

func validateOrderRequest(req domain.CreateOrderRequest) error {
	if len(req.Lines) == 0 {
		return domain.Validationf("order must contain at least one item")
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return domain.Validationf("quantity of product %d must be positive", line.ProductID)
		}
	}
	return nil
}

// CreateOrder freezes current product prices into the order. An order that cannot be served from
// current stock is stored as REJECTED with zero amounts and returned with its shortage report.
func (s *OrderService) CreateOrder(ctx context.Context,
	actor domain.Actor,
	req domain.CreateOrderRequest,
) (*domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}
	if !actor.CanAccessClient(req.ClientID) {
		return nil, domain.ErrForbidden
	}

	client, err := s.repo.GetClient(ctx, req.ClientID)
	if err != nil {
		return nil, storeError(s.logger, "Get client", err)
	}

	items := make([]domain.OrderItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		product, err := s.repo.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, storeError(s.logger, "Get product", err)
		}
		lineTotal, err := utils.LineTotal(line.Quantity, product.Price)
		if err != nil {
			s.logger.Error("Line total", zap.Error(err))
			return nil, domain.ErrInternal
		}
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
	}

	order := &domain.Order{
		ClientID:  client.ID,
		Items:     items,
		CreatedAt: s.now(),
	}

	err = s.stock.Validate(ctx, items)
	var shortage *domain.InsufficientStockError
	switch {
	case errors.As(err, &shortage):
		return s.createRejected(ctx, order, shortage)
	case err != nil:
		return nil, err
	}

	pricing, err := s.pricing.Price(ctx, client.Tier, items, req.PromoCode)
	if err != nil {
		return nil, err
	}

	order.Subtotal = pricing.Subtotal
	order.DiscountAmount = pricing.DiscountAmount
	order.TaxAmount = pricing.TaxAmount
	order.TotalAmount = pricing.TotalAmount
	order.RemainingAmount = pricing.RemainingAmount
	order.PromoCode = pricing.PromoCode
	order.Status = domain.OrderStatusPending

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, storeError(s.logger, "Create order", err)
	}

	s.logger.Info("Order created",
		zap.Uint64("order", created.ID),
		zap.Uint64("client", created.ClientID),
		zap.Stringer("total", created.TotalAmount))
	return created, nil
}

func (s *OrderService) createRejected(ctx context.Context,
	order *domain.Order,
	shortage *domain.InsufficientStockError,
) (*domain.Order, error) {
	order.Subtotal = zeroMoney
	order.DiscountAmount = zeroMoney
	order.TaxAmount = zeroMoney
	order.TotalAmount = zeroMoney
	order.RemainingAmount = zeroMoney
	order.Status = domain.OrderStatusRejected

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, storeError(s.logger, "Create order", err)
	}
	created.Shortages = shortage.Items

	s.logger.Info("Order rejected at creation",
		zap.Uint64("order", created.ID),
		zap.Error(shortage))
	return created, nil
}

// ConfirmOrder settles a fully paid order: stock is taken, the promo use is counted and the client
// ledger is updated together. A stock shortage rejects the order instead of failing the call.
func (s *OrderService) ConfirmOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var result *domain.Order
	err := s.repo.InTransaction(ctx, func(ctx context.Context) error {
		order, err := s.repo.ReadOrderForUpdate(ctx, orderID)
		if err != nil {
			return storeError(s.logger, "Read order", err)
		}
		if order.Status != domain.OrderStatusPending {
			return domain.ErrOrderNotPending
		}
		if !order.FullyPaid() {
			return domain.ErrOrderNotFullyPaid
		}

		err = s.stock.DecrementBatch(ctx, order.Items)
		var shortage *domain.InsufficientStockError
		switch {
		case errors.As(err, &shortage):
			order.Status = domain.OrderStatusRejected
			result, err = s.repo.UpdateOrder(ctx, order)
			if err != nil {
				return storeError(s.logger, "Update order", err)
			}
			result.Shortages = shortage.Items
			s.logger.Info("Order rejected at confirmation",
				zap.Uint64("order", order.ID),
				zap.Error(shortage))
			return nil
		case err != nil:
			return err
		}

		if order.PromoCode != "" {
			if err := s.promo.IncrementUsage(ctx, order.PromoCode); err != nil {
				return err
			}
		}

		order.Status = domain.OrderStatusConfirmed
		result, err = s.repo.UpdateOrder(ctx, order)
		if err != nil {
			return storeError(s.logger, "Update order", err)
		}

		if _, err := s.clients.RecordConfirmedOrder(ctx, order.ClientID, order.TotalAmount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order settled",
		zap.Uint64("order", result.ID),
		zap.String("status", string(result.Status)))
	return result, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var result *domain.Order
	err := s.repo.InTransaction(ctx, func(ctx context.Context) error {
		order, err := s.repo.ReadOrderForUpdate(ctx, orderID)
		if err != nil {
			return storeError(s.logger, "Read order", err)
		}
		if order.Status != domain.OrderStatusPending {
			return domain.ErrOrderNotPending
		}

		order.Status = domain.OrderStatusCanceled
		result, err = s.repo.UpdateOrder(ctx, order)
		if err != nil {
			return storeError(s.logger, "Update order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order canceled", zap.Uint64("order", orderID))
	return result, nil
}

func (s *OrderService) GetOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, storeError(s.logger, "Read order", err)
	}
	if !actor.CanAccessClient(order.ClientID) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListOrders returns all orders matching the filter for admins; clients only see their own.
func (s *OrderService) ListOrders(ctx context.Context,
	actor domain.Actor,
	filter domain.OrderFilter,
) ([]*domain.Order, error) {
	if !actor.IsAdmin() {
		if actor.Role != domain.RoleClient {
			return nil, domain.ErrForbidden
		}
		filter.ClientID = actor.ClientID
	}

	list, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, storeError(s.logger, "List orders", err)
	}
	return list, nil
}
