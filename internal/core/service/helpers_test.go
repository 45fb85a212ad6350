package service_test

import (
	"context"
	"testing"

	"github.com/MikeRez0/ypsmartshop/internal/adapter/storage/memory"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/service"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	admin   = domain.Actor{Role: domain.RoleAdmin}
	taxRate = decimal.MustNew(20, 2)
)

func clientActor(id uint64) domain.Actor {
	return domain.Actor{ClientID: id, Role: domain.RoleClient}
}

type shop struct {
	store    *memory.Store
	catalog  *service.CatalogService
	clients  *service.ClientService
	promos   *service.PromoService
	pricing  *service.PricingEngine
	stock    *service.StockGuard
	orders   *service.OrderService
	payments *service.PaymentService
}

func newShop(t *testing.T) *shop {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewStore()

	stock, err := service.NewStockGuard(store, store, logger)
	require.NoError(t, err)
	promos, err := service.NewPromoService(store, logger)
	require.NoError(t, err)
	pricing, err := service.NewPricingEngine(promos, taxRate, logger)
	require.NoError(t, err)
	clients, err := service.NewClientService(store, logger)
	require.NoError(t, err)
	catalog, err := service.NewCatalogService(store, stock, logger)
	require.NoError(t, err)
	orders, err := service.NewOrderService(store, pricing, stock, promos, clients, logger)
	require.NoError(t, err)
	payments, err := service.NewPaymentService(store, logger)
	require.NoError(t, err)

	return &shop{
		store:    store,
		catalog:  catalog,
		clients:  clients,
		promos:   promos,
		pricing:  pricing,
		stock:    stock,
		orders:   orders,
		payments: payments,
	}
}

func (s *shop) product(t *testing.T, name, price string, stock int) *domain.Product {
	t.Helper()
	p, err := s.catalog.CreateProduct(context.Background(), admin, &domain.Product{
		Name:  name,
		Price: decimal.MustParse(price),
		Stock: stock,
	})
	require.NoError(t, err)
	return p
}

func (s *shop) client(t *testing.T, email string) *domain.Client {
	t.Helper()
	c, err := s.clients.CreateClient(context.Background(), admin, &domain.Client{Name: "Client " + email, Email: email})
	require.NoError(t, err)
	return c
}

func (s *shop) promo(t *testing.T, code string, maxUsage *int) *domain.PromoCode {
	t.Helper()
	p, err := s.promos.CreatePromo(context.Background(), admin, &domain.PromoCode{
		Code:               code,
		DiscountPercentage: decimal.MustNew(5, 0),
		MaxUsage:           maxUsage,
	})
	require.NoError(t, err)
	return p
}

// pendingOrder stores a pending order with the given remaining amount, bypassing pricing.
func (s *shop) pendingOrder(t *testing.T, clientID uint64, remaining string, items ...domain.OrderItem) *domain.Order {
	t.Helper()
	amount := decimal.MustParse(remaining)
	o, err := s.store.CreateOrder(context.Background(), &domain.Order{
		ClientID:        clientID,
		Items:           items,
		Subtotal:        amount,
		DiscountAmount:  decimal.MustParse("0.00"),
		TaxAmount:       decimal.MustParse("0.00"),
		TotalAmount:     amount,
		RemainingAmount: amount,
		Status:          domain.OrderStatusPending,
	})
	require.NoError(t, err)
	return o
}

// pay clears the whole remaining amount of the order in cash.
func (s *shop) pay(t *testing.T, orderID uint64) {
	t.Helper()
	ctx := context.Background()
	o, err := s.store.ReadOrder(ctx, orderID)
	require.NoError(t, err)
	_, err = s.payments.AddPayment(ctx, admin, domain.PaymentRequest{
		OrderID: orderID,
		Amount:  o.RemainingAmount,
		Method:  domain.PaymentMethodCash,
	})
	require.NoError(t, err)
}

func intPtr(v int) *int {
	return &v
}
