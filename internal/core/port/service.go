package port

import (
	"context"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/govalues/decimal"
)

// Pricing is the outcome of pricing a set of line items.
type Pricing struct {
	Subtotal        decimal.Decimal
	DiscountRate    decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	// PromoCode is set when a promo discount was applied.
	PromoCode string
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type PricingEngine interface {
	Price(ctx context.Context, tier domain.Tier, items []domain.OrderItem, promoCode string) (*Pricing, error)
}

type StockGuard interface {
	Validate(ctx context.Context, items []domain.OrderItem) error
	DecrementBatch(ctx context.Context, items []domain.OrderItem) error
	Increment(ctx context.Context, productID uint64, qty int) error
}

type PromoRegistry interface {
	ValidateAndGet(ctx context.Context, code string) (*domain.PromoCode, error)
	IncrementUsage(ctx context.Context, code string) error

	CreatePromo(ctx context.Context, actor domain.Actor, promo *domain.PromoCode) (*domain.PromoCode, error)
	GetPromo(ctx context.Context, actor domain.Actor, code string) (*domain.PromoCode, error)
	ListPromos(ctx context.Context, actor domain.Actor) ([]*domain.PromoCode, error)
	DeactivatePromo(ctx context.Context, actor domain.Actor, code string) (*domain.PromoCode, error)
}

type ClientLedger interface {
	CreateClient(ctx context.Context, actor domain.Actor, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, actor domain.Actor, clientID uint64) (*domain.Client, error)
	ListClients(ctx context.Context, actor domain.Actor) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, actor domain.Actor, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, actor domain.Actor, clientID uint64) error
	RecordConfirmedOrder(ctx context.Context, clientID uint64, amount decimal.Decimal) (*domain.Client, error)
}

type Catalog interface {
	ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	GetProductIncludingDeleted(ctx context.Context, actor domain.Actor, productID uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, actor domain.Actor, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, actor domain.Actor, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, actor domain.Actor, productID uint64) (*domain.Product, error)
	Restock(ctx context.Context, actor domain.Actor, productID uint64, qty int) (*domain.Product, error)
}

type OrderLifecycle interface {
	CreateOrder(ctx context.Context, actor domain.Actor, req domain.CreateOrderRequest) (*domain.Order, error)
	ConfirmOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error)
	CancelOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor, filter domain.OrderFilter) ([]*domain.Order, error)
}

type PaymentLedger interface {
	AddPayment(ctx context.Context, actor domain.Actor, req domain.PaymentRequest) (*domain.Payment, error)
	ValidatePayment(ctx context.Context, actor domain.Actor, paymentID uint64) (*domain.Payment, error)
	CancelPayment(ctx context.Context, actor domain.Actor, paymentID uint64) (*domain.Payment, error)
	ListPayments(ctx context.Context, actor domain.Actor, orderID uint64) ([]*domain.Payment, error)
}
