package port

import (
	"context"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
)

// Transactor runs fn inside one transactional scope. The scope travels in the context given to fn;
// stores called with that context take part in it. Nested calls open a savepoint that is rolled
// back alone when fn fails.
//
//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CatalogStore interface {
	// GetProduct returns visible products only.
	GetProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	GetProductIncludingDeleted(ctx context.Context, productID uint64) (*domain.Product, error)
	ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// DecrementStock removes qty units when at least qty are available. It reports false when the
	// stock was too low, leaving it unchanged.
	DecrementStock(ctx context.Context, productID uint64, qty int) (bool, error)
	IncrementStock(ctx context.Context, productID uint64, qty int) error
}

type ClientStore interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, clientID uint64) (*domain.Client, error)
	GetClientForUpdate(ctx context.Context, clientID uint64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	SaveClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// DeleteClient removes a client without orders. A client with orders is kept and
	// ErrClientHasOrders returned.
	DeleteClient(ctx context.Context, clientID uint64) error
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderForUpdate(ctx context.Context, orderID uint64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
}

type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ReadPayment(ctx context.Context, paymentID uint64) (*domain.Payment, error)
	ReadPaymentForUpdate(ctx context.Context, paymentID uint64) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	// ListPaymentsByOrder returns payments ordered by number.
	ListPaymentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Payment, error)
}

type PromoStore interface {
	CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	FindPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	ListPromos(ctx context.Context) ([]*domain.PromoCode, error)
	UpdatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	// IncrementPromoUsage adds one use to an active code with usage left, reporting false otherwise.
	IncrementPromoUsage(ctx context.Context, code string) (bool, error)
}

type Repository interface {
	Transactor
	CatalogStore
	ClientStore
	OrderStore
	PaymentStore
	PromoStore
}
