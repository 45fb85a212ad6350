package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
	OrderStatusRejected  OrderStatus = "REJECTED"
)

type OrderItem struct {
	ProductID   uint64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

type Order struct {
	ID              uint64
	ClientID        uint64
	Items           []OrderItem
	CreatedAt       time.Time
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	PromoCode       string
	Status          OrderStatus

	// Shortages is filled when the order was rejected for stock at creation. Not persisted.
	Shortages map[string]StockShortage
}

// FullyPaid reports whether nothing remains to be paid on the order.
func (o *Order) FullyPaid() bool {
	return o.RemainingAmount.Sign() <= 0
}

// OrderLine is a requested product quantity, before prices are frozen.
type OrderLine struct {
	ProductID uint64
	Quantity  int
}

type CreateOrderRequest struct {
	ClientID  uint64
	Lines     []OrderLine
	PromoCode string
}

type OrderFilter struct {
	ClientID uint64
	Status   OrderStatus
}
