package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Taxonomy.
	ErrDataNotFound      = errors.New("data not found")
	ErrValidation        = errors.New("validation failed")
	ErrBusinessRule      = errors.New("business rule violated")
	ErrInvalidState      = errors.New("operation not allowed in current state")
	ErrInsufficientStock = errors.New("insufficient stock")

	// * Data errors.
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Not found.
	ErrClientNotFound  = fmt.Errorf("%w: client", ErrDataNotFound)
	ErrProductNotFound = fmt.Errorf("%w: product", ErrDataNotFound)
	ErrOrderNotFound   = fmt.Errorf("%w: order", ErrDataNotFound)
	ErrPaymentNotFound = fmt.Errorf("%w: payment", ErrDataNotFound)
	ErrPromoNotFound   = fmt.Errorf("%w: promo code", ErrDataNotFound)

	// * Business errors.
	ErrOrderNotFullyPaid      = fmt.Errorf("%w: order must be fully paid to be confirmed", ErrBusinessRule)
	ErrPaymentExceedsBalance  = fmt.Errorf("%w: payment amount exceeds remaining amount", ErrBusinessRule)
	ErrCashCeilingExceeded    = fmt.Errorf("%w: cash payments cannot exceed the legal ceiling", ErrBusinessRule)
	ErrPromoInactive          = fmt.Errorf("%w: promo code is not active", ErrBusinessRule)
	ErrPromoExhausted         = fmt.Errorf("%w: promo code has no remaining usage", ErrBusinessRule)
	ErrOrderNotPending        = fmt.Errorf("%w: order is not pending", ErrInvalidState)
	ErrPaymentAlreadyCleared  = fmt.Errorf("%w: payment already cleared", ErrInvalidState)
	ErrPaymentAlreadyReversed = fmt.Errorf("%w: payment already reversed", ErrInvalidState)
	ErrClientHasOrders        = fmt.Errorf("%w: client has orders", ErrConflictingData)
)

// StockShortage is one line of an insufficient stock report.
type StockShortage struct {
	ProductID uint64 `json:"product_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// InsufficientStockError reports every short product of a batch at once, keyed by product name.
// Products sharing a name are told apart by their id.
type InsufficientStockError struct {
	Items map[string]StockShortage
}

func NewInsufficientStockError() *InsufficientStockError {
	return &InsufficientStockError{Items: make(map[string]StockShortage)}
}

func (e *InsufficientStockError) Add(name string, shortage StockShortage) {
	key := name
	if existing, ok := e.Items[key]; ok && existing.ProductID != shortage.ProductID {
		key = fmt.Sprintf("%s (#%d)", name, shortage.ProductID)
	}
	e.Items[key] = shortage
}

func (e *InsufficientStockError) Empty() bool {
	return len(e.Items) == 0
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, 0, len(e.Items))
	for name := range e.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		s := e.Items[name]
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", name, s.Requested, s.Available))
	}
	return ErrInsufficientStock.Error() + ": " + strings.Join(parts, ", ")
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Validationf builds a validation error with a field specific message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
