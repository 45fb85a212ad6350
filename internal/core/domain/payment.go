package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheque, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPendingClearance PaymentStatus = "PENDING_CLEARANCE"
	PaymentStatusCleared          PaymentStatus = "CLEARED"
	PaymentStatusReversed         PaymentStatus = "REVERSED"
)

// CashCeiling is the largest amount accepted in a single cash payment.
var CashCeiling = decimal.MustNew(20000, 0)

type Payment struct {
	ID        uint64
	OrderID   uint64
	Number    int
	Amount    decimal.Decimal
	Method    PaymentMethod
	Status    PaymentStatus
	PaidAt    time.Time
	ClearedAt *time.Time
	Reference string
	Bank      string
	DueDate   *time.Time
}

type PaymentRequest struct {
	OrderID   uint64
	Amount    decimal.Decimal
	Method    PaymentMethod
	Reference string
	Bank      string
	DueDate   *time.Time
}
