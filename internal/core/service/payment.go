package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/utils"
	"go.uber.org/zap"
)

type PaymentService struct {
	repo   port.Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewPaymentService(repo port.Repository, logger *zap.Logger) (*PaymentService, error) {
	return &PaymentService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}, nil
}

func validatePayment(req domain.PaymentRequest) error {
	if !req.Amount.IsPos() {
		return domain.Validationf("amount must be positive")
	}
	if req.Amount.Scale() > utils.MoneyScale {
		return domain.Validationf("amount must not have more than %d decimal places", utils.MoneyScale)
	}
	if !req.Method.Valid() {
		return domain.Validationf("unknown payment method %q", req.Method)
	}

	switch req.Method {
	case domain.PaymentMethodCash:
		if req.Amount.Cmp(domain.CashCeiling) > 0 {
			return domain.ErrCashCeilingExceeded
		}
	case domain.PaymentMethodCheque, domain.PaymentMethodBankTransfer:
		if blank(req.Reference) {
			return domain.Validationf("reference is required for %s", req.Method)
		}
		if blank(req.Bank) {
			return domain.Validationf("bank is required for %s", req.Method)
		}
		if req.Method == domain.PaymentMethodCheque && req.DueDate == nil {
			return domain.Validationf("due date is required for %s", req.Method)
		}
	}
	return nil
}

// AddPayment records a payment against a pending order and lowers its remaining amount in the same
// transaction. Cash clears immediately, other methods wait for validation.
func (s *PaymentService) AddPayment(ctx context.Context,
	actor domain.Actor,
	req domain.PaymentRequest,
) (*domain.Payment, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validatePayment(req); err != nil {
		return nil, err
	}

	var result *domain.Payment
	err := s.repo.InTransaction(ctx, func(ctx context.Context) error {
		order, err := s.repo.ReadOrderForUpdate(ctx, req.OrderID)
		if err != nil {
			return storeError(s.logger, "Read order", err)
		}
		if order.Status != domain.OrderStatusPending {
			return domain.ErrOrderNotPending
		}
		if req.Amount.Cmp(order.RemainingAmount) > 0 {
			return domain.ErrPaymentExceedsBalance
		}

		existing, err := s.repo.ListPaymentsByOrder(ctx, order.ID)
		if err != nil {
			return storeError(s.logger, "List payments", err)
		}

		amount := req.Amount.Pad(utils.MoneyScale)
		payment := &domain.Payment{
			OrderID: order.ID,
			Number:  len(existing) + 1,
			Amount:  amount,
			Method:  req.Method,
			Status:  domain.PaymentStatusPendingClearance,
			PaidAt:  s.now(),
		}
		if req.Method == domain.PaymentMethodCash {
			cleared := payment.PaidAt
			payment.Status = domain.PaymentStatusCleared
			payment.ClearedAt = &cleared
		} else {
			payment.Reference = req.Reference
			payment.Bank = req.Bank
			payment.DueDate = req.DueDate
		}

		result, err = s.repo.CreatePayment(ctx, payment)
		if err != nil {
			return storeError(s.logger, "Create payment", err)
		}

		order.RemainingAmount, err = order.RemainingAmount.Sub(amount)
		if err != nil {
			s.logger.Error("Remaining amount", zap.Error(fmt.Errorf("math error:%w", err)))
			return domain.ErrInternal
		}
		if _, err := s.repo.UpdateOrder(ctx, order); err != nil {
			return storeError(s.logger, "Update order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment added",
		zap.Uint64("order", result.OrderID),
		zap.Int("number", result.Number),
		zap.String("method", string(result.Method)),
		zap.Stringer("amount", result.Amount))
	return result, nil
}

func (s *PaymentService) ValidatePayment(ctx context.Context, actor domain.Actor, paymentID uint64) (*domain.Payment, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var result *domain.Payment
	err := s.repo.InTransaction(ctx, func(ctx context.Context) error {
		payment, err := s.repo.ReadPaymentForUpdate(ctx, paymentID)
		if err != nil {
			return storeError(s.logger, "Read payment", err)
		}
		switch payment.Status {
		case domain.PaymentStatusCleared:
			return domain.ErrPaymentAlreadyCleared
		case domain.PaymentStatusReversed:
			return domain.ErrPaymentAlreadyReversed
		}

		cleared := s.now()
		payment.Status = domain.PaymentStatusCleared
		payment.ClearedAt = &cleared

		result, err = s.repo.UpdatePayment(ctx, payment)
		if err != nil {
			return storeError(s.logger, "Update payment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelPayment reverses a payment still waiting for clearance and gives its amount back to the
// order balance.
func (s *PaymentService) CancelPayment(ctx context.Context, actor domain.Actor, paymentID uint64) (*domain.Payment, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var result *domain.Payment
	err := s.repo.InTransaction(ctx, func(ctx context.Context) error {
		payment, err := s.repo.ReadPaymentForUpdate(ctx, paymentID)
		if err != nil {
			return storeError(s.logger, "Read payment", err)
		}
		switch payment.Status {
		case domain.PaymentStatusCleared:
			return domain.ErrPaymentAlreadyCleared
		case domain.PaymentStatusReversed:
			return domain.ErrPaymentAlreadyReversed
		}

		order, err := s.repo.ReadOrderForUpdate(ctx, payment.OrderID)
		if err != nil {
			return storeError(s.logger, "Read order", err)
		}
		if order.Status != domain.OrderStatusPending {
			return domain.ErrOrderNotPending
		}

		payment.Status = domain.PaymentStatusReversed
		result, err = s.repo.UpdatePayment(ctx, payment)
		if err != nil {
			return storeError(s.logger, "Update payment", err)
		}

		order.RemainingAmount, err = order.RemainingAmount.Add(payment.Amount)
		if err != nil {
			s.logger.Error("Remaining amount", zap.Error(fmt.Errorf("math error:%w", err)))
			return domain.ErrInternal
		}
		if _, err := s.repo.UpdateOrder(ctx, order); err != nil {
			return storeError(s.logger, "Update order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment reversed",
		zap.Uint64("payment", result.ID),
		zap.Uint64("order", result.OrderID))
	return result, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, actor domain.Actor, orderID uint64) ([]*domain.Payment, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, storeError(s.logger, "Read order", err)
	}
	if !actor.CanAccessClient(order.ClientID) {
		return nil, domain.ErrForbidden
	}

	list, err := s.repo.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return nil, storeError(s.logger, "List payments", err)
	}
	return list, nil
}
