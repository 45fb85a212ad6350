package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.MustNew(100, 0)

type PromoService struct {
	repo   port.PromoStore
	logger *zap.Logger
}

func NewPromoService(repo port.PromoStore, logger *zap.Logger) (*PromoService, error) {
	return &PromoService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *PromoService) ValidateAndGet(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo, err := s.repo.FindPromoByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, storeError(s.logger, "Find promo", err)
	}

	if !promo.Active {
		return nil, domain.ErrPromoInactive
	}
	if !promo.HasRemainingUsage() {
		return nil, domain.ErrPromoExhausted
	}
	return promo, nil
}

// IncrementUsage counts one redemption of code. It must be called once per confirmed order.
func (s *PromoService) IncrementUsage(ctx context.Context, code string) error {
	applied, err := s.repo.IncrementPromoUsage(ctx, code)
	if err != nil {
		return storeError(s.logger, "Increment promo usage", err)
	}
	if applied {
		return nil
	}

	// explain why the conditional increment did not apply
	if _, err := s.ValidateAndGet(ctx, code); err != nil {
		return err
	}
	return domain.ErrPromoExhausted
}

func (s *PromoService) CreatePromo(ctx context.Context, actor domain.Actor, promo *domain.PromoCode) (*domain.PromoCode, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	promo.Code = strings.TrimSpace(promo.Code)
	if !utils.ValidPromoCode(promo.Code) {
		return nil, domain.Validationf("promo code must match PROMO-XXXX")
	}
	if !promo.DiscountPercentage.IsPos() || promo.DiscountPercentage.Cmp(hundred) > 0 {
		return nil, domain.Validationf("discount percentage must be in (0, 100]")
	}
	if promo.MaxUsage != nil && *promo.MaxUsage <= 0 {
		return nil, domain.Validationf("max usage must be positive")
	}
	promo.Active = true
	promo.CurrentUsage = 0

	created, err := s.repo.CreatePromo(ctx, promo)
	if err != nil {
		return nil, storeError(s.logger, "Create promo", err)
	}
	return created, nil
}

func (s *PromoService) GetPromo(ctx context.Context, actor domain.Actor, code string) (*domain.PromoCode, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	promo, err := s.repo.FindPromoByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, storeError(s.logger, "Find promo", err)
	}
	return promo, nil
}

func (s *PromoService) ListPromos(ctx context.Context, actor domain.Actor) ([]*domain.PromoCode, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	list, err := s.repo.ListPromos(ctx)
	if err != nil {
		return nil, storeError(s.logger, "List promos", err)
	}
	return list, nil
}

func (s *PromoService) DeactivatePromo(ctx context.Context, actor domain.Actor, code string) (*domain.PromoCode, error) {
	promo, err := s.GetPromo(ctx, actor, code)
	if err != nil {
		return nil, err
	}
	if !promo.Active {
		return promo, nil
	}

	promo.Active = false
	updated, err := s.repo.UpdatePromo(ctx, promo)
	if err != nil {
		return nil, storeError(s.logger, "Update promo", err)
	}
	s.logger.Info("Promo deactivated", zap.String("code", code))
	return updated, nil
}
