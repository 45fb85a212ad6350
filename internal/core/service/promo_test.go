package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port/mock"
	"github.com/MikeRez0/ypsmartshop/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPromoService_ValidateAndGet(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		stored   *domain.PromoCode
		storeErr error
		expError error
	}{
		{
			name:   "active",
			stored: &domain.PromoCode{Code: "PROMO-AB12", Active: true},
		},
		{
			name:     "missing",
			storeErr: domain.ErrPromoNotFound,
			expError: domain.ErrPromoNotFound,
		},
		{
			name:     "inactive",
			stored:   &domain.PromoCode{Code: "PROMO-AB12", Active: false},
			expError: domain.ErrPromoInactive,
		},
		{
			name:     "exhausted",
			stored:   &domain.PromoCode{Code: "PROMO-AB12", Active: true, MaxUsage: intPtr(2), CurrentUsage: 2},
			expError: domain.ErrPromoExhausted,
		},
		{
			name:     "store failure is hidden",
			storeErr: errors.New("connection reset"),
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockPromoStore(mockCtrl)
			repo.EXPECT().FindPromoByCode(gomock.Any(), "PROMO-AB12").Return(test.stored, test.storeErr)

			s, err := service.NewPromoService(repo, zap.NewNop())
			require.NoError(t, err)

			result, err := s.ValidateAndGet(context.Background(), "PROMO-AB12")
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.stored, result)
		})
	}
}

func TestPromoService_IncrementUsage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockPromoStore(mockCtrl)
	s, err := service.NewPromoService(repo, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	repo.EXPECT().IncrementPromoUsage(gomock.Any(), "PROMO-AB12").Return(true, nil)
	assert.NoError(t, s.IncrementUsage(ctx, "PROMO-AB12"))

	repo.EXPECT().IncrementPromoUsage(gomock.Any(), "PROMO-AB12").Return(false, nil)
	repo.EXPECT().FindPromoByCode(gomock.Any(), "PROMO-AB12").
		Return(&domain.PromoCode{Code: "PROMO-AB12", Active: false}, nil)
	assert.ErrorIs(t, s.IncrementUsage(ctx, "PROMO-AB12"), domain.ErrPromoInactive)

	// lost a race with another confirm: the code looked usable but the increment did not apply
	repo.EXPECT().IncrementPromoUsage(gomock.Any(), "PROMO-AB12").Return(false, nil)
	repo.EXPECT().FindPromoByCode(gomock.Any(), "PROMO-AB12").
		Return(&domain.PromoCode{Code: "PROMO-AB12", Active: true}, nil)
	assert.ErrorIs(t, s.IncrementUsage(ctx, "PROMO-AB12"), domain.ErrPromoExhausted)
}

func TestPromoService_CreatePromo(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    domain.Actor
		promo    domain.PromoCode
		expError error
	}{
		{
			name:  "good",
			actor: admin,
			promo: domain.PromoCode{Code: "PROMO-AB12", DiscountPercentage: decimal.MustNew(5, 0), MaxUsage: intPtr(3)},
		},
		{
			name:     "duplicate",
			actor:    admin,
			promo:    domain.PromoCode{Code: "PROMO-AB12", DiscountPercentage: decimal.MustNew(5, 0)},
			expError: domain.ErrConflictingData,
		},
		{
			name:     "client",
			actor:    clientActor(1),
			promo:    domain.PromoCode{Code: "PROMO-CD34", DiscountPercentage: decimal.MustNew(5, 0)},
			expError: domain.ErrForbidden,
		},
		{
			name:     "bad format",
			actor:    admin,
			promo:    domain.PromoCode{Code: "PROMO-abcd", DiscountPercentage: decimal.MustNew(5, 0)},
			expError: domain.ErrValidation,
		},
		{
			name:     "zero percentage",
			actor:    admin,
			promo:    domain.PromoCode{Code: "PROMO-CD34", DiscountPercentage: decimal.Zero},
			expError: domain.ErrValidation,
		},
		{
			name:     "zero max usage",
			actor:    admin,
			promo:    domain.PromoCode{Code: "PROMO-CD34", DiscountPercentage: decimal.MustNew(5, 0), MaxUsage: intPtr(0)},
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			promo := test.promo
			result, err := s.promos.CreatePromo(ctx, test.actor, &promo)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Active)
			assert.Equal(t, 0, result.CurrentUsage)
		})
	}
}

func TestPromoService_Deactivate(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	s.promo(t, "PROMO-AB12", nil)

	_, err := s.promos.DeactivatePromo(ctx, clientActor(1), "PROMO-AB12")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	result, err := s.promos.DeactivatePromo(ctx, admin, "PROMO-AB12")
	require.NoError(t, err)
	assert.False(t, result.Active)

	_, err = s.promos.ValidateAndGet(ctx, "PROMO-AB12")
	assert.ErrorIs(t, err, domain.ErrPromoInactive)

	_, err = s.promos.DeactivatePromo(ctx, admin, "PROMO-ZZ99")
	assert.ErrorIs(t, err, domain.ErrPromoNotFound)

	list, err := s.promos.ListPromos(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
