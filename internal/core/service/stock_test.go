package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockGuard_ValidateReportsAllShortages(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	a := s.product(t, "Apples", "1.00", 5)
	b := s.product(t, "Bananas", "1.00", 1)
	c := s.product(t, "Cherries", "1.00", 10)

	err := s.stock.Validate(ctx, []domain.OrderItem{
		{ProductID: a.ID, Quantity: 3},
		{ProductID: b.ID, Quantity: 2},
		{ProductID: c.ID, Quantity: 10},
		{ProductID: a.ID, Quantity: 3},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, map[string]domain.StockShortage{
		"Apples":  {ProductID: a.ID, Requested: 6, Available: 5},
		"Bananas": {ProductID: b.ID, Requested: 2, Available: 1},
	}, shortage.Items)

	err = s.stock.Validate(ctx, []domain.OrderItem{{ProductID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.NoError(t, s.stock.Validate(ctx, []domain.OrderItem{{ProductID: c.ID, Quantity: 10}}))
}

func TestStockGuard_ShortagesOfSameNamedProducts(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	a := s.product(t, "Chair", "10.00", 1)
	b := s.product(t, "Chair", "20.00", 1)
	items := []domain.OrderItem{
		{ProductID: a.ID, Quantity: 5},
		{ProductID: b.ID, Quantity: 7},
	}

	for name, err := range map[string]error{
		"validate":  s.stock.Validate(ctx, items),
		"decrement": s.stock.DecrementBatch(ctx, items),
	} {
		var shortage *domain.InsufficientStockError
		require.True(t, errors.As(err, &shortage), name)
		require.Len(t, shortage.Items, 2, name)

		requested := make(map[uint64]int)
		for _, item := range shortage.Items {
			requested[item.ProductID] = item.Requested
		}
		assert.Equal(t, map[uint64]int{a.ID: 5, b.ID: 7}, requested, name)
	}
}

func TestStockGuard_DecrementBatchIsAllOrNothing(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	a := s.product(t, "Apples", "1.00", 5)
	b := s.product(t, "Bananas", "1.00", 1)

	err := s.stock.DecrementBatch(ctx, []domain.OrderItem{
		{ProductID: a.ID, Quantity: 5},
		{ProductID: b.ID, Quantity: 2},
	})
	var shortage *domain.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, domain.StockShortage{ProductID: b.ID, Requested: 2, Available: 1}, shortage.Items["Bananas"])

	gotA, err := s.store.GetProduct(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotA.Stock)

	err = s.stock.DecrementBatch(ctx, []domain.OrderItem{
		{ProductID: a.ID, Quantity: 5},
		{ProductID: b.ID, Quantity: 1},
	})
	require.NoError(t, err)

	gotA, _ = s.store.GetProduct(ctx, a.ID)
	gotB, _ := s.store.GetProduct(ctx, b.ID)
	assert.Equal(t, 0, gotA.Stock)
	assert.Equal(t, 0, gotB.Stock)
}

func TestStockGuard_DeletedProductHasNothingAvailable(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	a := s.product(t, "Apples", "1.00", 5)

	_, err := s.catalog.DeleteProduct(ctx, admin, a.ID)
	require.NoError(t, err)

	err = s.stock.DecrementBatch(ctx, []domain.OrderItem{{ProductID: a.ID, Quantity: 1}})
	var shortage *domain.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, 0, shortage.Items["Apples"].Available)
}

func TestStockGuard_Increment(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	a := s.product(t, "Apples", "1.00", 5)

	assert.ErrorIs(t, s.stock.Increment(ctx, a.ID, 0), domain.ErrValidation)
	assert.ErrorIs(t, s.stock.Increment(ctx, 999, 1), domain.ErrProductNotFound)

	require.NoError(t, s.stock.Increment(ctx, a.ID, 7))
	got, _ := s.store.GetProduct(ctx, a.ID)
	assert.Equal(t, 12, got.Stock)
}
