package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Products(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	_, err := s.catalog.CreateProduct(ctx, clientActor(1), &domain.Product{Name: "Chair", Price: decimal.MustParse("1.00")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = s.catalog.CreateProduct(ctx, admin, &domain.Product{Name: "", Price: decimal.MustParse("1.00")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.catalog.CreateProduct(ctx, admin, &domain.Product{Name: "Chair", Price: decimal.MustParse("-1.00")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.catalog.CreateProduct(ctx, admin, &domain.Product{Name: "Chair", Price: decimal.MustParse("1.00"), Stock: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.catalog.CreateProduct(ctx, admin, &domain.Product{Name: "Chair", Price: decimal.MustParse("33.335"), Stock: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	chair := s.product(t, "Chair", "10.00", 2)
	desk := s.product(t, "Desk", "90.00", 1)

	_, err = s.catalog.UpdateProduct(ctx, admin, &domain.Product{
		ID:    chair.ID,
		Name:  "Chair",
		Price: decimal.MustParse("9.999"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	updated, err := s.catalog.UpdateProduct(ctx, admin, &domain.Product{
		ID:    chair.ID,
		Name:  "Armchair",
		Price: decimal.MustParse("12.00"),
		Stock: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Armchair", updated.Name)
	assert.Equal(t, 2, updated.Stock)

	restocked, err := s.catalog.Restock(ctx, admin, chair.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, restocked.Stock)

	_, err = s.catalog.Restock(ctx, clientActor(1), chair.ID, 3)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = s.catalog.DeleteProduct(ctx, admin, desk.ID)
	require.NoError(t, err)

	_, err = s.catalog.GetProduct(ctx, desk.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = s.catalog.GetProductIncludingDeleted(ctx, clientActor(1), desk.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	hidden, err := s.catalog.GetProductIncludingDeleted(ctx, admin, desk.ID)
	require.NoError(t, err)
	assert.True(t, hidden.Deleted)

	list, err := s.catalog.ListProducts(ctx, domain.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, chair.ID, list[0].ID)

	_, err = s.catalog.DeleteProduct(ctx, admin, desk.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogService_ListProductsPaged(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	ids := make([]uint64, 0, 25)
	for i := 0; i < 25; i++ {
		ids = append(ids, s.product(t, fmt.Sprintf("Item %02d", i), "1.00", 1).ID)
	}

	tests := []struct {
		name     string
		page     domain.Page
		wantLen  int
		wantHead uint64
		wantErr  error
	}{
		{name: "default size", page: domain.Page{}, wantLen: domain.DefaultPageSize, wantHead: ids[0]},
		{name: "second page", page: domain.Page{Number: 1, Size: 10}, wantLen: 10, wantHead: ids[10]},
		{name: "last partial page", page: domain.Page{Number: 2, Size: 10}, wantLen: 5, wantHead: ids[20]},
		{name: "past the end", page: domain.Page{Number: 9, Size: 10}, wantLen: 0},
		{name: "negative page", page: domain.Page{Number: -1}, wantErr: domain.ErrValidation},
		{name: "size too large", page: domain.Page{Size: domain.MaxPageSize + 1}, wantErr: domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := s.catalog.ListProducts(ctx, tt.page)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, list, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantHead, list[0].ID)
			}
		})
	}
}
