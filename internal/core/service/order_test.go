package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	other := s.client(t, "other@shop.test")
	p := s.product(t, "Chair", "250.00", 10)
	s.promo(t, "PROMO-AB12", nil)

	tests := []struct {
		name     string
		actor    domain.Actor
		req      domain.CreateOrderRequest
		expError error
		expTotal string
		expPromo string
	}{
		{
			name:     "owner",
			actor:    clientActor(c.ID),
			req:      domain.CreateOrderRequest{ClientID: c.ID, Lines: []domain.OrderLine{{ProductID: p.ID, Quantity: 4}}},
			expTotal: "1200.00",
		},
		{
			name:  "admin with promo",
			actor: admin,
			req: domain.CreateOrderRequest{
				ClientID:  c.ID,
				Lines:     []domain.OrderLine{{ProductID: p.ID, Quantity: 4}},
				PromoCode: "PROMO-AB12",
			},
			expTotal: "1140.00",
			expPromo: "PROMO-AB12",
		},
		{
			name:     "malformed promo is dropped",
			actor:    admin,
			req:      domain.CreateOrderRequest{ClientID: c.ID, Lines: []domain.OrderLine{{ProductID: p.ID, Quantity: 1}}, PromoCode: "SALE"},
			expTotal: "300.00",
		},
		{
			name:     "unknown promo",
			actor:    admin,
			req:      domain.CreateOrderRequest{ClientID: c.ID, Lines: []domain.OrderLine{{ProductID: p.ID, Quantity: 1}}, PromoCode: "PROMO-ZZ99"},
			expError: domain.ErrPromoNotFound,
		},
		{
			name:     "other client",
			actor:    clientActor(other.ID),
			req:      domain.CreateOrderRequest{ClientID: c.ID, Lines: []domain.OrderLine{{ProductID: p.ID, Quantity: 1}}},
			expError: domain.ErrForbidden,
		},
		{
			name:     "no lines",
			actor:    admin,
			req:      domain.CreateOrderRequest{ClientID: c.ID},
			expError: domain.ErrValidation,
		},
		{
			name:     "zero quantity",
			actor:    admin,
			req:      domain.CreateOrderRequest{ClientID: c.ID, Lines: []domain.OrderLine{{ProductID: p.ID, Quantity: 0}}},
			expError: domain.ErrValidation,
		},
		{
			name:     "unknown client",
			actor:    admin,
			req:      domain.CreateOrderRequest{ClientID: 999, Lines: []domain.OrderLine{{ProductID: p.ID, Quantity: 1}}},
			expError: domain.ErrClientNotFound,
		},
		{
			name:     "unknown product",
			actor:    admin,
			req:      domain.CreateOrderRequest{ClientID: c.ID, Lines: []domain.OrderLine{{ProductID: 999, Quantity: 1}}},
			expError: domain.ErrProductNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order, err := s.orders.CreateOrder(ctx, test.actor, test.req)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderStatusPending, order.Status)
			assert.Equal(t, test.expTotal, order.TotalAmount.String())
			assert.Equal(t, test.expTotal, order.RemainingAmount.String())
			assert.Equal(t, test.expPromo, order.PromoCode)
			require.Len(t, order.Items, 1)
			assert.Equal(t, "Chair", order.Items[0].ProductName)
			assert.Equal(t, "250.00", order.Items[0].UnitPrice.String())
		})
	}

	// creation reserves nothing
	got, err := s.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
}

func TestOrderService_CreateOrderFreezesPrices(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	p := s.product(t, "Chair", "250.00", 10)

	order, err := s.orders.CreateOrder(ctx, admin, domain.CreateOrderRequest{
		ClientID: c.ID,
		Lines:    []domain.OrderLine{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = s.catalog.UpdateProduct(ctx, admin, &domain.Product{ID: p.ID, Name: "Chair", Price: decimal.MustParse("999.00")})
	require.NoError(t, err)

	read, err := s.orders.GetOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "250.00", read.Items[0].UnitPrice.String())
	assert.Equal(t, "500.00", read.Items[0].LineTotal.String())
	assert.Equal(t, "500.00", read.Subtotal.String())
}

func TestOrderService_CreateOrderShortageRejects(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	a := s.product(t, "Chair", "250.00", 1)
	b := s.product(t, "Desk", "900.00", 0)

	order, err := s.orders.CreateOrder(ctx, admin, domain.CreateOrderRequest{
		ClientID: c.ID,
		Lines: []domain.OrderLine{
			{ProductID: a.ID, Quantity: 2},
			{ProductID: b.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusRejected, order.Status)
	assert.NotZero(t, order.ID)
	for _, amount := range []string{
		order.Subtotal.String(),
		order.DiscountAmount.String(),
		order.TaxAmount.String(),
		order.TotalAmount.String(),
		order.RemainingAmount.String(),
	} {
		assert.Equal(t, "0.00", amount)
	}
	assert.Equal(t, map[string]domain.StockShortage{
		"Chair": {ProductID: a.ID, Requested: 2, Available: 1},
		"Desk":  {ProductID: b.ID, Requested: 1, Available: 0},
	}, order.Shortages)

	stored, err := s.orders.GetOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRejected, stored.Status)
	assert.Nil(t, stored.Shortages)
}

func TestOrderService_ConfirmRequiresFullPayment(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	p := s.product(t, "Chair", "100.00", 5)
	order := s.pendingOrder(t, c.ID, "100.00", domain.OrderItem{ProductID: p.ID, ProductName: "Chair", Quantity: 1})

	_, err := s.orders.ConfirmOrder(ctx, admin, order.ID)
	assert.ErrorIs(t, err, domain.ErrBusinessRule)

	stored, err := s.orders.GetOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)

	payment, err := s.payments.AddPayment(ctx, admin, domain.PaymentRequest{
		OrderID: order.ID,
		Amount:  order.RemainingAmount,
		Method:  domain.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCleared, payment.Status)

	stored, err = s.orders.GetOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", stored.RemainingAmount.String())

	confirmed, err := s.orders.ConfirmOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, confirmed.Status)

	product, err := s.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, product.Stock)

	client, err := s.clients.GetClient(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, client.TotalOrders)
	assert.Equal(t, "100.00", client.TotalSpent.String())
	require.NotNil(t, client.FirstOrderAt)
	require.NotNil(t, client.LastOrderAt)
	assert.Equal(t, domain.TierBasic, client.Tier)
}

func TestOrderService_ConfirmIsNotRepeatable(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	p := s.product(t, "Chair", "100.00", 5)

	order, err := s.orders.CreateOrder(ctx, admin, domain.CreateOrderRequest{
		ClientID: c.ID,
		Lines:    []domain.OrderLine{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	s.pay(t, order.ID)

	_, err = s.orders.ConfirmOrder(ctx, clientActor(c.ID), order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = s.orders.ConfirmOrder(ctx, admin, order.ID)
	require.NoError(t, err)

	_, err = s.orders.ConfirmOrder(ctx, admin, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	product, _ := s.catalog.GetProduct(ctx, p.ID)
	assert.Equal(t, 3, product.Stock)

	client, _ := s.clients.GetClient(ctx, admin, c.ID)
	assert.Equal(t, 1, client.TotalOrders)
	assert.Equal(t, "240.00", client.TotalSpent.String())
}

func TestOrderService_ConfirmPromotesTier(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	p := s.product(t, "Desk", "2500.00", 5)

	order := s.pendingOrder(t, c.ID, "2500.00", domain.OrderItem{ProductID: p.ID, ProductName: "Desk", Quantity: 1})
	s.pay(t, order.ID)
	_, err := s.orders.ConfirmOrder(ctx, admin, order.ID)
	require.NoError(t, err)

	client, _ := s.clients.GetClient(ctx, admin, c.ID)
	assert.Equal(t, domain.TierGold, client.Tier)
	first := *client.FirstOrderAt

	order = s.pendingOrder(t, c.ID, "2500.00", domain.OrderItem{ProductID: p.ID, ProductName: "Desk", Quantity: 1})
	s.pay(t, order.ID)
	_, err = s.orders.ConfirmOrder(ctx, admin, order.ID)
	require.NoError(t, err)

	client, _ = s.clients.GetClient(ctx, admin, c.ID)
	assert.Equal(t, domain.TierPlatinum, client.Tier)
	assert.Equal(t, 2, client.TotalOrders)
	assert.Equal(t, "5000.00", client.TotalSpent.String())
	assert.Equal(t, first, *client.FirstOrderAt)
}

func TestOrderService_ConfirmShortageRejects(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	a := s.product(t, "Chair", "100.00", 5)
	b := s.product(t, "Desk", "100.00", 1)

	order := s.pendingOrder(t, c.ID, "0.00",
		domain.OrderItem{ProductID: a.ID, ProductName: "Chair", Quantity: 2},
		domain.OrderItem{ProductID: b.ID, ProductName: "Desk", Quantity: 2},
	)

	rejected, err := s.orders.ConfirmOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRejected, rejected.Status)
	assert.Equal(t, domain.StockShortage{ProductID: b.ID, Requested: 2, Available: 1}, rejected.Shortages["Desk"])

	chair, _ := s.catalog.GetProduct(ctx, a.ID)
	assert.Equal(t, 5, chair.Stock)

	stored, _ := s.orders.GetOrder(ctx, admin, order.ID)
	assert.Equal(t, domain.OrderStatusRejected, stored.Status)

	client, _ := s.clients.GetClient(ctx, admin, c.ID)
	assert.Equal(t, 0, client.TotalOrders)

	_, err = s.orders.CancelOrder(ctx, admin, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestOrderService_ConfirmExhaustedPromoRollsBack(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	p := s.product(t, "Chair", "100.00", 5)
	s.promo(t, "PROMO-AB12", intPtr(1))

	create := func() *domain.Order {
		order, err := s.orders.CreateOrder(ctx, admin, domain.CreateOrderRequest{
			ClientID:  c.ID,
			Lines:     []domain.OrderLine{{ProductID: p.ID, Quantity: 1}},
			PromoCode: "PROMO-AB12",
		})
		require.NoError(t, err)
		require.Equal(t, "PROMO-AB12", order.PromoCode)
		s.pay(t, order.ID)
		return order
	}
	first := create()
	second := create()

	_, err := s.orders.ConfirmOrder(ctx, admin, first.ID)
	require.NoError(t, err)

	promo, err := s.promos.GetPromo(ctx, admin, "PROMO-AB12")
	require.NoError(t, err)
	assert.Equal(t, 1, promo.CurrentUsage)

	_, err = s.orders.ConfirmOrder(ctx, admin, second.ID)
	assert.ErrorIs(t, err, domain.ErrBusinessRule)

	stored, _ := s.orders.GetOrder(ctx, admin, second.ID)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)

	product, _ := s.catalog.GetProduct(ctx, p.ID)
	assert.Equal(t, 4, product.Stock)

	client, _ := s.clients.GetClient(ctx, admin, c.ID)
	assert.Equal(t, 1, client.TotalOrders)
}

func TestOrderService_CancelOrder(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	order := s.pendingOrder(t, c.ID, "10.00")

	_, err := s.orders.CancelOrder(ctx, clientActor(c.ID), order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	canceled, err := s.orders.CancelOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCanceled, canceled.Status)

	_, err = s.orders.CancelOrder(ctx, admin, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = s.orders.ConfirmOrder(ctx, admin, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = s.orders.CancelOrder(ctx, admin, 999)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_Reads(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	a := s.client(t, "a@shop.test")
	b := s.client(t, "b@shop.test")
	oa := s.pendingOrder(t, a.ID, "10.00")
	s.pendingOrder(t, b.ID, "10.00")
	ob := s.pendingOrder(t, b.ID, "20.00")
	_, err := s.orders.CancelOrder(ctx, admin, ob.ID)
	require.NoError(t, err)

	_, err = s.orders.GetOrder(ctx, clientActor(b.ID), oa.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := s.orders.GetOrder(ctx, clientActor(a.ID), oa.ID)
	require.NoError(t, err)
	assert.Equal(t, oa.ID, got.ID)

	all, err := s.orders.ListOrders(ctx, admin, domain.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := s.orders.ListOrders(ctx, clientActor(a.ID), domain.OrderFilter{ClientID: b.ID})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, oa.ID, own[0].ID)

	canceled, err := s.orders.ListOrders(ctx, admin, domain.OrderFilter{ClientID: b.ID, Status: domain.OrderStatusCanceled})
	require.NoError(t, err)
	require.Len(t, canceled, 1)
	assert.Equal(t, ob.ID, canceled[0].ID)
}

func TestOrderService_ConcurrentConfirmsNeverOversell(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	c := s.client(t, "buyer@shop.test")
	p := s.product(t, "Chair", "100.00", 3)

	const racers = 8
	orders := make([]*domain.Order, 0, racers)
	for i := 0; i < racers; i++ {
		order, err := s.orders.CreateOrder(ctx, admin, domain.CreateOrderRequest{
			ClientID: c.ID,
			Lines:    []domain.OrderLine{{ProductID: p.ID, Quantity: 3}},
		})
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusPending, order.Status)
		s.pay(t, order.ID)
		orders = append(orders, order)
	}

	var wg sync.WaitGroup
	results := make([]*domain.Order, racers)
	for i, order := range orders {
		wg.Add(1)
		go func(i int, id uint64) {
			defer wg.Done()
			result, err := s.orders.ConfirmOrder(ctx, admin, id)
			assert.NoError(t, err)
			results[i] = result
		}(i, order.ID)
	}
	wg.Wait()

	confirmed, rejected := 0, 0
	for _, r := range results {
		require.NotNil(t, r)
		switch r.Status {
		case domain.OrderStatusConfirmed:
			confirmed++
		case domain.OrderStatusRejected:
			rejected++
		}
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, racers-1, rejected)

	product, _ := s.catalog.GetProduct(ctx, p.ID)
	assert.Equal(t, 0, product.Stock)

	client, _ := s.clients.GetClient(ctx, admin, c.ID)
	assert.Equal(t, 1, client.TotalOrders)
}
