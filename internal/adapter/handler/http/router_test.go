package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/adapter/config"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/idempotency"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminToken = "admin-token"
const clientToken = "client-token"
const clientID = uint64(7)

type testAPI struct {
	router   *Router
	catalog  *mock.MockCatalog
	clients  *mock.MockClientLedger
	orders   *mock.MockOrderLifecycle
	payments *mock.MockPaymentLedger
	promos   *mock.MockPromoRegistry
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	tokens := mock.NewMockTokenService(ctrl)
	tokens.EXPECT().VerifyToken(gomock.Any()).DoAndReturn(func(token string) (*port.TokenPayload, error) {
		switch token {
		case adminToken:
			return &port.TokenPayload{Role: domain.RoleAdmin}, nil
		case clientToken:
			return &port.TokenPayload{Role: domain.RoleClient, ClientID: clientID}, nil
		}
		return nil, domain.ErrInvalidToken
	}).AnyTimes()

	api := &testAPI{
		catalog:  mock.NewMockCatalog(ctrl),
		clients:  mock.NewMockClientLedger(ctrl),
		orders:   mock.NewMockOrderLifecycle(ctrl),
		payments: mock.NewMockPaymentLedger(ctrl),
		promos:   mock.NewMockPromoRegistry(ctrl),
	}

	productHandler, err := NewProductHandler(api.catalog, logger)
	require.NoError(t, err)
	clientHandler, err := NewClientHandler(api.clients, logger)
	require.NoError(t, err)
	orderHandler, err := NewOrderHandler(api.orders, logger)
	require.NoError(t, err)
	paymentHandler, err := NewPaymentHandler(api.payments, logger)
	require.NoError(t, err)
	promoHandler, err := NewPromoHandler(api.promos, logger)
	require.NoError(t, err)

	api.router, err = NewRouter(&config.Idempotency{TTL: time.Hour}, tokens, idempotency.NewMemoryStore(),
		productHandler, clientHandler, orderHandler, paymentHandler, promoHandler, logger)
	require.NoError(t, err)

	return api
}

func (a *testAPI) do(method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(authHeaderKey, authType+" "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestRouter_Auth(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "bad format", header: "Bearer", want: http.StatusUnauthorized},
		{name: "bad type", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set(authHeaderKey, tt.header)
			}
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(requestIDHeader))
		})
	}
}

func TestRouter_Products(t *testing.T) {
	api := newTestAPI(t)
	product := &domain.Product{ID: 1, Name: "Widget", Price: decimal.MustParse("10.50"), Stock: 3}

	t.Run("public list", func(t *testing.T) {
		api.catalog.EXPECT().ListProducts(gomock.Any(), domain.Page{}).Return([]*domain.Product{product}, nil)

		w := api.do(http.MethodGet, "/api/products", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"price":10.50`)
	})

	t.Run("paged list", func(t *testing.T) {
		api.catalog.EXPECT().ListProducts(gomock.Any(), domain.Page{Number: 2, Size: 5}).Return(nil, nil)

		w := api.do(http.MethodGet, "/api/products?page=2&size=5", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())

		w = api.do(http.MethodGet, "/api/products?size=many", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("include deleted needs a token", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/products/1?include_deleted=true", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("include deleted as admin", func(t *testing.T) {
		deleted := *product
		deleted.Deleted = true
		api.catalog.EXPECT().
			GetProductIncludingDeleted(gomock.Any(), domain.Actor{Role: domain.RoleAdmin}, uint64(1)).
			Return(&deleted, nil)

		w := api.do(http.MethodGet, "/api/products/1?include_deleted=true", adminToken, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("bad id", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/products/abc", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create forbidden for client", func(t *testing.T) {
		api.catalog.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrForbidden)

		w := api.do(http.MethodPost, "/api/products", clientToken, `{"name":"Widget","price":"10.50","stock":3}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		api.catalog.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Actor, p *domain.Product) (*domain.Product, error) {
				assert.Equal(t, "10.50", p.Price.String())
				p.ID = 1
				return p, nil
			})

		w := api.do(http.MethodPost, "/api/products", adminToken, `{"name":"Widget","price":10.50,"stock":3}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRouter_CreateOrder(t *testing.T) {
	api := newTestAPI(t)

	t.Run("client defaults to caller", func(t *testing.T) {
		api.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, actor domain.Actor, req domain.CreateOrderRequest) (*domain.Order, error) {
				assert.Equal(t, clientID, actor.ClientID)
				assert.Equal(t, clientID, req.ClientID)
				require.Len(t, req.Lines, 1)
				assert.Equal(t, 2, req.Lines[0].Quantity)
				return &domain.Order{
					ID:              1,
					ClientID:        req.ClientID,
					Status:          domain.OrderStatusPending,
					TotalAmount:     decimal.MustParse("120.00"),
					RemainingAmount: decimal.MustParse("120.00"),
				}, nil
			})

		w := api.do(http.MethodPost, "/api/orders", clientToken, `{"items":[{"product_id":1,"quantity":2}]}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
		assert.Contains(t, w.Body.String(), `"total_amount":120.00`)
	})

	t.Run("rejected for stock", func(t *testing.T) {
		api.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Order{
			ID:     2,
			Status: domain.OrderStatusRejected,
			Shortages: map[string]domain.StockShortage{
				"Widget": {ProductID: 1, Requested: 5, Available: 2},
			},
		}, nil)

		w := api.do(http.MethodPost, "/api/orders", adminToken, `{"client_id":7,"items":[{"product_id":1,"quantity":5}]}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"REJECTED"`)
		assert.Contains(t, w.Body.String(), `"Widget":{"product_id":1,"requested":5,"available":2}`)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/orders", clientToken, `{"items":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_ErrorStatuses(t *testing.T) {
	shortage := domain.NewInsufficientStockError()
	shortage.Add("Widget", domain.StockShortage{ProductID: 1, Requested: 5, Available: 2})

	tests := []struct {
		name string
		err  error
		want int
		body string
	}{
		{name: "not found", err: domain.ErrOrderNotFound, want: http.StatusNotFound},
		{name: "not pending", err: domain.ErrOrderNotPending, want: http.StatusConflict},
		{name: "not fully paid", err: domain.ErrOrderNotFullyPaid, want: http.StatusUnprocessableEntity},
		{name: "forbidden", err: domain.ErrForbidden, want: http.StatusForbidden},
		{name: "shortage", err: shortage, want: http.StatusConflict, body: `"shortages":{"Widget"`},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError, body: `"error":"internal error"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.orders.EXPECT().ConfirmOrder(gomock.Any(), gomock.Any(), uint64(3)).Return(nil, tt.err)

			w := api.do(http.MethodPost, "/api/orders/3/confirm", adminToken, "")
			assert.Equal(t, tt.want, w.Code)
			if tt.body != "" {
				assert.Contains(t, w.Body.String(), tt.body)
			}
		})
	}
}

func TestRouter_ListOrders(t *testing.T) {
	api := newTestAPI(t)

	api.orders.EXPECT().ListOrders(gomock.Any(), gomock.Any(),
		domain.OrderFilter{ClientID: 7, Status: domain.OrderStatusPending}).Return(nil, nil)

	w := api.do(http.MethodGet, "/api/orders?client_id=7&status=PENDING", adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = api.do(http.MethodGet, "/api/orders?client_id=x", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_PaymentIdempotency(t *testing.T) {
	api := newTestAPI(t)
	body := `{"order_id":1,"amount":"40.00","method":"CASH"}`

	api.payments.EXPECT().AddPayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, req domain.PaymentRequest) (*domain.Payment, error) {
			assert.Equal(t, "40.00", req.Amount.String())
			return &domain.Payment{
				ID:      11,
				OrderID: req.OrderID,
				Number:  1,
				Amount:  req.Amount,
				Method:  req.Method,
				Status:  domain.PaymentStatusCleared,
			}, nil
		}).Times(1)

	first := api.do(http.MethodPost, "/api/payments", adminToken, body, idempotencyHeader, "pay-1")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(replayHeader))

	second := api.do(http.MethodPost, "/api/payments", adminToken, body, idempotencyHeader, "pay-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(replayHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())

	other := api.do(http.MethodPost, "/api/payments", adminToken,
		`{"order_id":1,"amount":"41.00","method":"CASH"}`, idempotencyHeader, "pay-1")
	assert.Equal(t, http.StatusUnprocessableEntity, other.Code)
}

func TestRouter_PaymentRetryAfterServerError(t *testing.T) {
	api := newTestAPI(t)
	body := `{"order_id":1,"amount":"40.00","method":"CASH"}`

	gomock.InOrder(
		api.payments.EXPECT().AddPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")),
		api.payments.EXPECT().AddPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.Payment{ID: 1, OrderID: 1, Number: 1, Amount: decimal.MustParse("40.00")}, nil),
	)

	w := api.do(http.MethodPost, "/api/payments", adminToken, body, idempotencyHeader, "pay-2")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = api.do(http.MethodPost, "/api/payments", adminToken, body, idempotencyHeader, "pay-2")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_PaymentDueDate(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/payments", adminToken,
		`{"order_id":1,"amount":10,"method":"CHEQUE","reference":"C1","bank":"B","due_date":"01/02/2026"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	api.payments.EXPECT().AddPayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, req domain.PaymentRequest) (*domain.Payment, error) {
			require.NotNil(t, req.DueDate)
			return &domain.Payment{ID: 2, OrderID: 1, Number: 1, Amount: req.Amount, Method: req.Method,
				Status: domain.PaymentStatusPendingClearance, DueDate: req.DueDate}, nil
		})

	w = api.do(http.MethodPost, "/api/payments", adminToken,
		`{"order_id":1,"amount":10,"method":"CHEQUE","reference":"C1","bank":"B","due_date":"2026-02-01"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"due_date":"2026-02-01"`)
}

func TestRouter_Promos(t *testing.T) {
	api := newTestAPI(t)

	api.promos.EXPECT().DeactivatePromo(gomock.Any(), gomock.Any(), "PROMO-AB12").
		Return(&domain.PromoCode{ID: 1, Code: "PROMO-AB12", DiscountPercentage: decimal.MustParse("10")}, nil)

	w := api.do(http.MethodPost, "/api/promo-codes/PROMO-AB12/deactivate", adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":false`)
}

func TestJSONDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: `10.50`, want: "10.50"},
		{in: `"10.50"`, want: "10.50"},
		{in: `null`, want: "0"},
		{in: `"ten"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d jsonDecimal
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.decimal().String())
		})
	}
}

func TestRouter_DeleteClient(t *testing.T) {
	api := newTestAPI(t)

	gomock.InOrder(
		api.clients.EXPECT().DeleteClient(gomock.Any(), domain.Actor{Role: domain.RoleAdmin}, uint64(4)).Return(nil),
		api.clients.EXPECT().DeleteClient(gomock.Any(), gomock.Any(), uint64(5)).Return(domain.ErrClientHasOrders),
	)

	w := api.do(http.MethodDelete, "/api/clients/4", adminToken, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodDelete, "/api/clients/5", adminToken, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "client has orders")
}
