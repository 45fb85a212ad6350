package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderLifecycle
}

func NewOrderHandler(service port.OrderLifecycle, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// CreateOrder prices and stores a new order. A stock shortage still answers 201 with a
// REJECTED order and its shortage report.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	actor := getAuthPayload(ctx).Actor()

	var req orderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if req.ClientID == 0 {
		req.ClientID = actor.ClientID
	}

	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, i := range req.Items {
		lines = append(lines, domain.OrderLine{ProductID: i.ProductID, Quantity: i.Quantity})
	}

	order, err := oh.service.CreateOrder(ctx, actor, domain.CreateOrderRequest{
		ClientID:  req.ClientID,
		Lines:     lines,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	var filter domain.OrderFilter
	if v := ctx.Query("client_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			oh.handleError(ctx, domain.Validationf("client_id must be a positive integer"))
			return
		}
		filter.ClientID = id
	}
	filter.Status = domain.OrderStatus(ctx.Query("status"))

	list, err := oh.service.ListOrders(ctx, getAuthPayload(ctx).Actor(), filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, mapList(list, newOrderResponse))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	oh.byID(ctx, oh.service.GetOrder)
}

func (oh *OrderHandler) ConfirmOrder(ctx *gin.Context) {
	oh.byID(ctx, oh.service.ConfirmOrder)
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	oh.byID(ctx, oh.service.CancelOrder)
}

type orderOperation func(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error)

func (oh *OrderHandler) byID(ctx *gin.Context, op orderOperation) {
	id, err := paramID(ctx, "id")
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := op(ctx, getAuthPayload(ctx).Actor(), id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResponse(order))
}
