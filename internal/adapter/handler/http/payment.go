package http

import (
	"context"
	"net/http"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.PaymentLedger
}

func NewPaymentHandler(service port.PaymentLedger, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ph *PaymentHandler) AddPayment(ctx *gin.Context) {
	var body paymentRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	req, err := body.toDomain()
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payment, err := ph.service.AddPayment(ctx, getAuthPayload(ctx).Actor(), req)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, newPaymentResponse(payment), http.StatusCreated)
}

func (ph *PaymentHandler) ValidatePayment(ctx *gin.Context) {
	ph.byID(ctx, ph.service.ValidatePayment)
}

func (ph *PaymentHandler) CancelPayment(ctx *gin.Context) {
	ph.byID(ctx, ph.service.CancelPayment)
}

// ListPayments lists the payments of the order in the path.
func (ph *PaymentHandler) ListPayments(ctx *gin.Context) {
	orderID, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	list, err := ph.service.ListPayments(ctx, getAuthPayload(ctx).Actor(), orderID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, mapList(list, newPaymentResponse))
}

type paymentOperation func(ctx context.Context, actor domain.Actor, paymentID uint64) (*domain.Payment, error)

func (ph *PaymentHandler) byID(ctx *gin.Context, op paymentOperation) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payment, err := op(ctx, getAuthPayload(ctx).Actor(), id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPaymentResponse(payment))
}
