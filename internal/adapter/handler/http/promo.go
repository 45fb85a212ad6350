package http

import (
	"net/http"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PromoHandler struct {
	Handler
	service port.PromoRegistry
}

func NewPromoHandler(service port.PromoRegistry, logger *zap.Logger) (*PromoHandler, error) {
	return &PromoHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ph *PromoHandler) CreatePromo(ctx *gin.Context) {
	var req promoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	promo, err := ph.service.CreatePromo(ctx, getAuthPayload(ctx).Actor(), &domain.PromoCode{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage.decimal(),
		MaxUsage:           req.MaxUsage,
		Active:             true,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, newPromoResponse(promo), http.StatusCreated)
}

func (ph *PromoHandler) ListPromos(ctx *gin.Context) {
	list, err := ph.service.ListPromos(ctx, getAuthPayload(ctx).Actor())
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, mapList(list, newPromoResponse))
}

func (ph *PromoHandler) GetPromo(ctx *gin.Context) {
	promo, err := ph.service.GetPromo(ctx, getAuthPayload(ctx).Actor(), ctx.Param("code"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPromoResponse(promo))
}

func (ph *PromoHandler) DeactivatePromo(ctx *gin.Context) {
	promo, err := ph.service.DeactivatePromo(ctx, getAuthPayload(ctx).Actor(), ctx.Param("code"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPromoResponse(promo))
}
