package http

import (
	"net/http"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.Catalog
}

func NewProductHandler(service port.Catalog, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// ListProducts lists visible products a page at a time, using the page and size query parameters.
func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	var page domain.Page
	var err error
	page.Number, err = queryInt(ctx, "page")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	page.Size, err = queryInt(ctx, "size")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	list, err := ph.service.ListProducts(ctx, page)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, mapList(list, newProductResponse))
}

// GetProduct returns a visible product. Administrators may pass include_deleted=true.
func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	var product *domain.Product
	if ctx.Query("include_deleted") == "true" {
		actor, ok := getActor(ctx)
		if !ok {
			ph.handleError(ctx, domain.ErrUnauthorized)
			return
		}
		product, err = ph.service.GetProductIncludingDeleted(ctx, actor, id)
	} else {
		product, err = ph.service.GetProduct(ctx, id)
	}
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.CreateProduct(ctx, getAuthPayload(ctx).Actor(), &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.decimal(),
		Stock:       req.Stock,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, newProductResponse(product), http.StatusCreated)
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.UpdateProduct(ctx, getAuthPayload(ctx).Actor(), &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.decimal(),
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	product, err := ph.service.DeleteProduct(ctx, getAuthPayload(ctx).Actor(), id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) Restock(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	var req restockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.Restock(ctx, getAuthPayload(ctx).Actor(), id, req.Quantity)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}
