package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order with errors.Is, so specific errors come before their taxonomy.
var errorStatuses = []errorStatus{
	{domain.ErrInsufficientStock, http.StatusConflict},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrBusinessRule, http.StatusUnprocessableEntity},
	{domain.ErrInvalidState, http.StatusConflict},
	{domain.ErrConflictingData, http.StatusConflict},

	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},

	{port.ErrIdempotencyInProgress, http.StatusConflict},
	{port.ErrIdempotencyMismatch, http.StatusUnprocessableEntity},

	{domain.ErrInternal, http.StatusInternalServerError},
}

func statusFor(err error) (int, bool) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error     string                          `json:"error"`
	Shortages map[string]domain.StockShortage `json:"shortages,omitempty"`
}

func errorBody(err error, known bool) errorResponse {
	if !known {
		return errorResponse{Error: domain.ErrInternal.Error()}
	}
	body := errorResponse{Error: err.Error()}
	var shortage *domain.InsufficientStockError
	if errors.As(err, &shortage) {
		body.Shortages = shortage.Items
	}
	return body
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request that could not be decoded
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error() + ": " + err.Error()})
}

// handleAbort sends an error response and stops the handler chain
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, known := statusFor(err)
	if !known {
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorBody(err, known))
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, known := statusFor(err)
	if !known {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorBody(err, known))
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// queryInt reads an optional integer query parameter, zero when absent.
func queryInt(ctx *gin.Context, name string) (int, error) {
	v := ctx.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.Validationf("%s must be an integer", name)
	}
	return n, nil
}

// paramID reads a numeric path parameter.
func paramID(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.Validationf("%s must be a positive integer", name)
	}
	return id, nil
}
