package http

import (
	"net/http"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ClientHandler struct {
	Handler
	service port.ClientLedger
}

func NewClientHandler(service port.ClientLedger, logger *zap.Logger) (*ClientHandler, error) {
	return &ClientHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ch *ClientHandler) CreateClient(ctx *gin.Context) {
	var req clientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.CreateClient(ctx, getAuthPayload(ctx).Actor(),
		&domain.Client{Name: req.Name, Email: req.Email})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, newClientResponse(client), http.StatusCreated)
}

func (ch *ClientHandler) ListClients(ctx *gin.Context) {
	list, err := ch.service.ListClients(ctx, getAuthPayload(ctx).Actor())
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, mapList(list, newClientResponse))
}

func (ch *ClientHandler) GetClient(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	client, err := ch.service.GetClient(ctx, getAuthPayload(ctx).Actor(), id)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newClientResponse(client))
}

func (ch *ClientHandler) DeleteClient(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	err = ch.service.DeleteClient(ctx, getAuthPayload(ctx).Actor(), id)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ch *ClientHandler) UpdateClient(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	var req clientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.UpdateClient(ctx, getAuthPayload(ctx).Actor(),
		&domain.Client{ID: id, Name: req.Name, Email: req.Email})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newClientResponse(client))
}
