package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

const requestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"

const idempotencyHeader = "Idempotency-Key"
const replayHeader = "X-Idempotent-Replay"

func (h *Handler) verify(ctx *gin.Context, tokenService port.TokenService) (*port.TokenPayload, error) {
	header := ctx.Request.Header.Get(authHeaderKey)
	if len(header) == 0 {
		return nil, domain.ErrEmptyAuthorizationHeader
	}

	words := strings.Split(header, " ")
	if len(words) != 2 {
		return nil, domain.ErrInvalidAuthorizationHeader
	}
	if words[0] != authType {
		return nil, domain.ErrInvalidAuthorizationType
	}
	return tokenService.VerifyToken(words[1])
}

func (h *Handler) authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload, err := h.verify(ctx, tokenService)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// authOptional accepts anonymous requests but still rejects a bad token.
func (h *Handler) authOptional(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Header.Get(authHeaderKey) == "" {
			ctx.Next()
			return
		}
		h.authCheck(tokenService)(ctx)
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}

func getActor(ctx *gin.Context) (domain.Actor, bool) {
	v, ok := ctx.Get(userPayloadKey)
	if !ok {
		return domain.Actor{}, false
	}
	return v.(*port.TokenPayload).Actor(), true
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := []zap.Field{
			zap.String("request_id", ctx.GetString(requestIDKey)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if actor, ok := getActor(ctx); ok {
			fields = append(fields, zap.String("role", string(actor.Role)), zap.Uint64("client", actor.ClientID))
		}

		if ctx.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("Request served", fields...)
			return
		}
		logger.Info("Request served", fields...)
	}
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func fingerprint(ctx *gin.Context, body []byte) string {
	sum := sha256.New()
	sum.Write([]byte(ctx.Request.Method))
	sum.Write([]byte{0})
	sum.Write([]byte(ctx.FullPath()))
	sum.Write([]byte{0})
	sum.Write(body)
	return hex.EncodeToString(sum.Sum(nil))
}

// idempotency replays the stored response of a request repeated with the same Idempotency-Key.
// Keys are scoped to the caller. Requests without the header pass through.
func (h *Handler) idempotency(store port.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := strings.TrimSpace(ctx.GetHeader(idempotencyHeader))
		if key == "" {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			h.handleAbort(ctx, domain.ErrBadRequest)
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		actor, _ := getActor(ctx)
		scoped := fmt.Sprintf("%s:%d:%s", actor.Role, actor.ClientID, key)
		fp := fingerprint(ctx, body)

		stored, err := store.Reserve(ctx, scoped, fp, ttl)
		if err != nil {
			if !errors.Is(err, port.ErrIdempotencyInProgress) && !errors.Is(err, port.ErrIdempotencyMismatch) {
				h.logger.Error("Idempotency reserve", zap.String("key", key), zap.Error(err))
				err = domain.ErrInternal
			}
			h.handleAbort(ctx, err)
			return
		}
		if stored != nil {
			ctx.Header(replayHeader, "true")
			ctx.Data(stored.Status, stored.ContentType, stored.Body)
			ctx.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = recorder
		ctx.Next()

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(ctx, scoped); err != nil {
				h.logger.Error("Idempotency release", zap.String("key", key), zap.Error(err))
			}
			return
		}

		err = store.Save(ctx, scoped, port.StoredResponse{
			Fingerprint: fp,
			Status:      status,
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		}, ttl)
		if err != nil {
			h.logger.Error("Idempotency save", zap.String("key", key), zap.Error(err))
			if err := store.Release(ctx, scoped); err != nil {
				h.logger.Error("Idempotency release", zap.String("key", key), zap.Error(err))
			}
		}
	}
}
