package port

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrIdempotencyInProgress means another request holds the key and has not finished yet.
	ErrIdempotencyInProgress = errors.New("idempotency: request in progress")
	// ErrIdempotencyMismatch means the key was used before for a different request body.
	ErrIdempotencyMismatch = errors.New("idempotency: key reused for different request")
)

// StoredResponse is a finished response kept for replay.
type StoredResponse struct {
	Fingerprint string `json:"fingerprint"`
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore reserves request keys and keeps their responses for replay.
//
//go:generate mockgen -source=idempotency.go -destination=mock/idempotency.go -package=mock
type IdempotencyStore interface {
	// Reserve claims key for a new request. It returns the stored response when the key already
	// completed, ErrIdempotencyInProgress while another holder runs and ErrIdempotencyMismatch when
	// the fingerprint differs.
	Reserve(ctx context.Context, key, fingerprint string, ttl time.Duration) (*StoredResponse, error)
	Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}
