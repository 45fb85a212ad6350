package repository

import (
	"context"
	"errors"

	"github.com/MikeRez0/ypsmartshop/internal/adapter/storage"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ port.Repository = (*Repository)(nil)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.InTransaction(ctx, fn)
}

func (r *Repository) q(ctx context.Context) storage.Querier {
	return r.db.Querier(ctx)
}

// dbError translates driver errors into domain errors. notFound is returned for an empty result.
func dbError(err error, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrConflictingData
		case pgerrcode.ForeignKeyViolation:
			return notFound
		}
	}
	return err
}
