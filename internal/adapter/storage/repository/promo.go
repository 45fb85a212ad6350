package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
)

var promoColumns = []string{"id", "code", "discount_percentage", "active", "max_usage", "current_usage"}

const promoReturning = "RETURNING id, code, discount_percentage, active, max_usage, current_usage"

func scanPromo(row interface{ Scan(dest ...any) error }) (*domain.PromoCode, error) {
	promo := domain.PromoCode{}
	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountPercentage,
		&promo.Active,
		&promo.MaxUsage,
		&promo.CurrentUsage,
	)
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *Repository) CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	statement := r.db.QueryBuilder.
		Insert("promo_codes").
		Columns("code", "discount_percentage", "active", "max_usage", "current_usage").
		Values(promo.Code, promo.DiscountPercentage, promo.Active, promo.MaxUsage, promo.CurrentUsage).
		Suffix(promoReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanPromo(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrPromoNotFound)
	}
	return created, nil
}

func (r *Repository) FindPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	statement := r.db.QueryBuilder.
		Select(promoColumns...).
		From("promo_codes").
		Where(sq.Eq{"code": code})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	promo, err := scanPromo(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrPromoNotFound)
	}
	return promo, nil
}

func (r *Repository) ListPromos(ctx context.Context) ([]*domain.PromoCode, error) {
	statement := r.db.QueryBuilder.
		Select(promoColumns...).
		From("promo_codes").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.PromoCode, 0)
	for rows.Next() {
		promo, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, promo)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) UpdatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	statement := r.db.QueryBuilder.
		Update("promo_codes").
		Set("discount_percentage", promo.DiscountPercentage).
		Set("active", promo.Active).
		Set("max_usage", promo.MaxUsage).
		Where(sq.Eq{"id": promo.ID}).
		Suffix(promoReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanPromo(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrPromoNotFound)
	}
	return updated, nil
}

func (r *Repository) IncrementPromoUsage(ctx context.Context, code string) (bool, error) {
	statement := r.db.QueryBuilder.
		Update("promo_codes").
		Set("current_usage", sq.Expr("current_usage + 1")).
		Where(sq.Eq{"code": code, "active": true}).
		Where(sq.Or{
			sq.Eq{"max_usage": nil},
			sq.Expr("current_usage < max_usage"),
		})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
