package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
)

var productColumns = []string{"id", "name", "description", "price", "stock", "deleted"}

const productReturning = "RETURNING id, name, description, price, stock, deleted"

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	product := domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) readProduct(ctx context.Context, where sq.Sqlizer) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product, err := scanProduct(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrProductNotFound)
	}
	return product, nil
}

func (r *Repository) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	return r.readProduct(ctx, sq.Eq{"id": productID, "deleted": false})
}

func (r *Repository) GetProductIncludingDeleted(ctx context.Context, productID uint64) (*domain.Product, error) {
	return r.readProduct(ctx, sq.Eq{"id": productID})
}

func (r *Repository) ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"deleted": false}).
		OrderBy("id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset()))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("name", "description", "price", "stock", "deleted").
		Values(product.Name, product.Description, product.Price, product.Stock, product.Deleted).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(&product.ID)
	if err != nil {
		return nil, dbError(err, domain.ErrProductNotFound)
	}
	return product, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("deleted", product.Deleted).
		Where(sq.Eq{"id": product.ID}).
		Suffix(productReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanProduct(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrProductNotFound)
	}
	return updated, nil
}

func (r *Repository) DecrementStock(ctx context.Context, productID uint64, qty int) (bool, error) {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"id": productID, "deleted": false}).
		Where(sq.GtOrEq{"stock": qty})

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

func (r *Repository) IncrementStock(ctx context.Context, productID uint64, qty int) error {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
