package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
)

var orderColumns = []string{
	"id", "client_id", "created_at", "subtotal", "discount_amount", "tax_amount",
	"total_amount", "remaining_amount", "promo_code", "status",
}

const orderReturning = "RETURNING id, client_id, created_at, subtotal, discount_amount, tax_amount, " +
	"total_amount, remaining_amount, promo_code, status"

func scanOrder(row interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.ClientID,
		&order.CreatedAt,
		&order.Subtotal,
		&order.DiscountAmount,
		&order.TaxAmount,
		&order.TotalAmount,
		&order.RemainingAmount,
		&order.PromoCode,
		&order.Status,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder stores the order with its items in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var created *domain.Order

	err := r.InTransaction(ctx, func(ctx context.Context) error {
		statement := r.db.QueryBuilder.
			Insert("orders").
			Columns("client_id", "created_at", "subtotal", "discount_amount", "tax_amount",
				"total_amount", "remaining_amount", "promo_code", "status").
			Values(order.ClientID, order.CreatedAt, order.Subtotal, order.DiscountAmount, order.TaxAmount,
				order.TotalAmount, order.RemainingAmount, order.PromoCode, order.Status).
			Suffix(orderReturning)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		created, err = scanOrder(r.q(ctx).QueryRow(ctx, sql, args...))
		if err != nil {
			return dbError(err, domain.ErrClientNotFound)
		}

		items := r.db.QueryBuilder.
			Insert("order_items").
			Columns("order_id", "position", "product_id", "product_name", "quantity", "unit_price", "line_total")
		for i, item := range order.Items {
			items = items.Values(created.ID, i, item.ProductID, item.ProductName, item.Quantity,
				item.UnitPrice, item.LineTotal)
		}

		sql, args, err = items.ToSql()
		if err != nil {
			return err
		}

		_, err = r.q(ctx).Exec(ctx, sql, args...)
		if err != nil {
			return dbError(err, domain.ErrProductNotFound)
		}

		created.Items = append([]domain.OrderItem(nil), order.Items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) readOrder(ctx context.Context, orderID uint64, suffix string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix(suffix)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrOrderNotFound)
	}

	err = r.loadItems(ctx, []*domain.Order{order})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, orderID, "")
}

func (r *Repository) ReadOrderForUpdate(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, orderID, "FOR UPDATE")
}

// UpdateOrder persists status and amounts. Items are never changed after creation.
func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("subtotal", order.Subtotal).
		Set("discount_amount", order.DiscountAmount).
		Set("tax_amount", order.TaxAmount).
		Set("total_amount", order.TotalAmount).
		Set("remaining_amount", order.RemainingAmount).
		Set("promo_code", order.PromoCode).
		Set("status", order.Status).
		Where(sq.Eq{"id": order.ID}).
		Suffix(orderReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanOrder(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrOrderNotFound)
	}
	updated.Items = order.Items
	return updated, nil
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	where := sq.Eq{}
	if filter.ClientID != 0 {
		where["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		where["status"] = filter.Status
	}

	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
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

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}
	rows.Close()

	err = r.loadItems(ctx, list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uint64]*domain.Order, len(orders))
	ids := make([]uint64, 0, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	statement := r.db.QueryBuilder.
		Select("order_id", "product_id", "product_name", "quantity", "unit_price", "line_total").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uint64
		item := domain.OrderItem{}
		err := rows.Scan(
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		if err != nil {
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return rows.Err()
}
