package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
)

var paymentColumns = []string{
	"id", "order_id", "number", "amount", "method", "status",
	"paid_at", "cleared_at", "reference", "bank", "due_date",
}

const paymentReturning = "RETURNING id, order_id, number, amount, method, status, " +
	"paid_at, cleared_at, reference, bank, due_date"

func scanPayment(row interface{ Scan(dest ...any) error }) (*domain.Payment, error) {
	payment := domain.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Number,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.PaidAt,
		&payment.ClearedAt,
		&payment.Reference,
		&payment.Bank,
		&payment.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Insert("payments").
		Columns("order_id", "number", "amount", "method", "status",
			"paid_at", "cleared_at", "reference", "bank", "due_date").
		Values(payment.OrderID, payment.Number, payment.Amount, payment.Method, payment.Status,
			payment.PaidAt, payment.ClearedAt, payment.Reference, payment.Bank, payment.DueDate).
		Suffix(paymentReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanPayment(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrOrderNotFound)
	}
	return created, nil
}

func (r *Repository) readPayment(ctx context.Context, paymentID uint64, suffix string) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"id": paymentID}).
		Suffix(suffix)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := scanPayment(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrPaymentNotFound)
	}
	return payment, nil
}

func (r *Repository) ReadPayment(ctx context.Context, paymentID uint64) (*domain.Payment, error) {
	return r.readPayment(ctx, paymentID, "")
}

func (r *Repository) ReadPaymentForUpdate(ctx context.Context, paymentID uint64) (*domain.Payment, error) {
	return r.readPayment(ctx, paymentID, "FOR UPDATE")
}

func (r *Repository) UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Update("payments").
		Set("status", payment.Status).
		Set("cleared_at", payment.ClearedAt).
		Where(sq.Eq{"id": payment.ID}).
		Suffix(paymentReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanPayment(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrPaymentNotFound)
	}
	return updated, nil
}

func (r *Repository) ListPaymentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("number")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, payment)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}
	return list, nil
}
