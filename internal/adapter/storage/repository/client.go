package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var clientColumns = []string{
	"id", "name", "email", "tier", "total_orders", "total_spent", "first_order_at", "last_order_at",
}

const clientReturning = "RETURNING id, name, email, tier, total_orders, total_spent, first_order_at, last_order_at"

func scanClient(row interface{ Scan(dest ...any) error }) (*domain.Client, error) {
	client := domain.Client{}
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Tier,
		&client.TotalOrders,
		&client.TotalSpent,
		&client.FirstOrderAt,
		&client.LastOrderAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *Repository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Insert("clients").
		Columns("name", "email", "tier", "total_orders", "total_spent", "first_order_at", "last_order_at").
		Values(client.Name, client.Email, client.Tier, client.TotalOrders, client.TotalSpent,
			client.FirstOrderAt, client.LastOrderAt).
		Suffix(clientReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanClient(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrClientNotFound)
	}
	return created, nil
}

func (r *Repository) readClient(ctx context.Context, clientID uint64, suffix string) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"id": clientID}).
		Suffix(suffix)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrClientNotFound)
	}
	return client, nil
}

func (r *Repository) GetClient(ctx context.Context, clientID uint64) (*domain.Client, error) {
	return r.readClient(ctx, clientID, "")
}

func (r *Repository) GetClientForUpdate(ctx context.Context, clientID uint64) (*domain.Client, error) {
	return r.readClient(ctx, clientID, "FOR UPDATE")
}

func (r *Repository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Select(clientColumns...).
		From("clients").
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

	list := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, client)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) SaveClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Update("clients").
		Set("name", client.Name).
		Set("email", client.Email).
		Set("tier", client.Tier).
		Set("total_orders", client.TotalOrders).
		Set("total_spent", client.TotalSpent).
		Set("first_order_at", client.FirstOrderAt).
		Set("last_order_at", client.LastOrderAt).
		Where(sq.Eq{"id": client.ID}).
		Suffix(clientReturning)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	saved, err := scanClient(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, dbError(err, domain.ErrClientNotFound)
	}
	return saved, nil
}

func (r *Repository) DeleteClient(ctx context.Context, clientID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("clients").
		Where(sq.Eq{"id": clientID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrClientHasOrders
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
