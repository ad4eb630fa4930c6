package postgres

import (
	"context"
	"log/slog"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepo reads the order-record collaborator's table. It is read-only
// from this service's perspective: the two authorized parties and the
// declared origin coordinates.
type OrderRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOrderRepo(pool *pgxpool.Pool, logger *slog.Logger) *OrderRepo {
	return &OrderRepo{pool: pool, logger: logger}
}

func (r *OrderRepo) Get(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	const op = "postgres.Order.Get"

	const query = `
		SELECT id, client_id, walker_id,
			ST_Y(origin::geometry) AS latitude,
			ST_X(origin::geometry) AS longitude,
			status
		FROM orders
		WHERE id = $1
	`

	var o domain.Order
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&o.ID,
		&o.ClientID,
		&o.WalkerID,
		&o.Latitude,
		&o.Longitude,
		&o.Status,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &o, nil
}
