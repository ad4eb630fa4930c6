package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRouteRepo(pool *pgxpool.Pool, logger *slog.Logger) *RouteRepo {
	return &RouteRepo{pool: pool, logger: logger}
}

func (r *RouteRepo) Save(ctx context.Context, route *domain.Route) error {
	const op = "postgres.Route.Save"

	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	if route.CreatedAt.IsZero() {
		route.CreatedAt = time.Now().UTC()
	}

	waypoints, err := json.Marshal(route.Waypoints)
	if err != nil {
		return e.Wrap(op, err)
	}

	const query = `
		INSERT INTO routes (
			id, order_id, user_id,
			total_distance_meters, total_duration_seconds,
			average_speed_kmh, max_speed_kmh, point_count,
			waypoints, started_at, completed_at, is_completed, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.pool.Exec(ctx, query,
		route.ID,
		route.OrderID,
		route.UserID,
		route.TotalDistanceMeters,
		route.TotalDurationSeconds,
		route.AverageSpeedKmh,
		route.MaxSpeedKmh,
		route.PointCount,
		waypoints,
		route.StartedAt,
		route.CompletedAt,
		route.IsCompleted,
		route.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("order_id", route.OrderID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}
