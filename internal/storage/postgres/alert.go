package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

func (r *AlertRepo) Create(ctx context.Context, alert *domain.LocationAlert) error {
	const op = "postgres.Alert.Create"

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO location_alerts (
			id, order_id, user_id, alert_type,
			location, geofence_id,
			title, message, severity, is_read,
			timestamp, created_at
		)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326),
			$7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		alert.ID,
		alert.OrderID,
		alert.UserID,
		alert.Type,
		alert.Longitude,
		alert.Latitude,
		alert.GeofenceID,
		alert.Title,
		alert.Message,
		alert.Severity,
		alert.IsRead,
		alert.Timestamp,
		alert.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("alert_type", string(alert.Type)),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// ListUnread returns the newest unread alerts for an order, newest first.
func (r *AlertRepo) ListUnread(ctx context.Context, orderID uuid.UUID, limit int) ([]*domain.LocationAlert, error) {
	const op = "postgres.Alert.ListUnread"

	if limit <= 0 {
		limit = 10
	}

	const query = `
		SELECT id, order_id, user_id, alert_type,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			geofence_id, title, message, severity, is_read,
			timestamp, created_at
		FROM location_alerts
		WHERE order_id = $1 AND NOT is_read
		ORDER BY timestamp DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, orderID, limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []*domain.LocationAlert
	for rows.Next() {
		var a domain.LocationAlert
		if err := rows.Scan(
			&a.ID,
			&a.OrderID,
			&a.UserID,
			&a.Type,
			&a.Latitude,
			&a.Longitude,
			&a.GeofenceID,
			&a.Title,
			&a.Message,
			&a.Severity,
			&a.IsRead,
			&a.Timestamp,
			&a.CreatedAt,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}
