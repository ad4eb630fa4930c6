package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocationRepo(pool *pgxpool.Pool, logger *slog.Logger) *LocationRepo {
	return &LocationRepo{pool: pool, logger: logger}
}

const sampleColumns = `
	id, order_id, user_id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	accuracy, altitude, speed, heading,
	kind, battery_level, network_type, device_info,
	timestamp, is_valid, created_at
`

func (r *LocationRepo) Create(ctx context.Context, sample *domain.LocationSample) error {
	const op = "postgres.Location.Create"

	if sample.Latitude < -90 || sample.Latitude > 90 || sample.Longitude < -180 || sample.Longitude > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO location_samples (
			id, order_id, user_id, location,
			accuracy, altitude, speed, heading,
			kind, battery_level, network_type, device_info,
			timestamp, is_valid, created_at
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326),
			$6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		sample.ID,
		sample.OrderID,
		sample.UserID,
		sample.Longitude,
		sample.Latitude,
		sample.Accuracy,
		sample.Altitude,
		sample.Speed,
		sample.Heading,
		sample.Kind,
		sample.BatteryLevel,
		sample.NetworkType,
		sample.DeviceInfo,
		sample.Timestamp,
		sample.IsValid,
		sample.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("order_id", sample.OrderID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *LocationRepo) ListByOrder(ctx context.Context, orderID uuid.UUID, page, limit int, kind domain.SampleKind) ([]*domain.LocationSample, int64, error) {
	const op = "postgres.Location.ListByOrder"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM location_samples WHERE order_id = $1 AND is_valid`
	listQuery := `SELECT ` + sampleColumns + `
		FROM location_samples
		WHERE order_id = $1 AND is_valid`

	args := []any{orderID}
	if kind != "" {
		countQuery += ` AND kind = $2`
		listQuery += ` AND kind = $2`
		args = append(args, kind)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery += fmt.Sprintf(` ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	samples, err := scanSamples(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return samples, total, nil
}

// Current returns the latest-by-timestamp sample of kind current or walking.
func (r *LocationRepo) Current(ctx context.Context, orderID uuid.UUID) (*domain.LocationSample, error) {
	const op = "postgres.Location.Current"

	query := `SELECT ` + sampleColumns + `
		FROM location_samples
		WHERE order_id = $1 AND is_valid AND kind IN ('current', 'walking')
		ORDER BY timestamp DESC
		LIMIT 1`

	row := r.pool.QueryRow(ctx, query, orderID)
	sample, err := scanSample(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, e.WrapError(ctx, op, err)
		}
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return sample, nil
}

// History returns valid samples since the cutoff, ascending by timestamp.
func (r *LocationRepo) History(ctx context.Context, orderID uuid.UUID, since time.Time) ([]*domain.LocationSample, error) {
	const op = "postgres.Location.History"

	query := `SELECT ` + sampleColumns + `
		FROM location_samples
		WHERE order_id = $1 AND is_valid AND timestamp >= $2
		ORDER BY timestamp ASC`

	rows, err := r.pool.Query(ctx, query, orderID, since)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	samples, err := scanSamples(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return samples, nil
}

func scanSamples(rows pgx.Rows) ([]*domain.LocationSample, error) {
	var samples []*domain.LocationSample
	for rows.Next() {
		sample, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func scanSample(row pgx.Row) (*domain.LocationSample, error) {
	var s domain.LocationSample
	err := row.Scan(
		&s.ID,
		&s.OrderID,
		&s.UserID,
		&s.Latitude,
		&s.Longitude,
		&s.Accuracy,
		&s.Altitude,
		&s.Speed,
		&s.Heading,
		&s.Kind,
		&s.BatteryLevel,
		&s.NetworkType,
		&s.DeviceInfo,
		&s.Timestamp,
		&s.IsValid,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
