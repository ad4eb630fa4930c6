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

type GeofenceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGeofenceRepo(pool *pgxpool.Pool, logger *slog.Logger) *GeofenceRepo {
	return &GeofenceRepo{pool: pool, logger: logger}
}

const geofenceColumns = `
	id, order_id, owner_user_id,
	ST_Y(center_location::geometry) AS center_latitude,
	ST_X(center_location::geometry) AS center_longitude,
	radius_meters, kind, name, description,
	alert_on_enter, alert_on_exit, alert_distance_meters,
	active_from_time, active_until_time,
	is_active, is_armed, is_violated,
	enter_count, exit_count, violation_count, last_violation_at,
	created_at, updated_at
`

func (r *GeofenceRepo) Create(ctx context.Context, zone *domain.Geofence) error {
	const op = "postgres.Geofence.Create"

	if zone.RadiusMeters <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidRadius)
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	now := time.Now().UTC()
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = now
	}
	zone.UpdatedAt = now

	const query = `
		INSERT INTO geofences (
			id, order_id, owner_user_id, center_location,
			radius_meters, kind, name, description,
			alert_on_enter, alert_on_exit, alert_distance_meters,
			active_from_time, active_until_time,
			is_active, is_armed, is_violated,
			enter_count, exit_count, violation_count,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326),
			$6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.OrderID,
		zone.OwnerUserID,
		zone.CenterLongitude,
		zone.CenterLatitude,
		zone.RadiusMeters,
		zone.Kind,
		zone.Name,
		zone.Description,
		zone.AlertOnEnter,
		zone.AlertOnExit,
		zone.AlertDistanceMeters,
		zone.ActiveFromTime,
		zone.ActiveUntilTime,
		zone.IsActive,
		zone.IsArmed,
		zone.IsViolated,
		zone.EnterCount,
		zone.ExitCount,
		zone.ViolationCount,
		zone.CreatedAt,
		zone.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *GeofenceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error) {
	const op = "postgres.Geofence.Get"

	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE id = $1`

	zone, err := scanGeofence(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return zone, nil
}

func (r *GeofenceRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error) {
	return r.listByOrder(ctx, "postgres.Geofence.ListByOrder", orderID, false)
}

func (r *GeofenceRepo) ListActiveByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error) {
	return r.listByOrder(ctx, "postgres.Geofence.ListActiveByOrder", orderID, true)
}

func (r *GeofenceRepo) listByOrder(ctx context.Context, op string, orderID uuid.UUID, activeOnly bool) ([]*domain.Geofence, error) {
	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE order_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones, err := scanGeofences(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}

// Update rewrites a zone's mutable configuration. Counters and armed state
// go through SaveState instead.
func (r *GeofenceRepo) Update(ctx context.Context, zone *domain.Geofence) error {
	const op = "postgres.Geofence.Update"

	const query = `
		UPDATE geofences
		SET center_location = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			radius_meters = $4,
			kind = $5,
			name = $6,
			description = $7,
			alert_on_enter = $8,
			alert_on_exit = $9,
			alert_distance_meters = $10,
			active_from_time = $11,
			active_until_time = $12,
			updated_at = $13
		WHERE id = $1
	`

	zone.UpdatedAt = time.Now().UTC()

	tag, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.CenterLongitude,
		zone.CenterLatitude,
		zone.RadiusMeters,
		zone.Kind,
		zone.Name,
		zone.Description,
		zone.AlertOnEnter,
		zone.AlertOnExit,
		zone.AlertDistanceMeters,
		zone.ActiveFromTime,
		zone.ActiveUntilTime,
		zone.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// SaveState persists the evaluator's transitions: counters plus the
// armed/violated flags, in the same unit of work as the triggering sample's
// alerts.
func (r *GeofenceRepo) SaveState(ctx context.Context, zone *domain.Geofence) error {
	const op = "postgres.Geofence.SaveState"

	const query = `
		UPDATE geofences
		SET is_armed = $2,
			is_violated = $3,
			enter_count = $4,
			exit_count = $5,
			violation_count = $6,
			last_violation_at = $7,
			updated_at = $8
		WHERE id = $1
	`

	zone.UpdatedAt = time.Now().UTC()

	tag, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.IsArmed,
		zone.IsViolated,
		zone.EnterCount,
		zone.ExitCount,
		zone.ViolationCount,
		zone.LastViolationAt,
		zone.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (r *GeofenceRepo) Toggle(ctx context.Context, id uuid.UUID, active bool) error {
	const op = "postgres.Geofence.Toggle"

	tag, err := r.pool.Exec(ctx,
		`UPDATE geofences SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *GeofenceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Geofence.Delete"

	tag, err := r.pool.Exec(ctx, `DELETE FROM geofences WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// FindContaining scans active zones whose radius covers the point. Fine at
// per-order cardinality; a global query at scale would need a spatial index
// strategy beyond ST_DWithin over everything.
func (r *GeofenceRepo) FindContaining(ctx context.Context, lat, lng float64) ([]*domain.Geofence, error) {
	const op = "postgres.Geofence.FindContaining"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	query := `SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE is_active
		  AND ST_DWithin(
			center_location::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			radius_meters
		  )`

	rows, err := r.pool.Query(ctx, query, lng, lat)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones, err := scanGeofences(rows)
	if err != nil {
		r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}

func scanGeofences(rows pgx.Rows) ([]*domain.Geofence, error) {
	var zones []*domain.Geofence
	for rows.Next() {
		zone, err := scanGeofence(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return zones, nil
}

func scanGeofence(row pgx.Row) (*domain.Geofence, error) {
	var g domain.Geofence
	err := row.Scan(
		&g.ID,
		&g.OrderID,
		&g.OwnerUserID,
		&g.CenterLatitude,
		&g.CenterLongitude,
		&g.RadiusMeters,
		&g.Kind,
		&g.Name,
		&g.Description,
		&g.AlertOnEnter,
		&g.AlertOnExit,
		&g.AlertDistanceMeters,
		&g.ActiveFromTime,
		&g.ActiveUntilTime,
		&g.IsActive,
		&g.IsArmed,
		&g.IsViolated,
		&g.EnterCount,
		&g.ExitCount,
		&g.ViolationCount,
		&g.LastViolationAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
