//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS orders (
			id uuid PRIMARY KEY,
			client_id uuid NOT NULL,
			walker_id uuid NOT NULL,
			origin geography(Point, 4326) NOT NULL,
			status text NOT NULL
		);

		CREATE TABLE IF NOT EXISTS location_samples (
			id uuid PRIMARY KEY,
			order_id uuid NOT NULL,
			user_id uuid NOT NULL,
			location geography(Point, 4326) NOT NULL,
			accuracy double precision,
			altitude double precision,
			speed double precision,
			heading double precision,
			kind text NOT NULL,
			battery_level double precision,
			network_type text,
			device_info jsonb,
			timestamp timestamptz NOT NULL,
			is_valid boolean NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS geofences (
			id uuid PRIMARY KEY,
			order_id uuid NOT NULL,
			owner_user_id uuid NOT NULL,
			center_location geography(Point, 4326) NOT NULL,
			radius_meters double precision NOT NULL,
			kind text NOT NULL,
			name text NOT NULL DEFAULT '',
			description text NOT NULL DEFAULT '',
			alert_on_enter boolean NOT NULL,
			alert_on_exit boolean NOT NULL,
			alert_distance_meters double precision,
			active_from_time text NOT NULL DEFAULT '',
			active_until_time text NOT NULL DEFAULT '',
			is_active boolean NOT NULL,
			is_armed boolean NOT NULL,
			is_violated boolean NOT NULL,
			enter_count integer NOT NULL,
			exit_count integer NOT NULL,
			violation_count integer NOT NULL,
			last_violation_at timestamptz,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS location_alerts (
			id uuid PRIMARY KEY,
			order_id uuid NOT NULL,
			user_id uuid NOT NULL,
			alert_type text NOT NULL,
			location geography(Point, 4326) NOT NULL,
			geofence_id uuid,
			title text NOT NULL,
			message text NOT NULL,
			severity text NOT NULL,
			is_read boolean NOT NULL,
			timestamp timestamptz NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS routes (
			id uuid PRIMARY KEY,
			order_id uuid NOT NULL,
			user_id uuid NOT NULL,
			total_distance_meters double precision NOT NULL,
			total_duration_seconds integer NOT NULL,
			average_speed_kmh double precision NOT NULL,
			max_speed_kmh double precision,
			point_count integer NOT NULL,
			waypoints jsonb NOT NULL,
			started_at timestamptz NOT NULL,
			completed_at timestamptz NOT NULL,
			is_completed boolean NOT NULL,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE orders, location_samples, geofences, location_alerts, routes`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// --- locations ---

func TestLocationRepo_Create_RoundTrip(t *testing.T) {

	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	orderID := uuid.New()

	speed := 1.4
	sample := &domain.LocationSample{
		OrderID:   orderID,
		UserID:    uuid.New(),
		Latitude:  49.281441,
		Longitude: -123.055913,
		Speed:     &speed,
		Kind:      domain.SampleWalking,
		IsValid:   true,
	}

	if err := repo.Create(context.Background(), sample); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sample.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if sample.Timestamp.IsZero() || sample.CreatedAt.IsZero() {
		t.Fatalf("expected timestamps set")
	}

	got, err := repo.Current(context.Background(), orderID)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got.Latitude != sample.Latitude || got.Longitude != sample.Longitude {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.Latitude, got.Longitude, sample.Latitude, sample.Longitude)
	}
	if got.Speed == nil || *got.Speed != speed {
		t.Fatalf("speed mismatch got=%v", got.Speed)
	}
}

func TestLocationRepo_Create_RejectsBadCoordinates(t *testing.T) {

	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())

	err := repo.Create(context.Background(), &domain.LocationSample{
		OrderID:   uuid.New(),
		UserID:    uuid.New(),
		Latitude:  91,
		Longitude: 0,
		Kind:      domain.SampleWalking,
		IsValid:   true,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestLocationRepo_ListByOrder_PaginationAndKindFilter(t *testing.T) {

	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	orderID := uuid.New()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		s := &domain.LocationSample{
			OrderID:   orderID,
			UserID:    userID,
			Latitude:  55.75,
			Longitude: 37.61,
			Kind:      domain.SampleWalking,
			IsValid:   true,
			Timestamp: time.Date(2025, 1, 1, 12, 0, i, 0, time.UTC),
		}
		if err := repo.Create(context.Background(), s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	emergency := &domain.LocationSample{
		OrderID:   orderID,
		UserID:    userID,
		Latitude:  55.75,
		Longitude: 37.61,
		Kind:      domain.SampleEmergency,
		IsValid:   true,
		Timestamp: time.Date(2025, 1, 1, 12, 1, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), emergency); err != nil {
		t.Fatalf("Create emergency: %v", err)
	}

	page1, total, err := repo.ListByOrder(context.Background(), orderID, 1, 2, "")
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected total=4 got=%d", total)
	}
	if len(page1) != 2 {
		t.Fatalf("expected len=2 got=%d", len(page1))
	}
	if page1[0].Timestamp.Before(page1[1].Timestamp) {
		t.Fatalf("expected DESC order by timestamp")
	}

	walking, total, err := repo.ListByOrder(context.Background(), orderID, 1, 10, domain.SampleWalking)
	if err != nil {
		t.Fatalf("ListByOrder walking: %v", err)
	}
	if total != 3 || len(walking) != 3 {
		t.Fatalf("kind filter broken: total=%d len=%d", total, len(walking))
	}
}

func TestLocationRepo_ListByOrder_HonorsLimitsAbove100(t *testing.T) {

	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	orderID := uuid.New()
	userID := uuid.New()

	for i := 0; i < 120; i++ {
		s := &domain.LocationSample{
			OrderID:   orderID,
			UserID:    userID,
			Latitude:  55.75,
			Longitude: 37.61,
			Kind:      domain.SampleWalking,
			IsValid:   true,
			Timestamp: time.Date(2025, 1, 1, 12, 0, 0, i*1000000, time.UTC),
		}
		if err := repo.Create(context.Background(), s); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	rows, total, err := repo.ListByOrder(context.Background(), orderID, 1, 150, "")
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if total != 120 {
		t.Fatalf("expected total=120 got=%d", total)
	}
	if len(rows) != 120 {
		t.Fatalf("limit=150 must return every row, got=%d", len(rows))
	}
}

func TestLocationRepo_Current_SkipsEmergencyAndNotFound(t *testing.T) {

	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	orderID := uuid.New()

	_, err := repo.Current(context.Background(), orderID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	walking := &domain.LocationSample{
		OrderID:   orderID,
		UserID:    uuid.New(),
		Latitude:  55.75,
		Longitude: 37.61,
		Kind:      domain.SampleWalking,
		IsValid:   true,
		Timestamp: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), walking); err != nil {
		t.Fatalf("Create: %v", err)
	}
	emergency := &domain.LocationSample{
		OrderID:   orderID,
		UserID:    walking.UserID,
		Latitude:  55.76,
		Longitude: 37.62,
		Kind:      domain.SampleEmergency,
		IsValid:   true,
		Timestamp: time.Date(2025, 1, 1, 12, 5, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), emergency); err != nil {
		t.Fatalf("Create emergency: %v", err)
	}

	got, err := repo.Current(context.Background(), orderID)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got.ID != walking.ID {
		t.Fatalf("emergency samples must not be the current position")
	}
}

func TestLocationRepo_History_AscendingSinceCutoff(t *testing.T) {

	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	orderID := uuid.New()
	userID := uuid.New()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s := &domain.LocationSample{
			OrderID:   orderID,
			UserID:    userID,
			Latitude:  55.75,
			Longitude: 37.61,
			Kind:      domain.SampleWalking,
			IsValid:   true,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(context.Background(), s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.History(context.Background(), orderID, base.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 samples after cutoff, got %d", len(got))
	}
	if !got[0].Timestamp.Before(got[1].Timestamp) {
		t.Fatalf("expected ASC order by timestamp")
	}
}

// --- geofences ---

func testZone(orderID uuid.UUID) *domain.Geofence {
	alertDistance := 500.0
	return &domain.Geofence{
		OrderID:             orderID,
		OwnerUserID:         uuid.New(),
		CenterLatitude:      55.75,
		CenterLongitude:     37.61,
		RadiusMeters:        2000,
		Kind:                domain.GeofenceSafeZone,
		Name:                "Walk area",
		AlertOnEnter:        true,
		AlertOnExit:         true,
		AlertDistanceMeters: &alertDistance,
		IsActive:            true,
	}
}

func TestGeofenceRepo_Create_RoundTrip(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	zone := testZone(uuid.New())

	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if zone.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}

	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CenterLatitude != zone.CenterLatitude || got.CenterLongitude != zone.CenterLongitude {
		t.Fatalf("center mismatch got=(%v,%v)", got.CenterLatitude, got.CenterLongitude)
	}
	if got.RadiusMeters != zone.RadiusMeters {
		t.Fatalf("radius mismatch got=%v", got.RadiusMeters)
	}
	if got.AlertDistanceMeters == nil || *got.AlertDistanceMeters != 500 {
		t.Fatalf("alert distance mismatch got=%v", got.AlertDistanceMeters)
	}
	if !got.AlertOnEnter || !got.AlertOnExit {
		t.Fatalf("alert flags lost in round trip")
	}
}

func TestGeofenceRepo_Create_RejectsNonPositiveRadius(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	zone := testZone(uuid.New())
	zone.RadiusMeters = 0

	err := repo.Create(context.Background(), zone)
	if !errors.Is(err, e.ErrInvalidRadius) {
		t.Fatalf("expected ErrInvalidRadius, got: %v", err)
	}
}

func TestGeofenceRepo_Update_OKAndNotFound(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	zone := testZone(uuid.New())
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	zone.RadiusMeters = 1500
	zone.Name = "Tighter walk area"
	zone.ActiveFromTime = "08:00"
	zone.ActiveUntilTime = "22:00"
	if err := repo.Update(context.Background(), zone); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.RadiusMeters != 1500 || got.Name != "Tighter walk area" {
		t.Fatalf("unexpected updated row: %+v", got)
	}
	if got.ActiveFromTime != "08:00" || got.ActiveUntilTime != "22:00" {
		t.Fatalf("time window lost in update: %+v", got)
	}

	missing := testZone(uuid.New())
	missing.ID = uuid.New()
	err = repo.Update(context.Background(), missing)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestGeofenceRepo_SaveState_PersistsCounters(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	zone := testZone(uuid.New())
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	violatedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	zone.IsArmed = false
	zone.IsViolated = true
	zone.EnterCount = 1
	zone.ExitCount = 1
	zone.ViolationCount = 2
	zone.LastViolationAt = &violatedAt

	if err := repo.SaveState(context.Background(), zone); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.IsViolated || got.IsArmed {
		t.Fatalf("flags not persisted: %+v", got)
	}
	if got.EnterCount != 1 || got.ExitCount != 1 || got.ViolationCount != 2 {
		t.Fatalf("counters not persisted: %+v", got)
	}
	if got.LastViolationAt == nil || !got.LastViolationAt.Equal(violatedAt) {
		t.Fatalf("last violation timestamp not persisted: %v", got.LastViolationAt)
	}
}

func TestGeofenceRepo_ListActiveByOrder_FiltersInactive(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	orderID := uuid.New()

	active := testZone(orderID)
	if err := repo.Create(context.Background(), active); err != nil {
		t.Fatalf("Create active: %v", err)
	}
	inactive := testZone(orderID)
	inactive.IsActive = false
	if err := repo.Create(context.Background(), inactive); err != nil {
		t.Fatalf("Create inactive: %v", err)
	}

	all, err := repo.ListByOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(all))
	}

	activeOnly, err := repo.ListActiveByOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("ListActiveByOrder: %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].ID != active.ID {
		t.Fatalf("expected only the active zone, got %d", len(activeOnly))
	}
}

func TestGeofenceRepo_ToggleAndDelete(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	zone := testZone(uuid.New())
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Toggle(context.Background(), zone.ID, false); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected inactive after toggle")
	}

	if err := repo.Delete(context.Background(), zone.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = repo.Delete(context.Background(), zone.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got: %v", err)
	}
}

func TestGeofenceRepo_FindContaining(t *testing.T) {

	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())
	zone := testZone(uuid.New())
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inside, err := repo.FindContaining(context.Background(), 55.751, 37.612)
	if err != nil {
		t.Fatalf("FindContaining inside: %v", err)
	}
	if len(inside) != 1 || inside[0].ID != zone.ID {
		t.Fatalf("expected the zone to contain a nearby point, got %d", len(inside))
	}

	outside, err := repo.FindContaining(context.Background(), 55.85, 37.61)
	if err != nil {
		t.Fatalf("FindContaining outside: %v", err)
	}
	if len(outside) != 0 {
		t.Fatalf("expected no zones ~11 km away, got %d", len(outside))
	}

	_, err = repo.FindContaining(context.Background(), 91, 0)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

// --- alerts ---

func TestAlertRepo_CreateAndListUnread(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger())
	orderID := uuid.New()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		alert := &domain.LocationAlert{
			OrderID:   orderID,
			UserID:    userID,
			Type:      domain.AlertGeofenceExit,
			Latitude:  55.77,
			Longitude: 37.61,
			Title:     "Geofence exit",
			Message:   "walker left the zone",
			Severity:  domain.SeverityMedium,
			Timestamp: time.Date(2025, 1, 1, 12, 0, i, 0, time.UTC),
		}
		if err := repo.Create(context.Background(), alert); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	read := &domain.LocationAlert{
		OrderID:   orderID,
		UserID:    userID,
		Type:      domain.AlertGeofenceEnter,
		Latitude:  55.75,
		Longitude: 37.61,
		Title:     "Geofence enter",
		Message:   "walker entered the zone",
		Severity:  domain.SeverityMedium,
		IsRead:    true,
		Timestamp: time.Date(2025, 1, 1, 12, 1, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), read); err != nil {
		t.Fatalf("Create read: %v", err)
	}

	unread, err := repo.ListUnread(context.Background(), orderID, 2)
	if err != nil {
		t.Fatalf("ListUnread: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("expected limit to cap at 2, got %d", len(unread))
	}
	if unread[0].Timestamp.Before(unread[1].Timestamp) {
		t.Fatalf("expected DESC order by timestamp")
	}
	for _, a := range unread {
		if a.IsRead {
			t.Fatalf("read alerts must be filtered out")
		}
	}
}

// --- routes ---

func TestRouteRepo_Save(t *testing.T) {

	truncateAll(t)

	repo := NewRouteRepo(testPool, testLogger())
	orderID := uuid.New()

	started := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	route := &domain.Route{
		OrderID:              orderID,
		UserID:               uuid.New(),
		TotalDistanceMeters:  3210.5,
		TotalDurationSeconds: 1800,
		AverageSpeedKmh:      6.4,
		PointCount:           2,
		Waypoints: []domain.Waypoint{
			{Latitude: 55.75, Longitude: 37.61, Timestamp: started},
			{Latitude: 55.76, Longitude: 37.62, Timestamp: started.Add(30 * time.Minute)},
		},
		StartedAt:   started,
		CompletedAt: started.Add(30 * time.Minute),
		IsCompleted: true,
	}

	if err := repo.Save(context.Background(), route); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if route.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}

	var (
		distance float64
		points   int
	)
	err := testPool.QueryRow(context.Background(),
		`SELECT total_distance_meters, jsonb_array_length(waypoints) FROM routes WHERE id = $1`,
		route.ID,
	).Scan(&distance, &points)
	if err != nil {
		t.Fatalf("select route: %v", err)
	}
	if distance != route.TotalDistanceMeters {
		t.Fatalf("distance mismatch got=%v want=%v", distance, route.TotalDistanceMeters)
	}
	if points != 2 {
		t.Fatalf("expected 2 stored waypoints, got %d", points)
	}
}

// --- orders ---

func TestOrderRepo_Get(t *testing.T) {

	truncateAll(t)

	repo := NewOrderRepo(testPool, testLogger())
	orderID := uuid.New()
	clientID := uuid.New()
	walkerID := uuid.New()

	_, err := testPool.Exec(context.Background(), `
		INSERT INTO orders (id, client_id, walker_id, origin, status)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6)
	`, orderID, clientID, walkerID, 37.61, 55.75, "in_progress")
	if err != nil {
		t.Fatalf("insert order: %v", err)
	}

	got, err := repo.Get(context.Background(), orderID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ClientID != clientID || got.WalkerID != walkerID {
		t.Fatalf("party mismatch: %+v", got)
	}
	if got.Latitude != 55.75 || got.Longitude != 37.61 {
		t.Fatalf("origin mismatch got=(%v,%v)", got.Latitude, got.Longitude)
	}

	_, err = repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
