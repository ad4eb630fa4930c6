package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/config"
	"github.com/Zagato27/Lapa-sub000/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocks

// LocationRepository persists GPS samples.
type LocationRepository interface {
	Create(ctx context.Context, sample *domain.LocationSample) error
	ListByOrder(ctx context.Context, orderID uuid.UUID, page, limit int, kind domain.SampleKind) ([]*domain.LocationSample, int64, error)
	Current(ctx context.Context, orderID uuid.UUID) (*domain.LocationSample, error)
	History(ctx context.Context, orderID uuid.UUID, since time.Time) ([]*domain.LocationSample, error)
}

// GeofenceRepository persists geofence zones and their runtime state.
type GeofenceRepository interface {
	Create(ctx context.Context, zone *domain.Geofence) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error)
	ListActiveByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error)
	Update(ctx context.Context, zone *domain.Geofence) error
	SaveState(ctx context.Context, zone *domain.Geofence) error
	Toggle(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindContaining(ctx context.Context, lat, lng float64) ([]*domain.Geofence, error)
}

// AlertRepository persists location alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.LocationAlert) error
	ListUnread(ctx context.Context, orderID uuid.UUID, limit int) ([]*domain.LocationAlert, error)
}

// RouteRepository persists completed walk routes.
type RouteRepository interface {
	Save(ctx context.Context, route *domain.Route) error
}

// OrderRepository reads orders owned by the marketplace core.
type OrderRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

// TrackingStore keeps the set of actively tracked orders.
type TrackingStore interface {
	SetActive(ctx context.Context, session domain.TrackingSession) error
	Get(ctx context.Context, orderID uuid.UUID) (*domain.TrackingSession, error)
	Stop(ctx context.Context, orderID uuid.UUID) error
	ActiveOrderIDs(ctx context.Context) ([]uuid.UUID, error)
}

// GeofenceCache caches the per-order geofence list.
type GeofenceCache interface {
	GetOrderGeofences(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error)
	SetOrderGeofences(ctx context.Context, orderID uuid.UUID, geofences []*domain.Geofence) error
	Invalidate(ctx context.Context, orderID uuid.UUID) error
}

// LocationCache caches the first page of an order's sample listing.
type LocationCache interface {
	GetFirstPage(ctx context.Context, orderID uuid.UUID) (*domain.SamplesPage, error)
	SetFirstPage(ctx context.Context, orderID uuid.UUID, page *domain.SamplesPage) error
	Invalidate(ctx context.Context, orderID uuid.UUID) error
}

// Broadcaster fans events out to websocket subscribers of an order.
type Broadcaster interface {
	BroadcastLocation(orderID uuid.UUID, update domain.LocationUpdate)
	BroadcastGeofenceAlert(orderID uuid.UUID, alert *domain.LocationAlert)
	BroadcastTrackingStatus(orderID uuid.UUID, status domain.TrackingStatus)
	BroadcastEmergency(orderID uuid.UUID, alert *domain.LocationAlert)
}

// LocationService covers GPS ingestion, history and tracking lifecycle.
type LocationService interface {
	RecordSample(ctx context.Context, userID uuid.UUID, req *domain.CreateSampleRequest) (*domain.LocationSample, error)
	List(ctx context.Context, userID, orderID uuid.UUID, page, limit int, kind domain.SampleKind) (*domain.SamplesPage, error)
	Current(ctx context.Context, userID, orderID uuid.UUID) (*domain.LocationSample, error)
	History(ctx context.Context, userID, orderID uuid.UUID, hours int) ([]*domain.LocationSample, error)
	Live(ctx context.Context, userID, orderID uuid.UUID) (*domain.LiveSnapshot, error)

	StartTracking(ctx context.Context, userID, orderID uuid.UUID, req *domain.TrackingStartRequest) (*domain.TrackingStatus, error)
	StopTracking(ctx context.Context, userID, orderID uuid.UUID, req *domain.TrackingStopRequest) (*domain.TrackingStatus, error)
	ForceStopTracking(ctx context.Context, orderID uuid.UUID, reason string) (*domain.TrackingStatus, error)
	TrackingStatus(ctx context.Context, orderID uuid.UUID) (*domain.TrackingStatus, error)

	ProcessEmergency(ctx context.Context, userID uuid.UUID, req *domain.EmergencyRequest) (*domain.LocationAlert, error)
}

// GeofenceService covers zone management and sample evaluation.
type GeofenceService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.GeofenceCreateRequest) (*domain.Geofence, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Geofence, error)
	ListForOrder(ctx context.Context, userID, orderID uuid.UUID) ([]*domain.Geofence, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *domain.GeofenceUpdateRequest) (*domain.Geofence, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Toggle(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Geofence, error)
	Stats(ctx context.Context, userID, id uuid.UUID) (*domain.GeofenceStats, error)
	FindContaining(ctx context.Context, lat, lng float64) ([]*domain.Geofence, error)
	Evaluate(ctx context.Context, sample *domain.LocationSample) (*domain.EvaluationResult, error)
}

// Service aggregates the engine's use cases.
type Service struct {
	Location LocationService
	Geofence GeofenceService
}

// Deps carries everything the services need.
type Deps struct {
	Locations LocationRepository
	Geofences GeofenceRepository
	Alerts    AlertRepository
	Routes    RouteRepository
	Orders    OrderRepository

	Tracking      TrackingStore
	GeofenceCache GeofenceCache
	LocationCache LocationCache

	Broadcaster Broadcaster

	Cfg    *config.Config
	Logger *slog.Logger
}

func NewService(d Deps) *Service {
	geofences := NewGeofenceService(d)
	return &Service{
		Location: NewLocationService(d, geofences),
		Geofence: geofences,
	}
}
