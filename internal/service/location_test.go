package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/config"
	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/internal/service"
	"github.com/Zagato27/Lapa-sub000/pkg/e"

	mock_service "github.com/Zagato27/Lapa-sub000/internal/service/mocks"
)

type locationMocks struct {
	locations   *mock_service.MockLocationRepository
	routes      *mock_service.MockRouteRepository
	alerts      *mock_service.MockAlertRepository
	orders      *mock_service.MockOrderRepository
	tracking    *mock_service.MockTrackingStore
	cache       *mock_service.MockLocationCache
	geofences   *mock_service.MockGeofenceService
	broadcaster *mock_service.MockBroadcaster
}

func newLocationService(ctrl *gomock.Controller) (service.LocationService, locationMocks) {
	m := locationMocks{
		locations:   mock_service.NewMockLocationRepository(ctrl),
		routes:      mock_service.NewMockRouteRepository(ctrl),
		alerts:      mock_service.NewMockAlertRepository(ctrl),
		orders:      mock_service.NewMockOrderRepository(ctrl),
		tracking:    mock_service.NewMockTrackingStore(ctrl),
		cache:       mock_service.NewMockLocationCache(ctrl),
		geofences:   mock_service.NewMockGeofenceService(ctrl),
		broadcaster: mock_service.NewMockBroadcaster(ctrl),
	}
	cfg := testConfig()
	cfg.Tracking = config.TrackingConfig{
		TickInterval:                 30 * time.Second,
		MaxDuration:                  12 * time.Hour,
		RouteLookbackHours:           12,
		RouteMaxPoints:               1000,
		RouteSimplifyToleranceMeters: 10,
		HistoryDefaultHours:          24,
	}
	svc := service.NewLocationService(service.Deps{
		Locations:     m.locations,
		Routes:        m.routes,
		Alerts:        m.alerts,
		Orders:        m.orders,
		Tracking:      m.tracking,
		LocationCache: m.cache,
		Broadcaster:   m.broadcaster,
		Cfg:           cfg,
		Logger:        testLogger(),
	}, m.geofences)
	return svc, m
}

// --- RecordSample ---

func TestRecordSample_PersistsEvaluatesAndBroadcasts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)

	var stored *domain.LocationSample
	m.locations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.LocationSample) error {
			stored = s
			return nil
		})
	m.cache.EXPECT().Invalidate(gomock.Any(), order.ID).Return(nil)

	alert := domain.NewGeofenceAlert(safeZone(order.ID, order.ClientID), domain.AlertGeofenceExit, 55.77, 37.61, "left")
	m.geofences.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(&domain.EvaluationResult{
			IsInsideAny:     false,
			NearestDistance: 2446,
			AlertsTriggered: []*domain.LocationAlert{alert},
		}, nil)

	m.broadcaster.EXPECT().BroadcastGeofenceAlert(order.ID, alert)

	var update domain.LocationUpdate
	m.broadcaster.EXPECT().
		BroadcastLocation(order.ID, gomock.Any()).
		Do(func(_ uuid.UUID, u domain.LocationUpdate) { update = u })

	sample, err := svc.RecordSample(context.Background(), walkerID, &domain.CreateSampleRequest{
		OrderID:   order.ID,
		Latitude:  55.77,
		Longitude: 37.61,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sample.ID == uuid.Nil {
		t.Fatalf("expected generated sample id")
	}
	if stored.Kind != domain.SampleWalking {
		t.Fatalf("kind must default to walking, got %s", stored.Kind)
	}
	if !stored.IsValid {
		t.Fatalf("ingested samples are valid by construction")
	}
	if update.Geofence.IsInside {
		t.Fatalf("update must carry the evaluation verdict")
	}
	if update.Geofence.NearestDistance != 2446 {
		t.Fatalf("update must carry the nearest distance, got %f", update.Geofence.NearestDistance)
	}
}

func TestRecordSample_NonPartyForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	order := walkOrder(uuid.New(), uuid.New())
	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)

	_, err := svc.RecordSample(context.Background(), uuid.New(), &domain.CreateSampleRequest{
		OrderID:   order.ID,
		Latitude:  1,
		Longitude: 1,
	})
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecordSample_EvaluationFailureStillBroadcasts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.locations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), order.ID).Return(nil)
	m.geofences.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	m.broadcaster.EXPECT().BroadcastLocation(order.ID, gomock.Any())

	if _, err := svc.RecordSample(context.Background(), walkerID, &domain.CreateSampleRequest{
		OrderID:   order.ID,
		Latitude:  55.75,
		Longitude: 37.61,
	}); err != nil {
		t.Fatalf("stored sample must survive evaluation failure: %v", err)
	}
}

// --- tracking lifecycle ---

func TestStartTracking_RestartKeepsOriginalStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)
	startedAt := time.Now().UTC().Add(-30 * time.Minute)

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.tracking.EXPECT().
		Get(gomock.Any(), order.ID).
		Return(&domain.TrackingSession{OrderID: order.ID, UserID: walkerID, StartedAt: startedAt, IsActive: true}, nil)

	var saved domain.TrackingSession
	m.tracking.EXPECT().
		SetActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s domain.TrackingSession) error {
			saved = s
			return nil
		})
	m.broadcaster.EXPECT().BroadcastTrackingStatus(order.ID, gomock.Any())

	status, err := svc.StartTracking(context.Background(), walkerID, order.ID, &domain.TrackingStartRequest{OrderID: order.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !status.IsActive {
		t.Fatalf("status must be active after start")
	}
	if !saved.StartedAt.Equal(startedAt) {
		t.Fatalf("restart must not reset the session start: got %v want %v", saved.StartedAt, startedAt)
	}
}

func TestStartTracking_SeedsDefaultGeofence(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.tracking.EXPECT().Get(gomock.Any(), order.ID).Return(nil, nil)
	m.tracking.EXPECT().SetActive(gomock.Any(), gomock.Any()).Return(nil)
	m.geofences.EXPECT().ListForOrder(gomock.Any(), walkerID, order.ID).Return(nil, nil)

	var seeded *domain.GeofenceCreateRequest
	m.geofences.EXPECT().
		Create(gomock.Any(), walkerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *domain.GeofenceCreateRequest) (*domain.Geofence, error) {
			seeded = req
			return &domain.Geofence{ID: uuid.New()}, nil
		})
	m.broadcaster.EXPECT().BroadcastTrackingStatus(order.ID, gomock.Any())

	_, err := svc.StartTracking(context.Background(), walkerID, order.ID, &domain.TrackingStartRequest{
		OrderID:          order.ID,
		EnableGeofencing: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if seeded == nil {
		t.Fatalf("expected a default geofence for a zone-less order")
	}
	if seeded.RadiusMeters != 2000 {
		t.Fatalf("default zone radius must come from config, got %f", seeded.RadiusMeters)
	}
	if seeded.CenterLatitude != order.Latitude || seeded.CenterLongitude != order.Longitude {
		t.Fatalf("default zone must center on the order origin")
	}
	if !seeded.AlertOnExit {
		t.Fatalf("default zone must alert on exit")
	}
}

func TestStopTracking_InactiveOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.tracking.EXPECT().Get(gomock.Any(), order.ID).Return(nil, nil)

	_, err := svc.StopTracking(context.Background(), walkerID, order.ID, &domain.TrackingStopRequest{OrderID: order.ID})
	if !errors.Is(err, e.ErrTrackingInactive) {
		t.Fatalf("expected ErrTrackingInactive, got %v", err)
	}
}

func TestStopTracking_SavesRoute(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)
	startedAt := time.Now().UTC().Add(-time.Hour)
	session := &domain.TrackingSession{OrderID: order.ID, UserID: walkerID, StartedAt: startedAt, IsActive: true}

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.tracking.EXPECT().Get(gomock.Any(), order.ID).Return(session, nil)

	// Two samples a degree of latitude apart, ~111 km.
	base := startedAt.Add(time.Minute)
	samples := []*domain.LocationSample{
		{OrderID: order.ID, Latitude: 55.0, Longitude: 37.61, Timestamp: base},
		{OrderID: order.ID, Latitude: 56.0, Longitude: 37.61, Timestamp: base.Add(30 * time.Minute)},
	}
	m.locations.EXPECT().History(gomock.Any(), order.ID, gomock.Any()).Return(samples, nil)

	var route *domain.Route
	m.routes.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Route) error {
			route = r
			return nil
		})
	m.tracking.EXPECT().Stop(gomock.Any(), order.ID).Return(nil)
	m.broadcaster.EXPECT().BroadcastTrackingStatus(order.ID, gomock.Any())

	status, err := svc.StopTracking(context.Background(), walkerID, order.ID, &domain.TrackingStopRequest{
		OrderID:   order.ID,
		SaveRoute: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status.IsActive {
		t.Fatalf("status must be inactive after stop")
	}
	if status.Reason != "stopped" {
		t.Fatalf("manual stop reason should be 'stopped', got %q", status.Reason)
	}
	if route == nil {
		t.Fatalf("expected the route to be saved")
	}
	if route.TotalDistanceMeters < 110000 || route.TotalDistanceMeters > 113000 {
		t.Fatalf("one degree of latitude should be ~111 km, got %f m", route.TotalDistanceMeters)
	}
	if route.UserID != walkerID {
		t.Fatalf("route must belong to the tracked walker")
	}
	if !route.IsCompleted {
		t.Fatalf("saved routes are complete")
	}
}

func TestForceStopTracking_Timeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	orderID := uuid.New()
	session := &domain.TrackingSession{
		OrderID:   orderID,
		UserID:    uuid.New(),
		StartedAt: time.Now().UTC().Add(-13 * time.Hour),
		IsActive:  true,
	}

	m.tracking.EXPECT().Get(gomock.Any(), orderID).Return(session, nil)
	m.locations.EXPECT().History(gomock.Any(), orderID, gomock.Any()).Return(nil, nil)
	m.tracking.EXPECT().Stop(gomock.Any(), orderID).Return(nil)

	var status domain.TrackingStatus
	m.broadcaster.EXPECT().
		BroadcastTrackingStatus(orderID, gomock.Any()).
		Do(func(_ uuid.UUID, s domain.TrackingStatus) { status = s })

	if _, err := svc.ForceStopTracking(context.Background(), orderID, "timeout"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status.Reason != "timeout" {
		t.Fatalf("expected timeout reason on the broadcast, got %q", status.Reason)
	}
	if status.IsActive {
		t.Fatalf("broadcast status must be inactive")
	}
}

// --- emergency ---

func TestProcessEmergency_WorksWithoutActiveTracking(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	clientID := uuid.New()
	order := walkOrder(clientID, uuid.New())

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)

	var stored *domain.LocationSample
	m.locations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.LocationSample) error {
			stored = s
			return nil
		})
	m.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().BroadcastEmergency(order.ID, gomock.Any())

	alert, err := svc.ProcessEmergency(context.Background(), clientID, &domain.EmergencyRequest{
		OrderID:   order.ID,
		Latitude:  55.75,
		Longitude: 37.61,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stored.Kind != domain.SampleEmergency {
		t.Fatalf("emergency samples must be stored as emergency kind, got %s", stored.Kind)
	}
	if alert.Severity != domain.SeverityCritical {
		t.Fatalf("emergency alerts are critical, got %s", alert.Severity)
	}
	if alert.Type != domain.AlertEmergency {
		t.Fatalf("expected emergency alert type, got %s", alert.Type)
	}
}

// --- listing ---

func TestList_FirstPageServedFromCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)
	cached := &domain.SamplesPage{Total: 3, Page: 1, Limit: 50, Pages: 1}

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.cache.EXPECT().GetFirstPage(gomock.Any(), order.ID).Return(cached, nil)

	page, err := svc.List(context.Background(), walkerID, order.ID, 1, 50, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page != cached {
		t.Fatalf("expected the cached page back")
	}
}

func TestList_ComputesPageCount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLocationService(ctrl)

	walkerID := uuid.New()
	order := walkOrder(uuid.New(), walkerID)

	m.orders.EXPECT().Get(gomock.Any(), order.ID).Return(order, nil)
	m.locations.EXPECT().
		ListByOrder(gomock.Any(), order.ID, 2, 10, domain.SampleWalking).
		Return([]*domain.LocationSample{}, int64(25), nil)

	page, err := svc.List(context.Background(), walkerID, order.ID, 2, 10, domain.SampleWalking)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Pages != 3 {
		t.Fatalf("25 rows at limit 10 is 3 pages, got %d", page.Pages)
	}
}
