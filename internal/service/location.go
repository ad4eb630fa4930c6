package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/config"
	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/internal/geo"
	"github.com/Zagato27/Lapa-sub000/pkg/e"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
	unreadAlertLimit = 10
)

type locationService struct {
	locations LocationRepository
	routes    RouteRepository
	alerts    AlertRepository
	orders    OrderRepository

	tracking TrackingStore
	cache    LocationCache

	geofences   GeofenceService
	broadcaster Broadcaster

	trackingCfg config.TrackingConfig
	geofenceCfg config.GeofenceConfig
	logger      *slog.Logger
}

func NewLocationService(d Deps, geofences GeofenceService) LocationService {
	return &locationService{
		locations:   d.Locations,
		routes:      d.Routes,
		alerts:      d.Alerts,
		orders:      d.Orders,
		tracking:    d.Tracking,
		cache:       d.LocationCache,
		geofences:   geofences,
		broadcaster: d.Broadcaster,
		trackingCfg: d.Cfg.Tracking,
		geofenceCfg: d.Cfg.Geofence,
		logger:      d.Logger,
	}
}

// RecordSample ingests one GPS observation: persist, evaluate geofences,
// then fan out the update and any triggered alerts. Evaluation and
// broadcasting are best effort; a stored sample is never rolled back.
func (s *locationService) RecordSample(ctx context.Context, userID uuid.UUID, req *domain.CreateSampleRequest) (*domain.LocationSample, error) {
	if _, err := s.authorize(ctx, userID, req.OrderID); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.SampleWalking
	}
	sample := &domain.LocationSample{
		ID:           uuid.New(),
		OrderID:      req.OrderID,
		UserID:       userID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Accuracy:     req.Accuracy,
		Altitude:     req.Altitude,
		Speed:        req.Speed,
		Heading:      req.Heading,
		Kind:         kind,
		BatteryLevel: req.BatteryLevel,
		NetworkType:  req.NetworkType,
		DeviceInfo:   req.DeviceInfo,
		Timestamp:    time.Now().UTC(),
		IsValid:      true,
	}

	if err := s.locations.Create(ctx, sample); err != nil {
		s.logger.Error("sample persist failed", slog.Any("error", err), slog.String("order_id", req.OrderID.String()))
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, sample.OrderID); err != nil {
		s.logger.Warn("location cache invalidate failed", slog.Any("error", err))
	}

	update := domain.LocationUpdate{
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Accuracy:  sample.Accuracy,
		Speed:     sample.Speed,
	}
	update.Geofence.IsInside = true

	result, err := s.geofences.Evaluate(ctx, sample)
	if err != nil {
		s.logger.Error("geofence evaluation failed", slog.Any("error", err), slog.String("order_id", sample.OrderID.String()))
	} else {
		update.Geofence.IsInside = result.IsInsideAny
		update.Geofence.NearestDistance = result.NearestDistance
		for _, alert := range result.AlertsTriggered {
			s.broadcaster.BroadcastGeofenceAlert(sample.OrderID, alert)
		}
	}

	s.broadcaster.BroadcastLocation(sample.OrderID, update)
	return sample, nil
}

func (s *locationService) List(ctx context.Context, userID, orderID uuid.UUID, page, limit int, kind domain.SampleKind) (*domain.SamplesPage, error) {
	if _, err := s.authorize(ctx, userID, orderID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	cacheable := page == 1 && limit == defaultPageLimit && kind == ""
	if cacheable {
		if cached, err := s.cache.GetFirstPage(ctx, orderID); err == nil && cached != nil {
			return cached, nil
		}
	}

	samples, total, err := s.locations.ListByOrder(ctx, orderID, page, limit, kind)
	if err != nil {
		return nil, err
	}
	result := &domain.SamplesPage{
		Samples: samples,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   int((total + int64(limit) - 1) / int64(limit)),
	}
	if cacheable {
		if err := s.cache.SetFirstPage(ctx, orderID, result); err != nil {
			s.logger.Warn("location cache set failed", slog.Any("error", err))
		}
	}
	return result, nil
}

func (s *locationService) Current(ctx context.Context, userID, orderID uuid.UUID) (*domain.LocationSample, error) {
	if _, err := s.authorize(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return s.locations.Current(ctx, orderID)
}

func (s *locationService) History(ctx context.Context, userID, orderID uuid.UUID, hours int) ([]*domain.LocationSample, error) {
	if _, err := s.authorize(ctx, userID, orderID); err != nil {
		return nil, err
	}
	if hours < 1 {
		hours = s.trackingCfg.HistoryDefaultHours
	}
	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	return s.locations.History(ctx, orderID, since)
}

func (s *locationService) Live(ctx context.Context, userID, orderID uuid.UUID) (*domain.LiveSnapshot, error) {
	if _, err := s.authorize(ctx, userID, orderID); err != nil {
		return nil, err
	}

	snapshot := &domain.LiveSnapshot{OrderID: orderID}

	current, err := s.locations.Current(ctx, orderID)
	if err != nil && !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}
	if current != nil {
		snapshot.CurrentLocation = current
		snapshot.LastUpdate = &current.Timestamp
	}

	session, err := s.tracking.Get(ctx, orderID)
	if err != nil {
		s.logger.Warn("tracking state read failed", slog.Any("error", err))
	}
	if session != nil {
		snapshot.IsTrackingActive = true
		status := s.statusOf(session)
		snapshot.Tracking = &status
	}

	zones, err := s.geofences.ListForOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	snapshot.Geofences = zones

	alerts, err := s.alerts.ListUnread(ctx, orderID, unreadAlertLimit)
	if err != nil {
		s.logger.Warn("unread alerts read failed", slog.Any("error", err))
		alerts = nil
	}
	snapshot.ActiveAlerts = alerts

	return snapshot, nil
}

// StartTracking marks the order as actively tracked. Restarting an already
// tracked order just refreshes the state entry. When geofencing is enabled
// and the order has no zones yet, a default safe zone is seeded around the
// order's origin.
func (s *locationService) StartTracking(ctx context.Context, userID, orderID uuid.UUID, req *domain.TrackingStartRequest) (*domain.TrackingStatus, error) {
	order, err := s.authorize(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	session := domain.TrackingSession{
		OrderID:   orderID,
		UserID:    userID,
		StartedAt: time.Now().UTC(),
		IsActive:  true,
	}
	if existing, err := s.tracking.Get(ctx, orderID); err == nil && existing != nil {
		session.StartedAt = existing.StartedAt
	}
	if err := s.tracking.SetActive(ctx, session); err != nil {
		return nil, err
	}

	if req != nil && req.EnableGeofencing {
		s.seedDefaultGeofence(ctx, userID, order)
	}

	status := s.statusOf(&session)
	s.broadcaster.BroadcastTrackingStatus(orderID, status)
	s.logger.Info("tracking started",
		slog.String("order_id", orderID.String()),
		slog.String("user_id", userID.String()),
	)
	return &status, nil
}

func (s *locationService) StopTracking(ctx context.Context, userID, orderID uuid.UUID, req *domain.TrackingStopRequest) (*domain.TrackingStatus, error) {
	if _, err := s.authorize(ctx, userID, orderID); err != nil {
		return nil, err
	}
	session, err := s.tracking.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, e.ErrTrackingInactive
	}

	saveRoute := req == nil || req.SaveRoute
	return s.stop(ctx, session, "stopped", saveRoute)
}

// ForceStopTracking is the supervisor's path for orders that exceeded the
// maximum tracking duration. The route is always saved.
func (s *locationService) ForceStopTracking(ctx context.Context, orderID uuid.UUID, reason string) (*domain.TrackingStatus, error) {
	session, err := s.tracking.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, e.ErrTrackingInactive
	}
	return s.stop(ctx, session, reason, true)
}

func (s *locationService) TrackingStatus(ctx context.Context, orderID uuid.UUID) (*domain.TrackingStatus, error) {
	session, err := s.tracking.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &domain.TrackingStatus{OrderID: orderID, IsActive: false}, nil
	}
	status := s.statusOf(session)
	return &status, nil
}

// ProcessEmergency stores an emergency sample and a critical alert. It
// never runs geofence evaluation and works even when tracking is inactive.
func (s *locationService) ProcessEmergency(ctx context.Context, userID uuid.UUID, req *domain.EmergencyRequest) (*domain.LocationAlert, error) {
	if _, err := s.authorize(ctx, userID, req.OrderID); err != nil {
		return nil, err
	}

	sample := &domain.LocationSample{
		ID:        uuid.New(),
		OrderID:   req.OrderID,
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Kind:      domain.SampleEmergency,
		Timestamp: time.Now().UTC(),
		IsValid:   true,
	}
	if err := s.locations.Create(ctx, sample); err != nil {
		return nil, err
	}

	alert := domain.NewEmergencyAlert(req.OrderID, userID, req.Latitude, req.Longitude)
	if err := s.alerts.Create(ctx, alert); err != nil {
		s.logger.Error("emergency alert persist failed", slog.Any("error", err), slog.String("order_id", req.OrderID.String()))
	}

	s.broadcaster.BroadcastEmergency(req.OrderID, alert)
	s.logger.Warn("emergency location reported",
		slog.String("order_id", req.OrderID.String()),
		slog.String("user_id", userID.String()),
	)
	return alert, nil
}

func (s *locationService) stop(ctx context.Context, session *domain.TrackingSession, reason string, saveRoute bool) (*domain.TrackingStatus, error) {
	if saveRoute {
		if err := s.saveRoute(ctx, session); err != nil {
			s.logger.Error("route save failed", slog.Any("error", err), slog.String("order_id", session.OrderID.String()))
		}
	}
	if err := s.tracking.Stop(ctx, session.OrderID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := domain.TrackingStatus{
		OrderID:         session.OrderID,
		IsActive:        false,
		StartedAt:       &session.StartedAt,
		DurationSeconds: now.Sub(session.StartedAt).Seconds(),
		StoppedAt:       &now,
		Reason:          reason,
	}
	s.broadcaster.BroadcastTrackingStatus(session.OrderID, status)
	s.logger.Info("tracking stopped",
		slog.String("order_id", session.OrderID.String()),
		slog.String("reason", reason),
		slog.Float64("duration_s", status.DurationSeconds),
	)
	return &status, nil
}

// saveRoute reduces the walk's sample history into a persisted route
// summary. Consecutive waypoints closer than the simplification tolerance
// collapse into one.
func (s *locationService) saveRoute(ctx context.Context, session *domain.TrackingSession) error {
	lookback := time.Duration(s.trackingCfg.RouteLookbackHours) * time.Hour
	since := time.Now().UTC().Add(-lookback)
	if session.StartedAt.After(since) {
		since = session.StartedAt
	}

	samples, err := s.locations.History(ctx, session.OrderID, since)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		s.logger.Info("route not saved, too few samples",
			slog.String("order_id", session.OrderID.String()),
			slog.Int("samples", len(samples)),
		)
		return nil
	}

	var (
		totalDistance float64
		maxSpeed      *float64
		waypoints     = make([]domain.Waypoint, 0, len(samples))
	)
	prev := samples[0]
	waypoints = append(waypoints, toWaypoint(prev))
	for _, sample := range samples[1:] {
		step := geo.Distance(prev.Latitude, prev.Longitude, sample.Latitude, sample.Longitude)
		totalDistance += step
		if kmh := sample.SpeedKmh(); kmh != nil && (maxSpeed == nil || *kmh > *maxSpeed) {
			maxSpeed = kmh
		}
		if step >= s.trackingCfg.RouteSimplifyToleranceMeters {
			waypoints = append(waypoints, toWaypoint(sample))
			prev = sample
		}
	}
	last := samples[len(samples)-1]
	if tail := waypoints[len(waypoints)-1]; !tail.Timestamp.Equal(last.Timestamp) {
		waypoints = append(waypoints, toWaypoint(last))
	}
	waypoints = capWaypoints(waypoints, s.trackingCfg.RouteMaxPoints)

	startedAt := samples[0].Timestamp
	completedAt := last.Timestamp
	duration := completedAt.Sub(startedAt)

	route := &domain.Route{
		ID:                   uuid.New(),
		OrderID:              session.OrderID,
		UserID:               session.UserID,
		TotalDistanceMeters:  totalDistance,
		TotalDurationSeconds: int(duration.Seconds()),
		MaxSpeedKmh:          maxSpeed,
		PointCount:           len(waypoints),
		Waypoints:            waypoints,
		StartedAt:            startedAt,
		CompletedAt:          completedAt,
		IsCompleted:          true,
	}
	if duration > 0 {
		route.AverageSpeedKmh = (totalDistance / 1000) / duration.Hours()
	}

	if err := s.routes.Save(ctx, route); err != nil {
		return err
	}
	s.logger.Info("route saved",
		slog.String("order_id", session.OrderID.String()),
		slog.Float64("distance_m", totalDistance),
		slog.Int("waypoints", len(waypoints)),
	)
	return nil
}

// seedDefaultGeofence creates one safe zone around the order origin when
// the order has none. Failures only log; tracking still starts.
func (s *locationService) seedDefaultGeofence(ctx context.Context, userID uuid.UUID, order *domain.Order) {
	zones, err := s.geofences.ListForOrder(ctx, userID, order.ID)
	if err != nil {
		s.logger.Warn("geofence list failed during start", slog.Any("error", err))
		return
	}
	if len(zones) > 0 {
		return
	}

	alertDistance := s.geofenceCfg.DefaultAlertDistanceMeters
	_, err = s.geofences.Create(ctx, userID, &domain.GeofenceCreateRequest{
		OrderID:             order.ID,
		CenterLatitude:      order.Latitude,
		CenterLongitude:     order.Longitude,
		RadiusMeters:        s.geofenceCfg.DefaultRadiusMeters,
		Kind:                domain.GeofenceSafeZone,
		Name:                "Walk area",
		AlertOnExit:         true,
		AlertDistanceMeters: &alertDistance,
	})
	if err != nil {
		s.logger.Warn("default geofence create failed", slog.Any("error", err), slog.String("order_id", order.ID.String()))
		return
	}
	s.logger.Info("default geofence seeded", slog.String("order_id", order.ID.String()))
}

func (s *locationService) statusOf(session *domain.TrackingSession) domain.TrackingStatus {
	return domain.TrackingStatus{
		OrderID:         session.OrderID,
		IsActive:        true,
		StartedAt:       &session.StartedAt,
		DurationSeconds: time.Now().UTC().Sub(session.StartedAt).Seconds(),
	}
}

func (s *locationService) authorize(ctx context.Context, userID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsParty(userID) {
		return nil, e.ErrForbidden
	}
	return order, nil
}

func toWaypoint(s *domain.LocationSample) domain.Waypoint {
	return domain.Waypoint{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Timestamp: s.Timestamp,
		Accuracy:  s.Accuracy,
		Speed:     s.Speed,
	}
}

// capWaypoints downsamples evenly when the simplified route still exceeds
// the configured point cap. First and last points are always kept.
func capWaypoints(points []domain.Waypoint, max int) []domain.Waypoint {
	if max < 2 || len(points) <= max {
		return points
	}
	out := make([]domain.Waypoint, 0, max)
	step := float64(len(points)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		out = append(out, points[int(float64(i)*step)])
	}
	out[len(out)-1] = points[len(points)-1]
	return out
}
