package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/internal/geo"
	"github.com/Zagato27/Lapa-sub000/pkg/e"
)

type geofenceService struct {
	geofences GeofenceRepository
	alerts    AlertRepository
	orders    OrderRepository
	cache     GeofenceCache

	logger *slog.Logger
}

func NewGeofenceService(d Deps) GeofenceService {
	return &geofenceService{
		geofences: d.Geofences,
		alerts:    d.Alerts,
		orders:    d.Orders,
		cache:     d.GeofenceCache,
		logger:    d.Logger,
	}
}

func (s *geofenceService) Create(ctx context.Context, userID uuid.UUID, req *domain.GeofenceCreateRequest) (*domain.Geofence, error) {
	if err := s.authorizeOrder(ctx, userID, req.OrderID); err != nil {
		return nil, err
	}
	if req.RadiusMeters <= 0 {
		return nil, e.ErrInvalidRadius
	}

	// An omitted alert distance stays unset: the zone gets no proximity
	// band. Only the auto-seeded default zone carries the configured one.
	zone := &domain.Geofence{
		ID:                  uuid.New(),
		OrderID:             req.OrderID,
		OwnerUserID:         userID,
		Name:                req.Name,
		Kind:                req.Kind,
		Description:         req.Description,
		CenterLatitude:      req.CenterLatitude,
		CenterLongitude:     req.CenterLongitude,
		RadiusMeters:        req.RadiusMeters,
		IsActive:            true,
		AlertOnEnter:        req.AlertOnEnter,
		AlertOnExit:         req.AlertOnExit,
		AlertDistanceMeters: req.AlertDistanceMeters,
		ActiveFromTime:      req.ActiveFromTime,
		ActiveUntilTime:     req.ActiveUntilTime,
	}

	if err := s.geofences.Create(ctx, zone); err != nil {
		s.logger.Error("geofence create failed", slog.Any("error", err), slog.String("order_id", req.OrderID.String()))
		return nil, err
	}
	s.invalidate(ctx, req.OrderID)

	s.logger.Info("geofence created",
		slog.String("geofence_id", zone.ID.String()),
		slog.String("order_id", zone.OrderID.String()),
		slog.Float64("radius_m", zone.RadiusMeters),
	)
	return zone, nil
}

func (s *geofenceService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Geofence, error) {
	zone, err := s.geofences.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOrder(ctx, userID, zone.OrderID); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *geofenceService) ListForOrder(ctx context.Context, userID, orderID uuid.UUID) ([]*domain.Geofence, error) {
	if err := s.authorizeOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return s.loadZones(ctx, orderID)
}

func (s *geofenceService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.GeofenceUpdateRequest) (*domain.Geofence, error) {
	zone, err := s.geofences.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if zone.OwnerUserID != userID {
		return nil, e.ErrForbidden
	}

	// Center moves atomically or not at all.
	if (req.CenterLatitude == nil) != (req.CenterLongitude == nil) {
		return nil, e.ErrInvalidCoordinates
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}
	if req.Kind != nil {
		zone.Kind = *req.Kind
	}
	if req.CenterLatitude != nil {
		zone.CenterLatitude = *req.CenterLatitude
		zone.CenterLongitude = *req.CenterLongitude
	}
	if req.RadiusMeters != nil {
		if *req.RadiusMeters <= 0 {
			return nil, e.ErrInvalidRadius
		}
		zone.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}
	if req.AlertOnEnter != nil {
		zone.AlertOnEnter = *req.AlertOnEnter
	}
	if req.AlertOnExit != nil {
		zone.AlertOnExit = *req.AlertOnExit
	}
	if req.AlertDistanceMeters != nil {
		zone.AlertDistanceMeters = req.AlertDistanceMeters
	}
	if req.ActiveFromTime != nil {
		zone.ActiveFromTime = *req.ActiveFromTime
	}
	if req.ActiveUntilTime != nil {
		zone.ActiveUntilTime = *req.ActiveUntilTime
	}

	if err := s.geofences.Update(ctx, zone); err != nil {
		return nil, err
	}
	s.invalidate(ctx, zone.OrderID)
	return zone, nil
}

func (s *geofenceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	zone, err := s.geofences.Get(ctx, id)
	if err != nil {
		return err
	}
	if zone.OwnerUserID != userID {
		return e.ErrForbidden
	}
	if err := s.geofences.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, zone.OrderID)
	return nil
}

func (s *geofenceService) Toggle(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Geofence, error) {
	zone, err := s.geofences.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if zone.OwnerUserID != userID {
		return nil, e.ErrForbidden
	}
	if err := s.geofences.Toggle(ctx, id, active); err != nil {
		return nil, err
	}
	zone.IsActive = active
	s.invalidate(ctx, zone.OrderID)
	return zone, nil
}

func (s *geofenceService) Stats(ctx context.Context, userID, id uuid.UUID) (*domain.GeofenceStats, error) {
	zone, err := s.geofences.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOrder(ctx, userID, zone.OrderID); err != nil {
		return nil, err
	}
	return &domain.GeofenceStats{
		GeofenceID:      zone.ID,
		Name:            zone.Name,
		EnterCount:      zone.EnterCount,
		ExitCount:       zone.ExitCount,
		ViolationCount:  zone.ViolationCount,
		IsViolated:      zone.IsViolated,
		LastViolationAt: zone.LastViolationAt,
		CreatedAt:       zone.CreatedAt,
	}, nil
}

// Evaluate runs a GPS sample through every active zone of its order. It
// updates each zone's armed and violated flags on containment edges,
// persists the state changes and writes the triggered alerts. An order
// with no active zones is treated as contained.
func (s *geofenceService) Evaluate(ctx context.Context, sample *domain.LocationSample) (*domain.EvaluationResult, error) {
	zones, err := s.loadActive(ctx, sample.OrderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := &domain.EvaluationResult{NearestDistance: -1}
	if len(zones) == 0 {
		result.IsInsideAny = true
		result.NearestDistance = 0
		return result, nil
	}

	for _, zone := range zones {
		if !zone.ActiveAt(now) {
			continue
		}

		dist := geo.Distance(zone.CenterLatitude, zone.CenterLongitude, sample.Latitude, sample.Longitude)
		if result.NearestDistance < 0 || dist < result.NearestDistance {
			result.NearestDistance = dist
			result.NearestGeofence = zone
		}

		inside := dist <= zone.RadiusMeters
		changed := false

		if inside {
			result.IsInsideAny = true
			if !zone.IsArmed {
				zone.IsArmed = true
				changed = true
				if zone.AlertOnEnter {
					zone.EnterCount++
					msg := fmt.Sprintf("Entered zone %q", zone.Name)
					s.fireAlert(ctx, result, domain.NewGeofenceAlert(zone, domain.AlertGeofenceEnter, sample.Latitude, sample.Longitude, msg))
				}
			}
			if zone.IsViolated {
				zone.IsViolated = false
				changed = true
			}
		} else {
			if zone.IsArmed {
				zone.IsArmed = false
				zone.IsViolated = true
				changed = true
				if zone.AlertOnExit {
					zone.ExitCount++
					msg := fmt.Sprintf("Left zone %q", zone.Name)
					s.fireAlert(ctx, result, domain.NewGeofenceAlert(zone, domain.AlertGeofenceExit, sample.Latitude, sample.Longitude, msg))
				}
			}
			if zone.AlertDistanceMeters != nil && dist-zone.RadiusMeters <= *zone.AlertDistanceMeters {
				zone.ViolationCount++
				zone.LastViolationAt = &now
				changed = true
				msg := fmt.Sprintf("Outside zone %q, %.0f m from its boundary", zone.Name, dist-zone.RadiusMeters)
				s.fireAlert(ctx, result, domain.NewGeofenceAlert(zone, domain.AlertGeofenceViolation, sample.Latitude, sample.Longitude, msg))
			}
		}

		if changed {
			if err := s.geofences.SaveState(ctx, zone); err != nil {
				s.logger.Error("geofence state save failed",
					slog.Any("error", err),
					slog.String("geofence_id", zone.ID.String()),
				)
			}
		}
	}

	if result.NearestDistance < 0 {
		// Every zone was outside its time window.
		result.IsInsideAny = true
		result.NearestDistance = 0
	}
	return result, nil
}

// fireAlert persists the alert best effort and records it on the result
// either way, so broadcasting does not depend on storage health.
func (s *geofenceService) fireAlert(ctx context.Context, result *domain.EvaluationResult, alert *domain.LocationAlert) {
	if err := s.alerts.Create(ctx, alert); err != nil {
		s.logger.Error("alert persist failed", slog.Any("error", err), slog.String("type", string(alert.Type)))
	}
	result.AlertsTriggered = append(result.AlertsTriggered, alert)
}

func (s *geofenceService) FindContaining(ctx context.Context, lat, lng float64) ([]*domain.Geofence, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}
	return s.geofences.FindContaining(ctx, lat, lng)
}

func (s *geofenceService) loadZones(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error) {
	if cached, err := s.cache.GetOrderGeofences(ctx, orderID); err == nil && cached != nil {
		return cached, nil
	}
	zones, err := s.geofences.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetOrderGeofences(ctx, orderID, zones); err != nil {
		s.logger.Warn("geofence cache set failed", slog.Any("error", err))
	}
	return zones, nil
}

// loadActive bypasses the cache. Evaluation mutates runtime state and
// has to see the freshest armed flags.
func (s *geofenceService) loadActive(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error) {
	return s.geofences.ListActiveByOrder(ctx, orderID)
}

func (s *geofenceService) invalidate(ctx context.Context, orderID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, orderID); err != nil {
		s.logger.Warn("geofence cache invalidate failed", slog.Any("error", err))
	}
}

func (s *geofenceService) authorizeOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.IsParty(userID) {
		return e.ErrForbidden
	}
	return nil
}
