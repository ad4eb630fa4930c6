package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrackingSession marks an order as actively tracked. It lives only in the
// ephemeral state store; absence of the key means tracking is inactive.
type TrackingSession struct {
	OrderID   uuid.UUID `json:"order_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
	IsActive  bool      `json:"is_active"`
}

type TrackingStartRequest struct {
	OrderID                  uuid.UUID `json:"order_id" validate:"required"`
	EnableGeofencing         bool      `json:"enable_geofencing"`
	EnableRouteOptimization  bool      `json:"enable_route_optimization"`
	EnableEmergencyDetection bool      `json:"enable_emergency_detection"`
}

type TrackingStopRequest struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	SaveRoute bool      `json:"save_route"`
}

// TrackingStatus is pushed through the broadcaster by the supervisor and
// returned by the status endpoint.
type TrackingStatus struct {
	OrderID         uuid.UUID  `json:"order_id"`
	IsActive        bool       `json:"is_active"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	DurationSeconds float64    `json:"duration_seconds,omitempty"`
	StoppedAt       *time.Time `json:"stopped_at,omitempty"`
	Reason          string     `json:"reason,omitempty"`
}
