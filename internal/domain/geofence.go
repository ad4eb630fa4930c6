package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type GeofenceKind string

const (
	GeofenceSafeZone   GeofenceKind = "safe_zone"
	GeofenceDangerZone GeofenceKind = "danger_zone"
)

// Geofence is a circular zone tied to one order. Counters and the
// armed/violated flags are mutated only by the evaluator.
type Geofence struct {
	ID              uuid.UUID    `json:"id"`
	OrderID         uuid.UUID    `json:"order_id"`
	OwnerUserID     uuid.UUID    `json:"owner_user_id"`
	CenterLatitude  float64      `json:"center_latitude"`
	CenterLongitude float64      `json:"center_longitude"`
	RadiusMeters    float64      `json:"radius_meters"`
	Kind            GeofenceKind `json:"kind"`
	Name            string       `json:"name,omitempty"`
	Description     string       `json:"description,omitempty"`

	AlertOnEnter        bool     `json:"alert_on_enter"`
	AlertOnExit         bool     `json:"alert_on_exit"`
	AlertDistanceMeters *float64 `json:"alert_distance_meters,omitempty"`

	// Optional time-of-day window in "HH:MM"; both empty means always active.
	ActiveFromTime  string `json:"active_from_time,omitempty"`
	ActiveUntilTime string `json:"active_until_time,omitempty"`

	IsActive bool `json:"is_active"`
	// IsArmed means the last evaluated sample was inside the zone, so a later
	// exit can be detected.
	IsArmed    bool `json:"is_armed"`
	IsViolated bool `json:"is_violated"`

	EnterCount      int        `json:"enter_count"`
	ExitCount       int        `json:"exit_count"`
	ViolationCount  int        `json:"violation_count"`
	LastViolationAt *time.Time `json:"last_violation_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveAt reports whether the zone's time-of-day window covers t. Windows
// spanning midnight (from > until) wrap around.
func (g *Geofence) ActiveAt(t time.Time) bool {
	if g.ActiveFromTime == "" || g.ActiveUntilTime == "" {
		return true
	}
	from, err := time.Parse("15:04", g.ActiveFromTime)
	if err != nil {
		return true
	}
	until, err := time.Parse("15:04", g.ActiveUntilTime)
	if err != nil {
		return true
	}
	now := t.Hour()*60 + t.Minute()
	fromMin := from.Hour()*60 + from.Minute()
	untilMin := until.Hour()*60 + until.Minute()
	if fromMin <= untilMin {
		return now >= fromMin && now <= untilMin
	}
	return now >= fromMin || now <= untilMin
}

func (g *Geofence) AreaSquareMeters() float64 {
	return math.Pi * g.RadiusMeters * g.RadiusMeters
}

type GeofenceCreateRequest struct {
	OrderID             uuid.UUID    `json:"order_id" validate:"required"`
	CenterLatitude      float64      `json:"center_latitude" validate:"lat"`
	CenterLongitude     float64      `json:"center_longitude" validate:"lng"`
	RadiusMeters        float64      `json:"radius_meters" validate:"radius_m"`
	Kind                GeofenceKind `json:"kind" validate:"required"`
	Name                string       `json:"name,omitempty"`
	Description         string       `json:"description,omitempty"`
	AlertOnEnter        bool         `json:"alert_on_enter"`
	AlertOnExit         bool         `json:"alert_on_exit"`
	AlertDistanceMeters *float64     `json:"alert_distance_meters,omitempty" validate:"omitempty,min=0"`
	ActiveFromTime      string       `json:"active_from_time,omitempty"`
	ActiveUntilTime     string       `json:"active_until_time,omitempty"`
}

// GeofenceUpdateRequest patches a zone. Center coordinates must be supplied
// both-or-neither.
type GeofenceUpdateRequest struct {
	CenterLatitude      *float64      `json:"center_latitude,omitempty" validate:"omitempty,lat"`
	CenterLongitude     *float64      `json:"center_longitude,omitempty" validate:"omitempty,lng"`
	RadiusMeters        *float64      `json:"radius_meters,omitempty" validate:"omitempty,radius_m"`
	Kind                *GeofenceKind `json:"kind,omitempty"`
	Name                *string       `json:"name,omitempty"`
	Description         *string       `json:"description,omitempty"`
	AlertOnEnter        *bool         `json:"alert_on_enter,omitempty"`
	AlertOnExit         *bool         `json:"alert_on_exit,omitempty"`
	IsActive            *bool         `json:"is_active,omitempty"`
	AlertDistanceMeters *float64      `json:"alert_distance_meters,omitempty" validate:"omitempty,min=0"`
	ActiveFromTime      *string       `json:"active_from_time,omitempty"`
	ActiveUntilTime     *string       `json:"active_until_time,omitempty"`
}

type GeofenceStats struct {
	GeofenceID      uuid.UUID  `json:"geofence_id"`
	Name            string     `json:"name,omitempty"`
	EnterCount      int        `json:"enter_count"`
	ExitCount       int        `json:"exit_count"`
	ViolationCount  int        `json:"violation_count"`
	IsViolated      bool       `json:"is_violated"`
	LastViolationAt *time.Time `json:"last_violation_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// EvaluationResult is the outcome of checking one sample against every
// active zone of an order.
type EvaluationResult struct {
	IsInsideAny     bool             `json:"is_inside_any"`
	NearestDistance float64          `json:"nearest_distance"`
	NearestGeofence *Geofence        `json:"nearest_geofence,omitempty"`
	AlertsTriggered []*LocationAlert `json:"alerts_triggered"`
}
