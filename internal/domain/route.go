package domain

import (
	"time"

	"github.com/google/uuid"
)

// Waypoint is one simplified point of a saved route.
type Waypoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
}

// Route is the reduced summary of a finished walk, persisted when tracking
// stops with save_route.
type Route struct {
	ID                   uuid.UUID  `json:"id"`
	OrderID              uuid.UUID  `json:"order_id"`
	UserID               uuid.UUID  `json:"user_id"`
	TotalDistanceMeters  float64    `json:"total_distance_meters"`
	TotalDurationSeconds int        `json:"total_duration_seconds"`
	AverageSpeedKmh      float64    `json:"average_speed_kmh"`
	MaxSpeedKmh          *float64   `json:"max_speed_kmh,omitempty"`
	PointCount           int        `json:"point_count"`
	Waypoints            []Waypoint `json:"waypoints"`
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          time.Time  `json:"completed_at"`
	IsCompleted          bool       `json:"is_completed"`
	CreatedAt            time.Time  `json:"created_at"`
}

func (r *Route) DistanceKm() float64 {
	return r.TotalDistanceMeters / 1000
}
