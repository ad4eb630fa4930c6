package domain

import (
	"time"

	"github.com/google/uuid"
)

type SampleKind string

const (
	SampleCurrent   SampleKind = "current"
	SampleWalking   SampleKind = "walking"
	SampleEmergency SampleKind = "emergency"
)

// LocationSample is one GPS observation for an order. Samples are immutable
// once created; corrections are new samples.
type LocationSample struct {
	ID           uuid.UUID   `json:"id"`
	OrderID      uuid.UUID   `json:"order_id"`
	UserID       uuid.UUID   `json:"user_id"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	Accuracy     *float64    `json:"accuracy,omitempty"`
	Altitude     *float64    `json:"altitude,omitempty"`
	Speed        *float64    `json:"speed,omitempty"`
	Heading      *float64    `json:"heading,omitempty"`
	Kind         SampleKind  `json:"kind"`
	BatteryLevel *float64    `json:"battery_level,omitempty"`
	NetworkType  *string     `json:"network_type,omitempty"`
	DeviceInfo   []byte      `json:"device_info,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	IsValid      bool        `json:"is_valid"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SpeedKmh converts the raw m/s speed when present.
func (s *LocationSample) SpeedKmh() *float64 {
	if s.Speed == nil {
		return nil
	}
	kmh := *s.Speed * 3.6
	return &kmh
}

type CreateSampleRequest struct {
	OrderID      uuid.UUID  `json:"order_id" validate:"required"`
	Latitude     float64    `json:"latitude" validate:"lat"`
	Longitude    float64    `json:"longitude" validate:"lng"`
	Accuracy     *float64   `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Altitude     *float64   `json:"altitude,omitempty"`
	Speed        *float64   `json:"speed,omitempty" validate:"omitempty,min=0"`
	Heading      *float64   `json:"heading,omitempty" validate:"omitempty,min=0,max=360"`
	Kind         SampleKind `json:"kind,omitempty" validate:"omitempty,oneof=current walking emergency"`
	BatteryLevel *float64   `json:"battery_level,omitempty" validate:"omitempty,min=0,max=100"`
	NetworkType  *string    `json:"network_type,omitempty"`
	DeviceInfo   []byte     `json:"device_info,omitempty"`
}

type EmergencyRequest struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"lat"`
	Longitude float64   `json:"longitude" validate:"lng"`
}

type SamplesPage struct {
	Samples []*LocationSample `json:"samples"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Pages   int               `json:"pages"`
}

// LocationUpdate is the payload fanned out over the live channel after a
// sample is recorded.
type LocationUpdate struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Geofence  struct {
		IsInside        bool    `json:"is_inside"`
		NearestDistance float64 `json:"nearest_distance"`
	} `json:"geofence_status"`
}

// LiveSnapshot aggregates everything a watcher needs on first poll.
type LiveSnapshot struct {
	OrderID          uuid.UUID        `json:"order_id"`
	CurrentLocation  *LocationSample  `json:"current_location,omitempty"`
	IsTrackingActive bool             `json:"is_tracking_active"`
	Tracking         *TrackingStatus  `json:"tracking,omitempty"`
	Geofences        []*Geofence      `json:"geofences"`
	ActiveAlerts     []*LocationAlert `json:"active_alerts"`
	LastUpdate       *time.Time       `json:"last_update,omitempty"`
}
