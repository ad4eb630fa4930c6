package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertGeofenceEnter     AlertType = "geofence_enter"
	AlertGeofenceExit      AlertType = "geofence_exit"
	AlertGeofenceViolation AlertType = "geofence_violation"
	AlertEmergency         AlertType = "emergency"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// LocationAlert is immutable once created; is_read is the only mutable field.
type LocationAlert struct {
	ID         uuid.UUID     `json:"id"`
	OrderID    uuid.UUID     `json:"order_id"`
	UserID     uuid.UUID     `json:"user_id"`
	Type       AlertType     `json:"alert_type"`
	Latitude   float64       `json:"latitude"`
	Longitude  float64       `json:"longitude"`
	GeofenceID *uuid.UUID    `json:"geofence_id,omitempty"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Severity   AlertSeverity `json:"severity"`
	IsRead     bool          `json:"is_read"`
	Timestamp  time.Time     `json:"timestamp"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (a *LocationAlert) IsGeofenceAlert() bool {
	switch a.Type {
	case AlertGeofenceEnter, AlertGeofenceExit, AlertGeofenceViolation:
		return true
	}
	return false
}

// NewGeofenceAlert builds an alert for a zone transition. Violations are
// high severity, enter/exit are medium.
func NewGeofenceAlert(zone *Geofence, alertType AlertType, lat, lng float64, message string) *LocationAlert {
	severity := SeverityMedium
	if alertType == AlertGeofenceViolation {
		severity = SeverityHigh
	}
	geofenceID := zone.ID
	return &LocationAlert{
		ID:         uuid.New(),
		OrderID:    zone.OrderID,
		UserID:     zone.OwnerUserID,
		Type:       alertType,
		Latitude:   lat,
		Longitude:  lng,
		GeofenceID: &geofenceID,
		Title:      "Geofence alert",
		Message:    message,
		Severity:   severity,
		Timestamp:  time.Now().UTC(),
	}
}

func NewEmergencyAlert(orderID, userID uuid.UUID, lat, lng float64) *LocationAlert {
	return &LocationAlert{
		ID:        uuid.New(),
		OrderID:   orderID,
		UserID:    userID,
		Type:      AlertEmergency,
		Latitude:  lat,
		Longitude: lng,
		Title:     "Emergency location report",
		Message:   "Emergency location reported by a walk participant",
		Severity:  SeverityCritical,
		Timestamp: time.Now().UTC(),
	}
}
