package ws

import "time"

const (
	TypeConnectionEstablished = "connection_established"
	TypeLocationUpdate        = "location_update"
	TypeGeofenceAlert         = "geofence_alert"
	TypeTrackingStatus        = "tracking_status"
	TypeEmergencyAlert        = "emergency_alert"
	TypePresenceUpdate        = "presence_update"
	TypePing                  = "ping"
	TypePong                  = "pong"
	TypeStatusResponse        = "status_response"
	TypeError                 = "error"
)

// Message is the envelope of every frame pushed over a live channel.
type Message struct {
	Type      string    `json:"type"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(msgType string, data any) Message {
	return Message{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// InboundFrame is what clients may send on the live channel.
type InboundFrame struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}
