package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Zagato27/Lapa-sub000/internal/domain"

	"github.com/google/uuid"
)

// Sink is the write side of one live channel. *websocket.Conn from
// gorilla/websocket satisfies it.
type Sink interface {
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Conn is one registered live channel for an (order, user, role) triple.
type Conn struct {
	OrderID     uuid.UUID
	UserID      uuid.UUID
	Role        domain.PartyRole
	ConnectedAt time.Time

	sink     Sink
	writeMu  sync.Mutex
	lastPing time.Time
}

// send serializes writes on the connection and bounds each by the write
// timeout so one stuck peer cannot stall the broadcast.
func (c *Conn) send(msg Message, timeout time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.sink.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	return c.sink.WriteJSON(msg)
}

type ConnectionInfo struct {
	UserID      uuid.UUID        `json:"user_id"`
	Role        domain.PartyRole `json:"role"`
	ConnectedAt time.Time        `json:"connected_at"`
	LastPing    time.Time        `json:"last_ping"`
}

// Hub owns every live connection, grouped per order. All registry state is
// encapsulated here; nothing module-level.
type Hub struct {
	logger       *slog.Logger
	pingInterval time.Duration
	writeTimeout time.Duration

	mu     sync.RWMutex
	orders map[uuid.UUID]map[*Conn]struct{}
}

func NewHub(logger *slog.Logger, pingInterval, writeTimeout time.Duration) *Hub {
	return &Hub{
		logger:       logger,
		pingInterval: pingInterval,
		writeTimeout: writeTimeout,
		orders:       make(map[uuid.UUID]map[*Conn]struct{}),
	}
}

// Connect registers a channel, greets it with the current online count and
// tells the order's other connections about the join.
func (h *Hub) Connect(sink Sink, orderID, userID uuid.UUID, role domain.PartyRole) *Conn {
	conn := &Conn{
		OrderID:     orderID,
		UserID:      userID,
		Role:        role,
		ConnectedAt: time.Now().UTC(),
		sink:        sink,
		lastPing:    time.Now().UTC(),
	}

	h.mu.Lock()
	set, ok := h.orders[orderID]
	if !ok {
		set = make(map[*Conn]struct{})
		h.orders[orderID] = set
	}
	set[conn] = struct{}{}
	online := len(set)
	h.mu.Unlock()

	h.logger.Info("websocket connected",
		slog.String("order_id", orderID.String()),
		slog.String("user_id", userID.String()),
		slog.String("role", string(role)),
	)

	established := NewMessage(TypeConnectionEstablished, map[string]any{
		"order_id": orderID,
		"user_id":  userID,
		"role":     role,
		"online":   online,
	})
	if err := conn.send(established, h.writeTimeout); err != nil {
		h.Disconnect(conn)
		return conn
	}

	h.Broadcast(orderID, NewMessage(TypePresenceUpdate, map[string]any{
		"event":   "joined",
		"user_id": userID,
		"role":    role,
		"online":  online,
	}), conn)

	return conn
}

// Disconnect removes the connection from the registry and notifies the rest
// of the order. Safe to call more than once.
func (h *Hub) Disconnect(conn *Conn) {
	h.mu.Lock()
	set, ok := h.orders[conn.OrderID]
	if ok {
		if _, registered := set[conn]; !registered {
			ok = false
		}
		delete(set, conn)
		if len(set) == 0 {
			delete(h.orders, conn.OrderID)
		}
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	_ = conn.sink.Close()

	h.logger.Info("websocket disconnected",
		slog.String("order_id", conn.OrderID.String()),
		slog.String("user_id", conn.UserID.String()),
	)

	h.Broadcast(conn.OrderID, NewMessage(TypePresenceUpdate, map[string]any{
		"event":   "left",
		"user_id": conn.UserID,
		"role":    conn.Role,
		"online":  h.Count(conn.OrderID),
	}), nil)
}

// Broadcast fans msg out to every live connection on the order except
// exclude. Connections that fail to take the write are disconnected.
func (h *Hub) Broadcast(orderID uuid.UUID, msg Message, exclude *Conn) {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.orders[orderID]))
	for conn := range h.orders[orderID] {
		if conn != exclude {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	var dead []*Conn
	for _, conn := range conns {
		if err := conn.send(msg, h.writeTimeout); err != nil {
			h.logger.Warn("broadcast send failed, dropping connection",
				slog.String("order_id", orderID.String()),
				slog.String("user_id", conn.UserID.String()),
				slog.Any("error", err),
			)
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		h.Disconnect(conn)
	}
}

// Send delivers msg to a single connection, dropping it on failure.
func (h *Hub) Send(conn *Conn, msg Message) {
	if err := conn.send(msg, h.writeTimeout); err != nil {
		h.logger.Warn("send failed, dropping connection",
			slog.String("order_id", conn.OrderID.String()),
			slog.String("user_id", conn.UserID.String()),
			slog.Any("error", err),
		)
		h.Disconnect(conn)
	}
}

// SendToRole is Broadcast filtered to one participant kind.
func (h *Hub) SendToRole(orderID uuid.UUID, role domain.PartyRole, msg Message) {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.orders[orderID]))
	for conn := range h.orders[orderID] {
		if conn.Role == role {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	var dead []*Conn
	for _, conn := range conns {
		if err := conn.send(msg, h.writeTimeout); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		h.Disconnect(conn)
	}
}

// PingAll sends a ping to every connection and prunes the dead ones.
func (h *Hub) PingAll() {
	now := time.Now().UTC()
	msg := NewMessage(TypePing, map[string]any{"timestamp": now})

	h.mu.RLock()
	var conns []*Conn
	for _, set := range h.orders {
		for conn := range set {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	var dead []*Conn
	for _, conn := range conns {
		if err := conn.send(msg, h.writeTimeout); err != nil {
			dead = append(dead, conn)
			continue
		}
		conn.writeMu.Lock()
		conn.lastPing = now
		conn.writeMu.Unlock()
	}
	for _, conn := range dead {
		h.Disconnect(conn)
	}
}

// Run drives the heartbeat until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	h.logger.Info("websocket heartbeat started", slog.Duration("interval", h.pingInterval))
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("websocket heartbeat stopped")
			return
		case <-ticker.C:
			h.PingAll()
			h.logger.Debug("websocket heartbeat", slog.Int("connections", h.TotalCount()))
		}
	}
}

func (h *Hub) Count(orderID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.orders[orderID])
}

func (h *Hub) TotalCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, set := range h.orders {
		total += len(set)
	}
	return total
}

func (h *Hub) Connections(orderID uuid.UUID) []ConnectionInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	infos := make([]ConnectionInfo, 0, len(h.orders[orderID]))
	for conn := range h.orders[orderID] {
		conn.writeMu.Lock()
		lastPing := conn.lastPing
		conn.writeMu.Unlock()
		infos = append(infos, ConnectionInfo{
			UserID:      conn.UserID,
			Role:        conn.Role,
			ConnectedAt: conn.ConnectedAt,
			LastPing:    lastPing,
		})
	}
	return infos
}

// CloseAll tears the registry down on shutdown. Connections do not survive
// process restart; reconnection is the client's responsibility.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	var conns []*Conn
	for _, set := range h.orders {
		for conn := range set {
			conns = append(conns, conn)
		}
	}
	h.orders = make(map[uuid.UUID]map[*Conn]struct{})
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.sink.Close()
	}
}

// BroadcastLocation and friends adapt the hub to the service layer's
// broadcaster seam.

func (h *Hub) BroadcastLocation(orderID uuid.UUID, update domain.LocationUpdate) {
	h.Broadcast(orderID, NewMessage(TypeLocationUpdate, update), nil)
}

func (h *Hub) BroadcastGeofenceAlert(orderID uuid.UUID, alert *domain.LocationAlert) {
	h.Broadcast(orderID, NewMessage(TypeGeofenceAlert, alert), nil)
}

func (h *Hub) BroadcastTrackingStatus(orderID uuid.UUID, status domain.TrackingStatus) {
	h.Broadcast(orderID, NewMessage(TypeTrackingStatus, status), nil)
}

func (h *Hub) BroadcastEmergency(orderID uuid.UUID, alert *domain.LocationAlert) {
	h.Broadcast(orderID, NewMessage(TypeEmergencyAlert, alert), nil)
}
