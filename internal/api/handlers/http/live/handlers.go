package live

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/internal/middleware"
	"github.com/Zagato27/Lapa-sub000/internal/ws"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Orders interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

type Locations interface {
	RecordSample(ctx context.Context, userID uuid.UUID, req *domain.CreateSampleRequest) (*domain.LocationSample, error)
	TrackingStatus(ctx context.Context, orderID uuid.UUID) (*domain.TrackingStatus, error)
}

type Handler struct {
	logger    *slog.Logger
	hub       *ws.Hub
	orders    Orders
	locations Locations
	upgrader  websocket.Upgrader
	readWait  time.Duration
}

func NewHandler(logger *slog.Logger, hub *ws.Hub, orders Orders, locations Locations, pingInterval time.Duration) *Handler {
	return &Handler{
		logger:    logger,
		hub:       hub,
		orders:    orders,
		locations: locations,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The bearer token is the access control; the channel is not
			// cookie-authenticated, so cross-origin pages gain nothing.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		readWait: 2 * pingInterval,
	}
}

// Serve upgrades the request and attaches the caller to the order's live
// channel until the peer goes away.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.Get(r.Context(), orderID)
	if err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	if !order.IsParty(userID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	role := domain.RoleWalker
	if order.ClientID == userID {
		role = domain.RoleClient
	}

	sock, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	conn := h.hub.Connect(sock, orderID, userID, role)
	h.logger.Info("live channel opened",
		slog.String("order_id", orderID.String()),
		slog.String("user_id", userID.String()),
		slog.String("role", string(role)),
	)

	defer func() {
		h.hub.Disconnect(conn)
		sock.Close()
	}()

	sock.SetReadLimit(64 << 10)
	for {
		_ = sock.SetReadDeadline(time.Now().Add(h.readWait))

		var frame ws.InboundFrame
		if err := sock.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("live channel read error", slog.Any("error", err))
			}
			return
		}
		h.handleFrame(r.Context(), conn, frame)
	}
}

func (h *Handler) handleFrame(ctx context.Context, conn *ws.Conn, frame ws.InboundFrame) {
	switch frame.Type {
	case ws.TypePing:
		h.hub.Send(conn, ws.NewMessage(ws.TypePong, nil))

	case ws.TypePong:
		// Reply to our keepalive, nothing to do.

	case ws.TypeLocationUpdate:
		h.ingestSample(ctx, conn, frame.Data)

	case "get_status":
		status, err := h.locations.TrackingStatus(ctx, conn.OrderID)
		if err != nil {
			h.hub.Send(conn, ws.NewMessage(ws.TypeError, map[string]string{"error": "status unavailable"}))
			return
		}
		h.hub.Send(conn, ws.NewMessage(ws.TypeStatusResponse, map[string]any{
			"tracking":    status,
			"connections": h.hub.Connections(conn.OrderID),
		}))

	default:
		h.hub.Send(conn, ws.NewMessage(ws.TypeError, map[string]string{
			"error": "unknown message type: " + frame.Type,
		}))
	}
}

// ingestSample lets the walker push GPS points over the already open
// channel instead of the REST endpoint.
func (h *Handler) ingestSample(ctx context.Context, conn *ws.Conn, data map[string]any) {
	lat, okLat := data["latitude"].(float64)
	lng, okLng := data["longitude"].(float64)
	if !okLat || !okLng {
		h.hub.Send(conn, ws.NewMessage(ws.TypeError, map[string]string{"error": "latitude and longitude required"}))
		return
	}

	req := &domain.CreateSampleRequest{
		OrderID:   conn.OrderID,
		Latitude:  lat,
		Longitude: lng,
	}
	if acc, ok := data["accuracy"].(float64); ok {
		req.Accuracy = &acc
	}
	if speed, ok := data["speed"].(float64); ok {
		req.Speed = &speed
	}

	if _, err := h.locations.RecordSample(ctx, conn.UserID, req); err != nil {
		h.logger.Warn("channel sample rejected",
			slog.Any("error", err),
			slog.String("order_id", conn.OrderID.String()),
		)
		h.hub.Send(conn, ws.NewMessage(ws.TypeError, map[string]string{"error": "location rejected"}))
	}
}
