package tracking

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/internal/middleware"
	"github.com/Zagato27/Lapa-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Tracking interface {
	StartTracking(ctx context.Context, userID, orderID uuid.UUID, req *domain.TrackingStartRequest) (*domain.TrackingStatus, error)
	StopTracking(ctx context.Context, userID, orderID uuid.UUID, req *domain.TrackingStopRequest) (*domain.TrackingStatus, error)
	TrackingStatus(ctx context.Context, orderID uuid.UUID) (*domain.TrackingStatus, error)
}

type Handler struct {
	logger   *slog.Logger
	tracking Tracking
}

func NewHandler(logger *slog.Logger, tracking Tracking) *Handler {
	return &Handler{logger: logger, tracking: tracking}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	req := domain.TrackingStartRequest{OrderID: orderID, EnableGeofencing: true}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
			return
		}
		req.OrderID = orderID
		if err := validator.ValidateStruct(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	status, err := h.tracking.StartTracking(r.Context(), userID, orderID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("tracking start requested", slog.String("order_id", orderID.String()))
	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	req := domain.TrackingStopRequest{OrderID: orderID, SaveRoute: true}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
			return
		}
		req.OrderID = orderID
	}

	status, err := h.tracking.StopTracking(r.Context(), userID, orderID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("tracking stop requested", slog.String("order_id", orderID.String()))
	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	_, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	status, err := h.tracking.TrackingStatus(r.Context(), orderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (userID, orderID uuid.UUID, ok bool) {
	userID, authed := middleware.UserIDFromContext(r.Context())
	if !authed {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}

	idStr := chi.URLParam(r, "order_id")
	orderID, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid order id", slog.String("order_id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, orderID, true
}
