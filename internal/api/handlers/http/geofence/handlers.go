package geofence

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
type Geofences interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.GeofenceCreateRequest) (*domain.Geofence, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Geofence, error)
	ListForOrder(ctx context.Context, userID, orderID uuid.UUID) ([]*domain.Geofence, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *domain.GeofenceUpdateRequest) (*domain.Geofence, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Toggle(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Geofence, error)
	Stats(ctx context.Context, userID, id uuid.UUID) (*domain.GeofenceStats, error)
	FindContaining(ctx context.Context, lat, lng float64) ([]*domain.Geofence, error)
}

type Handler struct {
	logger    *slog.Logger
	geofences Geofences
}

func NewHandler(logger *slog.Logger, geofences Geofences) *Handler {
	return &Handler{logger: logger, geofences: geofences}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := h.user(w, r)
	if !ok {
		return
	}

	var req domain.GeofenceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.geofences.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("geofence created", slog.String("geofence_id", zone.ID.String()))
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.userAndID(w, r)
	if !ok {
		return
	}

	zone, err := h.geofences.Get(r.Context(), userID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) ListForOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}

	idStr := chi.URLParam(r, "order_id")
	orderID, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}

	zones, err := h.geofences.ListForOrder(r.Context(), userID, orderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"order_id":  orderID,
		"geofences": zones,
		"count":     len(zones),
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.userAndID(w, r)
	if !ok {
		return
	}

	var req domain.GeofenceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.geofences.Update(r.Context(), userID, id, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.userAndID(w, r)
	if !ok {
		return
	}

	if err := h.geofences.Delete(r.Context(), userID, id); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.userAndID(w, r)
	if !ok {
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	zone, err := h.geofences.Toggle(r.Context(), userID, id, req.IsActive)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.userAndID(w, r)
	if !ok {
		return
	}

	stats, err := h.geofences.Stats(r.Context(), userID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// Containing answers which active zones cover a point. Used by the mobile
// apps to hint whether the walker is currently in a monitored area.
func (h *Handler) Containing(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.user(w, r); !ok {
		return
	}

	lat, okLat := parseFloat(r.URL.Query().Get("lat"))
	lng, okLng := parseFloat(r.URL.Query().Get("lng"))
	if !okLat || !okLng {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng query parameters required"})
		return
	}

	zones, err := h.geofences.FindContaining(r.Context(), lat, lng)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"geofences": zones,
		"count":     len(zones),
	})
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) userAndID(w http.ResponseWriter, r *http.Request) (userID, id uuid.UUID, ok bool) {
	userID, ok = h.user(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid geofence id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
