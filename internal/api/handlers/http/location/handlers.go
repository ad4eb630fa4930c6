package location

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
type Locations interface {
	RecordSample(ctx context.Context, userID uuid.UUID, req *domain.CreateSampleRequest) (*domain.LocationSample, error)
	List(ctx context.Context, userID, orderID uuid.UUID, page, limit int, kind domain.SampleKind) (*domain.SamplesPage, error)
	Current(ctx context.Context, userID, orderID uuid.UUID) (*domain.LocationSample, error)
	History(ctx context.Context, userID, orderID uuid.UUID, hours int) ([]*domain.LocationSample, error)
	Live(ctx context.Context, userID, orderID uuid.UUID) (*domain.LiveSnapshot, error)
	ProcessEmergency(ctx context.Context, userID uuid.UUID, req *domain.EmergencyRequest) (*domain.LocationAlert, error)
}

type Handler struct {
	logger    *slog.Logger
	locations Locations
}

func NewHandler(logger *slog.Logger, locations Locations) *Handler {
	return &Handler{logger: logger, locations: locations}
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

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.CreateSampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sample, err := h.locations.RecordSample(r.Context(), userID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sample recorded",
		slog.String("order_id", sample.OrderID.String()),
		slog.String("sample_id", sample.ID.String()),
	)
	h.writeJSON(w, http.StatusCreated, sample)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	kind := domain.SampleKind(r.URL.Query().Get("location_type"))

	result, err := h.locations.List(r.Context(), userID, orderID, page, limit, kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	sample, err := h.locations.Current(r.Context(), userID, orderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sample)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	hours := parseInt(r.URL.Query().Get("hours"), 0)
	samples, err := h.locations.History(r.Context(), userID, orderID, hours)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"order_id":  orderID,
		"locations": samples,
		"count":     len(samples),
	})
}

func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := h.caller(w, r)
	if !ok {
		return
	}

	snapshot, err := h.locations.Live(r.Context(), userID, orderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) Emergency(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.EmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	alert, err := h.locations.ProcessEmergency(r.Context(), userID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Warn("emergency processed", slog.String("order_id", req.OrderID.String()))
	h.writeJSON(w, http.StatusCreated, alert)
}

// caller extracts the authenticated user and the order_id path parameter.
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
