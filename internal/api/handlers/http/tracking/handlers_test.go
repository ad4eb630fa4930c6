package tracking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/tracking"
	mock_tracking "github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/tracking/mocks"
	"github.com/Zagato27/Lapa-sub000/internal/domain"
	"github.com/Zagato27/Lapa-sub000/internal/middleware"
	"github.com/Zagato27/Lapa-sub000/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func orderRequest(method, path string, body string, userID, orderID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("order_id", orderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestTrackingStart_NoBody_DefaultsGeofencingOn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTracking(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	userID := uuid.New()
	orderID := uuid.New()
	startedAt := time.Now().UTC()

	req := orderRequest(http.MethodPost, "/api/v1/tracking/orders/"+orderID.String()+"/start", "", userID, orderID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		StartTracking(gomock.Any(), userID, orderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, r *domain.TrackingStartRequest) (*domain.TrackingStatus, error) {
			if !r.EnableGeofencing {
				t.Fatalf("geofencing must default to enabled")
			}
			if r.OrderID != orderID {
				t.Fatalf("order id must come from the path")
			}
			return &domain.TrackingStatus{OrderID: orderID, IsActive: true, StartedAt: &startedAt}, nil
		}).
		Times(1)

	h.Start(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.TrackingStatus](t, rr)
	if !got.IsActive {
		t.Fatalf("expected active status")
	}
}

func TestTrackingStart_BodyOverridesDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTracking(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	userID := uuid.New()
	orderID := uuid.New()

	body := `{"enable_geofencing":false}`
	req := orderRequest(http.MethodPost, "/api/v1/tracking/orders/"+orderID.String()+"/start", body, userID, orderID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		StartTracking(gomock.Any(), userID, orderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, r *domain.TrackingStartRequest) (*domain.TrackingStatus, error) {
			if r.EnableGeofencing {
				t.Fatalf("body must be able to opt out of geofencing")
			}
			return &domain.TrackingStatus{OrderID: orderID, IsActive: true}, nil
		}).
		Times(1)

	h.Start(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestTrackingStart_InvalidOrderID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := tracking.NewHandler(newTestLogger(), mock_tracking.NewMockTracking(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tracking/orders/bad/start", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("order_id", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	rr := httptest.NewRecorder()

	h.Start(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestTrackingStart_NoAuth_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := tracking.NewHandler(newTestLogger(), mock_tracking.NewMockTracking(ctrl))

	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tracking/orders/"+orderID.String()+"/start", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("order_id", orderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	h.Start(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestTrackingStop_DefaultsSaveRoute(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTracking(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	userID := uuid.New()
	orderID := uuid.New()

	req := orderRequest(http.MethodPost, "/api/v1/tracking/orders/"+orderID.String()+"/stop", "", userID, orderID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		StopTracking(gomock.Any(), userID, orderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, r *domain.TrackingStopRequest) (*domain.TrackingStatus, error) {
			if !r.SaveRoute {
				t.Fatalf("route saving must default to on")
			}
			return &domain.TrackingStatus{OrderID: orderID, IsActive: false, Reason: "stopped"}, nil
		}).
		Times(1)

	h.Stop(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.TrackingStatus](t, rr)
	if got.IsActive {
		t.Fatalf("expected inactive status after stop")
	}
}

func TestTrackingStop_Inactive_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTracking(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	userID := uuid.New()
	orderID := uuid.New()

	req := orderRequest(http.MethodPost, "/api/v1/tracking/orders/"+orderID.String()+"/stop", "", userID, orderID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		StopTracking(gomock.Any(), userID, orderID, gomock.Any()).
		Return(nil, e.ErrTrackingInactive).
		Times(1)

	h.Stop(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestTrackingStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTracking(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	orderID := uuid.New()
	req := orderRequest(http.MethodGet, "/api/v1/tracking/orders/"+orderID.String()+"/status", "", uuid.New(), orderID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		TrackingStatus(gomock.Any(), orderID).
		Return(&domain.TrackingStatus{OrderID: orderID, IsActive: false}, nil).
		Times(1)

	h.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.TrackingStatus](t, rr)
	if got.OrderID != orderID || got.IsActive {
		t.Fatalf("unexpected status: %+v", got)
	}
}
