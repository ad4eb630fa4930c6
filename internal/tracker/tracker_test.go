package tracker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
)

type stubStore struct {
	orderIDs []uuid.UUID
	scanErr  error
	sessions map[uuid.UUID]*domain.TrackingSession
	getErr   map[uuid.UUID]error
}

func (s *stubStore) ActiveOrderIDs(_ context.Context) ([]uuid.UUID, error) {
	return s.orderIDs, s.scanErr
}

func (s *stubStore) Get(_ context.Context, orderID uuid.UUID) (*domain.TrackingSession, error) {
	if err := s.getErr[orderID]; err != nil {
		return nil, err
	}
	return s.sessions[orderID], nil
}

type stubStopper struct {
	stopped []uuid.UUID
	reasons []string
	err     error
}

func (s *stubStopper) ForceStopTracking(_ context.Context, orderID uuid.UUID, reason string) (*domain.TrackingStatus, error) {
	s.stopped = append(s.stopped, orderID)
	s.reasons = append(s.reasons, reason)
	return &domain.TrackingStatus{OrderID: orderID, IsActive: false, Reason: reason}, s.err
}

type stubBroadcaster struct {
	statuses []domain.TrackingStatus
}

func (b *stubBroadcaster) BroadcastTrackingStatus(_ uuid.UUID, status domain.TrackingStatus) {
	b.statuses = append(b.statuses, status)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func session(orderID uuid.UUID, age time.Duration) *domain.TrackingSession {
	return &domain.TrackingSession{
		OrderID:   orderID,
		UserID:    uuid.New(),
		StartedAt: time.Now().UTC().Add(-age),
		IsActive:  true,
	}
}

func TestSweep_StopsExpiredOrders(t *testing.T) {
	t.Parallel()

	expired := uuid.New()
	store := &stubStore{
		orderIDs: []uuid.UUID{expired},
		sessions: map[uuid.UUID]*domain.TrackingSession{
			expired: session(expired, 13*time.Hour),
		},
	}
	stopper := &stubStopper{}
	broadcaster := &stubBroadcaster{}

	s := NewSupervisor(store, stopper, broadcaster, time.Second, 12*time.Hour, quietLogger())
	s.Sweep(context.Background())

	if len(stopper.stopped) != 1 || stopper.stopped[0] != expired {
		t.Fatalf("expected exactly the expired order to be stopped, got %v", stopper.stopped)
	}
	if stopper.reasons[0] != "timeout" {
		t.Fatalf("expected timeout reason, got %q", stopper.reasons[0])
	}
	if len(broadcaster.statuses) != 0 {
		t.Fatalf("expired orders get no heartbeat, got %d", len(broadcaster.statuses))
	}
}

func TestSweep_HeartbeatsActiveOrders(t *testing.T) {
	t.Parallel()

	active := uuid.New()
	store := &stubStore{
		orderIDs: []uuid.UUID{active},
		sessions: map[uuid.UUID]*domain.TrackingSession{
			active: session(active, 30*time.Minute),
		},
	}
	stopper := &stubStopper{}
	broadcaster := &stubBroadcaster{}

	s := NewSupervisor(store, stopper, broadcaster, time.Second, 12*time.Hour, quietLogger())
	s.Sweep(context.Background())

	if len(stopper.stopped) != 0 {
		t.Fatalf("active orders must not be stopped, got %v", stopper.stopped)
	}
	if len(broadcaster.statuses) != 1 {
		t.Fatalf("expected one heartbeat, got %d", len(broadcaster.statuses))
	}
	hb := broadcaster.statuses[0]
	if hb.OrderID != active || !hb.IsActive {
		t.Fatalf("heartbeat must name the active order: %+v", hb)
	}
	if hb.DurationSeconds < (29 * time.Minute).Seconds() {
		t.Fatalf("heartbeat duration looks wrong: %f", hb.DurationSeconds)
	}
}

func TestSweep_OrderFailureDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	broken := uuid.New()
	healthy := uuid.New()
	store := &stubStore{
		orderIDs: []uuid.UUID{broken, healthy},
		sessions: map[uuid.UUID]*domain.TrackingSession{
			healthy: session(healthy, time.Hour),
		},
		getErr: map[uuid.UUID]error{broken: errors.New("redis timeout")},
	}
	stopper := &stubStopper{}
	broadcaster := &stubBroadcaster{}

	s := NewSupervisor(store, stopper, broadcaster, time.Second, 12*time.Hour, quietLogger())
	s.Sweep(context.Background())

	if len(broadcaster.statuses) != 1 || broadcaster.statuses[0].OrderID != healthy {
		t.Fatalf("healthy order must still be swept, got %+v", broadcaster.statuses)
	}
}

func TestSweep_SkipsSessionsExpiredMidSweep(t *testing.T) {
	t.Parallel()

	gone := uuid.New()
	store := &stubStore{
		orderIDs: []uuid.UUID{gone},
		sessions: map[uuid.UUID]*domain.TrackingSession{},
	}
	stopper := &stubStopper{}
	broadcaster := &stubBroadcaster{}

	s := NewSupervisor(store, stopper, broadcaster, time.Second, 12*time.Hour, quietLogger())
	s.Sweep(context.Background())

	if len(stopper.stopped) != 0 || len(broadcaster.statuses) != 0 {
		t.Fatalf("a vanished session is a no-op, got stops=%v heartbeats=%d", stopper.stopped, len(broadcaster.statuses))
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	s := NewSupervisor(store, &stubStopper{}, &stubBroadcaster{}, 10*time.Millisecond, 12*time.Hour, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
}
