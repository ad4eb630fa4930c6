package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Zagato27/Lapa-sub000/internal/domain"
)

// TrackingStore is the supervisor's view of the active-sessions store.
type TrackingStore interface {
	Get(ctx context.Context, orderID uuid.UUID) (*domain.TrackingSession, error)
	ActiveOrderIDs(ctx context.Context) ([]uuid.UUID, error)
}

// LocationService is the slice of the location use cases the supervisor
// needs to shut down overrunning walks.
type LocationService interface {
	ForceStopTracking(ctx context.Context, orderID uuid.UUID, reason string) (*domain.TrackingStatus, error)
}

// Broadcaster pushes heartbeat statuses to watchers.
type Broadcaster interface {
	BroadcastTrackingStatus(orderID uuid.UUID, status domain.TrackingStatus)
}

// Supervisor sweeps every actively tracked order on a fixed tick. Orders
// past the maximum tracking duration are force-stopped; the rest get a
// heartbeat status broadcast. A failure on one order never blocks the
// sweep of the others.
type Supervisor struct {
	store       TrackingStore
	locations   LocationService
	broadcaster Broadcaster

	tick        time.Duration
	maxDuration time.Duration
	logger      *slog.Logger
}

func NewSupervisor(
	store TrackingStore,
	locations LocationService,
	broadcaster Broadcaster,
	tick, maxDuration time.Duration,
	logger *slog.Logger,
) *Supervisor {
	return &Supervisor{
		store:       store,
		locations:   locations,
		broadcaster: broadcaster,
		tick:        tick,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.logger.Info("tracking supervisor started",
		slog.Duration("tick", s.tick),
		slog.Duration("max_duration", s.maxDuration),
	)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("tracking supervisor stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass over all active orders.
func (s *Supervisor) Sweep(ctx context.Context) {
	orderIDs, err := s.store.ActiveOrderIDs(ctx)
	if err != nil {
		s.logger.Error("active order scan failed", slog.Any("error", err))
		return
	}
	for _, orderID := range orderIDs {
		if err := s.check(ctx, orderID); err != nil {
			s.logger.Error("order sweep failed",
				slog.Any("error", err),
				slog.String("order_id", orderID.String()),
			)
		}
	}
}

func (s *Supervisor) check(ctx context.Context, orderID uuid.UUID) error {
	session, err := s.store.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if session == nil {
		// Expired between the scan and the read.
		return nil
	}

	age := time.Now().UTC().Sub(session.StartedAt)
	if age > s.maxDuration {
		s.logger.Warn("tracking exceeded max duration, stopping",
			slog.String("order_id", orderID.String()),
			slog.Duration("age", age),
		)
		_, err := s.locations.ForceStopTracking(ctx, orderID, "timeout")
		return err
	}

	s.broadcaster.BroadcastTrackingStatus(orderID, domain.TrackingStatus{
		OrderID:         orderID,
		IsActive:        true,
		StartedAt:       &session.StartedAt,
		DurationSeconds: age.Seconds(),
	})
	return nil
}
