package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Zagato27/Lapa-sub000/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const trackingKeyPrefix = "tracking:active:"

// TrackingStore keeps the ephemeral per-order tracking sessions. A session
// key expires on its own after ttl, so a crashed client cannot leave a
// session behind forever even if the supervisor is down too.
type TrackingStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewTrackingStore(r *Redis, ttl time.Duration) *TrackingStore {
	return &TrackingStore{client: r.Client, ttl: ttl}
}

// SetActive writes the session under its order key. A second start for the
// same order overwrites the key, so there is never more than one session
// per order.
func (s *TrackingStore) SetActive(ctx context.Context, session domain.TrackingSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, trackingKeyPrefix+session.OrderID.String(), b, s.ttl).Err()
}

func (s *TrackingStore) Get(ctx context.Context, orderID uuid.UUID) (*domain.TrackingSession, error) {
	data, err := s.client.Get(ctx, trackingKeyPrefix+orderID.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session domain.TrackingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *TrackingStore) Stop(ctx context.Context, orderID uuid.UUID) error {
	return s.client.Del(ctx, trackingKeyPrefix+orderID.String()).Err()
}

// ActiveOrderIDs enumerates every order currently marked tracking-active.
func (s *TrackingStore) ActiveOrderIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	iter := s.client.Scan(ctx, 0, trackingKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		id, err := uuid.Parse(iter.Val()[len(trackingKeyPrefix):])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
