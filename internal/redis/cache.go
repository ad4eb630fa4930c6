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

const (
	geofenceCacheTTL = 30 * time.Minute
	locationCacheTTL = 30 * time.Minute
)

// GeofenceCache caches the geofence list per order. Every mutation of a
// zone invalidates the owning order's entry.
type GeofenceCache struct {
	client *goredis.Client
}

func NewGeofenceCache(r *Redis) *GeofenceCache {
	return &GeofenceCache{client: r.Client}
}

func geofenceCacheKey(orderID uuid.UUID) string {
	return "order:geofences:" + orderID.String()
}

func (c *GeofenceCache) GetOrderGeofences(ctx context.Context, orderID uuid.UUID) ([]*domain.Geofence, error) {
	data, err := c.client.Get(ctx, geofenceCacheKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var geofences []*domain.Geofence
	if err := json.Unmarshal(data, &geofences); err != nil {
		return nil, err
	}
	return geofences, nil
}

func (c *GeofenceCache) SetOrderGeofences(ctx context.Context, orderID uuid.UUID, geofences []*domain.Geofence) error {
	b, err := json.Marshal(geofences)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, geofenceCacheKey(orderID), b, geofenceCacheTTL).Err()
}

func (c *GeofenceCache) Invalidate(ctx context.Context, orderID uuid.UUID) error {
	return c.client.Del(ctx, geofenceCacheKey(orderID)).Err()
}

// LocationCache caches the first page of an order's sample listing.
type LocationCache struct {
	client *goredis.Client
}

func NewLocationCache(r *Redis) *LocationCache {
	return &LocationCache{client: r.Client}
}

func locationCacheKey(orderID uuid.UUID) string {
	return "order:locations:" + orderID.String()
}

func (c *LocationCache) GetFirstPage(ctx context.Context, orderID uuid.UUID) (*domain.SamplesPage, error) {
	data, err := c.client.Get(ctx, locationCacheKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var page domain.SamplesPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *LocationCache) SetFirstPage(ctx context.Context, orderID uuid.UUID, page *domain.SamplesPage) error {
	b, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, locationCacheKey(orderID), b, locationCacheTTL).Err()
}

func (c *LocationCache) Invalidate(ctx context.Context, orderID uuid.UUID) error {
	return c.client.Del(ctx, locationCacheKey(orderID)).Err()
}
