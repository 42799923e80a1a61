package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"routeopt/internal/model"
)

// RedisCache is a read-through decorator over another repository. ListByDriver
// results are cached per (driver, limit) with a short TTL; Save invalidates
// the driver's entries. Delete only knows the route id, so stale entries after
// a delete age out via the TTL.
type RedisCache struct {
	next RouteRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewRedisCache(next RouteRepository, url string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisCache{next: next, rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func cacheKey(driverID string, limit int) string {
	return fmt.Sprintf("routeopt:recent:%s:%d", driverID, limit)
}

func (c *RedisCache) Save(ctx context.Context, route model.Route) error {
	if err := c.next.Save(ctx, route); err != nil {
		return err
	}
	// best-effort invalidation; a failed DEL only means a stale read until TTL
	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("routeopt:recent:%s:*", route.DriverID), 100).Iterator()
	for iter.Next(ctx) {
		_ = c.rdb.Del(ctx, iter.Val()).Err()
	}
	return nil
}

func (c *RedisCache) ListByDriver(ctx context.Context, driverID string, limit int) ([]model.Route, error) {
	key := cacheKey(driverID, limit)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var routes []model.Route
		if json.Unmarshal(data, &routes) == nil {
			return routes, nil
		}
	}
	routes, err := c.next.ListByDriver(ctx, driverID, limit)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(routes); err == nil {
		_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
	}
	return routes, nil
}

func (c *RedisCache) Delete(ctx context.Context, routeID string) (bool, error) {
	return c.next.Delete(ctx, routeID)
}
