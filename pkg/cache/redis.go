package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/tutor-api/pkg/config"
)

const dialTimeout = 3 * time.Second

// Redis is the optional Redis dependency. Only its reachability is used,
// reported through /ready.
type Redis struct {
	client *redis.Client
	addr   string
}

// NewRedis connects to Redis, or returns nil when Redis is disabled.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	r := &Redis{
		addr: addr,
		client: redis.NewClient(&redis.Options{
			Addr:        addr,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: dialTimeout,
		}),
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.PingContext(ctx); err != nil {
		_ = r.client.Close()
		return nil, err
	}
	return r, nil
}

// PingContext checks that the server answers.
func (r *Redis) PingContext(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis %s: %w", r.addr, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
