package testkit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisInstance is a running test Redis: either a container started by the
// suite or an external instance supplied through TEST_REDIS_ADDR.
type RedisInstance struct {
	ctr  testcontainers.Container
	addr string
}

// Addr returns the host:port address of the test Redis.
func (r *RedisInstance) Addr() string { return r.addr }

// Terminate stops the container. External instances are left alone.
func (r *RedisInstance) Terminate(ctx context.Context) error {
	if r.ctr == nil {
		return nil
	}
	return r.ctr.Terminate(ctx)
}

func startRedis(ctx context.Context, cfg Config) (*RedisInstance, error) {
	if cfg.RedisAddr != "" {
		return &RedisInstance{addr: cfg.RedisAddr}, nil
	}

	ctr, err := tcredis.Run(ctx, cfg.RedisImage)
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("get redis connection string: %w", err)
	}

	// go-redis clients take host:port, not redis:// URLs.
	u, err := url.Parse(connStr)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("parse redis connection string %q: %w", connStr, err)
	}

	return &RedisInstance{ctr: ctr, addr: u.Host}, nil
}
