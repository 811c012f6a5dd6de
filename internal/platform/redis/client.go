// Package redis opens the optional redis connection behind the write rate
// limiter.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"landscape/internal/platform/config"
)

type Client struct {
	*redis.Client
}

// New connects and pings. An empty URL means redis is not configured and
// yields a nil client without error.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.ClientName = "landscape"

	c := &Client{Client: redis.NewClient(opts)}
	if err := c.Health(ctx); err != nil {
		_ = c.Client.Close()
		return nil, err
	}
	return c, nil
}

// Health pings the server; it backs the redis entry of /healthz.
func (c *Client) Health(ctx context.Context) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
