package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caresetu/caresetu_backend/config"
)

// NewClient creates a Redis client from central config and verifies connectivity
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	c := FromCentralConfig(cfg)

	client := redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		DB:           c.DB,
		Username:     c.Username,
		Password:     c.Password,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", c.Addr, err)
	}

	return client, nil
}
