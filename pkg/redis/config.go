package redis

import (
	"time"

	"github.com/caresetu/caresetu_backend/config"
)

// Config holds Redis connection settings
type Config struct {
	Addr         string
	DB           int
	Username     string
	Password     string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromCentralConfig converts central config.RedisConfig to package Config
func FromCentralConfig(c config.RedisConfig) Config {
	cfg := Config{
		Addr:         c.Addr,
		DB:           c.DB,
		Username:     c.Username,
		Password:     c.Password,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
		DialTimeout:  time.Duration(c.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(c.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(c.WriteTimeoutSeconds) * time.Second,
	}
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 3 * time.Second
	}
	return cfg
}
