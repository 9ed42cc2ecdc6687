// Package app declares the fx modules that compose the process.
package app

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	promclient "github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/internal/repo"
	"github.com/caresetu/caresetu_backend/pkg/database"
	"github.com/caresetu/caresetu_backend/pkg/observability"
	"github.com/caresetu/caresetu_backend/pkg/redis"
	"github.com/caresetu/caresetu_backend/pkg/token"
)

// InfraModule provides the external collaborators: database, redis,
// NATS, telemetry and the token manager.
var InfraModule = fx.Module("infra",
	fx.Provide(
		provideEntClient,
		provideRedis,
		provideNats,
		provideTelemetry,
		providePromRegistry,
		provideTokenManager,
	),
)

func provideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Database.Migrations.AutoMigrate {
				return database.MigrateEnt(ctx, client)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideRedis(lc fx.Lifecycle, cfg *config.Config) (*goredis.Client, error) {
	client, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideNats(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if cfg.Nats.URL == "" {
		// Messaging is optional; booking degrades to no events.
		return nil, nil
	}
	nc, err := nats.Connect(cfg.Nats.URL,
		nats.Name("caresetu_backend"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return nc.Drain()
		},
	})
	return nc, nil
}

func provideTelemetry(lc fx.Lifecycle, cfg *config.Config) (*observability.Telemetry, error) {
	t, err := observability.Setup(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Shutdown(ctx)
		},
	})
	return t, nil
}

func providePromRegistry(t *observability.Telemetry) *promclient.Registry {
	return t.PromRegistry
}

func provideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewManager(cfg.Authentication.JWT)
}
