package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/infra/redisstore"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewLoginThrottle,
	),
)

// NewLoginThrottle returns nil when REDIS_ADDR is unset; login then runs unthrottled.
func NewLoginThrottle(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.LoginThrottle {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, login attempts are not throttled")
		return nil
	}

	client := redisstore.NewClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable Redis degrades throttling but must not block startup
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return redisstore.NewLoginAttemptStore(client, cfg.Auth.LoginAttemptWindow)
}
