package components

import (
	"context"
	"log/slog"

	"stay-picker/internal/handler"
	"stay-picker/internal/handler/api"
	"stay-picker/internal/handler/middleware"
	"stay-picker/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewHealthHandler,
		api.NewStayPickerHandler,
		api.NewLocationHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(health *api.HealthHandler, sp *api.StayPickerHandler, loc *api.LocationHandler) handler.Handlers {
			return handler.Handlers{Health: health, StayPicker: sp, Location: loc}
		},
		func(l *middleware.Logger, auth *middleware.AuthMiddleware, rl *middleware.RateLimiter) handler.Middlewares {
			return handler.Middlewares{Logger: l, Auth: auth, RateLimiter: rl}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client, logger *slog.Logger) *api.HealthHandler {
	cache := api.PingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	return api.NewHealthHandler(pool, cache, logger)
}
