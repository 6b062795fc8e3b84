package components

import (
	"log/slog"

	"stay-picker/internal/domain/location"
	"stay-picker/internal/infra/cache"
	"stay-picker/internal/usecase/commands"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewLocationFixStore,
			fx.As(new(commands.LocationFixStore)),
		),
	),
)

// NewLocationFixStore expires fixes together with the policy's MaxAge.
func NewLocationFixStore(client *redis.Client, policy location.Policy, logger *slog.Logger) *cache.LocationFixStore {
	return cache.NewLocationFixStore(client, policy.MaxAge, logger)
}
