package commands

import (
	"context"
	"log/slog"

	"stay-picker/internal/domain/location"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/usecase/shared"
)

type LocationFixStore interface {
	Get(ctx context.Context, deviceID string) (*location.Fix, error)
	Put(ctx context.Context, deviceID string, fix location.Fix) error
}

type LocationCheckResult struct {
	Refresh        bool
	Reason         location.Reason
	DistanceMeters float64
}

type LocationCommands interface {
	CheckLocation(ctx context.Context, deviceID string, point location.Point) (*LocationCheckResult, error)
}

type locationUseCaseImpl struct {
	store  LocationFixStore
	policy location.Policy
	clock  clock.Clock
	logger *slog.Logger
}

func NewLocationUseCase(store LocationFixStore, policy location.Policy, clk clock.Clock, logger *slog.Logger) LocationCommands {
	return &locationUseCaseImpl{store: store, policy: policy, clock: clk, logger: logger}
}

// CheckLocation tells the client whether its cached fix can be reused. When a
// refresh is needed the reported point becomes the new cached fix. Cache
// failures degrade to "refresh" rather than failing the request.
func (uc *locationUseCaseImpl) CheckLocation(ctx context.Context, deviceID string, point location.Point) (*LocationCheckResult, error) {
	current, err := location.NewPoint(point.Lat, point.Lng)
	if err != nil {
		return nil, shared.MarkDomainErr(err)
	}

	cached, err := uc.store.Get(ctx, deviceID)
	if err != nil {
		uc.logger.WarnContext(ctx, "location fix lookup failed", "device_id", deviceID, "error", err.Error())
		cached = nil
	}

	now := uc.clock.Now()
	decision := uc.policy.NeedsRefresh(cached, current, now)
	if decision.Refresh {
		if err := uc.store.Put(ctx, deviceID, location.Fix{Point: current, RecordedAt: now}); err != nil {
			uc.logger.WarnContext(ctx, "location fix store failed", "device_id", deviceID, "error", err.Error())
		}
	}

	return &LocationCheckResult{
		Refresh:        decision.Refresh,
		Reason:         decision.Reason,
		DistanceMeters: decision.DistanceMeters,
	}, nil
}
