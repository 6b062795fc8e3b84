package bootstrap

import (
	"time"

	"stay-picker/internal/domain/location"
	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/config"
	"stay-picker/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewClock,
		NewPickerSettings,
		NewLocationPolicy,
	),
)

// NewClock runs the picker in PICKER_TIMEZONE so every "now" matches the
// naive timestamps guests send.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Picker.LoadLocation()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

func NewPickerSettings(cfg config.Config) shared.PickerSettings {
	offsets := make([]time.Duration, 0, len(cfg.Picker.CheckOutOffsetsHours))
	for _, h := range cfg.Picker.CheckOutOffsetsHours {
		offsets = append(offsets, time.Duration(h)*time.Hour)
	}
	return shared.PickerSettings{
		Policy: stayrange.SlotPolicy{
			CheckInFloorHour:   cfg.Picker.CheckInFloorHour,
			CheckInCeilingHour: cfg.Picker.CheckInCeilingHour,
			CheckOutCutoffHour: cfg.Picker.CheckOutCutoffHour,
			CheckOutOffsets:    offsets,
		},
		MinimumDurationHours: cfg.Picker.MinimumDurationHours,
	}
}

func NewLocationPolicy(cfg config.Config) location.Policy {
	return location.Policy{
		DistanceThresholdMeters: cfg.Location.DistanceThresholdMeters,
		MaxAge:                  cfg.Location.MaxAge,
	}
}
