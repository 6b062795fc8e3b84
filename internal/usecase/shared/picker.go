package shared

import (
	"stay-picker/internal/domain/stayrange"
)

// PickerSettings carries the configured slot policy and minimum stay into the usecases.
type PickerSettings struct {
	Policy               stayrange.SlotPolicy
	MinimumDurationHours int
}

// Options builds wizard options, letting a caller override the minimum stay.
func (s PickerSettings) Options(minimumHours int) stayrange.Options {
	if minimumHours <= 0 {
		minimumHours = s.MinimumDurationHours
	}
	return stayrange.Options{
		MinimumDurationHours: minimumHours,
		Policy:               s.Policy,
	}
}
