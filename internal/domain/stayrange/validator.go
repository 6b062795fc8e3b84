package stayrange

import (
	"time"

	"stay-picker/internal/pkg/errs"
)

type Validator struct {
	minimumDuration time.Duration
}

// NewValidator falls back to DefaultMinimumDurationHours for non-positive input.
func NewValidator(minimumHours int) Validator {
	if minimumHours <= 0 {
		minimumHours = DefaultMinimumDurationHours
	}
	return Validator{minimumDuration: time.Duration(minimumHours) * time.Hour}
}

func (v Validator) MinimumDuration() time.Duration {
	return v.minimumDuration
}

func (v Validator) MinimumHours() int {
	return int(v.minimumDuration / time.Hour)
}

func (v Validator) ValidateCheckOut(start, end time.Time) error {
	if got := end.Sub(start); got < v.minimumDuration {
		return errs.Wrapf(ErrMinimumDurationNotMet, "stay of %s is shorter than %s",
			DurationLabel(got), DurationLabel(v.minimumDuration))
	}
	return nil
}

// ValidateCommitted checks a range that claims to be a finished selection.
func (v Validator) ValidateCommitted(r TimeRange) error {
	if !r.IsComplete() {
		return errs.Wrap(ErrInvalidTimeRange, "range is incomplete")
	}
	return v.ValidateCheckOut(r.StartDateTime(), r.EndDateTime())
}
