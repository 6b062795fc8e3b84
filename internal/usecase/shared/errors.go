package shared

import (
	"stay-picker/internal/domain/location"
	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/infra"
	"stay-picker/internal/pkg/errs"
)

// MarkDomainErr tags domain and repository failures with the usecase sentinels
// the HTTP layer maps to statuses. Unknown errors pass through unchanged.
func MarkDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, stayrange.ErrMinimumDurationNotMet):
		return errs.Mark(err, errs.ErrMinimumDurationNotMet)
	case errs.Is(err, stayrange.ErrWizardClosed):
		return errs.Mark(err, errs.ErrWizardClosed)
	case errs.Is(err, stayrange.ErrSlotUnavailable),
		errs.Is(err, stayrange.ErrDateUnavailable),
		errs.Is(err, stayrange.ErrStepUnavailable):
		return errs.Mark(err, errs.ErrUnavailableSelection)
	case errs.Is(err, stayrange.ErrInvalidTimeRange),
		errs.Is(err, stayrange.ErrInvalidStep),
		errs.Is(err, stayrange.ErrInvalidEvent):
		return errs.Mark(err, errs.ErrDomainValidation)
	case errs.Is(err, location.ErrInvalidPoint):
		return errs.Mark(err, errs.ErrInvalidLocation)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrStayRangeNotFound)
	case infra.IsKind(err, infra.KindCacheFailure):
		return errs.Mark(err, errs.ErrCacheOperationFailed)
	case infra.IsKind(err, infra.KindDBFailure), infra.IsKind(err, infra.KindDecodeFailed):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
