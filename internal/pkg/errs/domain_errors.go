package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Stay range errors
	ErrStayRangeNotFound = errors.New("stay range not found")

	// Wizard errors
	ErrMinimumDurationNotMet = errors.New("minimum duration not met")
	ErrWizardClosed          = errors.New("wizard closed")
	ErrUnavailableSelection  = errors.New("unavailable selection")

	// Location errors
	ErrInvalidLocation = errors.New("invalid location")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCacheOperationFailed    = errors.New("cache operation failed")
)
