package api

import (
	"net/http"

	"stay-picker/internal/handler/httperr"
	"stay-picker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels to HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrMinimumDurationNotMet):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Minimum stay duration not met", nil)
	case errs.Is(err, errs.ErrWizardClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Wizard is already closed", nil)
	case errs.Is(err, errs.ErrUnavailableSelection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Selection is not available", nil)
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, errs.ErrInvalidLocation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrStayRangeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
