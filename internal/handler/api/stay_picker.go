package api

import (
	"net/http"
	"time"

	"stay-picker/internal/domain/stayrange"
	reqdto "stay-picker/internal/handler/dto/request"
	resdto "stay-picker/internal/handler/dto/response"
	"stay-picker/internal/handler/httperr"
	"stay-picker/internal/handler/middleware"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/errs"
	"stay-picker/internal/usecase/commands"
	"stay-picker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("unauthenticated")

type StayPickerHandler struct {
	cmds commands.StayPickerCommands
	q    queries.StayPickerQueries
	loc  *time.Location
}

// NewStayPickerHandler reads naive timestamps in the picker's zone.
func NewStayPickerHandler(cmds commands.StayPickerCommands, q queries.StayPickerQueries, clk clock.Clock) *StayPickerHandler {
	return &StayPickerHandler{cmds: cmds, q: q, loc: clk.Location()}
}

// @Summary Check-in slots
// @Description List hourly check-in slots for a date
// @Tags stay-picker
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /stay-picker/slots/checkin [get]
func (h *StayPickerHandler) CheckInSlots(c *gin.Context) {
	date, err := stayrange.ParseDate(c.Query("date"), h.loc)
	if err != nil || date.IsZero() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.New("invalid date"), errs.ErrDomainValidation), "Invalid date", nil)
		return
	}
	view, err := h.q.CheckInSlots(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}

// @Summary Check-out slots
// @Description List check-out packages for a check-in time
// @Tags stay-picker
// @Produce json
// @Param checkIn query string true "Check-in (YYYY-MM-DDTHH:mm:ss)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /stay-picker/slots/checkout [get]
func (h *StayPickerHandler) CheckOutSlots(c *gin.Context) {
	checkIn, err := stayrange.ParseNaive(c.Query("checkIn"), h.loc)
	if err != nil || checkIn.IsZero() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.New("invalid check-in"), errs.ErrDomainValidation), "Invalid checkIn", nil)
		return
	}
	view, err := h.q.CheckOutSlots(c.Request.Context(), checkIn)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}

// @Summary Apply wizard event
// @Description Apply one interaction to a client-held wizard state and return the next state
// @Tags stay-picker
// @Accept json
// @Produce json
// @Param request body reqdto.WizardEventsRequest true "Wizard state and event"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /stay-picker/wizard/events [post]
func (h *StayPickerHandler) ApplyEvent(c *gin.Context) {
	var req reqdto.WizardEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ApplyEvent(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardResult(result))
}

// @Summary Save stay range
// @Description Store a committed range for the signed-in guest
// @Tags stay-picker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveStayRangeRequest true "Committed range"
// @Success 201 {object} resdto.SaveStayRangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /stay-picker/ranges [post]
func (h *StayPickerHandler) SaveStayRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.SaveStayRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	r, err := req.ToDomain(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SaveStayRange(c.Request.Context(), userID, r, req.MinimumDurationHours)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/stay-picker/ranges/latest")
	c.JSON(http.StatusCreated, resdto.SaveStayRangeResponse{ID: result.ID.String()})
}

// @Summary Latest stay range
// @Description Get the most recently saved range of the signed-in guest
// @Tags stay-picker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StayRangeResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stay-picker/ranges/latest [get]
func (h *StayPickerHandler) LatestStayRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	view, err := h.q.LatestStayRange(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayRangeView(view))
}
