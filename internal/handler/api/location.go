package api

import (
	"net/http"

	reqdto "stay-picker/internal/handler/dto/request"
	resdto "stay-picker/internal/handler/dto/response"
	"stay-picker/internal/handler/httperr"
	"stay-picker/internal/pkg/errs"
	"stay-picker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	headerDeviceID    = "X-Device-ID"
	maxDeviceIDLength = 128
)

var errDeviceIDRequired = errs.New("X-Device-ID header is required")

type LocationHandler struct {
	cmds commands.LocationCommands
}

func NewLocationHandler(cmds commands.LocationCommands) *LocationHandler {
	return &LocationHandler{cmds: cmds}
}

// @Summary Check location freshness
// @Description Tell the client whether its cached geolocation fix should be refreshed
// @Tags location
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Device identifier"
// @Param request body reqdto.LocationCheckRequest true "Coarse position"
// @Success 200 {object} resdto.LocationCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /location/check [post]
func (h *LocationHandler) Check(c *gin.Context) {
	deviceID := c.GetHeader(headerDeviceID)
	if deviceID == "" || len(deviceID) > maxDeviceIDLength {
		httperr.AbortWithError(c, http.StatusBadRequest, errDeviceIDRequired, "Device ID is required", nil)
		return
	}
	var req reqdto.LocationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	point, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coordinates", nil)
		return
	}
	result, err := h.cmds.CheckLocation(c.Request.Context(), deviceID, point)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationCheckResult(result))
}
