package uptime

import (
	"net/http"
	"strconv"

	"fleetstatus/src/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewController(service Service, logger *zap.SugaredLogger) *Controller {
	return &Controller{service, logger.Named("[uptime-controller]")}
}

// @Router  /monitors/{id}/uptime [get]
// @Summary Fraction of a time range a monitor was available
// @Tags    Uptime
// @Produce json
// @Param   id    path  int    true  "Monitor ID"
// @Param   range query string false "24h, 7d, or 30d"
// @Success 200 {object} ResponseDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
func (c *Controller) GetUptime(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = ctx.Error(&utils.ValidationError{Message: "id must be a positive integer"})
		return
	}

	resp, err := c.service.GetUptime(ctx, id, ctx.Query("range"))
	if err != nil {
		c.logger.Errorw("failed to build uptime response", "error", err, "monitorId", id)
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
