package latency

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
	return &Controller{service, logger.Named("[latency-controller]")}
}

// @Router  /monitors/{id}/latency [get]
// @Summary Latency profile for a single monitor over a time range
// @Tags    Latency
// @Produce json
// @Param   id    path  int    true  "Monitor ID"
// @Param   range query string false "24h"
// @Success 200 {object} ResponseDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
func (c *Controller) GetLatency(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = ctx.Error(&utils.ValidationError{Message: "id must be a positive integer"})
		return
	}

	resp, err := c.service.GetLatency(ctx, id, ctx.Query("range"))
	if err != nil {
		c.logger.Errorw("failed to build latency response", "error", err, "monitorId", id)
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
