package statusapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewController(service Service, logger *zap.SugaredLogger) *Controller {
	return &Controller{service, logger.Named("[statusapi-controller]")}
}

// @Router  /status [get]
// @Summary Current fleet status with recent heartbeat history
// @Tags    Status
// @Produce json
// @Success 200 {object} ResponseDTO
// @Failure 500 {object} utils.ErrorBody
func (c *Controller) GetStatus(ctx *gin.Context) {
	resp, err := c.service.GetStatus(ctx)
	if err != nil {
		c.logger.Errorw("failed to build status response", "error", err)
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
