package health

import (
	"net/http"

	"github.com/alexliesenfeld/health"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controller struct {
	checker health.Checker
	logger  *zap.SugaredLogger
}

func NewController(checker health.Checker, logger *zap.SugaredLogger) *Controller {
	return &Controller{checker, logger.Named("[health-controller]")}
}

// @Router  /health [get]
// @Summary Datastore connectivity probe
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]bool
func (c *Controller) GetHealth(ctx *gin.Context) {
	result := c.checker.Check(ctx)
	if result.Status != health.StatusUp {
		c.logger.Errorw("datastore health check failed", "status", result.Status)
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
