package statusapi

import (
	"github.com/gin-gonic/gin"
)

type Route struct {
	controller *Controller
}

func NewRoute(controller *Controller) *Route {
	return &Route{controller}
}

func (r *Route) ConnectRoute(rg *gin.RouterGroup) {
	rg.GET("status", r.controller.GetStatus)
}
