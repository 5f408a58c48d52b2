package latency

import "github.com/gin-gonic/gin"

type Route struct {
	controller *Controller
}

func NewRoute(controller *Controller) *Route {
	return &Route{controller}
}

func (r *Route) ConnectRoute(rg *gin.RouterGroup) {
	rg.GET("monitors/:id/latency", r.controller.GetLatency)
}
