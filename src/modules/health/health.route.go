package health

import "github.com/gin-gonic/gin"

type Route struct {
	controller *Controller
}

func NewRoute(controller *Controller) *Route {
	return &Route{controller}
}

func (r *Route) ConnectRoute(rg *gin.RouterGroup) {
	rg.GET("health", r.controller.GetHealth)
}
