package main

import (
	"fleetstatus/src/config"
	"fleetstatus/src/middleware"
	"fleetstatus/src/modules/health"
	"fleetstatus/src/modules/latency"
	"fleetstatus/src/modules/statusapi"
	"fleetstatus/src/modules/uptime"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// ProvideServer wires the four public, read-only endpoints at the bare
// paths the external contract names (no /api/v1 prefix): this is a
// machine-consumed query API, not the teacher's admin UI backend.
func ProvideServer(
	cfg *config.Config,
	statusRoute *statusapi.Route,
	latencyRoute *latency.Route,
	uptimeRoute *uptime.Route,
	healthRoute *health.Route,
) *Server {
	server := gin.Default()

	server.RedirectTrailingSlash = false
	server.Use(middleware.ErrorHandler())

	// CORS configuration
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "X-Requested-With", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	router := server.Group("/")

	// Connect routes
	statusRoute.ConnectRoute(router)
	latencyRoute.ConnectRoute(router)
	uptimeRoute.ConnectRoute(router)
	healthRoute.ConnectRoute(router)

	return &Server{router: server, cfg: cfg}
}
