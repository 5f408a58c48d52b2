package main

import (
	"fmt"
	"log"

	"fleetstatus/src/config"
	"fleetstatus/src/modules/checkresult"
	"fleetstatus/src/modules/health"
	"fleetstatus/src/modules/latency"
	"fleetstatus/src/modules/monitor"
	"fleetstatus/src/modules/monitorstate"
	"fleetstatus/src/modules/outage"
	"fleetstatus/src/modules/statusapi"
	"fleetstatus/src/modules/uptime"

	"go.uber.org/dig"
)

func main() {
	cfg, err := config.LoadConfig("../..")
	if err != nil {
		panic(err)
	}

	container := dig.New()

	// Provide dependencies
	container.Provide(func() *config.Config { return &cfg })
	container.Provide(ProvideLogger)
	container.Provide(ProvideServer)

	// database-specific deps
	switch cfg.DBType {
	case "postgres", "postgresql", "mysql", "sqlite":
		container.Provide(ProvideSQLDB)
	case "mongo":
		container.Provide(ProvideMongoDB)
	default:
		panic(fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType))
	}

	// Register dependencies
	monitor.RegisterDependencies(container, &cfg)
	monitorstate.RegisterDependencies(container, &cfg)
	checkresult.RegisterDependencies(container, &cfg)
	outage.RegisterDependencies(container, &cfg)
	statusapi.RegisterDependencies(container)
	latency.RegisterDependencies(container)
	uptime.RegisterDependencies(container)
	health.RegisterDependencies(container, &cfg)

	// Start the server
	err = container.Invoke(func(server *Server) {
		port := server.cfg.Port
		if port == "" {
			port = "8034"
		}
		if port[0] != ':' {
			port = ":" + port
		}
		if err := server.router.Run(port); err != nil {
			log.Fatal(err)
		}
	})

	if err != nil {
		log.Fatal(err)
	}
}
