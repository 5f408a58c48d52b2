package health

import (
	"fleetstatus/src/config"

	"go.uber.org/dig"
)

func RegisterDependencies(container *dig.Container, cfg *config.Config) {
	switch cfg.DBType {
	case "mongo":
		container.Provide(NewMongoChecker)
	default:
		container.Provide(NewSQLChecker)
	}
	container.Provide(NewController)
	container.Provide(NewRoute)
}
