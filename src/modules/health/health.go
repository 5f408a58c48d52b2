// Package health exposes GET /health, backed by a github.com/
// alexliesenfeld/health Checker running a single datastore ping check.
// Exactly one of NewSQLChecker / NewMongoChecker is wired, matching
// whichever backend RegisterDependencies picked for the rest of the
// repositories.
package health

import (
	"context"

	"github.com/alexliesenfeld/health"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewSQLChecker(db *bun.DB) health.Checker {
	return health.NewChecker(
		health.WithCheck(health.Check{
			Name:  "datastore",
			Check: func(ctx context.Context) error { return db.PingContext(ctx) },
		}),
	)
}

func NewMongoChecker(client *mongo.Client) health.Checker {
	return health.NewChecker(
		health.WithCheck(health.Check{
			Name:  "datastore",
			Check: func(ctx context.Context) error { return client.Ping(ctx, nil) },
		}),
	)
}
