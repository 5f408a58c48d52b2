package monitorstate

import "context"

type Repository interface {
	// FindByMonitorIDs returns the state row for each monitor id that
	// has one. Monitors with no row are simply absent from the result;
	// callers treat that as "never checked".
	FindByMonitorIDs(ctx context.Context, monitorIDs []int64) ([]*Model, error)
}
