package outage

import "context"

type Repository interface {
	// FindOverlapping returns the outages of monitorID that overlap
	// [rangeStart, rangeEnd): StartedAt < rangeEnd AND (EndedAt IS NULL
	// OR EndedAt > rangeStart).
	FindOverlapping(ctx context.Context, monitorID int64, rangeStart, rangeEnd int64) ([]*Model, error)
}
