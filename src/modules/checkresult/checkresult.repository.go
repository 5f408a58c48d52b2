package checkresult

import "context"

type Repository interface {
	// FindRecentByMonitorIDs returns, for each monitor id, up to limit
	// of its most recent checks with CheckedAt >= since, in a single
	// batched query. Result order is unspecified across monitors;
	// within a monitor it is most-recent-first.
	FindRecentByMonitorIDs(ctx context.Context, monitorIDs []int64, since int64, limit int) ([]*Model, error)

	// FindInRangeInclusive returns checks for monitorID with CheckedAt
	// in [start, end], ascending by CheckedAt.
	FindInRangeInclusive(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error)

	// FindFrom returns checks for monitorID with CheckedAt in
	// [start, end), ascending by CheckedAt.
	FindFrom(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error)
}
