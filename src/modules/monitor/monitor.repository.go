package monitor

import "context"

// Repository is the read-only view of the monitors relation. Only
// active monitors are ever returned; the query engine never mutates
// this data, it is owned by the authoring side of the product.
type Repository interface {
	// FindActive returns every active monitor, ascending by ID.
	FindActive(ctx context.Context) ([]*Model, error)
	// FindByID returns the active monitor with the given id, or nil if
	// it does not exist or is inactive.
	FindByID(ctx context.Context, id int64) (*Model, error)
	// FindByIDs returns the active monitors among ids, in no particular
	// order; callers that need a stable order re-sort themselves.
	FindByIDs(ctx context.Context, ids []int64) ([]*Model, error)
}
