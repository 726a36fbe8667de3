package ports

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for parcel orders.
//
// Access is per-request with no long-lived transaction: each method opens,
// reads or writes, and closes. Concurrent updates to the same pieza are
// last-write-wins with no version check.
type OrderRepository interface {
	// Add persists a new order as a fresh row. It never checks for an
	// existing row with the same pieza; duplicates are appended.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusByPieza sets the status on the most recent row matching
	// pieza and returns that row restored with its new status, so callers
	// can build the broadcast event from the stored guarda. Returns an
	// ObjectNotFoundError if no row matches; nothing is mutated in that case.
	UpdateStatusByPieza(ctx context.Context, pieza string, status order.Status) (*order.Order, error)

	// GetByStatuses retrieves rows whose status is in the filter set, in row
	// id order. An empty or nil filter returns every row regardless of status.
	GetByStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error)
}
