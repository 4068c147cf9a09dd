package ports

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: if another writer committed first,
	// Update fails with a version conflict and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetDueBetween retrieves orders whose delivery date falls in [from, to)
	// and that are still in progress (not Delivered, not Cancelled).
	// Used by the delivery reminder job.
	GetDueBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)

	// NextOrderNumber reserves the next sequential order number, e.g.
	// "ORD-000042". The reservation participates in the surrounding
	// transaction, so an aborted create does not leak visible gaps beyond
	// those of a rolled-back sequence.
	NextOrderNumber(ctx context.Context) (string, error)
}
