// Package ports defines the contracts between the ordering core and its adapters.
// These interfaces establish dependency inversion, so the application layer can be
// tested without any concrete storage.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderReader provides read access to committed order aggregates.
type OrderReader interface {
	// Get retrieves an order by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Aggregates returned by the repository are owned by the caller; changes only
// become visible to others through Update.
type OrderRepository interface {
	OrderReader

	// Add stores a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order aggregate.
	// Returns an errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error
}
