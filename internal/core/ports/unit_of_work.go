package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one aggregate mutation. Between Begin and
// Commit/Rollback no other unit of work may mutate orders, which serialises
// AddOrderLine and RemoveOrderLine calls on the same aggregate.
type UnitOfWork interface {
	// Begin starts the unit of work, waiting for any other one in flight.
	Begin(ctx context.Context) error

	// Commit publishes the staged changes and ends the unit of work.
	Commit(ctx context.Context) error

	// Rollback discards staged changes and ends the unit of work.
	// Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to this unit of work.
	OrderRepository() OrderRepository
}
