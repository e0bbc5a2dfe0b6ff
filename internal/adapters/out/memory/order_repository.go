package memory

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// orderRepository implements ports.OrderRepository on top of a UnitOfWork.
type orderRepository struct {
	uow *UnitOfWork
}

// Add stages a new order. Adding an id that already exists fails.
func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.uow.lookup(aggregate.ID()); exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("order %s already exists", aggregate.ID()),
		)
	}

	r.uow.stage(fromDomain(aggregate))
	return nil
}

// Update stages the new state of an existing order.
func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.uow.lookup(aggregate.ID()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.uow.stage(fromDomain(aggregate))
	return nil
}

// Get returns a fresh copy of the order as seen by this unit of work.
func (r *orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := r.uow.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(record)
}

// GetAll returns committed orders overlaid with this unit of work's staged writes.
func (r *orderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}

	committed, err := r.uow.book.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(committed)+len(r.uow.order))
	for _, o := range committed {
		if _, staged := r.uow.staged[o.ID()]; staged {
			continue
		}
		orders = append(orders, o)
	}
	for _, record := range r.uow.order {
		o, restoreErr := toDomain(record)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *orderRepository) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	return nil
}
