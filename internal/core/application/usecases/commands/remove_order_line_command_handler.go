package commands

import (
	"context"
)

// RemoveOrderLineCommandHandler removes order lines from existing orders.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderLineCommandHandler creates a handler for removing order lines.
func NewRemoveOrderLineCommandHandler(uowFactory OrderUoWFactory) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, removes the line and stores the result.
// Removing a product that is not on the order succeeds and leaves it unchanged.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h *RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.RemoveOrderLine(cmd.ProductNumber())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
