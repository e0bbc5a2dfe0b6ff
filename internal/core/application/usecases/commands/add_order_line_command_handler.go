package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler adds order lines to existing orders.
// A product already on the order is merged into its existing line.
type AddOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for adding order lines.
func NewAddOrderLineCommandHandler(uowFactory OrderUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, adds the line and stores the result.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	line, err := order.NewOrderLine(cmd.Product(), cmd.ProductCount())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddOrderLine(line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
