package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetOrderQueryHandler reads single orders from committed state.
type GetOrderQueryHandler struct {
	orders ports.OrderReader
}

// NewGetOrderQueryHandler creates a handler reading from orders.
func NewGetOrderQueryHandler(orders ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order view, or errs.ObjectNotFoundError for an unknown ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:           aggregate.ID(),
		OrderLines:   aggregate.OrderLines(),
		OverallPrice: aggregate.OverallPrice(),
	}, nil
}
