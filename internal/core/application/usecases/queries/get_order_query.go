// Package queries contains read operations over committed orders.
// Query handlers never mutate state and read through ports.OrderReader.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and overall price.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := NewGetOrderQueryHandler(book).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s costs %d\n", resp.ID, resp.OverallPrice)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the ID of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is a read-only view of an order.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	OrderLines   []order.OrderLine
	OverallPrice int
}
