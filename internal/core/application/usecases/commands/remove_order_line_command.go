package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to drop the line for a product
// from an order. The product number is not range checked: a number that
// cannot be on the order simply matches nothing.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	productNumber int

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to remove an order line.
func NewRemoveOrderLineCommand(orderID kernel.UUID, productNumber int) (RemoveOrderLineCommand, error) {
	command := RemoveOrderLineCommand{
		productNumber: productNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// OrderID returns the ID of the order to remove the line from.
func (c RemoveOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductNumber returns the number of the product whose line is removed.
func (c RemoveOrderLineCommand) ProductNumber() int {
	return c.productNumber
}

func (c *RemoveOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
