package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to put productCount units of a
// product on an existing order. Product fields are validated when the command
// is built, so a command that exists always describes a valid order line.
//
// Example:
//
//	cmd, err := NewAddOrderLineCommand(orderID, 123456, 100, 2)
//	if err != nil {
//	    // err lists every invalid field
//	}
//
//	handler := NewAddOrderLineCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add order line: %w", err)
//	}
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	product      product.Product
	productCount int

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add an order line.
// Every invalid argument is reported in the joined error.
func NewAddOrderLineCommand(
	orderID kernel.UUID,
	productNumber int,
	price int,
	productCount int,
) (AddOrderLineCommand, error) {
	command := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProduct(productNumber, price),
		command.setProductCount(productCount),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the ID of the order to add the line to.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Product returns a copy of the product to order.
func (c AddOrderLineCommand) Product() *product.Product {
	p := c.product
	return &p
}

// ProductCount returns the number of units to order.
func (c AddOrderLineCommand) ProductCount() int {
	return c.productCount
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setProduct(productNumber int, price int) error {
	p, err := product.NewProduct(productNumber, price)
	if err != nil {
		return err
	}

	c.product = *p
	return nil
}

func (c *AddOrderLineCommand) setProductCount(productCount int) error {
	if err := order.CheckProductCount(productCount); err != nil {
		return err
	}

	c.productCount = productCount
	return nil
}
