package order

import (
	"errors"
	"math"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering model. It exclusively owns its
// order lines and keeps the derived overall price consistent with them.
//
// Order follows these invariants:
//   - overallPrice == Σ line.ProductCount() × line.UnitPrice()
//   - at most one line per product number
//   - lines are only changed through AddOrderLine and RemoveOrderLine
//
// Example:
//
//	o, _ := order.NewOrder(kernel.NewUUID())
//	p, _ := product.NewProduct(123456, 100)
//	line, _ := order.NewOrderLine(p, 2)
//	_ = o.AddOrderLine(line)
//	o.OverallPrice() // 200
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderLines holds at most one line per product number
	orderLines []OrderLine

	// overallPrice is derived from orderLines
	overallPrice int

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an empty order with its own line collection and a zero
// overall price.
func NewOrder(id kernel.UUID) (*Order, error) {
	o := &Order{
		orderLines:    make([]OrderLine, 0),
		isConstructed: true,
	}

	if err := o.setID(id); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from previously stored lines. Lines are
// replayed through AddOrderLine, so duplicates are merged and the overall
// price is recomputed rather than trusted.
func RestoreOrder(id kernel.UUID, lines []OrderLine) (*Order, error) {
	o, err := NewOrder(id)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = o.AddOrderLine(line); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// RehydrateOrder rebuilds an order exactly as it was stored, including its
// overall price. Unlike RestoreOrder it neither merges lines nor recomputes the
// total, so stored drift stays observable to services.OrderAuditor.
func RehydrateOrder(id kernel.UUID, lines []OrderLine, overallPrice int) (*Order, error) {
	o, err := NewOrder(id)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	o.orderLines = append(o.orderLines, lines...)
	o.overallPrice = overallPrice
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OverallPrice returns the total of all order lines.
func (o *Order) OverallPrice() int {
	return o.overallPrice
}

// OrderLines returns a copy of the order lines in their current order.
func (o *Order) OrderLines() []OrderLine {
	return slices.Clone(o.orderLines)
}

// OrderLine returns the line for productNumber, if the order has one.
func (o *Order) OrderLine(productNumber int) (OrderLine, bool) {
	i := o.indexOf(productNumber)
	if i < 0 {
		return OrderLine{}, false
	}
	return o.orderLines[i], true
}

// AddOrderLine adds line to the order.
//
// If the order already has a line for the same product number, that line is
// replaced in place by a new line carrying the summed count; the existing
// line's product snapshot, and therefore its unit price, is kept. Otherwise
// line is appended unchanged. In both cases the overall price grows by the
// added units times the unit price of the resulting line.
//
// AddOrderLine fails for a line that was not built by NewOrderLine. It fails
// with an *errs.ValueIsOutOfRangeError wrapping ErrAmountOverflow when the
// merged count, the merged subtotal or the overall price would not fit an int.
// On failure the order is left unchanged.
func (o *Order) AddOrderLine(line OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	i := o.indexOf(line.ProductNumber())
	if i < 0 {
		if err := o.checkOverallPrice(line.Subtotal()); err != nil {
			return err
		}
		o.orderLines = append(o.orderLines, line)
		o.overallPrice += line.Subtotal()
		return nil
	}

	existing := o.orderLines[i]
	if maxAdded := math.MaxInt - existing.ProductCount(); line.ProductCount() > maxAdded {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"productCount", line.ProductCount(), ProductCountMin, maxAdded, ErrAmountOverflow)
	}
	merged, err := NewOrderLine(existing.Product(), existing.ProductCount()+line.ProductCount())
	if err != nil {
		return err
	}

	// merged.Subtotal() fits, so the added part does too.
	added := line.ProductCount() * existing.UnitPrice()
	if err = o.checkOverallPrice(added); err != nil {
		return err
	}

	o.orderLines[i] = merged
	o.overallPrice += added
	return nil
}

// RemoveOrderLine removes the line for productNumber and deducts its subtotal
// from the overall price. Removing a product that is not in the order does nothing.
func (o *Order) RemoveOrderLine(productNumber int) {
	i := o.indexOf(productNumber)
	if i < 0 {
		return
	}

	o.overallPrice -= o.orderLines[i].Subtotal()
	o.orderLines = slices.Delete(o.orderLines, i, i+1)
}

func (o *Order) checkOverallPrice(added int) error {
	if maxPrice := math.MaxInt - added; o.overallPrice > maxPrice {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"overallPrice", o.overallPrice, 0, maxPrice, ErrAmountOverflow)
	}
	return nil
}

func (o *Order) indexOf(productNumber int) int {
	return slices.IndexFunc(o.orderLines, func(l OrderLine) bool {
		return l.ProductNumber() == productNumber
	})
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}
