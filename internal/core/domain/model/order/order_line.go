package order

import (
	"errors"
	"math"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ProductCountMin is the smallest valid number of units on an order line.
const ProductCountMin = 1

// ErrOrderLineIsNotConstructed is returned when an OrderLine did not come from NewOrderLine.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// ErrAmountOverflow is the cause reported when a count or price total no longer fits an int.
var ErrAmountOverflow = errors.New("amount does not fit in an int")

var productCountRange = kernel.NewIntAtLeast("productCount", ProductCountMin)

// CheckProductCount validates a number of units for an order line.
func CheckProductCount(productCount int) error {
	return productCountRange.Check(productCount)
}

// OrderLine is a value object pairing a product with a number of units.
//
// The line keeps a snapshot of the product taken at construction, so later
// price changes on the caller's Product do not reach lines already built.
// OrderLine has no setters; a different quantity means a new OrderLine.
// Equality is structural.
type OrderLine struct { //nolint:recvcheck //using for validation
	product      product.Product
	productCount int
	guard        guard.ConstructorGuard
}

// NewOrderLine creates an OrderLine for count units of p.
// p must be a constructed Product, count must be at least ProductCountMin and
// the subtotal count × price must fit an int.
func NewOrderLine(p *product.Product, productCount int) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(line.setProduct(p), line.setProductCount(productCount)); err != nil {
		return OrderLine{}, err
	}
	if err := line.checkSubtotal(); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate rejects zero-value order lines.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// IsEqual reports structural equality: same product number, unit price and count.
func (l OrderLine) IsEqual(other OrderLine) bool {
	return l == other
}

// Product returns a copy of the product snapshot held by the line.
func (l OrderLine) Product() *product.Product {
	p := l.product
	return &p
}

// ProductNumber returns the number of the product on this line.
func (l OrderLine) ProductNumber() int {
	return l.product.Number()
}

// UnitPrice returns the product price captured by this line.
func (l OrderLine) UnitPrice() int {
	return l.product.Price()
}

// ProductCount returns the number of units.
func (l OrderLine) ProductCount() int {
	return l.productCount
}

// Subtotal returns ProductCount × UnitPrice.
func (l OrderLine) Subtotal() int {
	return l.productCount * l.product.Price()
}

func (l *OrderLine) setProduct(p *product.Product) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	l.product = *p
	return nil
}

func (l *OrderLine) setProductCount(productCount int) error {
	if err := CheckProductCount(productCount); err != nil {
		return err
	}

	l.productCount = productCount
	return nil
}

// checkSubtotal runs after both setters succeeded, so price is at least 1.
func (l *OrderLine) checkSubtotal() error {
	maxCount := math.MaxInt / l.product.Price()
	if l.productCount > maxCount {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"productCount", l.productCount, ProductCountMin, maxCount, ErrAmountOverflow)
	}
	return nil
}
