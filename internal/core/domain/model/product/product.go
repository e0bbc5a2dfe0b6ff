package product

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

const (
	// NumberMin is the smallest valid product number.
	NumberMin = 0
	// NumberMax is the largest valid product number.
	NumberMax = 999999
	// PriceMin is the smallest valid unit price.
	PriceMin = 1
)

// ErrProductIsNotConstructed is returned when a Product did not come from NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Field constraints checked by the setters.
var (
	numberRange = kernel.NewIntRange("productNumber", NumberMin, NumberMax)
	priceRange  = kernel.NewIntAtLeast("price", PriceMin)
)

// Product is an entity identified by its product number. The price is the only
// field that may change after construction.
//
// Example:
//
//	p, err := product.NewProduct(123456, 100)
//	if err != nil {
//	    // err names the violated field, the value and the allowed range
//	}
//	_ = p.SetPrice(120)
type Product struct {
	// number identifies the product
	number int

	// price is the current unit price
	price int

	guard guard.ConstructorGuard
}

// NewProduct creates a Product. Every violated field is reported in the
// returned error; on failure no Product is returned.
func NewProduct(number int, price int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setNumber(number), p.SetPrice(price)); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate rejects nil and zero-value products.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by product number only.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.number == other.number
}

// Number returns the product number.
func (p *Product) Number() int {
	return p.number
}

// Price returns the current unit price.
func (p *Product) Price() int {
	return p.price
}

// SetPrice changes the unit price. The previous price is kept if the new one
// is below PriceMin.
func (p *Product) SetPrice(price int) error {
	if err := priceRange.Check(price); err != nil {
		return err
	}

	p.price = price
	return nil
}

func (p *Product) setNumber(number int) error {
	if err := numberRange.Check(number); err != nil {
		return err
	}

	p.number = number
	return nil
}
