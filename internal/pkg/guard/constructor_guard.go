// Package guard detects domain objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and entities so that a zero value,
// created by a struct literal instead of the constructor, can be told apart from a
// properly validated instance.
//
// Example usage:
//
//	var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine")
//
//	type OrderLine struct {
//	    product      product.Product
//	    productCount int
//	    guard        guard.ConstructorGuard
//	}
//
//	func (l OrderLine) Validate() error {
//	    return l.guard.Validate(ErrOrderLineIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
