package kernel

import "ordering/internal/pkg/errs"

// IntRange is a declarative constraint on an integer field: a field name, an
// inclusive lower bound and an optional inclusive upper bound.
//
//	var priceRange = kernel.NewIntAtLeast("price", 1)
//
//	func (p *Product) setPrice(price int) error {
//	    if err := priceRange.Check(price); err != nil {
//	        return err
//	    }
//	    p.price = price
//	    return nil
//	}
type IntRange struct {
	field   string
	minimum int
	maximum int
	bounded bool
}

// NewIntRange declares a constraint accepting values in [minimum, maximum].
func NewIntRange(field string, minimum, maximum int) IntRange {
	return IntRange{
		field:   field,
		minimum: minimum,
		maximum: maximum,
		bounded: true,
	}
}

// NewIntAtLeast declares a constraint accepting values >= minimum.
func NewIntAtLeast(field string, minimum int) IntRange {
	return IntRange{
		field:   field,
		minimum: minimum,
	}
}

// Field returns the name of the constrained field.
func (r IntRange) Field() string {
	return r.field
}

// Min returns the inclusive lower bound.
func (r IntRange) Min() int {
	return r.minimum
}

// Max returns the inclusive upper bound and whether one was declared.
func (r IntRange) Max() (int, bool) {
	return r.maximum, r.bounded
}

// Contains reports whether v satisfies the constraint.
func (r IntRange) Contains(v int) bool {
	if v < r.minimum {
		return false
	}
	return !r.bounded || v <= r.maximum
}

// Check returns an *errs.ValueIsOutOfRangeError naming the field, the value and
// the allowed range when v violates the constraint.
func (r IntRange) Check(v int) error {
	if r.Contains(v) {
		return nil
	}

	var maximum any
	if r.bounded {
		maximum = r.maximum
	}
	return errs.NewValueIsOutOfRangeError(r.field, v, r.minimum, maximum)
}
