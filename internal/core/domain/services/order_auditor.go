package services

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOverallPriceMismatch is the cause reported when the stored overall price
	// differs from the sum over the order lines.
	ErrOverallPriceMismatch = errors.New("overall price does not match order lines")

	// ErrDuplicateProductLine is the cause reported when a product number appears
	// on more than one order line.
	ErrDuplicateProductLine = errors.New("product appears on more than one order line")
)

// Auditable is the read side of an order needed for an audit.
type Auditable interface {
	OrderLines() []order.OrderLine
	OverallPrice() int
}

// OrderAuditor verifies the consistency rules of the Order aggregate from the
// outside: the derived overall price and one line per product number.
//
// Example usage:
//
//	auditor := services.NewOrderAuditor()
//	if err := auditor.Audit(o); err != nil {
//	    // errors.Is(err, services.ErrOverallPriceMismatch)
//	}
type OrderAuditor struct{}

// NewOrderAuditor creates a new OrderAuditor instance.
func NewOrderAuditor() OrderAuditor {
	return OrderAuditor{}
}

// Audit returns nil for a consistent order, or an *errs.ValueIsInvalidError per
// violated rule (joined) wrapping ErrOverallPriceMismatch or ErrDuplicateProductLine.
func (a OrderAuditor) Audit(subject Auditable) error {
	if subject == nil {
		return errs.NewValueIsRequiredError("order")
	}

	lines := subject.OrderLines()
	expected := 0
	seen := make(map[int]struct{}, len(lines))
	var duplicates []int

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		expected += line.Subtotal()

		if _, ok := seen[line.ProductNumber()]; ok {
			duplicates = append(duplicates, line.ProductNumber())
			continue
		}
		seen[line.ProductNumber()] = struct{}{}
	}

	var result []error
	if actual := subject.OverallPrice(); actual != expected {
		result = append(result, errs.NewValueIsInvalidErrorWithCause(
			"overallPrice",
			fmt.Errorf("%w: %d recorded, %d computed", ErrOverallPriceMismatch, actual, expected),
		))
	}
	for _, number := range duplicates {
		result = append(result, errs.NewValueIsInvalidErrorWithCause(
			"orderLines",
			fmt.Errorf("%w: %d", ErrDuplicateProductLine, number),
		))
	}

	return errors.Join(result...)
}
