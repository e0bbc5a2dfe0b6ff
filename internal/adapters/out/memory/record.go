package memory

import (
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// orderRecord is the stored form of an order aggregate.
type orderRecord struct {
	ID           kernel.UUID
	Lines        []order.OrderLine
	OverallPrice int
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(o *order.Order) orderRecord {
	return orderRecord{
		ID:           o.ID(),
		Lines:        o.OrderLines(),
		OverallPrice: o.OverallPrice(),
	}
}

// toDomain rebuilds a fresh aggregate from the record as stored, so callers
// never share state with the book and the audit sees what was committed.
func toDomain(r orderRecord) (*order.Order, error) {
	return order.RehydrateOrder(r.ID, slices.Clone(r.Lines), r.OverallPrice)
}
