// Package order provides the Order aggregate root and its OrderLine value objects.
//
// The package includes:
//   - OrderLine: an immutable pairing of a product snapshot and a product count
//   - Order: the aggregate root that owns its order lines and the derived overall price
//
// Key business rules:
//   - Order lines are built through NewOrderLine and never change afterwards
//   - An order holds at most one line per product number; adding a line for a
//     product already in the order merges the counts into a new line
//   - The overall price always equals the sum of count × unit price over all lines
//   - Removing a product that is not in the order is a no-op
//
// An Order is not safe for concurrent mutation. Callers serialise AddOrderLine
// and RemoveOrderLine per order instance.
package order
