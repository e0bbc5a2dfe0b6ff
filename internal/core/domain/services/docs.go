// Package services provides domain services that check business rules which
// are not the responsibility of a single method of an aggregate.
//
// The package includes:
//   - OrderAuditor: recomputes an order's derived overall price from its lines
//     and checks that no product appears on more than one line
package services
