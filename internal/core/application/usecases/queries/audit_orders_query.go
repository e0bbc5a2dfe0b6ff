package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrAuditOrdersQueryIsNotConstructed = errors.New(
	"AuditOrdersQuery must be created via NewAuditOrdersQuery constructor",
)

// AuditOrdersQuery checks every committed order for a drifted overall price
// or a product listed on more than one line.
type AuditOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditOrdersQuery creates a parameterless audit query.
func NewAuditOrdersQuery() AuditOrdersQuery {
	return AuditOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AuditOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAuditOrdersQueryIsNotConstructed)
}

// AuditOrdersQueryResponse describes one inconsistent order.
// Problem wraps services.ErrOverallPriceMismatch and/or services.ErrDuplicateProductLine.
type AuditOrdersQueryResponse struct {
	OrderID kernel.UUID
	Problem error
}
