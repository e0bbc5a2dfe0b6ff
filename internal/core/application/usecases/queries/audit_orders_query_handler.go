package queries

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// OrderAuditor verifies one order.
type OrderAuditor interface {
	Audit(subject services.Auditable) error
}

// AuditOrdersQueryHandler runs the order auditor over all committed orders.
//
// Example:
//
//	handler := NewAuditOrdersQueryHandler(book, services.NewOrderAuditor())
//	findings, err := handler.Handle(ctx, NewAuditOrdersQuery())
//	for _, f := range findings {
//	    logger.Error("order is inconsistent", "order_id", f.OrderID, "error", f.Problem)
//	}
type AuditOrdersQueryHandler struct {
	orders  ports.OrderReader
	auditor OrderAuditor
}

// NewAuditOrdersQueryHandler creates an audit handler.
func NewAuditOrdersQueryHandler(orders ports.OrderReader, auditor OrderAuditor) AuditOrdersQueryHandler {
	return AuditOrdersQueryHandler{
		orders:  orders,
		auditor: auditor,
	}
}

// Handle returns one response per inconsistent order, in creation order.
// An empty result means every order passed.
func (h AuditOrdersQueryHandler) Handle(
	ctx context.Context,
	query AuditOrdersQuery,
) ([]AuditOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	findings := make([]AuditOrdersQueryResponse, 0)
	for _, o := range orders {
		if problem := h.auditor.Audit(o); problem != nil {
			findings = append(findings, AuditOrdersQueryResponse{
				OrderID: o.ID(),
				Problem: problem,
			})
		}
	}

	return findings, nil
}
