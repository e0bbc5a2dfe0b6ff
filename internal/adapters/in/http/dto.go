package http

import "ordering/internal/core/application/usecases/queries"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedOrder is returned by POST /api/v1/orders.
type CreatedOrder struct {
	ID string `json:"id"`
}

// NewOrderLine is the body of POST /api/v1/orders/:id/lines.
// Missing fields are reported as required rather than defaulted to zero.
type NewOrderLine struct {
	ProductNumber *int `json:"productNumber"`
	Price         *int `json:"price"`
	ProductCount  *int `json:"productCount"`
}

// Product is the wire form of a product snapshot.
type Product struct {
	ProductNumber int `json:"productNumber"`
	Price         int `json:"price"`
}

// OrderLine is the wire form of an order line.
type OrderLine struct {
	Product      Product `json:"product"`
	ProductCount int     `json:"productCount"`
}

// Order is the wire form of an order.
type Order struct {
	ID           string      `json:"id"`
	OrderLines   []OrderLine `json:"orderLines"`
	OverallPrice int         `json:"overallPrice"`
}

// OrderFromResponse converts a query response to its wire form.
func OrderFromResponse(resp queries.GetOrderQueryResponse) Order {
	lines := make([]OrderLine, 0, len(resp.OrderLines))
	for _, line := range resp.OrderLines {
		lines = append(lines, OrderLine{
			Product: Product{
				ProductNumber: line.ProductNumber(),
				Price:         line.UnitPrice(),
			},
			ProductCount: line.ProductCount(),
		})
	}

	return Order{
		ID:           resp.ID.String(),
		OrderLines:   lines,
		OverallPrice: resp.OverallPrice,
	}
}
