package http_test

import (
	"testing"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFromResponse(t *testing.T) {
	id := kernel.NewUUID()
	p, err := product.NewProduct(3, 600)
	require.NoError(t, err)
	line, err := order.NewOrderLine(p, 2)
	require.NoError(t, err)

	wire := httpadapter.OrderFromResponse(queries.GetOrderQueryResponse{
		ID:           id,
		OrderLines:   []order.OrderLine{line},
		OverallPrice: 1200,
	})

	assert.Equal(t, httpadapter.Order{
		ID: id.String(),
		OrderLines: []httpadapter.OrderLine{
			{Product: httpadapter.Product{ProductNumber: 3, Price: 600}, ProductCount: 2},
		},
		OverallPrice: 1200,
	}, wire)
}

func TestOrderFromResponse_EmptyLinesEncodeAsArray(t *testing.T) {
	wire := httpadapter.OrderFromResponse(queries.GetOrderQueryResponse{ID: kernel.NewUUID()})
	assert.NotNil(t, wire.OrderLines)
}
