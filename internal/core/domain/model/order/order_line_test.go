package order_test

import (
	"math"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProduct(t *testing.T, number, price int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(number, price)
	require.NoError(t, err)
	return p
}

func createOrderLine(t *testing.T, number, price, count int) order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(createProduct(t, number, price), count)
	require.NoError(t, err)
	return line
}

func TestNewOrderLine(t *testing.T) {
	t.Run("should create order line with valid parameters", func(t *testing.T) {
		p := createProduct(t, 123456, 100)

		line, err := order.NewOrderLine(p, 3)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, 123456, line.ProductNumber())
		assert.Equal(t, 100, line.UnitPrice())
		assert.Equal(t, 3, line.ProductCount())
		assert.Equal(t, 300, line.Subtotal())
		assert.True(t, line.Product().IsEqual(p))
	})

	t.Run("should reject non-positive counts", func(t *testing.T) {
		p := createProduct(t, 1, 100)

		for _, count := range []int{0, -1, -1000} {
			line, err := order.NewOrderLine(p, count)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "productCount")
			require.Error(t, line.Validate(), "failed construction must not yield a usable line")
		}
	})

	t.Run("should require a product", func(t *testing.T) {
		_, err := order.NewOrderLine(nil, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "product")
	})

	t.Run("should reject a zero value product", func(t *testing.T) {
		_, err := order.NewOrderLine(&product.Product{}, 1)

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})

	t.Run("should reject a subtotal that does not fit an int", func(t *testing.T) {
		p := createProduct(t, 1, math.MaxInt/2+1)

		_, err := order.NewOrderLine(p, 3)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, order.ErrAmountOverflow)
		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "productCount", rangeErr.ParamName)
		assert.Equal(t, 1, rangeErr.Max)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := order.NewOrderLine(nil, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCheckProductCount(t *testing.T) {
	require.NoError(t, order.CheckProductCount(order.ProductCountMin))

	err := order.CheckProductCount(0)
	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "productCount", rangeErr.ParamName)
	assert.Equal(t, order.ProductCountMin, rangeErr.Min)
	assert.Nil(t, rangeErr.Max)
}

func TestOrderLine_Validate(t *testing.T) {
	var line order.OrderLine

	assert.Equal(t, order.ErrOrderLineIsNotConstructed, line.Validate())
}

func TestOrderLine_Immutability(t *testing.T) {
	t.Run("should not follow price changes of the source product", func(t *testing.T) {
		p := createProduct(t, 42, 100)
		line, err := order.NewOrderLine(p, 2)
		require.NoError(t, err)

		require.NoError(t, p.SetPrice(500))

		assert.Equal(t, 100, line.UnitPrice())
		assert.Equal(t, 200, line.Subtotal())
	})

	t.Run("should hand out product copies", func(t *testing.T) {
		line := createOrderLine(t, 42, 100, 2)

		require.NoError(t, line.Product().SetPrice(999))

		assert.Equal(t, 100, line.UnitPrice())
		assert.Equal(t, 100, line.Product().Price())
	})

	t.Run("copies stay equal to the original", func(t *testing.T) {
		line := createOrderLine(t, 42, 100, 2)
		cp := line

		assert.True(t, cp.IsEqual(line))
	})
}

func TestOrderLine_IsEqual(t *testing.T) {
	t.Run("should be structurally equal for equal fields", func(t *testing.T) {
		l1 := createOrderLine(t, 7, 100, 2)
		l2 := createOrderLine(t, 7, 100, 2)

		assert.True(t, l1.IsEqual(l2))
	})

	t.Run("should differ by count", func(t *testing.T) {
		assert.False(t, createOrderLine(t, 7, 100, 2).IsEqual(createOrderLine(t, 7, 100, 3)))
	})

	t.Run("should differ by price", func(t *testing.T) {
		assert.False(t, createOrderLine(t, 7, 100, 2).IsEqual(createOrderLine(t, 7, 101, 2)))
	})

	t.Run("should differ by product number", func(t *testing.T) {
		assert.False(t, createOrderLine(t, 7, 100, 2).IsEqual(createOrderLine(t, 8, 100, 2)))
	})
}
