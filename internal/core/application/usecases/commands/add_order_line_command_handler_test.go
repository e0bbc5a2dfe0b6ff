package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderLineCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockOrderUoWFactory)

	// Act
	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestAddOrderLineCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, 123456, 100, 2)
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderEntity, nil).Once(),
		mockRepo.On("Update", ctx, orderEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)

	line, ok := orderEntity.OrderLine(123456)
	require.True(t, ok)
	assert.Equal(t, 2, line.ProductCount())
	assert.Equal(t, 200, orderEntity.OverallPrice())
}

func TestAddOrderLineCommandHandler_Handle_MergesExistingLine(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)
	p, err := product.NewProduct(7, 100)
	require.NoError(t, err)
	existing, err := order.NewOrderLine(p, 1)
	require.NoError(t, err)
	require.NoError(t, orderEntity.AddOrderLine(existing))

	cmd, err := commands.NewAddOrderLineCommand(orderID, 7, 100, 3)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, orderID).Return(orderEntity, nil).Once()
	mockRepo.On("Update", ctx, orderEntity).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, orderEntity.OrderLines(), 1)
	assert.Equal(t, 4, orderEntity.OrderLines()[0].ProductCount())
	assert.Equal(t, 400, orderEntity.OverallPrice())
}

func TestAddOrderLineCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AddOrderLineCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrAddOrderLineCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestAddOrderLineCommandHandler_Handle_BeginError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddOrderLineCommand(kernel.NewUUID(), 1, 100, 1)
	require.NoError(t, err)

	expectedError := errors.New("begin failed")
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_OrderNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, 1, 100, 1)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("order", orderID.String())
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return((*order.Order)(nil), notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_UpdateError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, 1, 100, 1)
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)

	expectedError := errors.New("update failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderEntity, nil).Once(),
		mockRepo.On("Update", ctx, orderEntity).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, 1, 100, 1)
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderEntity, nil).Once(),
		mockRepo.On("Update", ctx, orderEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderLineCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
