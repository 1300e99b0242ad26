package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func mustPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	total, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Calle Mayor 1", total)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_AddressChange(t *testing.T) {
	ctx := t.Context()

	o := mustPendingOrder(t)
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), "Calle Nueva 2", order.Unknown)
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Calle Nueva 2", updated.ShippingAddress())
	assert.Equal(t, order.Pending, updated.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StatusChange(t *testing.T) {
	ctx := t.Context()

	o := mustPendingOrder(t)
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), "", order.InTransit)
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, updated.Status())
}

func TestUpdateOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	o := mustPendingOrder(t)
	require.NoError(t, o.ChangeStatus(order.Delivered))

	cmd, err := commands.NewUpdateOrderCommand(o.ID(), "", order.InTransit)
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, "Calle Nueva 2", order.Unknown)
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
