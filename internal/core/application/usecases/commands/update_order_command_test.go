package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_AddressChange(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, "Calle Nueva 2", order.Unknown)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "Calle Nueva 2", cmd.ShippingAddress())
	assert.Equal(t, order.Unknown, cmd.Status())
}

func TestNewUpdateOrderCommand_StatusChange(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), "", order.InTransit)
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, cmd.Status())
}

func TestNewUpdateOrderCommand_NoChanges(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), "", order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandHasNoChanges)
}

func TestNewUpdateOrderCommand_CancelledTarget(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), "", order.Cancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelIsNotAnUpdate)
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, "Calle Nueva 2", order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
