package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	request, err := commands.NewItemRequest(productID, 3)
	require.NoError(t, err)
	assert.Equal(t, productID, request.ProductID())
	assert.Equal(t, 3, request.Quantity())
}

func TestNewItemRequest_InvalidProductID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewItemRequest(invalidID, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewItemRequest_InvalidQuantity(t *testing.T) {
	productID := kernel.NewUUID()
	for _, quantity := range []int{0, -1} {
		_, err := commands.NewItemRequest(productID, quantity)
		require.Error(t, err)
	}
}

func TestNewCreateOrderWithItemsCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	total, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	request, err := commands.NewItemRequest(kernel.NewUUID(), 2)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderWithItemsCommand(
		orderID, customerID, "Calle Mayor 1", total, []commands.ItemRequest{request})
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Calle Mayor 1", cmd.ShippingAddress())
	assert.Equal(t, total, cmd.TotalAmount())
	assert.Len(t, cmd.Items(), 1)
}

func TestNewCreateOrderWithItemsCommand_EmptyItemsAllowed(t *testing.T) {
	total, err := kernel.NewMoney(0)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderWithItemsCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Calle Mayor 1", total, nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderWithItemsCommand_EmptyShippingAddress(t *testing.T) {
	total, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderWithItemsCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", total, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShippingAddressIsRequired)
}

func TestNewCreateOrderWithItemsCommand_InvalidOrderID(t *testing.T) {
	total, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderWithItemsCommand(
		kernel.UUID{}, kernel.NewUUID(), "Calle Mayor 1", total, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderWithItemsCommand_UnconstructedItemRequest(t *testing.T) {
	total, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderWithItemsCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Calle Mayor 1", total,
		[]commands.ItemRequest{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemRequestIsNotConstructed)
}

func TestCreateOrderWithItemsCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderWithItemsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderWithItemsCommandIsNotConstructed)
}
