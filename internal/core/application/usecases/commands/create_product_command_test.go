package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	price, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	cmd, err := commands.NewCreateProductCommand(productID, "Mouse", "Inalámbrico", price, 10)
	require.NoError(t, err)
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, "Mouse", cmd.Name())
	assert.Equal(t, "Inalámbrico", cmd.Description())
	assert.Equal(t, price, cmd.Price())
	assert.Equal(t, 10, cmd.Stock())
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	price, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	_, err = commands.NewCreateProductCommand(kernel.NewUUID(), "", "", price, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
}

func TestNewCreateProductCommand_NegativeStock(t *testing.T) {
	price, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	_, err = commands.NewCreateProductCommand(kernel.NewUUID(), "Mouse", "", price, -1)
	require.Error(t, err)
}

func TestNewCreateProductCommand_ZeroStockAllowed(t *testing.T) {
	price, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Mouse", "", price, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Stock())
}

func TestCreateProductCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateProductCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}
