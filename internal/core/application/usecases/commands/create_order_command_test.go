package commands_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderDetails(t *testing.T) order.Details {
	t.Helper()
	total, err := kernel.MoneyFromString("1500")
	require.NoError(t, err)
	advance, err := kernel.MoneyFromString("500")
	require.NoError(t, err)

	return order.Details{
		CustomerName: "Karim Sheikh",
		Phone:        "01811223344",
		ItemName:     "Sherwani",
		Quantity:     1,
		TotalAmount:  total,
		AdvancePaid:  advance,
		DeliveryDate: time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	details := validOrderDetails(t)

	cmd, err := commands.NewCreateOrderCommand(id, details)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, details, cmd.Details())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, validOrderDetails(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingCustomerName(t *testing.T) {
	details := validOrderDetails(t)
	details.CustomerName = ""

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
}

func TestNewCreateOrderCommand_MissingItemName(t *testing.T) {
	details := validOrderDetails(t)
	details.ItemName = ""

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemNameIsRequired)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	details := validOrderDetails(t)
	details.Quantity = 0

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
