package commands_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordWorkerPaymentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	amount, err := kernel.MoneyFromString("2000")
	require.NoError(t, err)

	cmd, err := commands.NewRecordWorkerPaymentCommand(id, amount)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.WorkerID())
	assert.Equal(t, "2000", cmd.Amount().String())
}

func TestNewRecordWorkerPaymentCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewRecordWorkerPaymentCommand(kernel.NewUUID(), kernel.ZeroMoney())
	require.Error(t, err)
	assert.ErrorIs(t, err, worker.ErrWorkerPaymentAmountIsInvalid)
}
