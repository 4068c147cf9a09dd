package commands_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordWorkerPaymentCommandHandler_Handle_AdvanceBeyondSalary(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	amount, err := kernel.MoneyFromString("500")
	require.NoError(t, err)
	cmd, err := commands.NewRecordWorkerPaymentCommand(id, amount)
	require.NoError(t, err)

	stored, err := worker.NewWorker(id, validWorkerDetails(t))
	require.NoError(t, err)

	repo := new(MockWorkerRepository)
	uow := new(MockWorkerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordWorkerPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// No work recorded yet, so the payment is an advance and due goes negative.
	assert.Equal(t, "500", stored.AdvancePaid().String())
	assert.True(t, stored.DueAmount().IsNegative())
	require.NotNil(t, stored.LastPaymentDate())
}
