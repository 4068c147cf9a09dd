package commands_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	amount, err := kernel.MoneyFromString("1000")
	require.NoError(t, err)
	cmd, err := commands.NewRecordPaymentCommand(id, amount, "", "", "")
	require.NoError(t, err)

	stored := storedOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
		return e.Name == ports.EventDuePaid
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
		return e.Name == ports.EventOrderUpdated
	})).Return(nil).Once()

	h := commands.NewRecordPaymentCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	// 500 advance + 1000 payment settles the 1500 total in full.
	assert.Equal(t, "1500", stored.AdvancePaid().String())
	assert.True(t, stored.DueAmount().IsZero())
	require.Len(t, stored.Payments(), 1)
	assert.Equal(t, "cash", stored.Payments()[0].Method())
	publisher.AssertExpectations(t)
}
