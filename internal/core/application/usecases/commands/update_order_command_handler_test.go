package commands_test

import (
	"errors"
	"testing"
	"time"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "ORD-000007", validOrderDetails(t), time.Now())
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_StatusAndPayment(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	status := order.Sewing
	amount, err := kernel.MoneyFromString("400")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateOrderCommand(
		id,
		order.Patch{},
		&status,
		"",
		&commands.OrderPaymentInput{Amount: amount, Method: "bkash"},
	)
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
		return e.Name == ports.EventOrderUpdated
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
		return e.Name == ports.EventDuePaid
	})).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Sewing, stored.Status())
	assert.Equal(t, "900", stored.AdvancePaid().String())
	assert.Equal(t, "600", stored.DueAmount().String())
	publisher.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OverpaymentRejected(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	amount, err := kernel.MoneyFromString("5000")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{}, nil, "", &commands.OrderPaymentInput{Amount: amount},
	)
	require.NoError(t, err)

	stored := storedOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrAdvanceExceedsTotal)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(id, order.Patch{}, nil, "", nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewUpdateOrderCommandHandler(factory, publisher)
	require.Error(t, h.Handle(ctx, cmd))
}
