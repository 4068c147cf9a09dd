package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/ports"
)

// RecordPaymentCommandHandler applies a payment to an order. A payment that
// would push the advance past the total is rejected before anything is
// written; there is no customer credit balance.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRecordPaymentCommandHandler creates a handler for payment operations.
func NewRecordPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment command.
// Broadcasts "due:paid" and "order:update" after commit.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	err = aggregate.ApplyPayment(cmd.Amount(), cmd.Method(), cmd.TransactionID(), cmd.CollectedBy(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventDuePaid,
		BranchID:   aggregate.Details().BranchID,
		OccurredAt: now,
		Payload: PaymentEventPayload{
			OrderID:     aggregate.ID().String(),
			OrderNumber: aggregate.OrderNumber(),
			Amount:      cmd.Amount().String(),
			Method:      cmd.Method(),
			CollectedBy: cmd.CollectedBy(),
			DueAmount:   aggregate.DueAmount().String(),
		},
	})
	_ = h.publisher.Publish(ctx, newOrderEvent(ports.EventOrderUpdated, aggregate, now))

	return nil
}
