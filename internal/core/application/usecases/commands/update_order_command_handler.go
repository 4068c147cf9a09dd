package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/ports"
)

// UpdateOrderCommandHandler handles partial updates of an order. The whole
// update is one read-modify-write transaction guarded by the order's version,
// so two concurrent updates to the same order cannot silently merge.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order update command.
// Broadcasts "order:update" after commit, plus "due:paid" when the update
// carried a payment.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if err = aggregate.ApplyPatch(cmd.Patch()); err != nil {
		return err
	}

	if status := cmd.Status(); status != nil {
		if err = aggregate.ChangeStatus(*status, cmd.StatusNotes(), now); err != nil {
			return err
		}
	}

	payment := cmd.Payment()
	if payment != nil {
		err = aggregate.ApplyPayment(
			payment.Amount, payment.Method, payment.TransactionID, payment.CollectedBy, now,
		)
		if err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, newOrderEvent(ports.EventOrderUpdated, aggregate, now))
	if payment != nil {
		_ = h.publisher.Publish(ctx, ports.Event{
			Name:       ports.EventDuePaid,
			BranchID:   aggregate.Details().BranchID,
			OccurredAt: now,
			Payload: PaymentEventPayload{
				OrderID:     aggregate.ID().String(),
				OrderNumber: aggregate.OrderNumber(),
				Amount:      payment.Amount.String(),
				Method:      payment.Method,
				CollectedBy: payment.CollectedBy,
				DueAmount:   aggregate.DueAmount().String(),
			},
		})
	}

	return nil
}
