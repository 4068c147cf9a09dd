package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves the next sequential order number, creates the order in "pending"
// status with its opening timeline entry, and broadcasts "order:new" after
// the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// The number reservation and the insert share one transaction, so an aborted
// create does not surface a half-registered order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	orderNumber, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := order.NewOrder(cmd.OrderID(), orderNumber, cmd.Details(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: a committed order is never rolled back over a lost event.
	_ = h.publisher.Publish(ctx, newOrderEvent(ports.EventOrderCreated, aggregate, now))

	return nil
}
