package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/ports"
)

// AssignWorkerCommandHandler assigns a worker to an order. The worker is
// loaded in the same transaction to confirm it exists; whether the worker is
// active is the caller's concern. The worker aggregate itself is not
// modified, payroll totals only move through explicit work and payment
// records.
type AssignWorkerCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
func NewAssignWorkerCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// Broadcasts "order:update" after commit.
func (h *AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
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

	if _, err := uow.WorkerRepository().Get(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignWorker(cmd.WorkerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, newOrderEvent(ports.EventOrderUpdated, aggregate, time.Now()))

	return nil
}
