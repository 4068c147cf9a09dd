package commands

import (
	"context"
	"time"
)

// RecordWorkerPaymentCommandHandler records a salary payment or advance
// against a worker's accrued salary.
type RecordWorkerPaymentCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewRecordWorkerPaymentCommandHandler creates a handler for worker payments.
func NewRecordWorkerPaymentCommandHandler(uowFactory WorkerUoWFactory) RecordWorkerPaymentCommandHandler {
	return RecordWorkerPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker payment command.
func (h *RecordWorkerPaymentCommandHandler) Handle(ctx context.Context, cmd RecordWorkerPaymentCommand) error {
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

	workerRepo := uow.WorkerRepository()
	aggregate, err := workerRepo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordPayment(cmd.Amount(), time.Now()); err != nil {
		return err
	}

	if err = workerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
