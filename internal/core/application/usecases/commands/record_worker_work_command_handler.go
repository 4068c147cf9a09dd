package commands

import (
	"context"
)

// RecordWorkerWorkCommandHandler credits completed work to a worker,
// accruing salary at the worker's configured rate.
type RecordWorkerWorkCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewRecordWorkerWorkCommandHandler creates a handler for work crediting.
func NewRecordWorkerWorkCommandHandler(uowFactory WorkerUoWFactory) RecordWorkerWorkCommandHandler {
	return RecordWorkerWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work crediting command.
func (h *RecordWorkerWorkCommandHandler) Handle(ctx context.Context, cmd RecordWorkerWorkCommand) error {
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

	if err = aggregate.RecordWork(cmd.Quantity()); err != nil {
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
