package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/worker"
	"tailorshop/internal/pkg/guard"
)

var ErrRecordWorkerPaymentCommandIsNotConstructed = errors.New(
	"RecordWorkerPaymentCommand must be created via NewRecordWorkerPaymentCommand constructor",
)

// RecordWorkerPaymentCommand represents a salary payment or advance to a
// worker. Payments beyond the accrued salary are allowed: the worker's due
// simply goes negative until further work is recorded.
type RecordWorkerPaymentCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	amount   kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordWorkerPaymentCommand creates a command to pay a worker.
func NewRecordWorkerPaymentCommand(workerID kernel.UUID, amount kernel.Money) (RecordWorkerPaymentCommand, error) {
	cmd := RecordWorkerPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setAmount(amount),
	); err != nil {
		return RecordWorkerPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWorkerPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordWorkerPaymentCommandIsNotConstructed)
}

// WorkerID returns the unique identifier for the worker.
func (c RecordWorkerPaymentCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Amount returns the payment amount.
func (c RecordWorkerPaymentCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RecordWorkerPaymentCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *RecordWorkerPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return worker.ErrWorkerPaymentAmountIsInvalid
	}

	c.amount = amount
	return nil
}
