package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/guard"
)

var (
	ErrRecordWorkerWorkCommandIsNotConstructed = errors.New(
		"RecordWorkerWorkCommand must be created via NewRecordWorkerWorkCommand constructor",
	)
	ErrWorkQuantityIsInvalid = errors.New("work quantity must be greater than 0")
)

// RecordWorkerWorkCommand represents completed work to credit to a worker.
// Quantity is counted in the worker's rate unit: pieces, hours, or days.
type RecordWorkerWorkCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewRecordWorkerWorkCommand creates a command to credit work to a worker.
func NewRecordWorkerWorkCommand(workerID kernel.UUID, quantity int) (RecordWorkerWorkCommand, error) {
	cmd := RecordWorkerWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RecordWorkerWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWorkerWorkCommand) Validate() error {
	return c.guard.Validate(ErrRecordWorkerWorkCommandIsNotConstructed)
}

// WorkerID returns the unique identifier for the worker.
func (c RecordWorkerWorkCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Quantity returns the number of rate units worked.
func (c RecordWorkerWorkCommand) Quantity() int {
	return c.quantity
}

func (c *RecordWorkerWorkCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *RecordWorkerWorkCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrWorkQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
