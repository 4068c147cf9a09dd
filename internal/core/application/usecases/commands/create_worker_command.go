package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/worker"
	"tailorshop/internal/pkg/guard"
)

var ErrCreateWorkerCommandIsNotConstructed = errors.New(
	"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
)

// CreateWorkerCommand represents a request to register a new shop worker with
// a work type and pay rate.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	details  worker.Details

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to register a worker.
func NewCreateWorkerCommand(workerID kernel.UUID, details worker.Details) (CreateWorkerCommand, error) {
	cmd := CreateWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setDetails(details),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the unique identifier for the worker.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Details returns the worker's descriptive attributes.
func (c CreateWorkerCommand) Details() worker.Details {
	return c.details
}

func (c *CreateWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *CreateWorkerCommand) setDetails(details worker.Details) error {
	if details.Name == "" {
		return worker.ErrNameIsRequired
	}
	if err := errors.Join(
		details.WorkType.Validate(),
		details.RateType.Validate(),
	); err != nil {
		return err
	}

	c.details = details
	return nil
}
