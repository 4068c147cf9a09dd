package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a request to hand an order to a worker.
// Assignment is an explicit action of the shop operator, never automatic.
//
// Example:
//
//	cmd, err := NewAssignWorkerCommand(orderID, workerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignWorkerCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign worker: %w", err)
//	}
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a worker to an order.
func NewAssignWorkerCommand(orderID, workerID kernel.UUID) (AssignWorkerCommand, error) {
	cmd := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c AssignWorkerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the unique identifier for the worker.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AssignWorkerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
