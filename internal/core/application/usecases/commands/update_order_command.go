package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPaymentInput carries an optional payment bundled into an order update.
type OrderPaymentInput struct {
	Amount        kernel.Money
	Method        string
	TransactionID string
	CollectedBy   string
}

// UpdateOrderCommand represents a partial update of an existing order. Any
// combination of a field patch, a status change, and a payment may be carried
// in one command; whatever is absent stays untouched. The pieces are applied
// in a fixed order (patch, then status, then payment) so a payment is always
// validated against the patched totals.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	patch       order.Patch
	status      *order.Status
	statusNotes string
	payment     *OrderPaymentInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. status and
// payment are optional; a nil status with empty patch and nil payment is a
// valid no-op update.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	patch order.Patch,
	status *order.Status,
	statusNotes string,
	payment *OrderPaymentInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setPayment(payment),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.patch = patch
	cmd.statusNotes = statusNotes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the field-level changes to merge into the order.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

// Status returns the requested status change, or nil when the status is
// not being changed.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// StatusNotes returns the notes to record with the status change.
func (c UpdateOrderCommand) StatusNotes() string {
	return c.statusNotes
}

// Payment returns the bundled payment, or nil when no payment is attached.
func (c UpdateOrderCommand) Payment() *OrderPaymentInput {
	return c.payment
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setPayment(payment *OrderPaymentInput) error {
	if payment != nil {
		if !payment.Amount.IsPositive() {
			return order.ErrPaymentAmountIsInvalid
		}
	}

	c.payment = payment
	return nil
}
