package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a standalone payment against an order's
// due amount, outside of a field update.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	amount        kernel.Money
	method        string
	transactionID string
	collectedBy   string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to apply a payment to an order.
// Amount must be strictly positive; method defaults to cash when empty.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method, transactionID, collectedBy string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	cmd.method = method
	cmd.transactionID = transactionID
	cmd.collectedBy = collectedBy

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the payment method, empty for the default.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

// TransactionID returns the external transaction reference, if any.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

// CollectedBy returns who collected the payment, if recorded.
func (c RecordPaymentCommand) CollectedBy() string {
	return c.collectedBy
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return order.ErrPaymentAmountIsInvalid
	}

	c.amount = amount
	return nil
}
