package order

import (
	"time"

	"tailorshop/internal/core/domain/model/kernel"
)

// DefaultPaymentMethod is used when a payment is recorded without a method.
const DefaultPaymentMethod = "cash"

// TimelineEntry is one record in the order's append-only status audit log.
type TimelineEntry struct {
	status Status
	date   time.Time
	notes  string
}

// NewTimelineEntry creates a timeline entry for a status change at the given time.
func NewTimelineEntry(status Status, date time.Time, notes string) (TimelineEntry, error) {
	if err := status.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	return TimelineEntry{status: status, date: date, notes: notes}, nil
}

// Status returns the status recorded by this entry.
func (e TimelineEntry) Status() Status {
	return e.status
}

// Date returns when the status change happened.
func (e TimelineEntry) Date() time.Time {
	return e.date
}

// Notes returns the free-text annotation attached to the change.
func (e TimelineEntry) Notes() string {
	return e.notes
}

// Payment is one record in the order's append-only payment history.
type Payment struct {
	amount        kernel.Money
	date          time.Time
	method        string
	transactionID string
	collectedBy   string
}

// NewPayment creates a payment record. The amount must be strictly positive;
// an empty method defaults to DefaultPaymentMethod.
func NewPayment(amount kernel.Money, date time.Time, method, transactionID, collectedBy string) (Payment, error) {
	if err := amount.Validate(); err != nil {
		return Payment{}, err
	}
	if !amount.IsPositive() {
		return Payment{}, ErrPaymentAmountIsInvalid
	}
	if method == "" {
		method = DefaultPaymentMethod
	}
	return Payment{
		amount:        amount,
		date:          date,
		method:        method,
		transactionID: transactionID,
		collectedBy:   collectedBy,
	}, nil
}

// Amount returns the collected amount.
func (p Payment) Amount() kernel.Money {
	return p.amount
}

// Date returns when the payment was collected.
func (p Payment) Date() time.Time {
	return p.date
}

// Method returns the payment method (cash, bank transfer, mobile wallet, ...).
func (p Payment) Method() string {
	return p.method
}

// TransactionID returns the external transaction reference, if any.
func (p Payment) TransactionID() string {
	return p.transactionID
}

// CollectedBy returns the name of the person who collected the payment.
func (p Payment) CollectedBy() string {
	return p.collectedBy
}
