package order

import (
	"errors"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrPhoneIsRequired is returned when the customer phone is empty.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrItemNameIsRequired is returned when the item name is empty.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
	// ErrOrderNumberIsRequired is returned when the order number is empty.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrPaymentAmountIsInvalid is returned when a payment amount is not strictly positive.
	ErrPaymentAmountIsInvalid = errs.NewValueIsInvalidError("paymentAmount")
	// ErrAdvanceExceedsTotal is returned when a mutation would make the advance
	// paid exceed the total amount. Overpayment is rejected rather than kept as
	// customer credit, keeping the due amount non-negative.
	ErrAdvanceExceedsTotal = errs.NewValueIsInvalidError("advancePaid exceeds totalAmount")
)

// Details carries the customer-facing attributes of an order. It is used both
// for initial creation and as the merge target of partial updates.
type Details struct {
	BranchID     string
	CustomerName string
	Phone        string
	Address      string
	ItemName     string
	Quantity     int
	Measurements string
	Notes        string
	TotalAmount  kernel.Money
	AdvancePaid  kernel.Money
	DeliveryDate time.Time
}

// Patch enumerates the mutable order fields for partial updates. Nil fields
// are left untouched. Using a typed patch instead of a dynamic merge means
// unknown keys cannot reach the aggregate.
type Patch struct {
	CustomerName *string
	Phone        *string
	Address      *string
	ItemName     *string
	Quantity     *int
	Measurements *string
	Notes        *string
	TotalAmount  *kernel.Money
	DeliveryDate *time.Time
}

// Order is the aggregate root for a tailoring order. It owns the order's
// identity, customer details, financial balance, status, and the two
// append-only histories (timeline and payments).
//
// Invariants maintained by every mutation:
//   - totalAmount >= 0 and advancePaid >= 0 (Money is non-negative)
//   - advancePaid <= totalAmount, so DueAmount() == totalAmount - advancePaid
//     is always a valid non-negative amount
//   - every status change appends exactly one timeline entry
//   - every payment appends exactly one payment record and raises advancePaid
//     by exactly the payment amount
//
// The version field supports optimistic concurrency control in the
// persistence layer: concurrent writers to the same order cannot silently
// overwrite each other.
type Order struct {
	id          kernel.UUID
	orderNumber string

	details  Details
	status   Status
	workerID *kernel.UUID

	orderDate time.Time
	timeline  []TimelineEntry
	payments  []Payment

	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Pending status with an initial timeline
// entry. Validation covers identity, the required customer fields, quantity,
// monetary amounts, and the advance-within-total invariant.
func NewOrder(id kernel.UUID, orderNumber string, details Details, orderDate time.Time) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateOrderNumber(orderNumber),
		validateDetails(details),
	); err != nil {
		return nil, err
	}

	entry, err := NewTimelineEntry(Pending, orderDate, "Order created")
	if err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		orderNumber: orderNumber,
		details:     details,
		status:      Pending,
		orderDate:   orderDate,
		timeline:    []TimelineEntry{entry},
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation side effects. The stored state is still validated against the
// aggregate invariants.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	details Details,
	status Status,
	workerID *kernel.UUID,
	orderDate time.Time,
	timeline []TimelineEntry,
	payments []Payment,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateOrderNumber(orderNumber),
		validateDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", version))
	}

	return &Order{
		id:          id,
		orderNumber: orderNumber,
		details:     details,
		status:      status,
		workerID:    workerID,
		orderDate:   orderDate,
		timeline:    timeline,
		payments:    payments,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable sequential order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Details returns the customer-facing order attributes.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Worker returns the assigned worker's ID, or nil when unassigned.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// TotalAmount returns the agreed total price.
func (o *Order) TotalAmount() kernel.Money {
	return o.details.TotalAmount
}

// AdvancePaid returns the amount collected so far.
func (o *Order) AdvancePaid() kernel.Money {
	return o.details.AdvancePaid
}

// DueAmount returns the outstanding balance: total minus advance. It is
// derived on every read and never stored, so it cannot drift from the ledger.
func (o *Order) DueAmount() kernel.Money {
	// advance never exceeds total, enforced on every mutation
	due, _ := o.details.TotalAmount.Sub(o.details.AdvancePaid)
	return due
}

// Timeline returns a copy of the status audit log, oldest first.
func (o *Order) Timeline() []TimelineEntry {
	entries := make([]TimelineEntry, len(o.timeline))
	copy(entries, o.timeline)
	return entries
}

// Payments returns a copy of the payment history, oldest first.
func (o *Order) Payments() []Payment {
	payments := make([]Payment, len(o.payments))
	copy(payments, o.payments)
	return payments
}

// Version returns the optimistic concurrency version of the loaded record.
func (o *Order) Version() int {
	return o.version
}

// IsCancelled reports whether the order has been soft-deleted.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// ChangeStatus moves the order to a new status and appends a timeline entry.
// Any status may follow any other. Setting the current status again is a
// no-op: no duplicate timeline entry is appended. An empty notes string
// defaults to "Status updated".
func (o *Order) ChangeStatus(newStatus Status, notes string, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if newStatus == o.status {
		return nil
	}
	if notes == "" {
		notes = "Status updated"
	}

	entry, err := NewTimelineEntry(newStatus, at, notes)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.timeline = append(o.timeline, entry)
	return nil
}

// ApplyPayment records a payment against the order: appends one payment
// history entry and raises the advance by the collected amount. Payments that
// would push the advance over the total are rejected with
// ErrAdvanceExceedsTotal, leaving the order unchanged.
func (o *Order) ApplyPayment(amount kernel.Money, method, transactionID, collectedBy string, at time.Time) error {
	payment, err := NewPayment(amount, at, method, transactionID, collectedBy)
	if err != nil {
		return err
	}

	newAdvance := o.details.AdvancePaid.Add(amount)
	if newAdvance.GreaterThan(o.details.TotalAmount) {
		return ErrAdvanceExceedsTotal
	}

	o.details.AdvancePaid = newAdvance
	o.payments = append(o.payments, payment)
	return nil
}

// ApplyPatch merges a partial update into the order details. The merge is
// all-or-nothing: the patch is validated against the invariants before any
// field is written, so a rejected patch leaves the order untouched.
func (o *Order) ApplyPatch(patch Patch) error {
	merged := o.details
	if patch.CustomerName != nil {
		merged.CustomerName = *patch.CustomerName
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.ItemName != nil {
		merged.ItemName = *patch.ItemName
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.Measurements != nil {
		merged.Measurements = *patch.Measurements
	}
	if patch.Notes != nil {
		merged.Notes = *patch.Notes
	}
	if patch.TotalAmount != nil {
		merged.TotalAmount = *patch.TotalAmount
	}
	if patch.DeliveryDate != nil {
		merged.DeliveryDate = *patch.DeliveryDate
	}

	if err := validateDetails(merged); err != nil {
		return err
	}

	o.details = merged
	return nil
}

// Cancel soft-deletes the order: the status becomes Cancelled and a timeline
// entry is appended. Cancelling an already cancelled order is an idempotent
// no-op; it reports false and appends nothing.
func (o *Order) Cancel(at time.Time) (bool, error) {
	if o.status == Cancelled {
		return false, nil
	}

	entry, err := NewTimelineEntry(Cancelled, at, "Order cancelled")
	if err != nil {
		return false, err
	}

	o.status = Cancelled
	o.timeline = append(o.timeline, entry)
	return true, nil
}

// AssignWorker records the worker responsible for this order. Reassignment is
// allowed; worker existence is the caller's concern.
func (o *Order) AssignWorker(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	o.workerID = &workerID
	return nil
}

func validateOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	return nil
}

func validateDetails(details Details) error {
	var errsList []error

	if details.CustomerName == "" {
		errsList = append(errsList, ErrCustomerNameIsRequired)
	}
	if details.Phone == "" {
		errsList = append(errsList, ErrPhoneIsRequired)
	}
	if details.ItemName == "" {
		errsList = append(errsList, ErrItemNameIsRequired)
	}
	if details.Quantity < 1 {
		errsList = append(errsList, errs.NewValueIsOutOfRangeError("quantity", details.Quantity, 1, 10000))
	}
	if err := details.TotalAmount.Validate(); err != nil {
		errsList = append(errsList, err)
	}
	if err := details.AdvancePaid.Validate(); err != nil {
		errsList = append(errsList, err)
	}
	if details.TotalAmount.Validate() == nil && details.AdvancePaid.Validate() == nil &&
		details.AdvancePaid.GreaterThan(details.TotalAmount) {
		errsList = append(errsList, ErrAdvanceExceedsTotal)
	}

	return errors.Join(errsList...)
}
