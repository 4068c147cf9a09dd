package worker

import (
	"errors"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for worker operations.
var (
	// ErrWorkerIsNotConstructed is returned when a Worker instance was not
	// created through NewWorker or RestoreWorker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker")
	// ErrNameIsRequired is returned when the worker name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when the worker phone is empty.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrWorkerPaymentAmountIsInvalid is returned when a payment amount is not strictly positive.
	ErrWorkerPaymentAmountIsInvalid = errs.NewValueIsInvalidError("paymentAmount")
)

// Details carries the descriptive attributes of a worker.
type Details struct {
	Name        string
	Phone       string
	Address     string
	WorkType    WorkType
	RatePerWork kernel.Money
	RateType    RateType
	Notes       string
	JoinDate    time.Time
}

// Worker is the aggregate root for a shop worker. Besides identity and rate
// configuration it carries running payroll totals: pieces (or rate periods)
// worked, salary earned at the configured rate, and advances paid out.
//
// Totals are adjusted only through RecordWork and RecordPayment; order
// completion does not feed them automatically.
type Worker struct {
	id      kernel.UUID
	details Details

	totalWork       int
	totalSalary     kernel.Money
	advancePaid     kernel.Money
	lastPaymentDate *time.Time
	isActive        bool

	version int

	guard guard.ConstructorGuard
}

// NewWorker creates an active worker with zeroed payroll totals.
func NewWorker(id kernel.UUID, details Details) (*Worker, error) {
	if err := errors.Join(
		id.Validate(),
		validateDetails(details),
	); err != nil {
		return nil, err
	}

	return &Worker{
		id:          id,
		details:     details,
		totalSalary: kernel.ZeroMoney(),
		advancePaid: kernel.ZeroMoney(),
		isActive:    true,
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreWorker reconstructs a worker from persistence.
func RestoreWorker(
	id kernel.UUID,
	details Details,
	totalWork int,
	totalSalary kernel.Money,
	advancePaid kernel.Money,
	lastPaymentDate *time.Time,
	isActive bool,
	version int,
) (*Worker, error) {
	if err := errors.Join(
		id.Validate(),
		validateDetails(details),
		totalSalary.Validate(),
		advancePaid.Validate(),
	); err != nil {
		return nil, err
	}
	if totalWork < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalWork",
			fmt.Errorf("%d is negative", totalWork))
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", version))
	}

	return &Worker{
		id:              id,
		details:         details,
		totalWork:       totalWork,
		totalSalary:     totalSalary,
		advancePaid:     advancePaid,
		lastPaymentDate: lastPaymentDate,
		isActive:        isActive,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Worker was created via NewWorker or RestoreWorker.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Details returns the worker's descriptive attributes.
func (w *Worker) Details() Details {
	return w.details
}

// TotalWork returns the accumulated work units (pieces or rate periods).
func (w *Worker) TotalWork() int {
	return w.totalWork
}

// TotalSalary returns the salary earned so far at the configured rate.
func (w *Worker) TotalSalary() kernel.Money {
	return w.totalSalary
}

// AdvancePaid returns the total advances paid out to the worker.
func (w *Worker) AdvancePaid() kernel.Money {
	return w.advancePaid
}

// DueAmount returns earned salary minus advances as a raw decimal. The result
// can be negative: paying a worker ahead of earned salary is normal practice,
// and the negative balance records the prepayment.
func (w *Worker) DueAmount() decimal.Decimal {
	return w.totalSalary.Amount().Sub(w.advancePaid.Amount())
}

// LastPaymentDate returns when the worker was last paid, or nil if never.
func (w *Worker) LastPaymentDate() *time.Time {
	return w.lastPaymentDate
}

// IsActive reports whether the worker is currently employed.
func (w *Worker) IsActive() bool {
	return w.isActive
}

// Version returns the optimistic concurrency version of the loaded record.
func (w *Worker) Version() int {
	return w.version
}

// RecordWork accrues completed work: quantity units are added to the total and
// the salary grows by rate x quantity. Quantity is interpreted in the unit of
// the worker's rate type (pieces, hours, days, or months).
func (w *Worker) RecordWork(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 10000)
	}

	w.totalWork += quantity
	w.totalSalary = w.totalSalary.Add(w.details.RatePerWork.MulInt(quantity))
	return nil
}

// RecordPayment records an advance/salary payment to the worker. Payments may
// exceed the earned salary; the due balance simply goes negative.
func (w *Worker) RecordPayment(amount kernel.Money, at time.Time) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrWorkerPaymentAmountIsInvalid
	}

	w.advancePaid = w.advancePaid.Add(amount)
	w.lastPaymentDate = &at
	return nil
}

// Deactivate marks the worker as no longer employed. Existing order
// assignments are untouched; deletion is always soft.
func (w *Worker) Deactivate() {
	w.isActive = false
}

// Activate marks the worker as employed again.
func (w *Worker) Activate() {
	w.isActive = true
}

func validateDetails(details Details) error {
	var errsList []error

	if details.Name == "" {
		errsList = append(errsList, ErrNameIsRequired)
	}
	if details.Phone == "" {
		errsList = append(errsList, ErrPhoneIsRequired)
	}
	if err := details.WorkType.Validate(); err != nil {
		errsList = append(errsList, err)
	}
	if err := details.RateType.Validate(); err != nil {
		errsList = append(errsList, err)
	}
	if err := details.RatePerWork.Validate(); err != nil {
		errsList = append(errsList, err)
	}

	return errors.Join(errsList...)
}
