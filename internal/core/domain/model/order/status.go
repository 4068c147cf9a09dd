package order

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The state machine is deliberately unconstrained: any status may follow any
// other, including re-opening a Delivered order. This favors operational
// flexibility in the shop over strict workflow enforcement. Cancelled is
// conventionally terminal but not enforced; cancelling an already cancelled
// order is a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every new order.
	Pending

	// Cutting indicates fabric cutting is in progress.
	Cutting

	// Sewing indicates stitching is in progress.
	Sewing

	// Ready indicates the item is finished and awaiting pickup or delivery.
	Ready

	// Delivered indicates the customer has received the item.
	Delivered

	// Cancelled marks a soft-deleted order. Records are never physically
	// removed; cancellation is the terminal convention.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cutting:   "Cutting",
		Sewing:    "Sewing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Cutting:   "Cutting",
		Sewing:    "Sewing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the API/persistence representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
