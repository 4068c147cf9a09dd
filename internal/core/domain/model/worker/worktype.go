package worker

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// WorkType categorizes the craft a worker performs.
type WorkType int

const (
	// WorkTypeUnknown represents an invalid or undefined work type.
	WorkTypeUnknown WorkType = iota

	WorkTypeCutting
	WorkTypeSewing
	WorkTypeEmbroidery
	WorkTypeFinishing
	WorkTypeOther
)

func getWorkTypeStrings() map[WorkType]string {
	return map[WorkType]string{
		WorkTypeCutting:    "Cutting",
		WorkTypeSewing:     "Sewing",
		WorkTypeEmbroidery: "Embroidery",
		WorkTypeFinishing:  "Finishing",
		WorkTypeOther:      "Other",
	}
}

// WorkTypeFromString parses the API/persistence representation of a work type.
func WorkTypeFromString(s string) (WorkType, error) {
	for wt, str := range getWorkTypeStrings() {
		if str == s {
			return wt, nil
		}
	}
	return WorkTypeUnknown, errs.NewValueIsInvalidErrorWithCause("workType",
		fmt.Errorf("%q is not a valid work type", s))
}

// Validate checks that the WorkType is one of the defined categories.
func (wt WorkType) Validate() error {
	if _, ok := getWorkTypeStrings()[wt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("workType",
			fmt.Errorf("%d is not a valid work type", wt))
	}
	return nil
}

// String returns the human-readable name of the work type.
func (wt WorkType) String() string {
	if str, ok := getWorkTypeStrings()[wt]; ok {
		return str
	}
	return "Unknown"
}

// RateType defines the unit the worker's rate applies to.
type RateType int

const (
	// RateTypeUnknown represents an invalid or undefined rate type.
	RateTypeUnknown RateType = iota

	RatePerPiece
	RatePerHour
	RatePerDay
	RateMonthly
)

func getRateTypeStrings() map[RateType]string {
	return map[RateType]string{
		RatePerPiece: "per_piece",
		RatePerHour:  "per_hour",
		RatePerDay:   "per_day",
		RateMonthly:  "monthly",
	}
}

// RateTypeFromString parses the API/persistence representation of a rate type.
func RateTypeFromString(s string) (RateType, error) {
	for rt, str := range getRateTypeStrings() {
		if str == s {
			return rt, nil
		}
	}
	return RateTypeUnknown, errs.NewValueIsInvalidErrorWithCause("rateType",
		fmt.Errorf("%q is not a valid rate type", s))
}

// Validate checks that the RateType is one of the defined units.
func (rt RateType) Validate() error {
	if _, ok := getRateTypeStrings()[rt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rateType",
			fmt.Errorf("%d is not a valid rate type", rt))
	}
	return nil
}

// String returns the snake_case name of the rate type.
func (rt RateType) String() string {
	if str, ok := getRateTypeStrings()[rt]; ok {
		return str
	}
	return "Unknown"
}
