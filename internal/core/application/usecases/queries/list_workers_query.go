package queries

import (
	"errors"
	"time"

	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListWorkersQueryIsNotConstructed = errors.New(
	"ListWorkersQuery must be created via NewListWorkersQuery constructor",
)

// ListWorkersQuery retrieves the worker roster with payroll balances.
type ListWorkersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewListWorkersQuery creates a query for the worker roster. With activeOnly
// set, deactivated workers are excluded.
func NewListWorkersQuery(activeOnly bool) ListWorkersQuery {
	return ListWorkersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListWorkersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkersQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated workers are excluded.
func (q ListWorkersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// WorkerResponse is one row of the worker roster. DueAmount may be negative
// when advances exceed the salary earned so far.
type WorkerResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address,omitempty"`
	WorkType        string          `json:"workType"`
	RatePerWork     decimal.Decimal `json:"ratePerWork"`
	RateType        string          `json:"rateType"`
	TotalWork       int             `json:"totalWork"`
	TotalSalary     decimal.Decimal `json:"totalSalary"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	DueAmount       decimal.Decimal `json:"dueAmount"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
	IsActive        bool            `json:"isActive"`
	JoinDate        time.Time       `json:"joinDate"`
}
