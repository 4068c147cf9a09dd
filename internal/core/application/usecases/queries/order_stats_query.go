package queries

import (
	"errors"
	"time"

	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrderStatsQueryIsNotConstructed = errors.New(
	"OrderStatsQuery must be created via NewOrderStatsQuery constructor",
)

// OrderStatsQuery computes the dashboard aggregates: overall counts and
// amounts plus a per-status breakdown.
type OrderStatsQuery struct {
	branchID string
	from     *time.Time
	to       *time.Time

	guard guard.ConstructorGuard
}

// NewOrderStatsQuery creates a stats query. branchID and the date range are
// optional; with neither set the stats cover the whole ledger.
func NewOrderStatsQuery(branchID string, from, to *time.Time) OrderStatsQuery {
	return OrderStatsQuery{
		branchID: branchID,
		from:     from,
		to:       to,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q OrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrOrderStatsQueryIsNotConstructed)
}

// BranchID returns the branch filter, empty for all branches.
func (q OrderStatsQuery) BranchID() string {
	return q.branchID
}

// From returns the inclusive lower bound of the order date range.
func (q OrderStatsQuery) From() *time.Time {
	return q.from
}

// To returns the exclusive upper bound of the order date range.
func (q OrderStatsQuery) To() *time.Time {
	return q.to
}

// StatusCountResponse is one per-status slice of the stats.
type StatusCountResponse struct {
	Status      string          `json:"status"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// OrderStatsQueryResponse is the ledger dashboard snapshot. All numbers come
// from one read transaction, so the per-status counts always sum to
// TotalOrders.
type OrderStatsQueryResponse struct {
	TotalOrders   int64                 `json:"totalOrders"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	TotalAdvance  decimal.Decimal       `json:"totalAdvance"`
	TotalDue      decimal.Decimal       `json:"totalDue"`
	PendingOrders int64                 `json:"pendingOrders"`
	ReadyOrders   int64                 `json:"readyOrders"`
	ByStatus      []StatusCountResponse `json:"byStatus"`
}
