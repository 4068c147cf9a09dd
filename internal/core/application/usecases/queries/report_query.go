package queries

import (
	"errors"
	"time"

	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrReportQueryIsNotConstructed = errors.New(
		"ReportQuery must be created via NewReportQuery constructor",
	)
	ErrReportTypeIsInvalid   = errors.New("report type is not supported")
	ErrReportFormatIsInvalid = errors.New("report format is not supported")
	ErrReportRangeIsInvalid  = errors.New("report end date must be after start date")
)

// Report types.
const (
	ReportSales             = "sales"
	ReportCustomerAnalysis  = "customer-analysis"
	ReportWorkerPerformance = "worker-performance"
)

// ReportFormatJSON is the only supported output format. The type field is
// kept in the request shape so rendered formats can be added without
// breaking clients.
const ReportFormatJSON = "json"

// ReportQuery builds one of the aggregated business reports over a date
// range.
type ReportQuery struct {
	reportType string
	branchID   string
	from       time.Time
	to         time.Time

	guard guard.ConstructorGuard
}

// NewReportQuery creates a report query. The format defaults to json when
// empty; anything else is rejected.
func NewReportQuery(reportType, format, branchID string, from, to time.Time) (ReportQuery, error) {
	switch reportType {
	case ReportSales, ReportCustomerAnalysis, ReportWorkerPerformance:
	default:
		return ReportQuery{}, ErrReportTypeIsInvalid
	}

	if format != "" && format != ReportFormatJSON {
		return ReportQuery{}, ErrReportFormatIsInvalid
	}

	if !to.After(from) {
		return ReportQuery{}, ErrReportRangeIsInvalid
	}

	return ReportQuery{
		reportType: reportType,
		branchID:   branchID,
		from:       from,
		to:         to,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ReportQuery) Validate() error {
	return q.guard.Validate(ErrReportQueryIsNotConstructed)
}

// Type returns the report type.
func (q ReportQuery) Type() string {
	return q.reportType
}

// BranchID returns the branch filter, empty for all branches.
func (q ReportQuery) BranchID() string {
	return q.branchID
}

// From returns the inclusive lower bound of the reporting range.
func (q ReportQuery) From() time.Time {
	return q.from
}

// To returns the exclusive upper bound of the reporting range.
func (q ReportQuery) To() time.Time {
	return q.to
}

// SalesReportRow is one day of the sales report.
type SalesReportRow struct {
	Date        string          `json:"date"`
	Orders      int64           `json:"orders"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Advance     decimal.Decimal `json:"advance"`
	Due         decimal.Decimal `json:"due"`
}

// CustomerReportRow is one customer in the customer analysis report,
// identified by phone number.
type CustomerReportRow struct {
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Orders        int64           `json:"orders"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	LastOrderDate time.Time       `json:"lastOrderDate"`
}

// WorkerReportRow is one worker in the performance report. AssignedOrders
// and AssignedAmount count the orders assigned to the worker within the
// report range, cancelled orders excluded.
type WorkerReportRow struct {
	Name           string          `json:"name"`
	WorkType       string          `json:"workType"`
	TotalWork      int             `json:"totalWork"`
	TotalSalary    decimal.Decimal `json:"totalSalary"`
	AdvancePaid    decimal.Decimal `json:"advancePaid"`
	DueAmount      decimal.Decimal `json:"dueAmount"`
	IsActive       bool            `json:"isActive"`
	AssignedOrders int64           `json:"assignedOrders"`
	AssignedAmount decimal.Decimal `json:"assignedAmount"`
}

// ReportQueryResponse carries exactly one report body matching Type.
type ReportQueryResponse struct {
	Type      string              `json:"type"`
	From      time.Time           `json:"startDate"`
	To        time.Time           `json:"endDate"`
	Sales     []SalesReportRow    `json:"sales,omitempty"`
	Customers []CustomerReportRow `json:"customers,omitempty"`
	Workers   []WorkerReportRow   `json:"workers,omitempty"`
}
