package queries

import (
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrSortFieldIsInvalid = errors.New("sort field is not allowed")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// sortColumns whitelists the sortable fields and maps them to columns.
// Anything outside this map is rejected, never interpolated into SQL.
var sortColumns = map[string]string{
	"orderDate":    "order_date",
	"deliveryDate": "delivery_date",
	"totalAmount":  "total_amount",
	"customerName": "customer_name",
	"orderNumber":  "order_number",
}

// ListOrdersFilter narrows the order listing. Zero values mean "no filter".
// Search matches order number, customer name, phone, and item name,
// case-insensitively.
type ListOrdersFilter struct {
	Status   string
	Search   string
	BranchID string
	From     *time.Time
	To       *time.Time
	SortBy   string
	SortDesc bool
}

// ListOrdersQuery retrieves a filtered, paginated page of orders.
//
// Example:
//
//	query, err := NewListOrdersQuery(ListOrdersFilter{Status: "Pending"}, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders total\n", page.Pagination.TotalItems)
type ListOrdersQuery struct {
	filter ListOrdersFilter
	status order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of the order list.
// A zero page or limit falls back to the defaults; the limit is capped.
func NewListOrdersQuery(filter ListOrdersFilter, page, limit int) (ListOrdersQuery, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	status := order.Unknown
	if filter.Status != "" {
		parsed, err := order.StatusFromString(filter.Status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		status = parsed
	}

	if filter.SortBy != "" {
		if _, ok := sortColumns[filter.SortBy]; !ok {
			return ListOrdersQuery{}, ErrSortFieldIsInvalid
		}
	}

	return ListOrdersQuery{
		filter: filter,
		status: status,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// Status returns the parsed status filter, order.Unknown when unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// OrderSummaryResponse is one row of the order listing. The histories are
// omitted; fetch a single order for those.
type OrderSummaryResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	ItemName     string          `json:"itemName"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AdvancePaid  decimal.Decimal `json:"advancePaid"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	Status       string          `json:"status"`
	WorkerID     *string         `json:"workerId,omitempty"`
	OrderDate    time.Time       `json:"orderDate"`
	DeliveryDate time.Time       `json:"deliveryDate"`
}

// PaginationResponse describes the position of a page within the full result.
type PaginationResponse struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// ListOrdersQueryResponse is one page of the order listing.
type ListOrdersQueryResponse struct {
	Items      []OrderSummaryResponse `json:"items"`
	Pagination PaginationResponse     `json:"pagination"`
}
