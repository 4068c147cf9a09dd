// Package queries contains read-only operations over the order ledger and
// worker roster. Query handlers read the database directly and return
// response structs shaped for the HTTP layer; they never touch domain
// aggregates or hold write transactions.
package queries

import (
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full timeline and payment
// history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TimelineEntryResponse is one status change in an order's history.
type TimelineEntryResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes,omitempty"`
}

// PaymentResponse is one payment record in an order's history.
type PaymentResponse struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId,omitempty"`
	CollectedBy   string          `json:"collectedBy,omitempty"`
}

// GetOrderQueryResponse is the full read model of one order. DueAmount is
// computed from the stored totals, never stored itself.
type GetOrderQueryResponse struct {
	ID           string                  `json:"id"`
	OrderNumber  string                  `json:"orderNumber"`
	BranchID     string                  `json:"branchId,omitempty"`
	CustomerName string                  `json:"customerName"`
	Phone        string                  `json:"phone"`
	Address      string                  `json:"address,omitempty"`
	ItemName     string                  `json:"itemName"`
	Quantity     int                     `json:"quantity"`
	Measurements string                  `json:"measurements,omitempty"`
	Notes        string                  `json:"notes,omitempty"`
	TotalAmount  decimal.Decimal         `json:"totalAmount"`
	AdvancePaid  decimal.Decimal         `json:"advancePaid"`
	DueAmount    decimal.Decimal         `json:"dueAmount"`
	Status       string                  `json:"status"`
	WorkerID     *string                 `json:"workerId,omitempty"`
	OrderDate    time.Time               `json:"orderDate"`
	DeliveryDate time.Time               `json:"deliveryDate"`
	Timeline     []TimelineEntryResponse `json:"timeline"`
	Payments     []PaymentResponse       `json:"payments"`
}
