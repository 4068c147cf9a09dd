package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /orders. Monetary amounts accept
// JSON numbers or decimal strings.
type CreateOrderRequest struct {
	BranchID     string          `json:"branchId"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	ItemName     string          `json:"itemName"`
	Quantity     int             `json:"quantity"`
	Measurements string          `json:"measurements"`
	Notes        string          `json:"notes"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AdvancePaid  decimal.Decimal `json:"advancePaid"`
	DeliveryDate time.Time       `json:"deliveryDate"`
}

// PaymentRequest is the body of POST /orders/:id/payments and the optional
// payment section of an order update.
type PaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId"`
	CollectedBy   string          `json:"collectedBy"`
}

// UpdateOrderRequest is the body of PUT /orders/:id. Absent fields stay
// untouched; status and payment are optional extras applied after the field
// changes. A payment rides along either as the flat paymentAmount group or
// as a nested payment object.
type UpdateOrderRequest struct {
	CustomerName *string          `json:"customerName"`
	Phone        *string          `json:"phone"`
	Address      *string          `json:"address"`
	ItemName     *string          `json:"itemName"`
	Quantity     *int             `json:"quantity"`
	Measurements *string          `json:"measurements"`
	Notes        *string          `json:"notes"`
	TotalAmount  *decimal.Decimal `json:"totalAmount"`
	DeliveryDate *time.Time       `json:"deliveryDate"`

	Status      string `json:"status"`
	StatusNotes string `json:"statusNotes"`

	PaymentAmount *decimal.Decimal `json:"paymentAmount"`
	PaymentMethod string           `json:"paymentMethod"`
	TransactionID string           `json:"transactionId"`
	CollectedBy   string           `json:"collectedBy"`

	Payment *PaymentRequest `json:"payment"`
}

// payment collapses the two accepted payment shapes into one. The nested
// object wins when both are present.
func (r UpdateOrderRequest) payment() *PaymentRequest {
	if r.Payment != nil {
		return r.Payment
	}
	if r.PaymentAmount != nil {
		return &PaymentRequest{
			Amount:        *r.PaymentAmount,
			Method:        r.PaymentMethod,
			TransactionID: r.TransactionID,
			CollectedBy:   r.CollectedBy,
		}
	}
	return nil
}

// AssignWorkerRequest is the body of POST /orders/:id/worker.
type AssignWorkerRequest struct {
	WorkerID string `json:"workerId"`
}

// CreateWorkerRequest is the body of POST /workers.
type CreateWorkerRequest struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	WorkType    string          `json:"workType"`
	RatePerWork decimal.Decimal `json:"ratePerWork"`
	RateType    string          `json:"rateType"`
	Notes       string          `json:"notes"`
	JoinDate    *time.Time      `json:"joinDate"`
}

// WorkerWorkRequest is the body of POST /workers/:id/work.
type WorkerWorkRequest struct {
	Quantity int `json:"quantity"`
}

// WorkerPaymentRequest is the body of POST /workers/:id/payments.
type WorkerPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ReportRequest is the body of POST /reports.
type ReportRequest struct {
	Type      string    `json:"type"`
	Format    string    `json:"format"`
	BranchID  string    `json:"branchId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
