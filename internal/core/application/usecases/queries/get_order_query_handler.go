package queries

import (
	"context"
	"encoding/json"
	"time"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// orderRow is the scan target for order reads. The jsonb histories arrive as
// raw bytes and are decoded after the scan.
type orderRow struct {
	ID           uuid.UUID
	OrderNumber  string
	BranchID     string
	CustomerName string
	Phone        string
	Address      string
	ItemName     string
	Quantity     int
	Measurements string
	Notes        string
	TotalAmount  decimal.Decimal
	AdvancePaid  decimal.Decimal
	Status       int
	WorkerID     *uuid.UUID
	OrderDate    time.Time
	DeliveryDate time.Time
	Timeline     []byte
	Payments     []byte
}

// Handle executes the query. Returns a not-found error when no order matches.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_number, branch_id, customer_name, phone, address,
			item_name, quantity, measurements, notes,
			total_amount, advance_paid, status, worker_id,
			order_date, delivery_date, timeline, payments
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return row.toResponse()
}

func (r orderRow) toResponse() (GetOrderQueryResponse, error) {
	timeline := make([]TimelineEntryResponse, 0)
	if len(r.Timeline) > 0 {
		if err := json.Unmarshal(r.Timeline, &timeline); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	payments := make([]PaymentResponse, 0)
	if len(r.Payments) > 0 {
		if err := json.Unmarshal(r.Payments, &payments); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	status := order.Status(r.Status)
	if err := status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var workerID *string
	if r.WorkerID != nil {
		s := r.WorkerID.String()
		workerID = &s
	}

	return GetOrderQueryResponse{
		ID:           r.ID.String(),
		OrderNumber:  r.OrderNumber,
		BranchID:     r.BranchID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		ItemName:     r.ItemName,
		Quantity:     r.Quantity,
		Measurements: r.Measurements,
		Notes:        r.Notes,
		TotalAmount:  r.TotalAmount,
		AdvancePaid:  r.AdvancePaid,
		DueAmount:    r.TotalAmount.Sub(r.AdvancePaid),
		Status:       status.String(),
		WorkerID:     workerID,
		OrderDate:    r.OrderDate,
		DeliveryDate: r.DeliveryDate,
		Timeline:     timeline,
		Payments:     payments,
	}, nil
}
