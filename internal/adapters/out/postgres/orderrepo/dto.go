// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. The two
// histories (timeline and payments) are stored as jsonb documents on the
// order row: they are append-only, always loaded with the order, and never
// queried independently.
package orderrepo

import (
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary amounts use numeric columns so no rounding sneaks in between the
// domain and the database.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber  string    `gorm:"size:32;uniqueIndex"`
	BranchID     string    `gorm:"size:64;index"`
	CustomerName string    `gorm:"size:255;index"`
	Phone        string    `gorm:"size:32;index"`
	Address      string
	ItemName     string `gorm:"size:255"`
	Quantity     int
	Measurements string
	Notes        string
	TotalAmount  decimal.Decimal    `gorm:"type:numeric(18,4)"`
	AdvancePaid  decimal.Decimal    `gorm:"type:numeric(18,4)"`
	Status       int                `gorm:"index"`
	WorkerID     *uuid.UUID         `gorm:"type:uuid;index"`
	OrderDate    time.Time          `gorm:"index"`
	DeliveryDate time.Time          `gorm:"index"`
	Timeline     []TimelineEntryDTO `gorm:"type:jsonb;serializer:json"`
	Payments     []PaymentDTO       `gorm:"type:jsonb;serializer:json"`
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// TimelineEntryDTO is one status change in the order's jsonb timeline.
// Status is stored as its string form so the document stays readable from
// SQL and stable across status enum reordering.
type TimelineEntryDTO struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`
}

// PaymentDTO is one payment record in the order's jsonb payment history.
type PaymentDTO struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId,omitempty"`
	CollectedBy   string          `json:"collectedBy,omitempty"`
}

// CounterDTO backs the sequential order number. A single named row is
// incremented atomically inside the creation transaction.
type CounterDTO struct {
	Name  string `gorm:"size:32;primaryKey"`
	Value int64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "order_counters"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	timeline := aggregate.Timeline()
	timelineDTOs := make([]TimelineEntryDTO, 0, len(timeline))
	for _, entry := range timeline {
		timelineDTOs = append(timelineDTOs, TimelineEntryDTO{
			Status: entry.Status().String(),
			Date:   entry.Date(),
			Notes:  entry.Notes(),
		})
	}

	payments := aggregate.Payments()
	paymentDTOs := make([]PaymentDTO, 0, len(payments))
	for _, payment := range payments {
		paymentDTOs = append(paymentDTOs, PaymentDTO{
			Amount:        payment.Amount().Amount(),
			Date:          payment.Date(),
			Method:        payment.Method(),
			TransactionID: payment.TransactionID(),
			CollectedBy:   payment.CollectedBy(),
		})
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderNumber:  aggregate.OrderNumber(),
		BranchID:     details.BranchID,
		CustomerName: details.CustomerName,
		Phone:        details.Phone,
		Address:      details.Address,
		ItemName:     details.ItemName,
		Quantity:     details.Quantity,
		Measurements: details.Measurements,
		Notes:        details.Notes,
		TotalAmount:  details.TotalAmount.Amount(),
		AdvancePaid:  details.AdvancePaid.Amount(),
		Status:       int(aggregate.Status()),
		WorkerID:     workerID,
		OrderDate:    aggregate.OrderDate(),
		DeliveryDate: details.DeliveryDate,
		Timeline:     timelineDTOs,
		Payments:     paymentDTOs,
		Version:      aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	advance, err := kernel.NewMoney(dto.AdvancePaid)
	if err != nil {
		return nil, err
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entryDTO := range dto.Timeline {
		status, statusErr := order.StatusFromString(entryDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}

		entry, entryErr := order.NewTimelineEntry(status, entryDTO.Date, entryDTO.Notes)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		amount, amountErr := kernel.NewMoney(paymentDTO.Amount)
		if amountErr != nil {
			return nil, amountErr
		}

		payment, paymentErr := order.NewPayment(
			amount, paymentDTO.Date, paymentDTO.Method, paymentDTO.TransactionID, paymentDTO.CollectedBy,
		)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, payment)
	}

	details := order.Details{
		BranchID:     dto.BranchID,
		CustomerName: dto.CustomerName,
		Phone:        dto.Phone,
		Address:      dto.Address,
		ItemName:     dto.ItemName,
		Quantity:     dto.Quantity,
		Measurements: dto.Measurements,
		Notes:        dto.Notes,
		TotalAmount:  total,
		AdvancePaid:  advance,
		DeliveryDate: dto.DeliveryDate,
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, details, order.Status(dto.Status), workerID,
		dto.OrderDate, timeline, payments, dto.Version,
	)
}
