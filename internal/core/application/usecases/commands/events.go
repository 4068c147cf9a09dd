package commands

import (
	"time"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
)

// OrderEventPayload is the wire-friendly snapshot of an order attached to
// ledger events. Monetary amounts are decimal strings.
type OrderEventPayload struct {
	OrderID      string `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	TotalAmount  string `json:"totalAmount"`
	AdvancePaid  string `json:"advancePaid"`
	DueAmount    string `json:"dueAmount"`
}

// PaymentEventPayload describes a payment applied to an order.
type PaymentEventPayload struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	CollectedBy string `json:"collectedBy,omitempty"`
	DueAmount   string `json:"dueAmount"`
}

func newOrderEvent(name string, o *order.Order, at time.Time) ports.Event {
	return ports.Event{
		Name:       name,
		BranchID:   o.Details().BranchID,
		OccurredAt: at,
		Payload: OrderEventPayload{
			OrderID:      o.ID().String(),
			OrderNumber:  o.OrderNumber(),
			CustomerName: o.Details().CustomerName,
			Status:       o.Status().String(),
			TotalAmount:  o.TotalAmount().String(),
			AdvancePaid:  o.AdvancePaid().String(),
			DueAmount:    o.DueAmount().String(),
		},
	}
}
