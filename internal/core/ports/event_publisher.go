package ports

import (
	"context"
	"time"
)

// Event names published by the order ledger.
const (
	// EventOrderCreated is broadcast after an order is committed.
	EventOrderCreated = "order:new"
	// EventOrderUpdated is broadcast after any committed order mutation,
	// including cancellation and worker assignment.
	EventOrderUpdated = "order:update"
	// EventDuePaid is broadcast after a payment is applied to an order.
	EventDuePaid = "due:paid"
	// EventDeliveryReminder is broadcast by the reminder job for orders
	// approaching their delivery date.
	EventDeliveryReminder = "delivery:reminder"
)

// Event is a state-change notification scoped to a branch. Events are
// best-effort: they carry no delivery guarantee and are never a source of
// truth. An empty BranchID means the event is not branch specific.
type Event struct {
	Name       string    `json:"name"`
	BranchID   string    `json:"branchId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// EventPublisher broadcasts events to interested listeners (UI clients,
// sockets, queues). Implementations must not block mutations: publishing is
// fire-and-forget and a failed publish never fails a committed write.
//
// The publisher is injected into command handlers explicitly; there is no
// process-wide notification singleton.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
