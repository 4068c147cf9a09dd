package rabbitmq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tailorshop/internal/core/ports"
)

func TestRoutingKey(t *testing.T) {
	t.Run("should scope the key to the branch", func(t *testing.T) {
		key := routingKey(ports.Event{Name: ports.EventOrderCreated, BranchID: "dhanmondi"})
		assert.Equal(t, "branch.dhanmondi.order.new", key)
	})

	t.Run("should use the all segment for branchless events", func(t *testing.T) {
		key := routingKey(ports.Event{Name: ports.EventDeliveryReminder})
		assert.Equal(t, "branch.all.delivery.reminder", key)
	})

	t.Run("should replace every colon in the event name", func(t *testing.T) {
		key := routingKey(ports.Event{Name: ports.EventDuePaid, BranchID: "uttara"})
		assert.Equal(t, "branch.uttara.due.paid", key)
	})
}
