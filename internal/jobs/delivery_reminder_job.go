package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
)

// ReminderPayload is attached to delivery reminder events so dashboards can
// show who to call without a follow-up lookup.
type ReminderPayload struct {
	OrderID      string `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	ItemName     string `json:"itemName"`
	Status       string `json:"status"`
	DueAmount    string `json:"dueAmount"`
	DeliveryDate string `json:"deliveryDate"`
}

// DeliveryReminderJob periodically scans for orders whose delivery date is
// approaching and publishes a reminder event per order. Delivered and
// cancelled orders are excluded by the repository.
type DeliveryReminderJob struct {
	uowFactory commands.OrderUoWFactory
	publisher  ports.EventPublisher
	schedule   string
	window     time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryReminderJob creates the reminder job. The schedule is a
// six-field cron expression; window is how far ahead of now the scan looks
// for due deliveries.
func NewDeliveryReminderJob(
	uowFactory commands.OrderUoWFactory,
	publisher ports.EventPublisher,
	schedule string,
	window time.Duration,
	logger *slog.Logger,
) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		schedule:   schedule,
		window:     window,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_reminder_job"),
	}
}

// Start schedules the reminder scan.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started",
		"schedule", j.schedule, "window", j.window.String())
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}

func (j *DeliveryReminderJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	// The scan only reads. Rolling back releases the transaction.
	defer func() { _ = uow.Rollback(ctx) }()

	now := time.Now()
	due, err := uow.OrderRepository().GetDueBetween(ctx, now, now.Add(j.window))
	if err != nil {
		return err
	}

	for _, o := range due {
		// Best effort: a lost reminder resurfaces on the next scan.
		_ = j.publisher.Publish(ctx, newReminderEvent(o, now))
	}

	if len(due) > 0 {
		j.logger.InfoContext(ctx, "Delivery reminders published", "count", len(due))
	}
	return nil
}

func newReminderEvent(o *order.Order, at time.Time) ports.Event {
	details := o.Details()
	return ports.Event{
		Name:       ports.EventDeliveryReminder,
		BranchID:   details.BranchID,
		OccurredAt: at,
		Payload: ReminderPayload{
			OrderID:      o.ID().String(),
			OrderNumber:  o.OrderNumber(),
			CustomerName: details.CustomerName,
			Phone:        details.Phone,
			ItemName:     details.ItemName,
			Status:       o.Status().String(),
			DueAmount:    o.DueAmount().String(),
			DeliveryDate: details.DeliveryDate.Format(time.RFC3339),
		},
	}
}
