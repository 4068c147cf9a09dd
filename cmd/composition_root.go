package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"tailorshop/internal/adapters/in/http"
	"tailorshop/internal/adapters/out/postgres"
	"tailorshop/internal/adapters/out/rabbitmq"
	"tailorshop/internal/adapters/out/relay"
	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	relay      *relay.Relay
	amqp       *rabbitmq.Publisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters together. When the config carries an
// AMQP URL events go to the broker; otherwise they stay on the in-process
// relay. Either way the publisher is wrapped with logging.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		relay:      relay.NewRelay(),
		logger:     logger,
	}

	var inner ports.EventPublisher = root.relay
	if config.AmqpURL != "" {
		amqpPublisher, err := rabbitmq.NewPublisher(config.AmqpURL, config.AmqpExchange)
		if err != nil {
			return nil, err
		}
		root.amqp = amqpPublisher
		inner = amqpPublisher
	}
	root.publisher = relay.NewLoggingPublisher(inner, logger)

	return root, nil
}

// Relay exposes the in-process event feed for future socket consumers.
func (c *CompositionRoot) Relay() *relay.Relay {
	return c.relay
}

// Close releases the adapters that hold connections.
func (c *CompositionRoot) Close() {
	if c.amqp != nil {
		c.amqp.Close()
	}
	c.relay.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workerUoWFactory() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.fullUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	return commands.NewCreateWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateRecordWorkerWorkCommandHandler() commands.RecordWorkerWorkCommandHandler {
	return commands.NewRecordWorkerWorkCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateRecordWorkerPaymentCommandHandler() commands.RecordWorkerPaymentCommandHandler {
	return commands.NewRecordWorkerPaymentCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStatsQueryHandler() queries.OrderStatsQueryHandler {
	return queries.NewOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWorkersQueryHandler() queries.ListWorkersQueryHandler {
	return queries.NewListWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateReportQueryHandler() queries.ReportQueryHandler {
	return queries.NewReportQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP surface over the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateRecordPaymentCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAssignWorkerCommandHandler(),
		c.CreateCreateWorkerCommandHandler(),
		c.CreateRecordWorkerWorkCommandHandler(),
		c.CreateRecordWorkerPaymentCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateOrderStatsQueryHandler(),
		c.CreateListWorkersQueryHandler(),
		c.CreateReportQueryHandler(),
	)
}

// CreateJobManager builds the background jobs from the config's schedule.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	window := time.Duration(config.ReminderWindowHours) * time.Hour

	reminderJob := jobs.NewDeliveryReminderJob(
		c.orderUoWFactory(),
		c.publisher,
		config.ReminderCron,
		window,
		c.logger,
	)

	return jobs.NewJobManager(reminderJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
