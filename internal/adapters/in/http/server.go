package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/worker"
)

// Server exposes the order ledger over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	recordPaymentHandler       commands.RecordPaymentCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	assignWorkerHandler        commands.AssignWorkerCommandHandler
	createWorkerHandler        commands.CreateWorkerCommandHandler
	recordWorkerWorkHandler    commands.RecordWorkerWorkCommandHandler
	recordWorkerPaymentHandler commands.RecordWorkerPaymentCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	listOrdersHandler  queries.ListOrdersQueryHandler
	orderStatsHandler  queries.OrderStatsQueryHandler
	listWorkersHandler queries.ListWorkersQueryHandler
	reportHandler      queries.ReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignWorkerHandler commands.AssignWorkerCommandHandler,
	createWorkerHandler commands.CreateWorkerCommandHandler,
	recordWorkerWorkHandler commands.RecordWorkerWorkCommandHandler,
	recordWorkerPaymentHandler commands.RecordWorkerPaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	orderStatsHandler queries.OrderStatsQueryHandler,
	listWorkersHandler queries.ListWorkersQueryHandler,
	reportHandler queries.ReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		recordPaymentHandler:       recordPaymentHandler,
		cancelOrderHandler:         cancelOrderHandler,
		assignWorkerHandler:        assignWorkerHandler,
		createWorkerHandler:        createWorkerHandler,
		recordWorkerWorkHandler:    recordWorkerWorkHandler,
		recordWorkerPaymentHandler: recordWorkerPaymentHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		orderStatsHandler:          orderStatsHandler,
		listWorkersHandler:         listWorkersHandler,
		reportHandler:              reportHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(MetricsMiddleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", MetricsHandler())

	api := e.Group("/api/v1")

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/stats", s.OrderStats)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.DELETE("/:id", s.CancelOrder)
	orders.POST("/:id/payments", s.RecordPayment)
	orders.POST("/:id/worker", s.AssignWorker)

	workers := api.Group("/workers")
	workers.POST("", s.CreateWorker)
	workers.GET("", s.ListWorkers)
	workers.POST("/:id/work", s.RecordWorkerWork)
	workers.POST("/:id/payments", s.RecordWorkerPayment)

	api.POST("/reports", s.Report)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, okMessage("healthy", nil))
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	details, err := req.toDetails()
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, details)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	recordOrderOperation("create", err)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// ListOrders handles GET /api/v1/orders - lists orders with filters and paging.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	filter := queries.ListOrdersFilter{
		Status:   ctx.QueryParam("status"),
		Search:   ctx.QueryParam("search"),
		BranchID: ctx.QueryParam("branch"),
		SortBy:   ctx.QueryParam("sortBy"),
		SortDesc: sortDescending(ctx.QueryParam("sortOrder")),
	}

	var err error
	if filter.From, err = parseTimeParam(ctx.QueryParam("startDate")); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid startDate"))
	}
	if filter.To, err = parseTimeParam(ctx.QueryParam("endDate")); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid endDate"))
	}

	query, err := queries.NewListOrdersQuery(filter, page, limit)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ok(response))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid order id"))
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PUT /api/v1/orders/:id - applies field changes, an
// optional status move, and an optional payment in one request.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid order id"))
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	patch, err := req.toPatch()
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var status *order.Status
	if req.Status != "" {
		parsed, err := order.StatusFromString(req.Status)
		if err != nil {
			return s.errorResponse(ctx, err)
		}
		status = &parsed
	}

	var payment *commands.OrderPaymentInput
	if pay := req.payment(); pay != nil {
		input, err := pay.toInput()
		if err != nil {
			return s.errorResponse(ctx, err)
		}
		payment = &input
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, patch, status, req.StatusNotes, payment)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	recordOrderOperation("update", err)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CancelOrder handles DELETE /api/v1/orders/:id - soft-cancels an order.
// Cancelling an already cancelled order succeeds without changing anything.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid order id"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	recordOrderOperation("cancel", err)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okMessage("Order cancelled", nil))
}

// RecordPayment handles POST /api/v1/orders/:id/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid order id"))
	}

	var req PaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, amount, req.Method, req.TransactionID, req.CollectedBy)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	recordOrderOperation("payment", err)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AssignWorker handles POST /api/v1/orders/:id/worker.
func (s *Server) AssignWorker(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid order id"))
	}

	var req AssignWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid worker id"))
	}

	cmd, err := commands.NewAssignWorkerCommand(orderID, workerID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	err = s.assignWorkerHandler.Handle(ctx.Request().Context(), cmd)
	recordOrderOperation("assign_worker", err)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// OrderStats handles GET /api/v1/orders/stats - the dashboard snapshot.
func (s *Server) OrderStats(ctx echo.Context) error {
	from, err := parseTimeParam(ctx.QueryParam("startDate"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid startDate"))
	}
	to, err := parseTimeParam(ctx.QueryParam("endDate"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid endDate"))
	}

	query := queries.NewOrderStatsQuery(ctx.QueryParam("branch"), from, to)

	response, err := s.orderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ok(response))
}

// CreateWorker handles POST /api/v1/workers - registers a new worker.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var req CreateWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	details, err := req.toDetails()
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	workerID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkerCommand(workerID, details)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.createWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, okMessage("Worker created", map[string]string{
		"id": workerID.String(),
	}))
}

// ListWorkers handles GET /api/v1/workers - lists workers with payroll totals.
func (s *Server) ListWorkers(ctx echo.Context) error {
	query := queries.NewListWorkersQuery(ctx.QueryParam("active") == "true")

	workers, err := s.listWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ok(workers))
}

// RecordWorkerWork handles POST /api/v1/workers/:id/work - adds completed
// pieces to the worker's payroll totals.
func (s *Server) RecordWorkerWork(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid worker id"))
	}

	var req WorkerWorkRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	cmd, err := commands.NewRecordWorkerWorkCommand(workerID, req.Quantity)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.recordWorkerWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okMessage("Work recorded", nil))
}

// RecordWorkerPayment handles POST /api/v1/workers/:id/payments - pays a
// worker, as salary or as an advance.
func (s *Server) RecordWorkerPayment(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid worker id"))
	}

	var req WorkerPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewRecordWorkerPaymentCommand(workerID, amount)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.recordWorkerPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okMessage("Payment recorded", nil))
}

// Report handles POST /api/v1/reports - generates a business report.
func (s *Server) Report(ctx echo.Context) error {
	var req ReportRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	query, err := queries.NewReportQuery(req.Type, req.Format, req.BranchID, req.StartDate, req.EndDate)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.reportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ok(response))
}

// respondWithOrder returns the full read model of an order. Mutations use it
// so the client sees the post-write state without a second round trip.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(status, ok(response))
}

func (s *Server) errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, fail(errorMessage(err, status)))
}

// sortDescending reads the sortOrder query parameter. Anything other than
// "asc", in any casing, sorts descending.
func sortDescending(value string) bool {
	return strings.ToLower(value) != "asc"
}

// parseTimeParam accepts RFC 3339 timestamps or plain dates. An empty value
// means the filter is absent.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r CreateOrderRequest) toDetails() (order.Details, error) {
	total, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return order.Details{}, err
	}
	advance, err := kernel.NewMoney(r.AdvancePaid)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		BranchID:     r.BranchID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		ItemName:     r.ItemName,
		Quantity:     r.Quantity,
		Measurements: r.Measurements,
		Notes:        r.Notes,
		TotalAmount:  total,
		AdvancePaid:  advance,
		DeliveryDate: r.DeliveryDate,
	}, nil
}

func (r UpdateOrderRequest) toPatch() (order.Patch, error) {
	patch := order.Patch{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		ItemName:     r.ItemName,
		Quantity:     r.Quantity,
		Measurements: r.Measurements,
		Notes:        r.Notes,
		DeliveryDate: r.DeliveryDate,
	}

	if r.TotalAmount != nil {
		total, err := kernel.NewMoney(*r.TotalAmount)
		if err != nil {
			return order.Patch{}, err
		}
		patch.TotalAmount = &total
	}

	return patch, nil
}

func (r PaymentRequest) toInput() (commands.OrderPaymentInput, error) {
	amount, err := kernel.NewMoney(r.Amount)
	if err != nil {
		return commands.OrderPaymentInput{}, err
	}

	return commands.OrderPaymentInput{
		Amount:        amount,
		Method:        r.Method,
		TransactionID: r.TransactionID,
		CollectedBy:   r.CollectedBy,
	}, nil
}

func (r CreateWorkerRequest) toDetails() (worker.Details, error) {
	workType, err := worker.WorkTypeFromString(r.WorkType)
	if err != nil {
		return worker.Details{}, err
	}
	rateType, err := worker.RateTypeFromString(r.RateType)
	if err != nil {
		return worker.Details{}, err
	}
	rate, err := kernel.NewMoney(r.RatePerWork)
	if err != nil {
		return worker.Details{}, err
	}

	joinDate := time.Now()
	if r.JoinDate != nil {
		joinDate = *r.JoinDate
	}

	return worker.Details{
		Name:        r.Name,
		Phone:       r.Phone,
		Address:     r.Address,
		WorkType:    workType,
		RatePerWork: rate,
		RateType:    rateType,
		Notes:       r.Notes,
		JoinDate:    joinDate,
	}, nil
}
