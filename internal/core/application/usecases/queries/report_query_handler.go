package queries

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportQueryHandler builds aggregated business reports straight from SQL.
// Cancelled orders are excluded from sales and customer reports: a cancelled
// order is kept for audit but is not revenue.
type ReportQueryHandler struct {
	db *gorm.DB
}

// NewReportQueryHandler creates a handler for report queries.
func NewReportQueryHandler(db *gorm.DB) ReportQueryHandler {
	return ReportQueryHandler{db: db}
}

// Handle executes the report query.
func (h ReportQueryHandler) Handle(ctx context.Context, query ReportQuery) (ReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportQueryResponse{}, err
	}

	response := ReportQueryResponse{
		Type: query.Type(),
		From: query.From(),
		To:   query.To(),
	}

	var err error
	switch query.Type() {
	case ReportSales:
		response.Sales, err = h.salesReport(ctx, query)
	case ReportCustomerAnalysis:
		response.Customers, err = h.customerReport(ctx, query)
	case ReportWorkerPerformance:
		response.Workers, err = h.workerReport(ctx, query)
	}
	if err != nil {
		return ReportQueryResponse{}, err
	}

	return response, nil
}

func (h ReportQueryHandler) orderScope(ctx context.Context, query ReportQuery) *gorm.DB {
	scope := h.db.WithContext(ctx).Table("orders").
		Where("order_date >= ? AND order_date < ?", query.From(), query.To()).
		Where("status != ?", int(order.Cancelled))
	if query.BranchID() != "" {
		scope = scope.Where("branch_id = ?", query.BranchID())
	}
	return scope
}

type salesRow struct {
	Day         time.Time
	Orders      int64
	TotalAmount decimal.Decimal
	Advance     decimal.Decimal
	Due         decimal.Decimal
}

func (h ReportQueryHandler) salesReport(ctx context.Context, query ReportQuery) ([]SalesReportRow, error) {
	var rows []salesRow
	err := h.orderScope(ctx, query).
		Select(`DATE_TRUNC('day', order_date) AS day,
			COUNT(*) AS orders,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(advance_paid), 0) AS advance,
			COALESCE(SUM(total_amount - advance_paid), 0) AS due`).
		Group("DATE_TRUNC('day', order_date)").
		Order("day").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	report := make([]SalesReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, SalesReportRow{
			Date:        row.Day.Format("2006-01-02"),
			Orders:      row.Orders,
			TotalAmount: row.TotalAmount,
			Advance:     row.Advance,
			Due:         row.Due,
		})
	}

	return report, nil
}

func (h ReportQueryHandler) customerReport(ctx context.Context, query ReportQuery) ([]CustomerReportRow, error) {
	var rows []CustomerReportRow
	err := h.orderScope(ctx, query).
		Select(`MAX(customer_name) AS customer_name,
			phone,
			COUNT(*) AS orders,
			COALESCE(SUM(total_amount), 0) AS total_spent,
			MAX(order_date) AS last_order_date`).
		Group("phone").
		Order("total_spent DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type workerReportRow struct {
	Name           string
	WorkType       int
	TotalWork      int
	TotalSalary    decimal.Decimal
	AdvancePaid    decimal.Decimal
	IsActive       bool
	AssignedOrders int64
	AssignedAmount decimal.Decimal
}

func (h ReportQueryHandler) workerReport(ctx context.Context, query ReportQuery) ([]WorkerReportRow, error) {
	join := `LEFT JOIN orders ON orders.worker_id = workers.id
		AND orders.order_date >= ? AND orders.order_date < ?
		AND orders.status != ?`
	args := []any{query.From(), query.To(), int(order.Cancelled)}
	if query.BranchID() != "" {
		join += " AND orders.branch_id = ?"
		args = append(args, query.BranchID())
	}

	var rows []workerReportRow
	err := h.db.WithContext(ctx).Table("workers").
		Select(`workers.name,
			workers.work_type,
			workers.total_work,
			workers.total_salary,
			workers.advance_paid,
			workers.is_active,
			COUNT(orders.id) AS assigned_orders,
			COALESCE(SUM(orders.total_amount), 0) AS assigned_amount`).
		Joins(join, args...).
		Group("workers.id").
		Order("workers.total_work DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	report := make([]WorkerReportRow, 0, len(rows))
	for _, row := range rows {
		workType := worker.WorkType(row.WorkType)
		if err := workType.Validate(); err != nil {
			return nil, err
		}

		report = append(report, WorkerReportRow{
			Name:           row.Name,
			WorkType:       workType.String(),
			TotalWork:      row.TotalWork,
			TotalSalary:    row.TotalSalary,
			AdvancePaid:    row.AdvancePaid,
			DueAmount:      row.TotalSalary.Sub(row.AdvancePaid),
			IsActive:       row.IsActive,
			AssignedOrders: row.AssignedOrders,
			AssignedAmount: row.AssignedAmount,
		})
	}

	return report, nil
}
