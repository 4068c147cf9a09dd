package queries

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListWorkersQueryHandler retrieves the worker roster from the database.
type ListWorkersQueryHandler struct {
	db *gorm.DB
}

// NewListWorkersQueryHandler creates a handler for worker roster queries.
func NewListWorkersQueryHandler(db *gorm.DB) ListWorkersQueryHandler {
	return ListWorkersQueryHandler{db: db}
}

type workerRow struct {
	ID              uuid.UUID
	Name            string
	Phone           string
	Address         string
	WorkType        int
	RatePerWork     decimal.Decimal
	RateType        int
	TotalWork       int
	TotalSalary     decimal.Decimal
	AdvancePaid     decimal.Decimal
	LastPaymentDate *time.Time
	IsActive        bool
	JoinDate        time.Time
}

// Handle executes the roster query, sorted by name.
func (h ListWorkersQueryHandler) Handle(ctx context.Context, query ListWorkersQuery) ([]WorkerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.db.WithContext(ctx).Table("workers")
	if query.ActiveOnly() {
		scope = scope.Where("is_active = ?", true)
	}

	var rows []workerRow
	err := scope.
		Select(`id, name, phone, address, work_type, rate_per_work, rate_type,
			total_work, total_salary, advance_paid, last_payment_date, is_active, join_date`).
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	workers := make([]WorkerResponse, 0, len(rows))
	for _, row := range rows {
		workType := worker.WorkType(row.WorkType)
		if err := workType.Validate(); err != nil {
			return nil, err
		}
		rateType := worker.RateType(row.RateType)
		if err := rateType.Validate(); err != nil {
			return nil, err
		}

		workers = append(workers, WorkerResponse{
			ID:              row.ID.String(),
			Name:            row.Name,
			Phone:           row.Phone,
			Address:         row.Address,
			WorkType:        workType.String(),
			RatePerWork:     row.RatePerWork,
			RateType:        rateType.String(),
			TotalWork:       row.TotalWork,
			TotalSalary:     row.TotalSalary,
			AdvancePaid:     row.AdvancePaid,
			DueAmount:       row.TotalSalary.Sub(row.AdvancePaid),
			LastPaymentDate: row.LastPaymentDate,
			IsActive:        row.IsActive,
			JoinDate:        row.JoinDate,
		})
	}

	return workers, nil
}
