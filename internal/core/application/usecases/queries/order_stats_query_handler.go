package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatsQueryHandler computes ledger aggregates in a single read
// transaction so the overall totals and the per-status breakdown describe the
// same snapshot.
type OrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewOrderStatsQueryHandler creates a handler for stats queries.
func NewOrderStatsQueryHandler(db *gorm.DB) OrderStatsQueryHandler {
	return OrderStatsQueryHandler{db: db}
}

type statsTotalsRow struct {
	TotalOrders  int64
	TotalAmount  decimal.Decimal
	TotalAdvance decimal.Decimal
	TotalDue     decimal.Decimal
}

type statusCountRow struct {
	Status      int
	Count       int64
	TotalAmount decimal.Decimal
}

// Handle executes the stats query.
func (h OrderStatsQueryHandler) Handle(ctx context.Context, query OrderStatsQuery) (OrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsQueryResponse{}, err
	}

	var response OrderStatsQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := func() *gorm.DB {
			s := tx.Table("orders")
			if query.BranchID() != "" {
				s = s.Where("branch_id = ?", query.BranchID())
			}
			if query.From() != nil {
				s = s.Where("order_date >= ?", *query.From())
			}
			if query.To() != nil {
				s = s.Where("order_date < ?", *query.To())
			}
			return s
		}

		var totals statsTotalsRow
		err := scope().
			Select(`COUNT(*) AS total_orders,
				COALESCE(SUM(total_amount), 0) AS total_amount,
				COALESCE(SUM(advance_paid), 0) AS total_advance,
				COALESCE(SUM(total_amount - advance_paid), 0) AS total_due`).
			Scan(&totals).Error
		if err != nil {
			return err
		}

		var counts []statusCountRow
		err = scope().
			Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_amount").
			Group("status").
			Order("status").
			Find(&counts).Error
		if err != nil {
			return err
		}

		var pending, ready int64
		byStatus := make([]StatusCountResponse, 0, len(counts))
		for _, row := range counts {
			status := order.Status(row.Status)
			if statusErr := status.Validate(); statusErr != nil {
				return statusErr
			}
			switch status {
			case order.Pending:
				pending = row.Count
			case order.Ready:
				ready = row.Count
			}
			byStatus = append(byStatus, StatusCountResponse{
				Status:      status.String(),
				Count:       row.Count,
				TotalAmount: row.TotalAmount,
			})
		}

		response = OrderStatsQueryResponse{
			TotalOrders:   totals.TotalOrders,
			TotalAmount:   totals.TotalAmount,
			TotalAdvance:  totals.TotalAdvance,
			TotalDue:      totals.TotalDue,
			PendingOrders: pending,
			ReadyOrders:   ready,
			ByStatus:      byStatus,
		}
		return nil
	})
	if err != nil {
		return OrderStatsQueryResponse{}, err
	}

	return response, nil
}
