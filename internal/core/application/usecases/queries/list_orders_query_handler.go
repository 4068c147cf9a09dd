package queries

import (
	"context"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of the order list from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID           uuid.UUID
	OrderNumber  string
	CustomerName string
	Phone        string
	ItemName     string
	Quantity     int
	TotalAmount  decimal.Decimal
	AdvancePaid  decimal.Decimal
	Status       int
	WorkerID     *uuid.UUID
	OrderDate    time.Time
	DeliveryDate time.Time
}

// Handle executes the listing query. The count and the page come from the
// same filtered scope, so pagination metadata always matches the items.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	scope := h.db.WithContext(ctx).Table("orders")

	filter := query.Filter()
	if query.Status() != order.Unknown {
		scope = scope.Where("status = ?", int(query.Status()))
	}
	if filter.BranchID != "" {
		scope = scope.Where("branch_id = ?", filter.BranchID)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		scope = scope.Where(
			"order_number ILIKE ? OR customer_name ILIKE ? OR phone ILIKE ? OR item_name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.From != nil {
		scope = scope.Where("order_date >= ?", *filter.From)
	}
	if filter.To != nil {
		scope = scope.Where("order_date < ?", *filter.To)
	}

	var totalItems int64
	if err := scope.Count(&totalItems).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	sortColumn := "order_date"
	if filter.SortBy != "" {
		sortColumn = sortColumns[filter.SortBy]
	}
	direction := "ASC"
	if filter.SortDesc || filter.SortBy == "" {
		direction = "DESC"
	}

	var rows []orderSummaryRow
	err := scope.
		Select(`id, order_number, customer_name, phone, item_name, quantity,
			total_amount, advance_paid, status, worker_id, order_date, delivery_date`).
		Order(sortColumn + " " + direction).
		Offset((query.Page() - 1) * query.Limit()).
		Limit(query.Limit()).
		Find(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		status := order.Status(row.Status)
		if err := status.Validate(); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		var workerID *string
		if row.WorkerID != nil {
			s := row.WorkerID.String()
			workerID = &s
		}

		items = append(items, OrderSummaryResponse{
			ID:           row.ID.String(),
			OrderNumber:  row.OrderNumber,
			CustomerName: row.CustomerName,
			Phone:        row.Phone,
			ItemName:     row.ItemName,
			Quantity:     row.Quantity,
			TotalAmount:  row.TotalAmount,
			AdvancePaid:  row.AdvancePaid,
			DueAmount:    row.TotalAmount.Sub(row.AdvancePaid),
			Status:       status.String(),
			WorkerID:     workerID,
			OrderDate:    row.OrderDate,
			DeliveryDate: row.DeliveryDate,
		})
	}

	totalPages := int((totalItems + int64(query.Limit()) - 1) / int64(query.Limit()))

	return ListOrdersQueryResponse{
		Items: items,
		Pagination: PaginationResponse{
			CurrentPage: query.Page(),
			TotalPages:  totalPages,
			TotalItems:  totalItems,
		},
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralises LIKE wildcards in user input so a search for
// a literal "%" or "_" matches those characters instead of everything.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
