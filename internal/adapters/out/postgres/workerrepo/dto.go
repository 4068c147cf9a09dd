// Package workerrepo provides data transfer objects and mapping functions for
// worker persistence.
package workerrepo

import (
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
type WorkerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:255;index"`
	Phone           string    `gorm:"size:32"`
	Address         string
	WorkType        int             `gorm:"index"`
	RatePerWork     decimal.Decimal `gorm:"type:numeric(18,4)"`
	RateType        int
	Notes           string
	JoinDate        time.Time
	TotalWork       int
	TotalSalary     decimal.Decimal `gorm:"type:numeric(18,4)"`
	AdvancePaid     decimal.Decimal `gorm:"type:numeric(18,4)"`
	LastPaymentDate *time.Time
	IsActive        bool `gorm:"index"`
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for worker entities.
func (WorkerDTO) TableName() string {
	return "workers"
}

func fromDomain(aggregate *worker.Worker) WorkerDTO {
	details := aggregate.Details()
	return WorkerDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            details.Name,
		Phone:           details.Phone,
		Address:         details.Address,
		WorkType:        int(details.WorkType),
		RatePerWork:     details.RatePerWork.Amount(),
		RateType:        int(details.RateType),
		Notes:           details.Notes,
		JoinDate:        details.JoinDate,
		TotalWork:       aggregate.TotalWork(),
		TotalSalary:     aggregate.TotalSalary().Amount(),
		AdvancePaid:     aggregate.AdvancePaid().Amount(),
		LastPaymentDate: aggregate.LastPaymentDate(),
		IsActive:        aggregate.IsActive(),
		Version:         aggregate.Version(),
	}
}

func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.RatePerWork)
	if err != nil {
		return nil, err
	}

	totalSalary, err := kernel.NewMoney(dto.TotalSalary)
	if err != nil {
		return nil, err
	}

	advancePaid, err := kernel.NewMoney(dto.AdvancePaid)
	if err != nil {
		return nil, err
	}

	details := worker.Details{
		Name:        dto.Name,
		Phone:       dto.Phone,
		Address:     dto.Address,
		WorkType:    worker.WorkType(dto.WorkType),
		RatePerWork: rate,
		RateType:    worker.RateType(dto.RateType),
		Notes:       dto.Notes,
		JoinDate:    dto.JoinDate,
	}

	return worker.RestoreWorker(
		id, details, dto.TotalWork, totalSalary, advancePaid,
		dto.LastPaymentDate, dto.IsActive, dto.Version,
	)
}
