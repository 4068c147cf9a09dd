package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// Each unit of work owns one database transaction, giving every mutation an
// all-or-nothing boundary.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork coordinates a transactional read-modify-write across the
// repositories. Begin opens the transaction; Commit makes all changes
// permanent; Rollback discards them. Repositories obtained from an active
// unit of work operate inside its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WorkerRepository() WorkerRepository
}
