package uow

import (
	"context"

	"loanpool-backend/internal/domain/loan"
	"loanpool-backend/internal/domain/pool"
)

type Repos struct {
	Loans loan.Repository
	Pools pool.Repository
}

// UnitOfWork scopes a set of repository calls to one store transaction.
// The transaction commits when fn returns nil and rolls back on error or
// panic, so no partial batch is ever persisted.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
