package ingest

import (
	"context"
	"errors"

	loanDomain "loanpool-backend/internal/domain/loan"
	poolDomain "loanpool-backend/internal/domain/pool"
	"loanpool-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// Stats reports what one Load call wrote.
type Stats struct {
	PoolsCreated int
	LoansLoaded  int
}

// Load writes pools and loans in a single transaction: pools are created
// on first sight of a name, loans reference them by id. Any failure rolls
// the whole tape back.
func Load(ctx context.Context, u uow.UnitOfWork, rows []Row) (Stats, error) {
	var stats Stats
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		poolIDs := make(map[string]uint64)
		for _, row := range rows {
			pid, ok := poolIDs[row.PoolName]
			if !ok {
				var err error
				pid, err = ensurePool(ctx, r.Pools, row.PoolName, &stats)
				if err != nil {
					return err
				}
				poolIDs[row.PoolName] = pid
			}
			l := &loanDomain.Loan{
				ID:                row.ID,
				PoolID:            pid,
				LoanDate:          row.LoanDate,
				OriginalPrincipal: row.OriginalPrincipal,
				InterestRate:      row.InterestRate,
				Payment:           row.Payment,
				CurrentPrincipal:  row.CurrentPrincipal,
				BorrowerFirstName: row.BorrowerFirstName,
				BorrowerLastName:  row.BorrowerLastName,
				Address:           row.Address,
				City:              row.City,
				State:             row.State,
				Zip:               row.Zip,
				PropertyValue:     row.PropertyValue,
			}
			if err := r.Loans.Create(ctx, l); err != nil {
				return err
			}
			stats.LoansLoaded++
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func ensurePool(ctx context.Context, pools poolDomain.Repository, name string, stats *Stats) (uint64, error) {
	p, err := pools.GetByName(ctx, name)
	switch {
	case err == nil:
		return p.ID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		np := &poolDomain.Pool{PoolName: name}
		if err := pools.Create(ctx, np); err != nil {
			return 0, err
		}
		stats.PoolsCreated++
		return np.ID, nil
	default:
		return 0, err
	}
}
