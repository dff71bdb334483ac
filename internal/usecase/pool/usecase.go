package pool

import (
	"context"

	domain "loanpool-backend/internal/domain/pool"
)

const listLimit = 100

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context) ([]PoolDTO, error) {
	pools, err := u.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]PoolDTO, 0, len(pools))
	for _, p := range pools {
		out = append(out, PoolDTO{ID: p.ID, PoolName: p.PoolName})
	}
	return out, nil
}

// Summary returns one row per pool that owns at least one loan, ordered by
// pool name.
func (u *Usecase) Summary(ctx context.Context) ([]domain.Summary, error) {
	return u.repo.Summary(ctx)
}
