package mysql

import (
	"context"

	"loanpool-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx binds fresh repositories to one gorm transaction. gorm commits
// when fn returns nil and rolls back on error or panic, which is what keeps
// a batch update all-or-nothing.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Loans: &LoanRepository{db: tx},
			Pools: &PoolRepository{db: tx},
		})
	})
}
