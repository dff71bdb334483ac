package mysql

import (
	"context"

	poolDomain "loanpool-backend/internal/domain/pool"

	"gorm.io/gorm"
)

type PoolRepository struct{ db *gorm.DB }

func NewPoolRepository(db *gorm.DB) *PoolRepository { return &PoolRepository{db: db} }

// Inner join, so pools without loans never show up in the summary.
// Grouping is by pool name, which is unique at the store level.
const poolSummarySelect = `
pools.pool_name                AS pool_name,
SUM(loans.property_value)      AS total_property_value,
AVG(loans.property_value)      AS avg_property_value,
SUM(loans.current_principal)   AS total_current_principal,
AVG(loans.current_principal)   AS avg_current_principal,
SUM(loans.original_principal)  AS total_original_principal,
AVG(loans.original_principal)  AS avg_original_principal,
AVG(loans.interest_rate)       AS avg_interest_rate,
AVG(loans.payment)             AS avg_payment`

func (r *PoolRepository) Create(ctx context.Context, p *poolDomain.Pool) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PoolRepository) GetByName(ctx context.Context, name string) (*poolDomain.Pool, error) {
	var out poolDomain.Pool
	res := r.db.WithContext(ctx).Where("pool_name = ?", name).First(&out)
	return &out, res.Error
}

func (r *PoolRepository) List(ctx context.Context, limit int) ([]poolDomain.Pool, error) {
	var out []poolDomain.Pool
	q := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return out, q.Find(&out).Error
}

func (r *PoolRepository) Summary(ctx context.Context) ([]poolDomain.Summary, error) {
	var out []poolDomain.Summary
	res := r.db.WithContext(ctx).
		Table("pools").
		Select(poolSummarySelect).
		Joins("JOIN loans ON loans.pool_id = pools.id").
		Group("pools.pool_name").
		Order("pools.pool_name ASC").
		Scan(&out)
	return out, res.Error
}
