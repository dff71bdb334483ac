package mysql

import (
	"context"

	loanDomain "loanpool-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// COALESCE keeps the aggregates at 0 on an empty table instead of NULL.
const portfolioSummarySelect = `
COALESCE(AVG(interest_rate), 0)      AS avg_interest_rate,
COALESCE(AVG(payment), 0)            AS avg_payment,
COALESCE(AVG(original_principal), 0) AS avg_original_principal,
COALESCE(SUM(original_principal), 0) AS total_original_principal,
COALESCE(AVG(current_principal), 0)  AS avg_current_principal,
COALESCE(SUM(current_principal), 0)  AS total_current_principal,
COALESCE(AVG(property_value), 0)     AS avg_property_value,
COALESCE(SUM(property_value), 0)     AS total_property_value`

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

// Save writes all loan columns; the Pool association is never touched here.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, limit int) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	q := r.db.WithContext(ctx).Preload("Pool").Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return out, q.Find(&out).Error
}

func (r *LoanRepository) PortfolioSummary(ctx context.Context) (*loanDomain.PortfolioSummary, error) {
	var out loanDomain.PortfolioSummary
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select(portfolioSummarySelect).
		Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
