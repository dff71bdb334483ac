package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// GetByID returns gorm.ErrRecordNotFound when no such loan exists.
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// List returns at most limit loans with the owning pool preloaded.
	List(ctx context.Context, limit int) ([]Loan, error)
	// PortfolioSummary aggregates over all loans in the store.
	PortfolioSummary(ctx context.Context) (*PortfolioSummary, error)
}
