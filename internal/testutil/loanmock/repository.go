package loanmock

import (
	"context"
	"errors"

	domain "loanpool-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error
	ListFn             func(ctx context.Context, limit int) ([]domain.Loan, error)
	PortfolioSummaryFn func(ctx context.Context) (*domain.PortfolioSummary, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, limit int) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}
	return nil, errUnimplemented
}

func (m *Repo) PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	if m.PortfolioSummaryFn != nil {
		return m.PortfolioSummaryFn(ctx)
	}
	return nil, errUnimplemented
}
