package poolmock

import (
	"context"
	"errors"

	domain "loanpool-backend/internal/domain/pool"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("poolmock: method not implemented")

// Repo is a function-backed mock that satisfies pool.Repository.
type Repo struct {
	CreateFn    func(ctx context.Context, p *domain.Pool) error
	GetByNameFn func(ctx context.Context, name string) (*domain.Pool, error)
	ListFn      func(ctx context.Context, limit int) ([]domain.Pool, error)
	SummaryFn   func(ctx context.Context) ([]domain.Summary, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Pool) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Pool, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, limit int) ([]domain.Pool, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}
	return nil, errUnimplemented
}

func (m *Repo) Summary(ctx context.Context) ([]domain.Summary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx)
	}
	return nil, errUnimplemented
}
