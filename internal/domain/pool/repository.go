package pool

import "context"

type Repository interface {
	Create(ctx context.Context, p *Pool) error
	GetByName(ctx context.Context, name string) (*Pool, error)
	List(ctx context.Context, limit int) ([]Pool, error)
	// Summary groups loans by their owning pool's name and aggregates the
	// monetary and rate columns. Pools without loans are not included.
	Summary(ctx context.Context) ([]Summary, error)
}
