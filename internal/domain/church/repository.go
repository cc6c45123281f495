package church

import "context"

type ListFilter struct {
	Search     string // matches name or city
	ActiveOnly bool
	Limit      int
	Offset     int
}

type Repository interface {
	Create(ctx context.Context, c *Church) error
	Save(ctx context.Context, c *Church) error
	GetByChurchID(ctx context.Context, churchID string) (*Church, error)
	GetByID(ctx context.Context, id uint64) (*Church, error)
	// GetByChurchIDForUpdate locks the church row; the single-primary
	// representative check is serialized on this lock.
	GetByChurchIDForUpdate(ctx context.Context, churchID string) (*Church, error)
	// GetByIDForUpdate is the same lock taken via the numeric PK, for
	// callers holding only a representative's church FK.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Church, error)
	List(ctx context.Context, f ListFilter) ([]Church, int64, error)
	Delete(ctx context.Context, c *Church) error
}

type RepresentativeRepository interface {
	Create(ctx context.Context, r *Representative) error
	Save(ctx context.Context, r *Representative) error
	GetByRepID(ctx context.Context, repID string) (*Representative, error)
	ListByChurch(ctx context.Context, churchNumericID uint64, activeOnly bool) ([]Representative, error)
	// ActivePrimary returns the current active primary for a church, or
	// ErrRepNotFound when the slot is free.
	ActivePrimary(ctx context.Context, churchNumericID uint64) (*Representative, error)
}
