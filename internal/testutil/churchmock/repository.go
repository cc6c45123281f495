package churchmock

import (
	"context"

	domain "fundraising-backend/internal/domain/church"
)

var (
	_ domain.Repository               = (*Repo)(nil)
	_ domain.RepresentativeRepository = (*RepRepo)(nil)
)

// Repo is a function-backed mock that satisfies church.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, c *domain.Church) error
	SaveFn                 func(ctx context.Context, c *domain.Church) error
	GetByChurchIDFn        func(ctx context.Context, churchID string) (*domain.Church, error)
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Church, error)
	GetByChurchIDForUpdFn  func(ctx context.Context, churchID string) (*domain.Church, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Church, error)
	ListFn                 func(ctx context.Context, f domain.ListFilter) ([]domain.Church, int64, error)
	DeleteFn               func(ctx context.Context, c *domain.Church) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Church) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Church) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByChurchID(ctx context.Context, churchID string) (*domain.Church, error) {
	if m.GetByChurchIDFn != nil {
		return m.GetByChurchIDFn(ctx, churchID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Church, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByChurchIDForUpdate(ctx context.Context, churchID string) (*domain.Church, error) {
	if m.GetByChurchIDForUpdFn != nil {
		return m.GetByChurchIDForUpdFn(ctx, churchID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Church, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Church, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) Delete(ctx context.Context, c *domain.Church) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}

// RepRepo mocks church.RepresentativeRepository.
type RepRepo struct {
	CreateFn        func(ctx context.Context, r *domain.Representative) error
	SaveFn          func(ctx context.Context, r *domain.Representative) error
	GetByRepIDFn    func(ctx context.Context, repID string) (*domain.Representative, error)
	ListByChurchFn  func(ctx context.Context, churchNumericID uint64, activeOnly bool) ([]domain.Representative, error)
	ActivePrimaryFn func(ctx context.Context, churchNumericID uint64) (*domain.Representative, error)
}

func (m *RepRepo) Create(ctx context.Context, r *domain.Representative) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RepRepo) Save(ctx context.Context, r *domain.Representative) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *RepRepo) GetByRepID(ctx context.Context, repID string) (*domain.Representative, error) {
	if m.GetByRepIDFn != nil {
		return m.GetByRepIDFn(ctx, repID)
	}
	return nil, domain.ErrRepNotFound
}

func (m *RepRepo) ListByChurch(ctx context.Context, churchNumericID uint64, activeOnly bool) ([]domain.Representative, error) {
	if m.ListByChurchFn != nil {
		return m.ListByChurchFn(ctx, churchNumericID, activeOnly)
	}
	return nil, nil
}

func (m *RepRepo) ActivePrimary(ctx context.Context, churchNumericID uint64) (*domain.Representative, error) {
	if m.ActivePrimaryFn != nil {
		return m.ActivePrimaryFn(ctx, churchNumericID)
	}
	return nil, domain.ErrRepNotFound
}
