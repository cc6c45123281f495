package donormock

import (
	"context"

	domain "fundraising-backend/internal/domain/donor"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies donor.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, d *domain.Donor) error
	SaveFn                func(ctx context.Context, d *domain.Donor) error
	GetByDonorIDFn        func(ctx context.Context, donorID string) (*domain.Donor, error)
	GetByPhoneFn          func(ctx context.Context, phone string) (*domain.Donor, error)
	GetByPhoneForUpdateFn func(ctx context.Context, phone string) (*domain.Donor, error)
	ListFn                func(ctx context.Context, f domain.ListFilter) ([]domain.Donor, int64, error)
	DetachChurchFn        func(ctx context.Context, churchID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Donor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Donor) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDonorID(ctx context.Context, donorID string) (*domain.Donor, error) {
	if m.GetByDonorIDFn != nil {
		return m.GetByDonorIDFn(ctx, donorID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.Donor, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByPhoneForUpdate(ctx context.Context, phone string) (*domain.Donor, error) {
	if m.GetByPhoneForUpdateFn != nil {
		return m.GetByPhoneForUpdateFn(ctx, phone)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Donor, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) DetachChurch(ctx context.Context, churchID uint64) (int64, error) {
	if m.DetachChurchFn != nil {
		return m.DetachChurchFn(ctx, churchID)
	}
	return 0, nil
}
