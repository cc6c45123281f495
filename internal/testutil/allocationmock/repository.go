package allocationmock

import (
	"context"

	domain "fundraising-backend/internal/domain/allocation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo captures created batches for assertions.
type Repo struct {
	Created  []*domain.Batch
	CreateFn func(ctx context.Context, b *domain.Batch) error
	ListFn   func(ctx context.Context, phone string) ([]domain.Batch, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Batch) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	m.Created = append(m.Created, b)
	return nil
}

func (m *Repo) ListByPhone(ctx context.Context, phone string) ([]domain.Batch, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, phone)
	}
	return nil, nil
}
