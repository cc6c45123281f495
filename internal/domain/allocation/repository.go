package allocation

import "context"

type Repository interface {
	Create(ctx context.Context, b *Batch) error
	ListByPhone(ctx context.Context, phone string) ([]Batch, error)
}
