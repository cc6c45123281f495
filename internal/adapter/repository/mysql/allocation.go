package mysql

import (
	"context"

	allocationDomain "fundraising-backend/internal/domain/allocation"

	"gorm.io/gorm"
)

type AllocationRepository struct{ db *gorm.DB }

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Create(ctx context.Context, b *allocationDomain.Batch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *AllocationRepository) ListByPhone(ctx context.Context, phone string) ([]allocationDomain.Batch, error) {
	var out []allocationDomain.Batch
	err := r.db.WithContext(ctx).
		Where("donor_phone = ?", phone).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
