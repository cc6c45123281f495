package mysql

import (
	"context"
	"errors"

	donorDomain "fundraising-backend/internal/domain/donor"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonorRepository struct{ db *gorm.DB }

func NewDonorRepository(db *gorm.DB) *DonorRepository { return &DonorRepository{db: db} }

func (r *DonorRepository) Create(ctx context.Context, d *donorDomain.Donor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonorRepository) Save(ctx context.Context, d *donorDomain.Donor) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DonorRepository) GetByDonorID(ctx context.Context, donorID string) (*donorDomain.Donor, error) {
	var out donorDomain.Donor
	res := r.db.WithContext(ctx).Where("donor_id = ?", donorID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, donorDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DonorRepository) GetByPhone(ctx context.Context, phone string) (*donorDomain.Donor, error) {
	var out donorDomain.Donor
	res := r.db.WithContext(ctx).Where("phone = ?", phone).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, donorDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DonorRepository) GetByPhoneForUpdate(ctx context.Context, phone string) (*donorDomain.Donor, error) {
	var out donorDomain.Donor
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("phone = ?", phone).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, donorDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DonorRepository) List(ctx context.Context, f donorDomain.ListFilter) ([]donorDomain.Donor, int64, error) {
	q := r.db.WithContext(ctx).Model(&donorDomain.Donor{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	if f.ChurchID != nil {
		q = q.Where("church_id = ?", *f.ChurchID)
	}
	if f.Status != "" {
		q = q.Where("payment_status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []donorDomain.Donor
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, total, err
}

func (r *DonorRepository) DetachChurch(ctx context.Context, churchID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&donorDomain.Donor{}).
		Where("church_id = ?", churchID).
		Updates(map[string]any{"church_id": nil, "representative_id": nil})
	return res.RowsAffected, res.Error
}
