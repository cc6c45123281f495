package mysql

import (
	"context"
	"errors"

	churchDomain "fundraising-backend/internal/domain/church"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChurchRepository struct{ db *gorm.DB }

func NewChurchRepository(db *gorm.DB) *ChurchRepository { return &ChurchRepository{db: db} }

func (r *ChurchRepository) Create(ctx context.Context, c *churchDomain.Church) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ChurchRepository) Save(ctx context.Context, c *churchDomain.Church) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ChurchRepository) GetByChurchID(ctx context.Context, churchID string) (*churchDomain.Church, error) {
	var out churchDomain.Church
	res := r.db.WithContext(ctx).Where("church_id = ?", churchID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, churchDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ChurchRepository) GetByID(ctx context.Context, id uint64) (*churchDomain.Church, error) {
	var out churchDomain.Church
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, churchDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ChurchRepository) GetByChurchIDForUpdate(ctx context.Context, churchID string) (*churchDomain.Church, error) {
	var out churchDomain.Church
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("church_id = ?", churchID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, churchDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ChurchRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*churchDomain.Church, error) {
	var out churchDomain.Church
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, churchDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ChurchRepository) List(ctx context.Context, f churchDomain.ListFilter) ([]churchDomain.Church, int64, error) {
	q := r.db.WithContext(ctx).Model(&churchDomain.Church{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR city LIKE ?", like, like)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
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
	var out []churchDomain.Church
	err := q.Order("name ASC").Find(&out).Error
	return out, total, err
}

func (r *ChurchRepository) Delete(ctx context.Context, c *churchDomain.Church) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

type RepresentativeRepository struct{ db *gorm.DB }

func NewRepresentativeRepository(db *gorm.DB) *RepresentativeRepository {
	return &RepresentativeRepository{db: db}
}

func (r *RepresentativeRepository) Create(ctx context.Context, rep *churchDomain.Representative) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *RepresentativeRepository) Save(ctx context.Context, rep *churchDomain.Representative) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *RepresentativeRepository) GetByRepID(ctx context.Context, repID string) (*churchDomain.Representative, error) {
	var out churchDomain.Representative
	res := r.db.WithContext(ctx).Where("rep_id = ?", repID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, churchDomain.ErrRepNotFound
	}
	return &out, res.Error
}

func (r *RepresentativeRepository) ListByChurch(ctx context.Context, churchNumericID uint64, activeOnly bool) ([]churchDomain.Representative, error) {
	q := r.db.WithContext(ctx).Where("church_id = ?", churchNumericID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []churchDomain.Representative
	err := q.Order("is_primary DESC, name ASC").Find(&out).Error
	return out, err
}

func (r *RepresentativeRepository) ActivePrimary(ctx context.Context, churchNumericID uint64) (*churchDomain.Representative, error) {
	var out churchDomain.Representative
	res := r.db.WithContext(ctx).
		Where("church_id = ? AND is_primary = ? AND is_active = ?", churchNumericID, true, true).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, churchDomain.ErrRepNotFound
	}
	return &out, res.Error
}
