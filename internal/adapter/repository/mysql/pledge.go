package mysql

import (
	"context"
	"errors"
	"time"

	pledgeDomain "fundraising-backend/internal/domain/pledge"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PledgeRepository struct{ db *gorm.DB }

func NewPledgeRepository(db *gorm.DB) *PledgeRepository { return &PledgeRepository{db: db} }

func (r *PledgeRepository) Create(ctx context.Context, p *pledgeDomain.Pledge) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PledgeRepository) Save(ctx context.Context, p *pledgeDomain.Pledge) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PledgeRepository) GetByPledgeID(ctx context.Context, pledgeID string) (*pledgeDomain.Pledge, error) {
	var out pledgeDomain.Pledge
	res := r.db.WithContext(ctx).Where("pledge_id = ?", pledgeID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, pledgeDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PledgeRepository) GetByPledgeIDForUpdate(ctx context.Context, pledgeID string) (*pledgeDomain.Pledge, error) {
	var out pledgeDomain.Pledge
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("pledge_id = ?", pledgeID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, pledgeDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PledgeRepository) ExistsByClientUUID(ctx context.Context, clientUUID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&pledgeDomain.Pledge{}).
		Where("client_uuid = ?", clientUUID).
		Count(&n).Error
	return n > 0, err
}

func (r *PledgeRepository) ExistsActiveByPhone(ctx context.Context, phone string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&pledgeDomain.Pledge{}).
		Where("donor_phone = ? AND status IN ?", phone,
			[]pledgeDomain.Status{pledgeDomain.StatusPending, pledgeDomain.StatusApproved}).
		Count(&n).Error
	return n > 0, err
}

func (r *PledgeRepository) ExistsActiveByPhoneForUpdate(ctx context.Context, phone string) (bool, error) {
	// FOR UPDATE on the phone index range keeps a concurrent submission
	// for the same phone waiting until the surrounding tx commits.
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&pledgeDomain.Pledge{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("donor_phone = ? AND status IN ?", phone,
			[]pledgeDomain.Status{pledgeDomain.StatusPending, pledgeDomain.StatusApproved}).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

func (r *PledgeRepository) LatestApprovedByPhone(ctx context.Context, phone string) (*pledgeDomain.Pledge, error) {
	var out pledgeDomain.Pledge
	res := r.db.WithContext(ctx).
		Where("donor_phone = ? AND status = ?", phone, pledgeDomain.StatusApproved).
		Order("created_at DESC, id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, pledgeDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PledgeRepository) SumApprovedByPhone(ctx context.Context, phone string) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).Model(&pledgeDomain.Pledge{}).
		Where("donor_phone = ? AND status = ?", phone, pledgeDomain.StatusApproved).
		Select("SUM(amount)").
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

func (r *PledgeRepository) StatsForUserOn(ctx context.Context, userID uint64, day time.Time) (pledgeDomain.DayStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var row struct {
		N int64
		S *float64
	}
	err := r.db.WithContext(ctx).Model(&pledgeDomain.Pledge{}).
		Where("created_by_user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Select("COUNT(*) AS n, SUM(amount) AS s").
		Scan(&row).Error
	out := pledgeDomain.DayStats{Count: row.N}
	if row.S != nil {
		out.Sum = *row.S
	}
	return out, err
}

func (r *PledgeRepository) StatsByUserBetween(ctx context.Context, from, to time.Time) (map[uint64]pledgeDomain.DayStats, error) {
	var rows []struct {
		UserID uint64 `gorm:"column:created_by_user_id"`
		N      int64
		S      *float64
	}
	err := r.db.WithContext(ctx).Model(&pledgeDomain.Pledge{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("created_by_user_id, COUNT(*) AS n, SUM(amount) AS s").
		Group("created_by_user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]pledgeDomain.DayStats, len(rows))
	for _, r := range rows {
		st := pledgeDomain.DayStats{Count: r.N}
		if r.S != nil {
			st.Sum = *r.S
		}
		out[r.UserID] = st
	}
	return out, nil
}
