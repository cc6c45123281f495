package mysql

import (
	"context"
	"errors"
	"time"

	paymentDomain "fundraising-backend/internal/domain/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, paymentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_id = ?", paymentID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, paymentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PaymentRepository) ExistsByClientUUID(ctx context.Context, clientUUID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("client_uuid = ?", clientUUID).
		Count(&n).Error
	return n > 0, err
}

func (r *PaymentRepository) ExistsActiveByPhone(ctx context.Context, phone string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("donor_phone = ? AND status IN ?", phone,
			[]paymentDomain.Status{paymentDomain.StatusPending, paymentDomain.StatusApproved}).
		Count(&n).Error
	return n > 0, err
}

func (r *PaymentRepository) ExistsActiveByPhoneForUpdate(ctx context.Context, phone string) (bool, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("donor_phone = ? AND status IN ?", phone,
			[]paymentDomain.Status{paymentDomain.StatusPending, paymentDomain.StatusApproved}).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

func (r *PaymentRepository) SumApprovedByPhone(ctx context.Context, phone string) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("donor_phone = ? AND status = ?", phone, paymentDomain.StatusApproved).
		Select("SUM(amount)").
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

func (r *PaymentRepository) StatsForUserOn(ctx context.Context, userID uint64, day time.Time) (paymentDomain.DayStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var row struct {
		N int64
		S *float64
	}
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("received_by_user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Select("COUNT(*) AS n, SUM(amount) AS s").
		Scan(&row).Error
	out := paymentDomain.DayStats{Count: row.N}
	if row.S != nil {
		out.Sum = *row.S
	}
	return out, err
}

func (r *PaymentRepository) StatsByUserBetween(ctx context.Context, from, to time.Time) (map[uint64]paymentDomain.DayStats, error) {
	var rows []struct {
		UserID uint64 `gorm:"column:received_by_user_id"`
		N      int64
		S      *float64
	}
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("received_by_user_id, COUNT(*) AS n, SUM(amount) AS s").
		Group("received_by_user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]paymentDomain.DayStats, len(rows))
	for _, r := range rows {
		st := paymentDomain.DayStats{Count: r.N}
		if r.S != nil {
			st.Sum = *r.S
		}
		out[r.UserID] = st
	}
	return out, nil
}
