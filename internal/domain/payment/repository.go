package payment

import (
	"context"
	"time"
)

type DayStats struct {
	Count int64
	Sum   float64
}

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*Payment, error)
	ExistsByClientUUID(ctx context.Context, clientUUID string) (bool, error)
	// ExistsActiveByPhone reports a pending or approved payment for the phone.
	ExistsActiveByPhone(ctx context.Context, phone string) (bool, error)
	// ExistsActiveByPhoneForUpdate locks the phone's index range inside the
	// submission transaction, same contract as the pledge variant.
	ExistsActiveByPhoneForUpdate(ctx context.Context, phone string) (bool, error)
	SumApprovedByPhone(ctx context.Context, phone string) (float64, error)
	StatsForUserOn(ctx context.Context, userID uint64, day time.Time) (DayStats, error)
	StatsByUserBetween(ctx context.Context, from, to time.Time) (map[uint64]DayStats, error)
}
