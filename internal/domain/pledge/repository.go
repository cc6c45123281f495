package pledge

import (
	"context"
	"time"
)

type DayStats struct {
	Count int64
	Sum   float64
}

type Repository interface {
	Create(ctx context.Context, p *Pledge) error
	Save(ctx context.Context, p *Pledge) error
	GetByPledgeID(ctx context.Context, pledgeID string) (*Pledge, error)
	// GetByPledgeIDForUpdate locks the row for a status transition.
	GetByPledgeIDForUpdate(ctx context.Context, pledgeID string) (*Pledge, error)
	ExistsByClientUUID(ctx context.Context, clientUUID string) (bool, error)
	// ExistsActiveByPhone reports a pending or approved pledge for the phone.
	ExistsActiveByPhone(ctx context.Context, phone string) (bool, error)
	// ExistsActiveByPhoneForUpdate is the locked variant for the submission
	// transaction: it holds the phone's index range so a concurrent submit
	// for the same phone blocks until this one commits.
	ExistsActiveByPhoneForUpdate(ctx context.Context, phone string) (bool, error)
	// LatestApprovedByPhone feeds the additional-donation batch linkage.
	LatestApprovedByPhone(ctx context.Context, phone string) (*Pledge, error)
	SumApprovedByPhone(ctx context.Context, phone string) (float64, error)
	// StatsForUserOn aggregates one registrar's pledges for a single day.
	StatsForUserOn(ctx context.Context, userID uint64, day time.Time) (DayStats, error)
	// StatsByUserBetween aggregates per-registrar totals over a date range,
	// keyed by created_by_user_id.
	StatsByUserBetween(ctx context.Context, from, to time.Time) (map[uint64]DayStats, error)
}
