package pledgemock

import (
	"context"
	"errors"
	"time"

	domain "fundraising-backend/internal/domain/pledge"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("pledgemock: method not implemented")

// Repo is a function-backed mock that satisfies pledge.Repository.
// Only fill in the functions a test needs.
type Repo struct {
	CreateFn                       func(ctx context.Context, p *domain.Pledge) error
	SaveFn                         func(ctx context.Context, p *domain.Pledge) error
	GetByPledgeIDFn                func(ctx context.Context, pledgeID string) (*domain.Pledge, error)
	GetByPledgeIDForUpdateFn       func(ctx context.Context, pledgeID string) (*domain.Pledge, error)
	ExistsByClientUUIDFn           func(ctx context.Context, clientUUID string) (bool, error)
	ExistsActiveByPhoneFn          func(ctx context.Context, phone string) (bool, error)
	ExistsActiveByPhoneForUpdateFn func(ctx context.Context, phone string) (bool, error)
	LatestApprovedByPhoneFn        func(ctx context.Context, phone string) (*domain.Pledge, error)
	SumApprovedByPhoneFn           func(ctx context.Context, phone string) (float64, error)
	StatsForUserOnFn               func(ctx context.Context, userID uint64, day time.Time) (domain.DayStats, error)
	StatsByUserBetweenFn           func(ctx context.Context, from, to time.Time) (map[uint64]domain.DayStats, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Pledge) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Pledge) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPledgeID(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	if m.GetByPledgeIDFn != nil {
		return m.GetByPledgeIDFn(ctx, pledgeID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByPledgeIDForUpdate(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	if m.GetByPledgeIDForUpdateFn != nil {
		return m.GetByPledgeIDForUpdateFn(ctx, pledgeID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ExistsByClientUUID(ctx context.Context, clientUUID string) (bool, error) {
	if m.ExistsByClientUUIDFn != nil {
		return m.ExistsByClientUUIDFn(ctx, clientUUID)
	}
	return false, nil
}

func (m *Repo) ExistsActiveByPhone(ctx context.Context, phone string) (bool, error) {
	if m.ExistsActiveByPhoneFn != nil {
		return m.ExistsActiveByPhoneFn(ctx, phone)
	}
	return false, nil
}

func (m *Repo) ExistsActiveByPhoneForUpdate(ctx context.Context, phone string) (bool, error) {
	if m.ExistsActiveByPhoneForUpdateFn != nil {
		return m.ExistsActiveByPhoneForUpdateFn(ctx, phone)
	}
	return false, nil
}

func (m *Repo) LatestApprovedByPhone(ctx context.Context, phone string) (*domain.Pledge, error) {
	if m.LatestApprovedByPhoneFn != nil {
		return m.LatestApprovedByPhoneFn(ctx, phone)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) SumApprovedByPhone(ctx context.Context, phone string) (float64, error) {
	if m.SumApprovedByPhoneFn != nil {
		return m.SumApprovedByPhoneFn(ctx, phone)
	}
	return 0, nil
}

func (m *Repo) StatsForUserOn(ctx context.Context, userID uint64, day time.Time) (domain.DayStats, error) {
	if m.StatsForUserOnFn != nil {
		return m.StatsForUserOnFn(ctx, userID, day)
	}
	return domain.DayStats{}, nil
}

func (m *Repo) StatsByUserBetween(ctx context.Context, from, to time.Time) (map[uint64]domain.DayStats, error) {
	if m.StatsByUserBetweenFn != nil {
		return m.StatsByUserBetweenFn(ctx, from, to)
	}
	return map[uint64]domain.DayStats{}, nil
}
