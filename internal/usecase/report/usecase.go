package report

import (
	"context"
	"sort"
	"time"

	"fundraising-backend/internal/domain/payment"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/domain/user"
)

type Usecase struct {
	pledges  pledge.Repository
	payments payment.Repository
	users    user.Repository
}

func NewUsecase(pledges pledge.Repository, payments payment.Repository, users user.Repository) *Usecase {
	return &Usecase{pledges: pledges, payments: payments, users: users}
}

// DayStatistics is the registrar's own single-day view. The date is one
// calendar day; there is no hourly breakdown.
type DayStatistics struct {
	Date          string  `json:"date"`
	PledgeCount   int64   `json:"pledge_count"`
	PledgeSum     float64 `json:"pledge_sum"`
	PaymentCount  int64   `json:"payment_count"`
	PaymentSum    float64 `json:"payment_sum"`
	TotalRecorded float64 `json:"total_recorded"`
}

func (u *Usecase) StatisticsFor(ctx context.Context, userID uint64, day time.Time) (*DayStatistics, error) {
	ps, err := u.pledges.StatsForUserOn(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	ys, err := u.payments.StatsForUserOn(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	return &DayStatistics{
		Date:          day.Format("2006-01-02"),
		PledgeCount:   ps.Count,
		PledgeSum:     ps.Sum,
		PaymentCount:  ys.Count,
		PaymentSum:    ys.Sum,
		TotalRecorded: ps.Sum + ys.Sum,
	}, nil
}

// RegistrarPerformance is one row of the admin performance report.
type RegistrarPerformance struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	PledgeCount  int64   `json:"pledge_count"`
	PledgeSum    float64 `json:"pledge_sum"`
	PaymentCount int64   `json:"payment_count"`
	PaymentSum   float64 `json:"payment_sum"`
	Total        float64 `json:"total"`
}

// Performance aggregates every registrar's activity in [from, to).
// Registrars with no activity in the window still appear with zeros.
func (u *Usecase) Performance(ctx context.Context, from, to time.Time) ([]RegistrarPerformance, error) {
	pledgeStats, err := u.pledges.StatsByUserBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	paymentStats, err := u.payments.StatsByUserBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	registrars, err := u.users.List(ctx, user.RoleRegistrar, false)
	if err != nil {
		return nil, err
	}

	out := make([]RegistrarPerformance, 0, len(registrars))
	for i := range registrars {
		r := &registrars[i]
		ps := pledgeStats[r.ID]
		ys := paymentStats[r.ID]
		out = append(out, RegistrarPerformance{
			UserID:       r.UserID,
			Name:         r.Name,
			PledgeCount:  ps.Count,
			PledgeSum:    ps.Sum,
			PaymentCount: ys.Count,
			PaymentSum:   ys.Sum,
			Total:        ps.Sum + ys.Sum,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}
