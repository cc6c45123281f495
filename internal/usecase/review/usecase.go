package review

import (
	"context"
	"errors"
	"time"

	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/domain/payment"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/domain/uow"
	"fundraising-backend/pkg/id"
)

// Usecase moves pledges and payments out of pending and keeps the donor
// rollup (total_pledged / total_paid / balance / payment_status) in step.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) ReviewPledge(ctx context.Context, in PledgeReviewInput) (*ReviewDTO, error) {
	var target pledge.Status
	switch in.Decision {
	case DecisionApprove:
		target = pledge.StatusApproved
	case DecisionReject:
		target = pledge.StatusRejected
	case DecisionVoid:
		// void exists, but only for payments
		return nil, ErrInvalidTransition
	default:
		return nil, ErrInvalidDecision
	}

	var dto *ReviewDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Lock the row so two admins can't review it at once.
		p, err := r.Pledges.GetByPledgeIDForUpdate(ctx, in.PledgeID)
		if err != nil {
			return err
		}
		if p.Status != pledge.StatusPending {
			return ErrAlreadyReviewed
		}
		before := *p

		p.Status = target
		if err := r.Pledges.Save(ctx, p); err != nil {
			return err
		}

		dto = &ReviewDTO{
			ID:         p.PledgeID,
			Status:     string(p.Status),
			Amount:     p.Amount,
			ReviewedAt: time.Now().UTC(),
		}
		if err := u.rollupDonor(ctx, r, p.DonorPhone, p.DonorName, dto); err != nil {
			return err
		}

		action := audit.ActionApprove
		if target == pledge.StatusRejected {
			action = audit.ActionReject
		}
		return r.Audit.Record(ctx, audit.Entry{
			UserID:     in.ReviewedByUserID,
			EntityType: "pledge",
			EntityID:   p.PledgeID,
			Action:     action,
			Before:     before,
			After:      p,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ReviewPayment(ctx context.Context, in PaymentReviewInput) (*ReviewDTO, error) {
	var target payment.Status
	switch in.Decision {
	case DecisionApprove:
		target = payment.StatusApproved
	case DecisionVoid:
		target = payment.StatusVoided
	case DecisionReject:
		// payments are voided, never rejected
		return nil, ErrInvalidTransition
	default:
		return nil, ErrInvalidDecision
	}

	var dto *ReviewDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			return err
		}
		if p.Status != payment.StatusPending {
			return ErrAlreadyReviewed
		}
		before := *p

		p.Status = target
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		dto = &ReviewDTO{
			ID:         p.PaymentID,
			Status:     string(p.Status),
			Amount:     p.Amount,
			ReviewedAt: time.Now().UTC(),
		}
		if err := u.rollupDonor(ctx, r, p.DonorPhone, p.DonorName, dto); err != nil {
			return err
		}

		action := audit.ActionApprove
		if target == payment.StatusVoided {
			action = audit.ActionVoid
		}
		return r.Audit.Record(ctx, audit.Entry{
			UserID:     in.ReviewedByUserID,
			EntityType: "payment",
			EntityID:   p.PaymentID,
			Action:     action,
			Before:     before,
			After:      p,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// rollupDonor recomputes the donor's approved totals from scratch so the
// balance invariant holds no matter which transition fired. Anonymous
// rows (empty phone) have no donor to update.
func (u *Usecase) rollupDonor(ctx context.Context, r uow.Repos, phone, name string, dto *ReviewDTO) error {
	if phone == "" {
		return nil
	}

	totalPledged, err := r.Pledges.SumApprovedByPhone(ctx, phone)
	if err != nil {
		return err
	}
	totalPaid, err := r.Payments.SumApprovedByPhone(ctx, phone)
	if err != nil {
		return err
	}

	d, err := r.Donors.GetByPhoneForUpdate(ctx, phone)
	switch {
	case errors.Is(err, donor.ErrNotFound):
		d = &donor.Donor{
			DonorID: id.NewID32(),
			Name:    name,
			Phone:   phone,
			Source:  donor.SourceRegistrar,
		}
		if err := r.Donors.Create(ctx, d); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	d.TotalPledged = totalPledged
	d.TotalPaid = totalPaid
	d.Balance = totalPledged - totalPaid
	d.PaymentStatus = donor.DeriveStatus(totalPledged, totalPaid)
	if err := r.Donors.Save(ctx, d); err != nil {
		return err
	}

	dto.DonorStatus = string(d.PaymentStatus)
	dto.TotalPledged = d.TotalPledged
	dto.TotalPaid = d.TotalPaid
	dto.Balance = d.Balance
	return nil
}
