package assignment

import (
	"context"
	"time"

	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/church"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/domain/uow"
	"fundraising-backend/pkg/id"
)

// Usecase drives the donor→church→representative wizard. State lives in
// the Store (redis in production), not in query parameters, so steps can
// only run in order.
type Usecase struct {
	donors   donor.Repository
	churches church.Repository
	reps     church.RepresentativeRepository
	store    Store
	uow      uow.UnitOfWork
}

func NewUsecase(donors donor.Repository, churches church.Repository, reps church.RepresentativeRepository, store Store, tx uow.UnitOfWork) *Usecase {
	return &Usecase{donors: donors, churches: churches, reps: reps, store: store, uow: tx}
}

// Start opens a session for an existing donor.
func (u *Usecase) Start(ctx context.Context, donorID string, userID uint64) (*StepResult, error) {
	if _, err := u.donors.GetByDonorID(ctx, donorID); err != nil {
		return nil, err
	}
	s := &Session{
		Token:           id.NewClientUUID(),
		State:           StateSearchingDonor,
		DonorID:         donorID,
		StartedByUserID: userID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := u.store.Put(ctx, s); err != nil {
		return nil, err
	}
	return &StepResult{Token: s.Token, State: s.State}, nil
}

// ChooseChurch is only legal from searching_donor.
func (u *Usecase) ChooseChurch(ctx context.Context, token, churchID string) (*StepResult, error) {
	s, err := u.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.State != StateSearchingDonor {
		return nil, ErrInvalidState
	}
	if _, err := u.churches.GetByChurchID(ctx, churchID); err != nil {
		return nil, err
	}

	s.State = StateChurchChosen
	s.ChurchID = churchID
	if err := u.store.Put(ctx, s); err != nil {
		return nil, err
	}
	return &StepResult{Token: s.Token, State: s.State}, nil
}

// ChooseRepresentative is only legal from church_chosen, and the
// representative must belong to the chosen church.
func (u *Usecase) ChooseRepresentative(ctx context.Context, token, repID string) (*StepResult, error) {
	s, err := u.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.State != StateChurchChosen {
		return nil, ErrInvalidState
	}
	c, err := u.churches.GetByChurchID(ctx, s.ChurchID)
	if err != nil {
		return nil, err
	}
	rep, err := u.reps.GetByRepID(ctx, repID)
	if err != nil {
		return nil, err
	}
	if rep.ChurchID != c.ID || !rep.IsActive {
		return nil, church.ErrRepNotFound
	}

	s.State = StateRepChosen
	s.RepID = repID
	if err := u.store.Put(ctx, s); err != nil {
		return nil, err
	}
	return &StepResult{Token: s.Token, State: s.State}, nil
}

// Confirm is only legal from representative_chosen. The donor update and
// the audit row commit in one transaction; the session flips to
// confirmed only after the commit.
func (u *Usecase) Confirm(ctx context.Context, token string) (*ConfirmResult, error) {
	s, err := u.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.State != StateRepChosen {
		return nil, ErrInvalidState
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Donors.GetByDonorID(ctx, s.DonorID)
		if err != nil {
			return err
		}
		c, err := r.Churches.GetByChurchID(ctx, s.ChurchID)
		if err != nil {
			return err
		}
		rep, err := r.Representatives.GetByRepID(ctx, s.RepID)
		if err != nil {
			return err
		}
		before := *d

		d.ChurchID = &c.ID
		d.RepresentativeID = &rep.ID
		if err := r.Donors.Save(ctx, d); err != nil {
			return err
		}

		return r.Audit.Record(ctx, audit.Entry{
			UserID:     s.StartedByUserID,
			EntityType: "donor",
			EntityID:   d.DonorID,
			Action:     audit.ActionAssign,
			Before:     before,
			After:      d,
			Source:     "assign_wizard",
		})
	})
	if err != nil {
		return nil, err
	}

	s.State = StateConfirmed
	if err := u.store.Put(ctx, s); err != nil {
		return nil, err
	}
	return &ConfirmResult{
		Token:    s.Token,
		State:    s.State,
		DonorID:  s.DonorID,
		ChurchID: s.ChurchID,
		RepID:    s.RepID,
	}, nil
}
