package directory

import (
	"context"
	"errors"
	"strings"

	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/church"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/domain/uow"
	"fundraising-backend/pkg/id"
	"fundraising-backend/pkg/phone"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	churches church.Repository
	reps     church.RepresentativeRepository
	donors   donor.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(churches church.Repository, reps church.RepresentativeRepository, donors donor.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{churches: churches, reps: reps, donors: donors, uow: tx}
}

func churchDTO(c *church.Church) ChurchDTO {
	return ChurchDTO{
		ChurchID:  c.ChurchID,
		Name:      c.Name,
		City:      c.City,
		Address:   c.Address,
		Phone:     c.Phone,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func (u *Usecase) CreateChurch(ctx context.Context, in ChurchInput, userID uint64) (*ChurchDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}
	c := &church.Church{
		ChurchID: id.NewID32(),
		Name:     strings.TrimSpace(in.Name),
		City:     strings.TrimSpace(in.City),
		Address:  strings.TrimSpace(in.Address),
		Phone:    phone.NormalizeUK(in.Phone),
		IsActive: true,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Churches.Create(ctx, c); err != nil {
			return err
		}
		return r.Audit.Record(ctx, audit.Entry{
			UserID:     userID,
			EntityType: "church",
			EntityID:   c.ChurchID,
			Action:     audit.ActionCreatePending,
			After:      c,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	dto := churchDTO(c)
	return &dto, nil
}

func (u *Usecase) UpdateChurch(ctx context.Context, churchID string, in ChurchInput, userID uint64) (*ChurchDTO, error) {
	var dto ChurchDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Churches.GetByChurchID(ctx, churchID)
		if err != nil {
			return err
		}
		before := *c

		if name := strings.TrimSpace(in.Name); name != "" {
			c.Name = name
		}
		c.City = strings.TrimSpace(in.City)
		c.Address = strings.TrimSpace(in.Address)
		if in.Phone != "" {
			c.Phone = phone.NormalizeUK(in.Phone)
		}
		if err := r.Churches.Save(ctx, c); err != nil {
			return err
		}
		dto = churchDTO(c)

		return r.Audit.Record(ctx, audit.Entry{
			UserID:     userID,
			EntityType: "church",
			EntityID:   c.ChurchID,
			Action:     audit.ActionUpdate,
			Before:     before,
			After:      c,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (u *Usecase) ListChurches(ctx context.Context, f church.ListFilter) (*ChurchList, error) {
	rows, total, err := u.churches.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &ChurchList{Churches: make([]ChurchDTO, 0, len(rows)), Total: total}
	for i := range rows {
		out.Churches = append(out.Churches, churchDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) GetChurch(ctx context.Context, churchID string) (*ChurchDTO, error) {
	c, err := u.churches.GetByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	dto := churchDTO(c)
	return &dto, nil
}

// DeleteChurch removes the church and detaches its donors instead of
// cascading; donor rows keep their history with a nulled link.
func (u *Usecase) DeleteChurch(ctx context.Context, churchID string, userID uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Churches.GetByChurchIDForUpdate(ctx, churchID)
		if err != nil {
			return err
		}
		detached, err := r.Donors.DetachChurch(ctx, c.ID)
		if err != nil {
			return err
		}
		if err := r.Churches.Delete(ctx, c); err != nil {
			return err
		}
		return r.Audit.Record(ctx, audit.Entry{
			UserID:     userID,
			EntityType: "church",
			EntityID:   c.ChurchID,
			Action:     audit.ActionDelete,
			Before:     c,
			After:      map[string]any{"donors_detached": detached},
			Source:     "admin",
		})
	})
}

func repDTO(rep *church.Representative, churchID string) RepresentativeDTO {
	return RepresentativeDTO{
		RepID:     rep.RepID,
		ChurchID:  churchID,
		Name:      rep.Name,
		Phone:     rep.Phone,
		Email:     rep.Email,
		Title:     rep.Title,
		IsPrimary: rep.IsPrimary,
		IsActive:  rep.IsActive,
	}
}

// CreateRepresentative enforces "at most one active primary per church"
// by locking the church row for the span of the check and the insert.
func (u *Usecase) CreateRepresentative(ctx context.Context, in RepresentativeInput, userID uint64) (*RepresentativeDTO, error) {
	if strings.TrimSpace(in.Name) == "" || in.ChurchID == "" {
		return nil, ErrInvalidInput
	}

	var dto RepresentativeDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Churches.GetByChurchIDForUpdate(ctx, in.ChurchID)
		if err != nil {
			return err
		}
		if in.IsPrimary {
			if _, err := r.Representatives.ActivePrimary(ctx, c.ID); err == nil {
				return church.ErrPrimaryTaken
			} else if !errors.Is(err, church.ErrRepNotFound) {
				return err
			}
		}

		rep := &church.Representative{
			RepID:     id.NewID32(),
			ChurchID:  c.ID,
			Name:      strings.TrimSpace(in.Name),
			Phone:     phone.NormalizeUK(in.Phone),
			Email:     strings.TrimSpace(in.Email),
			Title:     strings.TrimSpace(in.Title),
			IsPrimary: in.IsPrimary,
			IsActive:  true,
		}
		if err := r.Representatives.Create(ctx, rep); err != nil {
			return err
		}
		dto = repDTO(rep, c.ChurchID)

		return r.Audit.Record(ctx, audit.Entry{
			UserID:     userID,
			EntityType: "representative",
			EntityID:   rep.RepID,
			Action:     audit.ActionCreatePending,
			After:      rep,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// UpdateRepresentative re-checks the primary slot under the same church
// lock when a rep is being promoted.
func (u *Usecase) UpdateRepresentative(ctx context.Context, repID string, in RepresentativeInput, userID uint64) (*RepresentativeDTO, error) {
	var dto RepresentativeDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rep, err := r.Representatives.GetByRepID(ctx, repID)
		if err != nil {
			return err
		}
		before := *rep

		var c *church.Church
		if in.ChurchID != "" {
			c, err = r.Churches.GetByChurchIDForUpdate(ctx, in.ChurchID)
		} else {
			c, err = r.Churches.GetByIDForUpdate(ctx, rep.ChurchID)
		}
		if err != nil {
			return err
		}

		promoting := in.IsPrimary && !rep.IsPrimary
		if promoting {
			cur, err := r.Representatives.ActivePrimary(ctx, c.ID)
			if err == nil && cur.RepID != rep.RepID {
				return church.ErrPrimaryTaken
			}
			if err != nil && !errors.Is(err, church.ErrRepNotFound) {
				return err
			}
		}

		if name := strings.TrimSpace(in.Name); name != "" {
			rep.Name = name
		}
		if in.Phone != "" {
			rep.Phone = phone.NormalizeUK(in.Phone)
		}
		rep.Email = strings.TrimSpace(in.Email)
		rep.Title = strings.TrimSpace(in.Title)
		rep.IsPrimary = in.IsPrimary
		rep.ChurchID = c.ID
		if err := r.Representatives.Save(ctx, rep); err != nil {
			return err
		}
		dto = repDTO(rep, c.ChurchID)

		return r.Audit.Record(ctx, audit.Entry{
			UserID:     userID,
			EntityType: "representative",
			EntityID:   rep.RepID,
			Action:     audit.ActionUpdate,
			Before:     before,
			After:      rep,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (u *Usecase) DeactivateRepresentative(ctx context.Context, repID string, userID uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rep, err := r.Representatives.GetByRepID(ctx, repID)
		if err != nil {
			return err
		}
		before := *rep
		rep.IsActive = false
		if err := r.Representatives.Save(ctx, rep); err != nil {
			return err
		}
		return r.Audit.Record(ctx, audit.Entry{
			UserID:     userID,
			EntityType: "representative",
			EntityID:   rep.RepID,
			Action:     audit.ActionUpdate,
			Before:     before,
			After:      rep,
			Source:     "admin",
		})
	})
}

// ListRepresentatives backs the {representatives: [...]} JSON endpoint.
func (u *Usecase) ListRepresentatives(ctx context.Context, churchID string, activeOnly bool) ([]RepresentativeDTO, error) {
	c, err := u.churches.GetByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	rows, err := u.reps.ListByChurch(ctx, c.ID, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]RepresentativeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, repDTO(&rows[i], c.ChurchID))
	}
	return out, nil
}

func (u *Usecase) ListDonors(ctx context.Context, f donor.ListFilter) ([]donor.Donor, int64, error) {
	return u.donors.List(ctx, f)
}

// DonorCertificate backs the certificate-data JSON endpoint.
func (u *Usecase) DonorCertificate(ctx context.Context, donorID string) (*CertificateData, error) {
	d, err := u.donors.GetByDonorID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	out := &CertificateData{
		DonorID:       d.DonorID,
		Name:          d.Name,
		TotalPledged:  d.TotalPledged,
		TotalPaid:     d.TotalPaid,
		Balance:       d.Balance,
		PaymentStatus: string(d.PaymentStatus),
	}
	if d.ChurchID != nil {
		if c, err := u.churches.GetByID(ctx, *d.ChurchID); err == nil {
			out.ChurchName = c.Name
		}
	}
	return out, nil
}
