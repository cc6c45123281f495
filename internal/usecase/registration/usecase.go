package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fundraising-backend/internal/domain/allocation"
	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/catalog"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/domain/payment"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/domain/uow"
	"fundraising-backend/pkg/id"
	"fundraising-backend/pkg/phone"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Submit runs the whole registrar submission: validation, duplicate
// guards, the insert, the audit row, and (for additional donations) the
// allocation batch — all inside one transaction.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	v, verr := u.validate(&in)
	if verr != nil {
		return nil, verr
	}

	var out *SubmitResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if v.kind == KindPaid {
			return u.submitPayment(ctx, r, in, v, &out)
		}
		return u.submitPledge(ctx, r, in, v, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// validated holds the normalized form after the checks pass.
type validated struct {
	kind   string // KindPledge | KindPaid
	name   string
	phone  string
	notes  string // exactly 4 digits
	pack   catalog.Package
	amount float64
	method payment.Method
}

func (u *Usecase) validate(in *SubmitInput) (*validated, error) {
	var msgs []string
	v := &validated{}

	// Server fallback when the client failed to send a token.
	in.ClientUUID = strings.TrimSpace(in.ClientUUID)
	if in.ClientUUID == "" {
		in.ClientUUID = id.NewClientUUID()
	}

	if in.Anonymous {
		v.name = "Anonymous"
		v.phone = ""
	} else {
		v.name = strings.TrimSpace(in.Name)
		if v.name == "" {
			msgs = append(msgs, "name is required")
		}
		raw := strings.TrimSpace(in.Phone)
		if raw == "" {
			msgs = append(msgs, "phone is required")
		} else {
			v.phone = phone.NormalizeUK(raw)
			if !phone.IsUKMobile(v.phone) {
				msgs = append(msgs, "phone must be a valid UK mobile (07XXXXXXXXX)")
			}
		}
	}

	v.notes = digitsOnly(in.Notes)
	if len(v.notes) != 4 {
		msgs = append(msgs, "tombola code must be exactly 4 digits")
	}

	switch in.Type {
	case KindPledge:
		v.kind = KindPledge
	case KindPaid:
		v.kind = KindPaid
		m, err := payment.NormalizeMethod(strings.TrimSpace(in.PaymentMethod))
		if err != nil {
			msgs = append(msgs, "please select a valid payment method")
		} else {
			v.method = m
		}
	default:
		msgs = append(msgs, "donation type must be pledge or paid")
	}

	p, amount, err := catalog.Resolve(in.Pack, in.CustomAmount)
	if err != nil {
		msgs = append(msgs, err.Error())
	} else {
		v.pack = p
		v.amount = amount
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}
	return v, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// guardDuplicates rejects a phone that already has a live pledge or
// payment. Skipped for additional donations and for empty (anonymous)
// phones. The lookups take FOR UPDATE locks on the phone's index range,
// so a concurrent submission for the same phone waits for this tx and
// then sees its insert.
func (u *Usecase) guardDuplicates(ctx context.Context, r uow.Repos, in SubmitInput, phone string) error {
	if in.AdditionalDonation || phone == "" {
		return nil
	}
	if exists, err := r.Pledges.ExistsActiveByPhoneForUpdate(ctx, phone); err != nil {
		return err
	} else if exists {
		return ErrDuplicateDonor
	}
	if exists, err := r.Payments.ExistsActiveByPhoneForUpdate(ctx, phone); err != nil {
		return err
	} else if exists {
		return ErrDuplicateDonor
	}
	return nil
}

func (u *Usecase) submitPledge(ctx context.Context, r uow.Repos, in SubmitInput, v *validated, out **SubmitResult) error {
	used, err := r.Pledges.ExistsByClientUUID(ctx, in.ClientUUID)
	if err != nil {
		return err
	}
	if used {
		return pledge.ErrDuplicateSubmission
	}
	if err := u.guardDuplicates(ctx, r, in, v.phone); err != nil {
		return err
	}

	p := &pledge.Pledge{
		PledgeID:        id.NewID32(),
		DonorName:       v.name,
		DonorPhone:      v.phone,
		DonorEmail:      strings.TrimSpace(in.Email),
		Anonymous:       in.Anonymous,
		Amount:          v.amount,
		Status:          pledge.StatusPending,
		Type:            "pledge",
		Notes:           v.notes,
		PackageID:       in.Pack,
		ClientUUID:      in.ClientUUID,
		CreatedByUserID: in.SubmittedByUserID,
	}
	if err := r.Pledges.Create(ctx, p); err != nil {
		return err
	}

	if err := r.Audit.Record(ctx, audit.Entry{
		UserID:     in.SubmittedByUserID,
		EntityType: "pledge",
		EntityID:   p.PledgeID,
		Action:     audit.ActionCreatePending,
		After:      p,
		Source:     "registrar",
	}); err != nil {
		return err
	}

	res := &SubmitResult{
		Kind:     "pledge",
		PublicID: p.PledgeID,
		Amount:   p.Amount,
		Message:  fmt.Sprintf("Pledge of %.2f recorded, pending approval", p.Amount),
	}

	// Additional donation: link back to the donor's original approved
	// pledge when one exists.
	if in.AdditionalDonation && v.phone != "" {
		if _, err := r.Donors.GetByPhone(ctx, v.phone); err != nil {
			if !errors.Is(err, donor.ErrNotFound) {
				return err
			}
		} else if orig, err := r.Pledges.LatestApprovedByPhone(ctx, v.phone); err != nil {
			if !errors.Is(err, pledge.ErrNotFound) {
				return err
			}
		} else {
			b := &allocation.Batch{
				BatchID:            id.NewID32(),
				DonorPhone:         v.phone,
				OriginalPledgeID:   orig.PledgeID,
				AdditionalPledgeID: p.PledgeID,
				OriginalAmount:     orig.Amount,
				AdditionalAmount:   p.Amount,
			}
			if err := r.Allocations.Create(ctx, b); err != nil {
				return err
			}
			res.BatchID = b.BatchID
		}
	}

	*out = res
	return nil
}

func (u *Usecase) submitPayment(ctx context.Context, r uow.Repos, in SubmitInput, v *validated, out **SubmitResult) error {
	used, err := r.Payments.ExistsByClientUUID(ctx, in.ClientUUID)
	if err != nil {
		return err
	}
	if used {
		return pledge.ErrDuplicateSubmission
	}
	if err := u.guardDuplicates(ctx, r, in, v.phone); err != nil {
		return err
	}

	p := &payment.Payment{
		PaymentID:        id.NewID32(),
		DonorName:        v.name,
		DonorPhone:       v.phone,
		DonorEmail:       strings.TrimSpace(in.Email),
		Anonymous:        in.Anonymous,
		Amount:           v.amount,
		Method:           v.method,
		Status:           payment.StatusPending,
		Notes:            v.notes,
		PackageID:        in.Pack,
		ClientUUID:       in.ClientUUID,
		ReceivedByUserID: in.SubmittedByUserID,
	}
	if err := r.Payments.Create(ctx, p); err != nil {
		return err
	}

	if err := r.Audit.Record(ctx, audit.Entry{
		UserID:     in.SubmittedByUserID,
		EntityType: "payment",
		EntityID:   p.PaymentID,
		Action:     audit.ActionCreatePending,
		After:      p,
		Source:     "registrar",
	}); err != nil {
		return err
	}

	*out = &SubmitResult{
		Kind:     "payment",
		PublicID: p.PaymentID,
		Amount:   p.Amount,
		Message:  fmt.Sprintf("Payment of %.2f recorded, pending approval", p.Amount),
	}
	return nil
}
