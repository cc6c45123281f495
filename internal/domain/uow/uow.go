package uow

import (
	"context"

	"fundraising-backend/internal/domain/allocation"
	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/church"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/domain/payment"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/domain/user"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Donors          donor.Repository
	Churches        church.Repository
	Representatives church.RepresentativeRepository
	Pledges         pledge.Repository
	Payments        payment.Repository
	Users           user.Repository
	Allocations     allocation.Repository
	Audit           audit.Sink
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
