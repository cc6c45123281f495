package mysql

import (
	"context"

	"fundraising-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Donors:          &DonorRepository{db: tx},
			Churches:        &ChurchRepository{db: tx},
			Representatives: &RepresentativeRepository{db: tx},
			Pledges:         &PledgeRepository{db: tx},
			Payments:        &PaymentRepository{db: tx},
			Users:           &UserRepository{db: tx},
			Allocations:     &AllocationRepository{db: tx},
			Audit:           &AuditRepository{db: tx},
		}
		return fn(r)
	})
}
