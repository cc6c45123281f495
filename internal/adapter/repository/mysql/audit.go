package mysql

import (
	"context"

	auditDomain "fundraising-backend/internal/domain/audit"

	"gorm.io/gorm"
)

// AuditRepository is the one audit sink implementation; every workflow
// (registrar submissions, reviews, directory changes, the assignment
// wizard) records through it.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Record(ctx context.Context, e auditDomain.Entry) error {
	l := e.ToLog()
	return r.db.WithContext(ctx).Create(&l).Error
}
