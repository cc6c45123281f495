package donor

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("donor not found")

type Type string

const (
	TypePledge           Type = "pledge"
	TypeImmediatePayment Type = "immediate_payment"
)

type Source string

const (
	SourcePublicForm Source = "public_form"
	SourceRegistrar  Source = "registrar"
	SourceImported   Source = "imported"
	SourceAdmin      Source = "admin"
)

type PaymentStatus string

const (
	StatusNoPledge   PaymentStatus = "no_pledge"
	StatusNotStarted PaymentStatus = "not_started"
	StatusPaying     PaymentStatus = "paying"
	StatusOverdue    PaymentStatus = "overdue"
	StatusCompleted  PaymentStatus = "completed"
	StatusDefaulted  PaymentStatus = "defaulted"
)

type Donor struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	DonorID string `gorm:"size:32;uniqueIndex:ux_donors_donor_id" json:"donor_id"`
	Name    string `gorm:"size:191" json:"name"`
	// Normalized UK mobile (07XXXXXXXXX) or empty for anonymous donors.
	Phone string `gorm:"size:20;index:idx_donors_phone" json:"phone"`
	Email string `gorm:"size:191" json:"email"`

	DonorType     Type          `gorm:"type:enum('pledge','immediate_payment');default:'pledge'" json:"donor_type"`
	TotalPledged  float64       `gorm:"type:decimal(18,2)" json:"total_pledged"`
	TotalPaid     float64       `gorm:"type:decimal(18,2)" json:"total_paid"`
	Balance       float64       `gorm:"type:decimal(18,2)" json:"balance"`
	PaymentStatus PaymentStatus `gorm:"type:enum('no_pledge','not_started','paying','overdue','completed','defaulted');default:'no_pledge'" json:"payment_status"`

	ChurchID         *uint64 `gorm:"index:idx_donors_church" json:"church_id"`
	RepresentativeID *uint64 `gorm:"index:idx_donors_rep" json:"representative_id"`

	Source        Source `gorm:"type:enum('public_form','registrar','imported','admin');default:'registrar'" json:"source"`
	IsImported    bool   `gorm:"default:false" json:"is_imported"`
	HasActivePlan bool   `gorm:"default:false" json:"has_active_plan"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string { return "donors" }

// DeriveStatus computes the payment status from the rollup totals.
// Overdue/defaulted are set by collection workflows, never derived here.
func DeriveStatus(totalPledged, totalPaid float64) PaymentStatus {
	switch {
	case totalPledged <= 0 && totalPaid <= 0:
		return StatusNoPledge
	case totalPledged <= 0:
		// immediate payment with no pledge: nothing left outstanding
		return StatusCompleted
	case totalPaid <= 0:
		return StatusNotStarted
	case totalPaid < totalPledged:
		return StatusPaying
	default:
		return StatusCompleted
	}
}
