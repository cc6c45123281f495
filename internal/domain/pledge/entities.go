package pledge

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("pledge not found")
	// ErrDuplicateSubmission is returned when a client_uuid has already
	// been used; the client double-submitted the same form.
	ErrDuplicateSubmission = errors.New("Duplicate submission detected")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Pledge struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	PledgeID string `gorm:"size:32;uniqueIndex:ux_pledges_pledge_id" json:"pledge_id"`

	// Donor identity captured at submission time, deliberately denormalized
	// so the row stays meaningful if the donor record changes later.
	DonorName  string `gorm:"size:191" json:"donor_name"`
	DonorPhone string `gorm:"size:20;index:idx_pledges_phone" json:"donor_phone"`
	DonorEmail string `gorm:"size:191" json:"donor_email"`
	Anonymous  bool   `gorm:"default:false" json:"anonymous"`

	Amount float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Status Status  `gorm:"type:enum('pending','approved','rejected');default:'pending';index:idx_pledges_status" json:"status"`
	Type   string  `gorm:"size:20;default:'pledge'" json:"type"`
	// Notes holds the 4-digit tombola code.
	Notes     string `gorm:"size:10" json:"notes"`
	PackageID string `gorm:"size:10" json:"package_id"`

	// Idempotency fence: one row per client submission token.
	ClientUUID string `gorm:"size:36;uniqueIndex:ux_pledges_client_uuid" json:"client_uuid"`

	CreatedByUserID uint64 `gorm:"index" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Pledge) TableName() string { return "pledges" }
