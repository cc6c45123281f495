package payment

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrInvalidMethod is returned for methods outside the accepted set
	// after aliasing is applied.
	ErrInvalidMethod = errors.New("invalid payment method")
)

type Method string

const (
	MethodCash  Method = "cash"
	MethodCard  Method = "card"
	MethodBank  Method = "bank"
	MethodOther Method = "other"
)

// NormalizeMethod maps legacy aliases onto the canonical set:
// transfer→bank, cheque→other.
func NormalizeMethod(raw string) (Method, error) {
	switch raw {
	case "transfer":
		return MethodBank, nil
	case "cheque":
		return MethodOther, nil
	case string(MethodCash), string(MethodCard), string(MethodBank), string(MethodOther):
		return Method(raw), nil
	default:
		return "", ErrInvalidMethod
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusVoided   Status = "voided"
)

type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`

	DonorName  string `gorm:"size:191" json:"donor_name"`
	DonorPhone string `gorm:"size:20;index:idx_payments_phone" json:"donor_phone"`
	DonorEmail string `gorm:"size:191" json:"donor_email"`
	Anonymous  bool   `gorm:"default:false" json:"anonymous"`

	Amount    float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Method    Method  `gorm:"type:enum('cash','card','bank','other')" json:"method"`
	Status    Status  `gorm:"type:enum('pending','approved','voided');default:'pending';index:idx_payments_status" json:"status"`
	Reference string  `gorm:"size:100" json:"reference"`
	Notes     string  `gorm:"size:10" json:"notes"`
	PackageID string  `gorm:"size:10" json:"package_id"`

	ClientUUID string `gorm:"size:36;uniqueIndex:ux_payments_client_uuid" json:"client_uuid"`

	ReceivedByUserID uint64 `gorm:"index" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
