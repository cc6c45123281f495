package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type donorSQLite struct {
	ID               uint64  `gorm:"primaryKey;column:id"`
	DonorID          string  `gorm:"size:32;column:donor_id"`
	Name             string  `gorm:"column:name"`
	Phone            string  `gorm:"column:phone"`
	Email            string  `gorm:"column:email"`
	DonorType        string  `gorm:"type:text;column:donor_type"` // ← no enum
	TotalPledged     float64 `gorm:"column:total_pledged"`
	TotalPaid        float64 `gorm:"column:total_paid"`
	Balance          float64 `gorm:"column:balance"`
	PaymentStatus    string  `gorm:"type:text;column:payment_status"`
	ChurchID         *uint64 `gorm:"column:church_id"`
	RepresentativeID *uint64 `gorm:"column:representative_id"`
	Source           string  `gorm:"type:text;column:source"`
	IsImported       bool    `gorm:"column:is_imported"`
	HasActivePlan    bool    `gorm:"column:has_active_plan"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (donorSQLite) TableName() string { return "donors" }

type churchSQLite struct {
	ID       uint64 `gorm:"primaryKey;column:id"`
	ChurchID string `gorm:"size:32;column:church_id"`
	Name     string `gorm:"column:name"`
	City     string `gorm:"column:city"`
	Address  string `gorm:"column:address"`
	Phone    string `gorm:"column:phone"`
	IsActive bool   `gorm:"column:is_active"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (churchSQLite) TableName() string { return "churches" }

type repSQLite struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	RepID     string `gorm:"size:32;column:rep_id"`
	ChurchID  uint64 `gorm:"column:church_id"`
	Name      string `gorm:"column:name"`
	Phone     string `gorm:"column:phone"`
	Email     string `gorm:"column:email"`
	Title     string `gorm:"column:title"`
	IsPrimary bool   `gorm:"column:is_primary"`
	IsActive  bool   `gorm:"column:is_active"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (repSQLite) TableName() string { return "church_representatives" }

type pledgeSQLite struct {
	ID              uint64  `gorm:"primaryKey;column:id"`
	PledgeID        string  `gorm:"size:32;column:pledge_id"`
	DonorName       string  `gorm:"column:donor_name"`
	DonorPhone      string  `gorm:"column:donor_phone"`
	DonorEmail      string  `gorm:"column:donor_email"`
	Anonymous       bool    `gorm:"column:anonymous"`
	Amount          float64 `gorm:"column:amount"`
	Status          string  `gorm:"type:text;column:status"`
	Type            string  `gorm:"column:type"`
	Notes           string  `gorm:"column:notes"`
	PackageID       string  `gorm:"column:package_id"`
	ClientUUID      string  `gorm:"size:36;column:client_uuid"`
	CreatedByUserID uint64  `gorm:"column:created_by_user_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (pledgeSQLite) TableName() string { return "pledges" }

type paymentSQLite struct {
	ID               uint64  `gorm:"primaryKey;column:id"`
	PaymentID        string  `gorm:"size:32;column:payment_id"`
	DonorName        string  `gorm:"column:donor_name"`
	DonorPhone       string  `gorm:"column:donor_phone"`
	DonorEmail       string  `gorm:"column:donor_email"`
	Anonymous        bool    `gorm:"column:anonymous"`
	Amount           float64 `gorm:"column:amount"`
	Method           string  `gorm:"type:text;column:method"`
	Status           string  `gorm:"type:text;column:status"`
	Reference        string  `gorm:"column:reference"`
	Notes            string  `gorm:"column:notes"`
	PackageID        string  `gorm:"column:package_id"`
	ClientUUID       string  `gorm:"size:36;column:client_uuid"`
	ReceivedByUserID uint64  `gorm:"column:received_by_user_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (paymentSQLite) TableName() string { return "payments" }

type userSQLite struct {
	ID           uint64 `gorm:"primaryKey;column:id"`
	UserID       string `gorm:"size:32;column:user_id"`
	Name         string `gorm:"column:name"`
	Phone        string `gorm:"column:phone"`
	Email        string `gorm:"column:email"`
	Role         string `gorm:"type:text;column:role"`
	Active       bool   `gorm:"column:active"`
	PasscodeHash string `gorm:"column:passcode_hash"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userSQLite) TableName() string { return "users" }

type auditLogSQLite struct {
	ID         uint64 `gorm:"primaryKey;column:id"`
	UserID     uint64 `gorm:"column:user_id"`
	EntityType string `gorm:"column:entity_type"`
	EntityID   string `gorm:"column:entity_id"`
	Action     string `gorm:"column:action"`
	BeforeJSON string `gorm:"column:before_json"`
	AfterJSON  string `gorm:"column:after_json"`
	Source     string `gorm:"column:source"`

	CreatedAt time.Time
}

func (auditLogSQLite) TableName() string { return "audit_logs" }

type allocationBatchSQLite struct {
	ID                 uint64  `gorm:"primaryKey;column:id"`
	BatchID            string  `gorm:"size:32;column:batch_id"`
	DonorPhone         string  `gorm:"column:donor_phone"`
	OriginalPledgeID   string  `gorm:"column:original_pledge_id"`
	AdditionalPledgeID string  `gorm:"column:additional_pledge_id"`
	OriginalAmount     float64 `gorm:"column:original_amount"`
	AdditionalAmount   float64 `gorm:"column:additional_amount"`
	Status             string  `gorm:"column:status"`

	CreatedAt time.Time
}

func (allocationBatchSQLite) TableName() string { return "allocation_batches" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&donorSQLite{},
		&churchSQLite{},
		&repSQLite{},
		&pledgeSQLite{},
		&paymentSQLite{},
		&userSQLite{},
		&auditLogSQLite{},
		&allocationBatchSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
