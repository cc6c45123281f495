package church

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("church not found")
	ErrRepNotFound = errors.New("representative not found")
	// ErrPrimaryTaken is returned when a church already has an active
	// primary representative and a second one is being promoted.
	ErrPrimaryTaken = errors.New("church already has an active primary representative")
)

type Church struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ChurchID string `gorm:"size:32;uniqueIndex:ux_churches_church_id" json:"church_id"`
	Name     string `gorm:"size:191" json:"name"`
	City     string `gorm:"size:100" json:"city"`
	Address  string `gorm:"type:text" json:"address"`
	Phone    string `gorm:"size:20" json:"phone"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Church) TableName() string { return "churches" }

type Representative struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	RepID    string `gorm:"size:32;uniqueIndex:ux_reps_rep_id" json:"representative_id"`
	ChurchID uint64 `gorm:"not null;index:idx_reps_church" json:"-"`
	Name     string `gorm:"size:191" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Email    string `gorm:"size:191" json:"email"`
	Title    string `gorm:"size:100" json:"title"`

	IsPrimary bool `gorm:"default:false" json:"is_primary"`
	IsActive  bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Representative) TableName() string { return "church_representatives" }
