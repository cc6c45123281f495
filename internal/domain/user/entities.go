package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown phone and wrong passcode,
	// so login responses don't reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid phone or passcode")
	ErrInactive           = errors.New("account is deactivated")
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRegistrar Role = "registrar"
)

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name   string `gorm:"size:191" json:"name"`
	Phone  string `gorm:"size:20;uniqueIndex:ux_users_phone" json:"phone"`
	Email  string `gorm:"size:191" json:"email"`
	Role   Role   `gorm:"type:enum('admin','registrar');default:'registrar'" json:"role"`
	Active bool   `gorm:"default:true" json:"active"`

	// bcrypt hash of the 6-digit numeric passcode.
	PasscodeHash string `gorm:"size:100" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
