package member

import (
	"errors"
	"time"
)

var (
	ErrInvalidPasscode = errors.New("passcode must be exactly 6 digits")
	ErrInvalidInput    = errors.New("invalid input")
)

type CreateInput struct {
	Name     string
	Phone    string
	Email    string
	Role     string // admin | registrar
	Passcode string // 6-digit numeric, stored hashed
}

type UpdateInput struct {
	Name     string
	Email    string
	Passcode string // optional; rotates the hash when set
	Active   *bool
}

type MemberDTO struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginInput struct {
	Phone    string
	Passcode string
}

type LoginDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      MemberDTO `json:"user"`
}
