package assignment

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("assignment session not found or expired")
	// ErrInvalidState rejects wizard steps taken out of order, so a
	// stale or replayed URL cannot skip ahead.
	ErrInvalidState = errors.New("step not allowed in current wizard state")
)

type State string

const (
	StateSearchingDonor State = "searching_donor"
	StateChurchChosen   State = "church_chosen"
	StateRepChosen      State = "representative_chosen"
	StateConfirmed      State = "confirmed"
)

// Session is the server-held wizard state, keyed by an opaque token.
type Session struct {
	Token   string `json:"token"`
	State   State  `json:"state"`
	DonorID string `json:"donor_id"`

	ChurchID string `json:"church_id,omitempty"`
	RepID    string `json:"representative_id,omitempty"`

	StartedByUserID uint64    `json:"started_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// Store persists wizard sessions between steps. Implementations must
// return ErrSessionNotFound for unknown or expired tokens.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type StepResult struct {
	Token string `json:"token"`
	State State  `json:"state"`
}

type ConfirmResult struct {
	Token    string `json:"token"`
	State    State  `json:"state"`
	DonorID  string `json:"donor_id"`
	ChurchID string `json:"church_id"`
	RepID    string `json:"representative_id"`
}
