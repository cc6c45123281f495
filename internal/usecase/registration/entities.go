package registration

import (
	"errors"
	"strings"
)

const (
	KindPledge = "pledge"
	KindPaid   = "paid"
)

// ErrDuplicateDonor is the business-rule rejection for a phone that
// already has a live pledge or payment on file.
var ErrDuplicateDonor = errors.New("this donor already has a registered pledge/payment")

// ValidationError carries every message collected while checking the
// form, surfaced to the client as one combined error.
type ValidationError struct{ Messages []string }

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }

type SubmitInput struct {
	Name               string
	Phone              string
	Email              string
	Notes              string // tombola code, free-form from the client
	Anonymous          bool
	Pack               string // "1" | "0.5" | "0.25" | "custom"
	CustomAmount       float64
	Type               string // "pledge" | "paid"
	PaymentMethod      string
	ClientUUID         string
	AdditionalDonation bool

	SubmittedByUserID uint64
}

type SubmitResult struct {
	Kind     string  `json:"kind"` // "pledge" | "payment"
	PublicID string  `json:"id"`
	Amount   float64 `json:"amount"`
	Message  string  `json:"message"`
	// BatchID is set when an additional donation was linked to the
	// donor's original approved pledge.
	BatchID string `json:"batch_id,omitempty"`
}
