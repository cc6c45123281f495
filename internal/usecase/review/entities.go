package review

import (
	"errors"
	"time"
)

var (
	ErrAlreadyReviewed = errors.New("record has already been reviewed")
	// ErrInvalidDecision: the decision word is not in the vocabulary.
	ErrInvalidDecision = errors.New("invalid review decision")
	// ErrInvalidTransition: the decision exists but this record kind can
	// never take it (void a pledge, reject a payment).
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionVoid    = "void"
)

type PledgeReviewInput struct {
	PledgeID         string
	Decision         string // approve | reject
	ReviewedByUserID uint64
}

type PaymentReviewInput struct {
	PaymentID        string
	Decision         string // approve | void
	ReviewedByUserID uint64
}

type ReviewDTO struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Amount     float64   `json:"amount"`
	ReviewedAt time.Time `json:"reviewed_at"`
	// Donor rollup after the transition, zero values for anonymous rows.
	DonorStatus  string  `json:"donor_status,omitempty"`
	TotalPledged float64 `json:"total_pledged"`
	TotalPaid    float64 `json:"total_paid"`
	Balance      float64 `json:"balance"`
}
