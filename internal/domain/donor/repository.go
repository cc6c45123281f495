package donor

import "context"

type ListFilter struct {
	Search   string // matches name or phone
	ChurchID *uint64
	Status   PaymentStatus
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, d *Donor) error
	Save(ctx context.Context, d *Donor) error
	GetByDonorID(ctx context.Context, donorID string) (*Donor, error)
	GetByPhone(ctx context.Context, phone string) (*Donor, error)
	// GetByPhoneForUpdate locks the donor row for the rest of the transaction.
	GetByPhoneForUpdate(ctx context.Context, phone string) (*Donor, error)
	List(ctx context.Context, f ListFilter) ([]Donor, int64, error)
	// DetachChurch nulls church/representative links for every donor of a church.
	DetachChurch(ctx context.Context, churchID uint64) (int64, error)
}
