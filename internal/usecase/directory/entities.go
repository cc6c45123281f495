package directory

import "time"

type ChurchInput struct {
	Name    string
	City    string
	Address string
	Phone   string
}

type ChurchDTO struct {
	ChurchID  string    `json:"church_id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ChurchList struct {
	Churches []ChurchDTO `json:"churches"`
	Total    int64       `json:"total"`
}

type RepresentativeInput struct {
	ChurchID  string
	Name      string
	Phone     string
	Email     string
	Title     string
	IsPrimary bool
}

type RepresentativeDTO struct {
	RepID     string `json:"representative_id"`
	ChurchID  string `json:"church_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	IsPrimary bool   `json:"is_primary"`
	IsActive  bool   `json:"is_active"`
}

// CertificateData backs the donor certificate JSON endpoint.
type CertificateData struct {
	DonorID       string  `json:"donor_id"`
	Name          string  `json:"name"`
	TotalPledged  float64 `json:"total_pledged"`
	TotalPaid     float64 `json:"total_paid"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"payment_status"`
	ChurchName    string  `json:"church_name,omitempty"`
}
