package allocation

import "time"

// Batch links an additional donation to the donor's original approved
// pledge so grid allocations can be reconciled as one unit.
type Batch struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	BatchID string `gorm:"size:32;uniqueIndex:ux_alloc_batch_id" json:"batch_id"`

	DonorPhone         string  `gorm:"size:20;index:idx_alloc_phone" json:"donor_phone"`
	OriginalPledgeID   string  `gorm:"size:32" json:"original_pledge_id"`
	AdditionalPledgeID string  `gorm:"size:32" json:"additional_pledge_id"`
	OriginalAmount     float64 `gorm:"type:decimal(18,2)" json:"original_amount"`
	AdditionalAmount   float64 `gorm:"type:decimal(18,2)" json:"additional_amount"`
	Status             string  `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Batch) TableName() string { return "allocation_batches" }
