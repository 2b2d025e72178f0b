package model

import "time"

// ExternalCollection is an inbound mobile-money transfer recorded
// independently of the loan-specific payment table.
type ExternalCollection struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	TransactionID string    `gorm:"size:50;not null;index" json:"transaction_id"`
	Msisdn        string    `gorm:"size:20;not null;index" json:"msisdn"`
	Amount        string    `gorm:"size:50" json:"amount"`
	Status        string    `gorm:"size:50;not null" json:"status"`
	TransTime     time.Time `gorm:"not null" json:"trans_time"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
