package model

import "time"

type DisbursementTransaction struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	LoanID      string    `gorm:"size:36;not null;index" json:"loan_id"`
	Amount      string    `gorm:"size:50" json:"amount"`
	Status      string    `gorm:"size:50;not null" json:"status"`
	ProcessedAt time.Time `gorm:"not null" json:"processed_at"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
