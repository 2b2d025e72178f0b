package model

import "time"

// Loan carries the origination figures the statement summary is built from.
// Monetary columns arrive as text from the upstream system and are coerced
// to decimals at the engine boundary.
type Loan struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerID      string    `gorm:"size:36;not null;index" json:"customer_id"`
	RegistrationFee string    `gorm:"size:50" json:"registration_fee"`
	ScoredAmount    string    `gorm:"size:50" json:"scored_amount"`
	TotalInterest   string    `gorm:"size:50" json:"total_interest"`
	TotalPayable    string    `gorm:"size:50" json:"total_payable"`
	ProcessingFee   string    `gorm:"size:50" json:"processing_fee"`
	Status          string    `gorm:"size:50;not null" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}
