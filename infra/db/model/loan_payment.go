package model

import "time"

type LoanPayment struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	LoanID       string    `gorm:"size:36;not null;index" json:"loan_id"`
	Amount       string    `gorm:"size:50" json:"amount"`
	PaymentType  string    `gorm:"size:50" json:"payment_type"`
	MpesaReceipt string    `gorm:"size:50;index" json:"mpesa_receipt"`
	PaidAt       time.Time `gorm:"not null" json:"paid_at"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
