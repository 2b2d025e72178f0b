package model

import "time"

type LoanInstallment struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	LoanID        string    `gorm:"size:36;not null;index" json:"loan_id"`
	PrincipalPaid string    `gorm:"size:50" json:"principal_paid"`
	InterestPaid  string    `gorm:"size:50" json:"interest_paid"`
	PaidAmount    string    `gorm:"size:50" json:"paid_amount"`
	DueDate       time.Time `json:"due_date"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
