package model

import "time"

type WalletCredit struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerID     string    `gorm:"size:36;not null;index" json:"customer_id"`
	Amount         string    `gorm:"size:50" json:"amount"`
	EntryType      string    `gorm:"size:50;not null" json:"entry_type"`
	MpesaReference *string   `gorm:"size:50" json:"mpesa_reference"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
