package model

import "time"

type Customer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FullName  string    `gorm:"size:200;not null" json:"full_name"`
	Phone     string    `gorm:"size:20;not null;index" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
