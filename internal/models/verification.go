package models

import "time"

// VerificationCode is a one-time 6-digit email code. It is deleted once consumed.
type VerificationCode struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
