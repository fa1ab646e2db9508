package models

import "time"

// UsernameMaxLength is the width of users.username.
const UsernameMaxLength = 150

// User is the common identity record. Exactly one of ClientProfile and JobSeekerProfile
// exists, selected by UserType.
type User struct {
	BaseModel
	Email         string   `gorm:"uniqueIndex;not null"`
	Username      string   `gorm:"type:varchar(150);not null"`
	PasswordHash  string   `gorm:"not null"`
	EmailVerified bool     `gorm:"not null;default:false"`
	UserType      UserRole `gorm:"type:varchar(20);not null"`

	// Relations
	ClientProfile    *ClientProfile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) IsClient() bool {
	return u.UserType == UserRoleClient
}

func (u *User) IsJobSeeker() bool {
	return u.UserType == UserRoleJobSeeker
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
