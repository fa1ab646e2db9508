package models

type ClientProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName string `gorm:"not null"`
	Industry    string `gorm:"not null"`
	CompanySize string
	Website     string
	Description string
	Currency    Currency `gorm:"type:varchar(3);not null;default:'KSH'"`
}
