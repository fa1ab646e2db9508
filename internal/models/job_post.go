package models

import (
	"github.com/lib/pq"
)

type JobPost struct {
	BaseModel
	ClientID        string          `gorm:"type:uuid;not null;index"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(100);not null;index"`
	Description     string          `gorm:"not null"`
	Requirements    string          `gorm:"not null"`
	Skills          pq.StringArray  `gorm:"type:text[];not null"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null"`
	ProjectType     ProjectType     `gorm:"type:varchar(20);not null"`
	Budget          float64         `gorm:"type:numeric(10,2);not null"`
	Currency        Currency        `gorm:"type:varchar(3);not null;default:'KSH'"`
	Duration        int             `gorm:"not null"` // days
	Location        *string
	RemoteWork      bool      `gorm:"not null;default:false"`
	Status          JobStatus `gorm:"type:varchar(20);not null;default:'draft';index"`

	// Relations
	Client *User `gorm:"foreignKey:ClientID"`
}

func (j *JobPost) IsActive() bool {
	return j.Status == JobStatusActive
}

func (j *JobPost) IsOwnedBy(userID string) bool {
	return j.ClientID == userID
}

// JobPostFilter holds the equality filters of a listing. Nil fields are ignored.
type JobPostFilter struct {
	ClientID        *string
	Status          *JobStatus
	Category        *string
	ExperienceLevel *ExperienceLevel
	ProjectType     *ProjectType
	RemoteWork      *bool
}
