package models

import "github.com/lib/pq"

type JobSeekerProfile struct {
	BaseModel
	UserID               string `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName            string `gorm:"not null"`
	LastName             string `gorm:"not null"`
	Profession           string `gorm:"not null"`
	Experience           string
	Skills               pq.StringArray `gorm:"type:text[]"`
	Bio                  string
	GithubLink           string
	LinkedinLink         string
	PersonalWebsite      string
	PortfolioDescription string

	// Storage keys
	Resume         string
	Portfolio      string
	ProfilePicture string
}

func (p *JobSeekerProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}
