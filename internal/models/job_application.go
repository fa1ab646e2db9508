package models

import (
	"gorm.io/datatypes"
)

// ApplicationStep is one stage of a hiring process.
type ApplicationStep struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type JobApplication struct {
	BaseModel
	JobSeekerID string `gorm:"type:uuid;not null;uniqueIndex:idx_application_seeker_job"`
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_application_seeker_job;index"`
	CoverLetter string
	Resume      string
	Status      ApplicationStatus                    `gorm:"type:varchar(20);not null;default:'pending'"`
	CurrentStep int                                  `gorm:"not null;default:0"`
	Steps       datatypes.JSONSlice[ApplicationStep] `gorm:"type:jsonb;not null;default:'[]'"`

	// Relations
	Job       *JobPost `gorm:"foreignKey:JobID"`
	JobSeeker *User    `gorm:"foreignKey:JobSeekerID"`
}

// CanWithdraw reports whether the applicant may still delete the application.
func (a *JobApplication) CanWithdraw() bool {
	return a.Status == ApplicationStatusPending
}

// AdvanceStep moves to the next step and reports whether it moved.
// The counter never passes the last step.
func (a *JobApplication) AdvanceStep() bool {
	if a.CurrentStep < len(a.Steps)-1 {
		a.CurrentStep++
		return true
	}
	return false
}

// SetSteps replaces the step list and clamps CurrentStep into range.
func (a *JobApplication) SetSteps(steps []ApplicationStep) {
	a.Steps = datatypes.JSONSlice[ApplicationStep](steps)
	if last := len(steps) - 1; a.CurrentStep > last {
		a.CurrentStep = max(last, 0)
	}
}
