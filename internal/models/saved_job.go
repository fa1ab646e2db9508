package models

type SavedJob struct {
	BaseModel
	JobSeekerID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_seeker_job"`
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_seeker_job;index"`

	// Relations
	Job *JobPost `gorm:"foreignKey:JobID"`
}
