package dto

import (
	"time"

	"ajira_backend/internal/models"
)

// ApplyRequest is bound from JSON or from multipart form fields; the resume arrives separately.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" form:"cover_letter" validate:"required"`
}

// UpdateApplicationStatusRequest is checked by the service so that every bad value reports "Invalid status".
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

type StepInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type SetStepsRequest struct {
	Steps []StepInput `json:"steps" validate:"required,dive"`
}

func (r *SetStepsRequest) ToModel() []models.ApplicationStep {
	steps := make([]models.ApplicationStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, models.ApplicationStep{Name: s.Name, Description: s.Description})
	}
	return steps
}

type ApplicantResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Profession string `json:"profession,omitempty"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	Job         *JobPostResponse         `json:"job,omitempty"`
	JobSeekerID string                   `json:"job_seeker_id"`
	JobSeeker   *ApplicantResponse       `json:"job_seeker,omitempty"`
	CoverLetter string                   `json:"cover_letter"`
	Resume      string                   `json:"resume,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	CurrentStep int                      `json:"current_step"`
	Steps       []models.ApplicationStep `json:"steps"`
	AppliedDate time.Time                `json:"applied_date"`
	LastUpdated time.Time                `json:"last_updated"`
}

// NewApplicationResponse maps a row; the resume URL is filled in by the caller.
func NewApplicationResponse(app *models.JobApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		JobSeekerID: app.JobSeekerID,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		CurrentStep: app.CurrentStep,
		Steps:       []models.ApplicationStep(app.Steps),
		AppliedDate: app.CreatedAt,
		LastUpdated: app.UpdatedAt,
	}
	if resp.Steps == nil {
		resp.Steps = []models.ApplicationStep{}
	}
	if app.Job != nil {
		resp.Job = NewJobPostResponse(app.Job)
	}
	if app.JobSeeker != nil {
		applicant := &ApplicantResponse{ID: app.JobSeeker.ID, Email: app.JobSeeker.Email}
		if p := app.JobSeeker.JobSeekerProfile; p != nil {
			applicant.FirstName = p.FirstName
			applicant.LastName = p.LastName
			applicant.Profession = p.Profession
		}
		resp.JobSeeker = applicant
	}
	return resp
}

type SavedJobResponse struct {
	ID      string           `json:"id"`
	Job     *JobPostResponse `json:"job"`
	SavedAt time.Time        `json:"saved_at"`
}

func NewSavedJobResponse(saved *models.SavedJob) *SavedJobResponse {
	resp := &SavedJobResponse{ID: saved.ID, SavedAt: saved.CreatedAt}
	if saved.Job != nil {
		resp.Job = NewJobPostResponse(saved.Job)
	}
	return resp
}
