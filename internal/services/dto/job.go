package dto

import (
	"strconv"
	"strings"
	"time"

	"ajira_backend/internal/models"
)

// CreateJobPostRequest uses pointers for budget and duration so a zero value
// is reported by gt rather than by required.
type CreateJobPostRequest struct {
	Title           string                 `json:"title" validate:"required,notblank,max=255"`
	Category        string                 `json:"category" validate:"required,notblank,max=100"`
	Description     string                 `json:"description" validate:"required,notblank"`
	Requirements    string                 `json:"requirements" validate:"required,notblank"`
	Skills          []string               `json:"skills" validate:"required,min=1,nonblank-items"`
	ExperienceLevel models.ExperienceLevel `json:"experience_level" validate:"required,experience-level"`
	ProjectType     models.ProjectType     `json:"project_type" validate:"required,project-type"`
	Budget          *float64               `json:"budget" validate:"required,gt=0,budget"`
	Currency        models.Currency        `json:"currency" validate:"omitempty,currency"`
	Duration        *int                   `json:"duration" validate:"required,gt=0,max=2147483647"`
	Location        *string                `json:"location" validate:"omitempty,max=255"`
	RemoteWork      bool                   `json:"remote_work"`
	Status          models.JobStatus       `json:"status" validate:"omitempty,job-status"`
}

func (r *CreateJobPostRequest) ValidationMessages() map[string]string {
	return jobMessages
}

var jobMessages = map[string]string{
	"skills.required":   "At least one skill is required",
	"skills.min":        "At least one skill is required",
	"budget.gt":         "Budget must be greater than 0",
	"duration.gt":       "Duration must be greater than 0",
	"currency.currency": "Currency must be either KSH or USD",
}

// UpdateJobPostRequest is a partial update with the same rules as create.
type UpdateJobPostRequest struct {
	Title           *string                 `json:"title" validate:"omitnil,notblank,max=255"`
	Category        *string                 `json:"category" validate:"omitnil,notblank,max=100"`
	Description     *string                 `json:"description" validate:"omitnil,notblank"`
	Requirements    *string                 `json:"requirements" validate:"omitnil,notblank"`
	Skills          *[]string               `json:"skills" validate:"omitnil,min=1,nonblank-items"`
	ExperienceLevel *models.ExperienceLevel `json:"experience_level" validate:"omitempty,experience-level"`
	ProjectType     *models.ProjectType     `json:"project_type" validate:"omitempty,project-type"`
	Budget          *float64                `json:"budget" validate:"omitnil,gt=0,budget"`
	Currency        *models.Currency        `json:"currency" validate:"omitempty,currency"`
	Duration        *int                    `json:"duration" validate:"omitnil,gt=0,max=2147483647"`
	Location        *string                 `json:"location" validate:"omitempty,max=255"`
	RemoteWork      *bool                   `json:"remote_work"`
	Status          *models.JobStatus       `json:"status" validate:"omitempty,job-status"`
}

func (r *UpdateJobPostRequest) ValidationMessages() map[string]string {
	return jobMessages
}

type ChangeJobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required,job-status"`
}

// JobPostQuery holds the raw listing filters. Parse validates them.
type JobPostQuery struct {
	Category        string `form:"category"`
	ExperienceLevel string `form:"experience_level"`
	ProjectType     string `form:"project_type"`
	RemoteWork      string `form:"remote_work"`
}

// Parse converts the query into a filter, collecting every invalid value.
func (q *JobPostQuery) Parse() (models.JobPostFilter, map[string][]string) {
	var filter models.JobPostFilter
	errs := map[string][]string{}

	if q.Category != "" {
		category := q.Category
		filter.Category = &category
	}
	if q.ExperienceLevel != "" {
		level := models.ExperienceLevel(q.ExperienceLevel)
		if level.IsValid() {
			filter.ExperienceLevel = &level
		} else {
			errs["experience_level"] = append(errs["experience_level"], "Select a valid choice")
		}
	}
	if q.ProjectType != "" {
		pt := models.ProjectType(q.ProjectType)
		if pt.IsValid() {
			filter.ProjectType = &pt
		} else {
			errs["project_type"] = append(errs["project_type"], "Select a valid choice")
		}
	}
	if q.RemoteWork != "" {
		remote, err := strconv.ParseBool(strings.ToLower(q.RemoteWork))
		if err == nil {
			filter.RemoteWork = &remote
		} else {
			errs["remote_work"] = append(errs["remote_work"], "Must be a valid boolean")
		}
	}
	return filter, errs
}

type JobPostResponse struct {
	ID              string                 `json:"id"`
	ClientID        string                 `json:"client"`
	ClientCompany   string                 `json:"client_company,omitempty"`
	Title           string                 `json:"title"`
	Category        string                 `json:"category"`
	Description     string                 `json:"description"`
	Requirements    string                 `json:"requirements"`
	Skills          []string               `json:"skills"`
	ExperienceLevel models.ExperienceLevel `json:"experience_level"`
	ProjectType     models.ProjectType     `json:"project_type"`
	Budget          float64                `json:"budget"`
	Currency        models.Currency        `json:"currency"`
	Duration        int                    `json:"duration"`
	Location        *string                `json:"location"`
	RemoteWork      bool                   `json:"remote_work"`
	Status          models.JobStatus       `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func NewJobPostResponse(job *models.JobPost) *JobPostResponse {
	resp := &JobPostResponse{
		ID:              job.ID,
		ClientID:        job.ClientID,
		Title:           job.Title,
		Category:        job.Category,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Skills:          []string(job.Skills),
		ExperienceLevel: job.ExperienceLevel,
		ProjectType:     job.ProjectType,
		Budget:          job.Budget,
		Currency:        job.Currency,
		Duration:        job.Duration,
		Location:        job.Location,
		RemoteWork:      job.RemoteWork,
		Status:          job.Status,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
	if job.Client != nil && job.Client.ClientProfile != nil {
		resp.ClientCompany = job.Client.ClientProfile.CompanyName
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	return resp
}

func NewJobPostListResponse(jobs []models.JobPost) []*JobPostResponse {
	out := make([]*JobPostResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobPostResponse(&jobs[i]))
	}
	return out
}
