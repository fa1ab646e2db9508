package services

import (
	"context"
	"errors"
	"fmt"

	"ajira_backend/internal/logger"
	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"
	"ajira_backend/internal/services/dto"
	"ajira_backend/pkg/apperrors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, viewer *Viewer, req *dto.CreateJobPostRequest) (*dto.JobPostResponse, error)
	// ListJobs returns the caller's own posts for a client and active posts for everyone else.
	ListJobs(db *gorm.DB, viewer *Viewer, filter models.JobPostFilter) ([]*dto.JobPostResponse, error)
	GetJob(db *gorm.DB, viewer *Viewer, jobID string) (*dto.JobPostResponse, error)
	UpdateJob(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string, req *dto.UpdateJobPostRequest) (*dto.JobPostResponse, error)
	ChangeStatus(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string, status models.JobStatus) (*dto.JobPostResponse, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	profileRepo  repositories.ProfileRepository
	notification NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notification NotificationService,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		profileRepo:  profileRepo,
		notification: notification,
	}
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, db *gorm.DB, viewer *Viewer, req *dto.CreateJobPostRequest) (*dto.JobPostResponse, error) {
	if !viewer.IsClient() {
		return nil, apperrors.ErrOnlyClientsCanPost
	}

	profile, err := s.profileRepo.FindClientProfile(db, viewer.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrOnlyClientsCanPost
		}
		return nil, apperrors.InternalError(err)
	}

	currency, err := resolveCurrency(profile, req.Currency)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusDraft
	}

	job := &models.JobPost{
		ClientID:        viewer.UserID,
		Title:           req.Title,
		Category:        req.Category,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Skills:          pq.StringArray(trimSkills(req.Skills)),
		ExperienceLevel: req.ExperienceLevel,
		ProjectType:     req.ProjectType,
		Budget:          *req.Budget,
		Currency:        currency,
		Duration:        *req.Duration,
		Location:        req.Location,
		RemoteWork:      req.RemoteWork,
		Status:          status,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job post created", "job_id", job.ID, "status", string(job.Status))
	return s.reloadAndAnnounce(ctx, db, job.ID, job.IsActive())
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, viewer *Viewer, filter models.JobPostFilter) ([]*dto.JobPostResponse, error) {
	if viewer.IsClient() {
		filter.ClientID = &viewer.UserID
		filter.Status = nil
	} else {
		active := models.JobStatusActive
		filter.ClientID = nil
		filter.Status = &active
	}

	jobs, err := s.jobRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobPostListResponse(jobs), nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, viewer *Viewer, jobID string) (*dto.JobPostResponse, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive() && (viewer == nil || !job.IsOwnedBy(viewer.UserID)) {
		return nil, apperrors.ErrJobNotFound
	}
	return dto.NewJobPostResponse(job), nil
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string, req *dto.UpdateJobPostRequest) (*dto.JobPostResponse, error) {
	job, err := s.findOwnedJob(db, viewer, jobID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		profile, err := s.profileRepo.FindClientProfile(db, viewer.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if _, err := resolveCurrency(profile, *req.Currency); err != nil {
			return nil, err
		}
		job.Currency = *req.Currency
	}

	wasActive := job.IsActive()
	applyJobUpdate(job, req)

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.reloadAndAnnounce(ctx, db, job.ID, !wasActive && job.IsActive())
}

func (s *JobServiceImpl) ChangeStatus(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string, status models.JobStatus) (*dto.JobPostResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.FieldError("status", fmt.Sprintf("\"%s\" is not a valid choice", status))
	}

	job, err := s.findOwnedJob(db, viewer, jobID)
	if err != nil {
		return nil, err
	}

	wasActive := job.IsActive()
	job.Status = status
	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job status changed", "job_id", job.ID, "status", string(status))
	return s.reloadAndAnnounce(ctx, db, job.ID, !wasActive && job.IsActive())
}

func (s *JobServiceImpl) findJob(db *gorm.DB, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// findOwnedJob hides drafts of other clients behind 404 and reports 403 for visible posts.
func (s *JobServiceImpl) findOwnedJob(db *gorm.DB, viewer *Viewer, jobID string) (*models.JobPost, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}
	if viewer == nil || !job.IsOwnedBy(viewer.UserID) {
		if !job.IsActive() {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.ErrNotJobOwner
	}
	return job, nil
}

// reloadAndAnnounce reads the post back with its client and runs the fan-out when announce is set.
func (s *JobServiceImpl) reloadAndAnnounce(ctx context.Context, db *gorm.DB, jobID string, announce bool) (*dto.JobPostResponse, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}
	if announce {
		s.notification.NotifyNewJob(ctx, db, job)
	}
	return dto.NewJobPostResponse(job), nil
}

func resolveCurrency(profile *models.ClientProfile, requested models.Currency) (models.Currency, error) {
	preferred := profile.Currency
	if preferred == "" {
		preferred = models.CurrencyKSH
	}
	if requested == "" {
		return preferred, nil
	}
	if requested != preferred {
		return "", apperrors.FieldError("currency",
			fmt.Sprintf("Currency must match your profile currency (%s)", preferred))
	}
	return requested, nil
}

func applyJobUpdate(job *models.JobPost, req *dto.UpdateJobPostRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Skills != nil {
		job.Skills = pq.StringArray(trimSkills(*req.Skills))
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.ProjectType != nil {
		job.ProjectType = *req.ProjectType
	}
	if req.Budget != nil {
		job.Budget = *req.Budget
	}
	if req.Duration != nil {
		job.Duration = *req.Duration
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.RemoteWork != nil {
		job.RemoteWork = *req.RemoteWork
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
}

func trimSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, trim(s))
	}
	return out
}
