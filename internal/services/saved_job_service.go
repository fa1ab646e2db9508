package services

import (
	"context"
	"errors"

	"ajira_backend/internal/logger"
	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"
	"ajira_backend/internal/services/dto"
	"ajira_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SavedJobService interface {
	Save(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string) (*dto.JobPostResponse, error)
	Unsave(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string) error
	List(db *gorm.DB, viewer *Viewer) ([]*dto.SavedJobResponse, error)
}

type SavedJobServiceImpl struct {
	savedRepo repositories.SavedJobRepository
	jobRepo   repositories.JobRepository
}

func NewSavedJobService(savedRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) SavedJobService {
	return &SavedJobServiceImpl{savedRepo: savedRepo, jobRepo: jobRepo}
}

func (s *SavedJobServiceImpl) Save(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string) (*dto.JobPostResponse, error) {
	if !viewer.IsJobSeeker() {
		return nil, apperrors.ErrOnlyJobSeekers
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	// Only published posts are visible to job seekers; anything else reads as missing.
	if !job.IsActive() {
		return nil, apperrors.ErrJobNotFound
	}

	exists, err := s.savedRepo.Exists(db, viewer.UserID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadySaved
	}

	if err := s.savedRepo.Create(db, &models.SavedJob{JobSeekerID: viewer.UserID, JobID: jobID}); err != nil {
		if errors.Is(err, repositories.ErrSavedJobAlreadyExists) {
			return nil, apperrors.ErrAlreadySaved
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxDebug(ctx, "job saved", "job_id", jobID)
	return dto.NewJobPostResponse(job), nil
}

func (s *SavedJobServiceImpl) Unsave(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string) error {
	if !viewer.IsJobSeeker() {
		return apperrors.ErrOnlyJobSeekers
	}
	if err := s.savedRepo.Delete(db, viewer.UserID, jobID); err != nil {
		if errors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.ErrSavedJobNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.CtxDebug(ctx, "job unsaved", "job_id", jobID)
	return nil
}

func (s *SavedJobServiceImpl) List(db *gorm.DB, viewer *Viewer) ([]*dto.SavedJobResponse, error) {
	if !viewer.IsJobSeeker() {
		return nil, apperrors.ErrOnlyJobSeekers
	}
	saved, err := s.savedRepo.ListBySeeker(db, viewer.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]*dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		out = append(out, dto.NewSavedJobResponse(&saved[i]))
	}
	return out, nil
}
