package services

import (
	"context"
	"errors"
	"mime/multipart"

	"ajira_backend/internal/config"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"
	"ajira_backend/internal/services/dto"
	"ajira_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationService interface {
	// Apply creates a pending application. resume may be nil.
	Apply(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string, req *dto.ApplyRequest, resume *multipart.FileHeader) (*dto.ApplicationResponse, error)
	ListMine(ctx context.Context, db *gorm.DB, viewer *Viewer) ([]*dto.ApplicationResponse, error)
	ListForJob(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string) ([]*dto.ApplicationResponse, error)
	Get(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string) (*dto.ApplicationResponse, error)
	Withdraw(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string) error
	UpdateStatus(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
	AdvanceStep(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string) (*dto.ApplicationResponse, error)
	SetSteps(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string, steps []models.ApplicationStep) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo   repositories.ApplicationRepository
	jobRepo   repositories.JobRepository
	uploads   UploadService
	presenter *Presenter
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	uploads UploadService,
	presenter *Presenter,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		uploads:   uploads,
		presenter: presenter,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string, req *dto.ApplyRequest, resume *multipart.FileHeader) (*dto.ApplicationResponse, error) {
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
	if !job.IsActive() {
		return nil, apperrors.ErrJobNotFound
	}

	exists, err := s.appRepo.Exists(db, viewer.UserID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	var resumeKey string
	if resume != nil {
		resumeKey, err = s.uploads.Store(ctx, config.ApplicationResumeFileRule, viewer.UserID, resume)
		if err != nil {
			return nil, err
		}
	}

	app := &models.JobApplication{
		JobSeekerID: viewer.UserID,
		JobID:       jobID,
		CoverLetter: req.CoverLetter,
		Resume:      resumeKey,
		Status:      models.ApplicationStatusPending,
		Steps:       datatypes.JSONSlice[models.ApplicationStep]{},
	}
	if err := s.appRepo.Create(db, app); err != nil {
		s.uploads.Remove(ctx, resumeKey)
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", app.ID, "job_id", jobID)
	app.Job = job
	return s.presenter.Application(ctx, app), nil
}

func (s *ApplicationServiceImpl) ListMine(ctx context.Context, db *gorm.DB, viewer *Viewer) ([]*dto.ApplicationResponse, error) {
	if !viewer.IsJobSeeker() {
		return nil, apperrors.ErrOnlyJobSeekers
	}
	apps, err := s.appRepo.ListBySeeker(db, viewer.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.presenter.Applications(ctx, apps), nil
}

func (s *ApplicationServiceImpl) ListForJob(ctx context.Context, db *gorm.DB, viewer *Viewer, jobID string) ([]*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if viewer == nil || !job.IsOwnedBy(viewer.UserID) {
		return nil, apperrors.ErrNotJobOwner
	}

	apps, err := s.appRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.presenter.Applications(ctx, apps), nil
}

func (s *ApplicationServiceImpl) Get(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.find(db, applicationID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	isApplicant := app.JobSeekerID == viewer.UserID
	isReviewer := app.Job != nil && app.Job.IsOwnedBy(viewer.UserID)
	if !isApplicant && !isReviewer {
		return nil, apperrors.ErrApplicationNotFound
	}
	return s.presenter.Application(ctx, app), nil
}

func (s *ApplicationServiceImpl) Withdraw(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string) error {
	app, err := s.find(db, applicationID)
	if err != nil {
		return err
	}
	if viewer == nil || app.JobSeekerID != viewer.UserID {
		return apperrors.ErrApplicationNotFound
	}
	if !app.CanWithdraw() {
		return apperrors.ErrCannotWithdraw
	}

	if err := s.appRepo.Delete(db, app.ID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	s.uploads.Remove(ctx, app.Resume)

	logger.CtxInfo(ctx, "application withdrawn", "application_id", app.ID)
	return nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}
	return s.review(ctx, db, viewer, applicationID, func(app *models.JobApplication) bool {
		if app.Status == status {
			return false
		}
		app.Status = status
		return true
	})
}

// AdvanceStep is a no-op once the last step is reached.
func (s *ApplicationServiceImpl) AdvanceStep(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string) (*dto.ApplicationResponse, error) {
	return s.review(ctx, db, viewer, applicationID, func(app *models.JobApplication) bool {
		return app.AdvanceStep()
	})
}

func (s *ApplicationServiceImpl) SetSteps(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string, steps []models.ApplicationStep) (*dto.ApplicationResponse, error) {
	return s.review(ctx, db, viewer, applicationID, func(app *models.JobApplication) bool {
		app.SetSteps(steps)
		return true
	})
}

// review loads an application on behalf of the job owner, applies mutate and saves when it reports a change.
func (s *ApplicationServiceImpl) review(ctx context.Context, db *gorm.DB, viewer *Viewer, applicationID string, mutate func(*models.JobApplication) bool) (*dto.ApplicationResponse, error) {
	app, err := s.find(db, applicationID)
	if err != nil {
		return nil, err
	}
	if viewer == nil || app.Job == nil || !app.Job.IsOwnedBy(viewer.UserID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if mutate(app) {
		if err := s.appRepo.Update(db, app); err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "application updated",
			"application_id", app.ID, "status", string(app.Status), "current_step", app.CurrentStep)
	}
	return s.presenter.Application(ctx, app), nil
}

func (s *ApplicationServiceImpl) find(db *gorm.DB, applicationID string) (*models.JobApplication, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}
