package services

import (
	"context"
	"errors"
	"mime/multipart"

	"ajira_backend/internal/config"
	"ajira_backend/internal/imageprocessor"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"
	"ajira_backend/internal/services/dto"
	"ajira_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProfileService reads and edits the caller's own role profile and its attachments.
type ProfileService interface {
	GetClientProfile(db *gorm.DB, viewer *Viewer) (*dto.ClientProfileResponse, error)
	UpdateClientProfile(db *gorm.DB, viewer *Viewer, req *dto.UpdateClientProfileRequest) (*dto.ClientProfileResponse, error)
	GetJobSeekerProfile(ctx context.Context, db *gorm.DB, viewer *Viewer) (*dto.JobSeekerProfileResponse, error)
	UpdateJobSeekerProfile(ctx context.Context, db *gorm.DB, viewer *Viewer, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error)

	// Upload* replace the previous file and return its URL keyed by the form field.
	UploadResume(ctx context.Context, db *gorm.DB, viewer *Viewer, file *multipart.FileHeader) (dto.FileResponse, error)
	UploadPortfolio(ctx context.Context, db *gorm.DB, viewer *Viewer, file *multipart.FileHeader) (dto.FileResponse, error)
	UploadPicture(ctx context.Context, db *gorm.DB, viewer *Viewer, file *multipart.FileHeader) (dto.FileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	uploads     UploadService
	presenter   *Presenter
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	uploads UploadService,
	presenter *Presenter,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		uploads:     uploads,
		presenter:   presenter,
	}
}

func (s *ProfileServiceImpl) GetClientProfile(db *gorm.DB, viewer *Viewer) (*dto.ClientProfileResponse, error) {
	if !viewer.IsClient() {
		return nil, apperrors.ErrInvalidUserRole
	}
	profile, err := s.clientProfile(db, viewer.UserID)
	if err != nil {
		return nil, err
	}
	return dto.NewClientProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateClientProfile(db *gorm.DB, viewer *Viewer, req *dto.UpdateClientProfileRequest) (*dto.ClientProfileResponse, error) {
	if !viewer.IsClient() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := s.profileRepo.UpdateClientProfile(db, viewer.UserID, req.Updates()); err != nil {
		return nil, mapProfileError(err)
	}
	return s.GetClientProfile(db, viewer)
}

func (s *ProfileServiceImpl) GetJobSeekerProfile(ctx context.Context, db *gorm.DB, viewer *Viewer) (*dto.JobSeekerProfileResponse, error) {
	if !viewer.IsJobSeeker() {
		return nil, apperrors.ErrInvalidUserRole
	}
	profile, err := s.jobSeekerProfile(db, viewer.UserID)
	if err != nil {
		return nil, err
	}
	return s.presenter.JobSeekerProfile(ctx, profile), nil
}

func (s *ProfileServiceImpl) UpdateJobSeekerProfile(ctx context.Context, db *gorm.DB, viewer *Viewer, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error) {
	if !viewer.IsJobSeeker() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := s.profileRepo.UpdateJobSeekerProfile(db, viewer.UserID, req.Updates()); err != nil {
		return nil, mapProfileError(err)
	}
	return s.GetJobSeekerProfile(ctx, db, viewer)
}

func (s *ProfileServiceImpl) UploadResume(ctx context.Context, db *gorm.DB, viewer *Viewer, file *multipart.FileHeader) (dto.FileResponse, error) {
	return s.replaceFile(ctx, db, viewer, config.ResumeFileRule, "resume",
		func(p *models.JobSeekerProfile) string { return p.Resume },
		func(userID string) (string, error) {
			return s.uploads.Store(ctx, config.ResumeFileRule, userID, file)
		})
}

func (s *ProfileServiceImpl) UploadPortfolio(ctx context.Context, db *gorm.DB, viewer *Viewer, file *multipart.FileHeader) (dto.FileResponse, error) {
	return s.replaceFile(ctx, db, viewer, config.PortfolioFileRule, "portfolio",
		func(p *models.JobSeekerProfile) string { return p.Portfolio },
		func(userID string) (string, error) {
			return s.uploads.Store(ctx, config.PortfolioFileRule, userID, file)
		})
}

func (s *ProfileServiceImpl) UploadPicture(ctx context.Context, db *gorm.DB, viewer *Viewer, file *multipart.FileHeader) (dto.FileResponse, error) {
	return s.replaceFile(ctx, db, viewer, config.ProfilePictureFileRule, "profile_picture",
		func(p *models.JobSeekerProfile) string { return p.ProfilePicture },
		func(userID string) (string, error) {
			return s.uploads.StoreImage(ctx, config.ProfilePictureFileRule, userID, file, imageprocessor.SizeProfilePicture)
		})
}

// replaceFile stores the new file, points column at it and then removes the old one.
// A failed column update removes the new file instead.
func (s *ProfileServiceImpl) replaceFile(
	ctx context.Context,
	db *gorm.DB,
	viewer *Viewer,
	rule config.FileRule,
	column string,
	current func(*models.JobSeekerProfile) string,
	store func(userID string) (string, error),
) (dto.FileResponse, error) {
	if !viewer.IsJobSeeker() {
		return nil, apperrors.ErrInvalidUserRole
	}

	profile, err := s.jobSeekerProfile(db, viewer.UserID)
	if err != nil {
		return nil, err
	}
	oldKey := current(profile)

	key, err := store(viewer.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateJobSeekerProfile(db, viewer.UserID, map[string]interface{}{column: key}); err != nil {
		s.uploads.Remove(ctx, key)
		return nil, mapProfileError(err)
	}
	s.uploads.Remove(ctx, oldKey)

	logger.CtxInfo(ctx, "profile file replaced", "field", rule.Field, "key", key)
	return dto.FileResponse{rule.Field: s.presenter.FileURL(ctx, key)}, nil
}

func (s *ProfileServiceImpl) clientProfile(db *gorm.DB, userID string) (*models.ClientProfile, error) {
	profile, err := s.profileRepo.FindClientProfile(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) jobSeekerProfile(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	profile, err := s.profileRepo.FindJobSeekerProfile(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}
	return profile, nil
}

func mapProfileError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrProfileNotFound
	}
	return apperrors.InternalError(err)
}
