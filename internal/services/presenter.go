package services

import (
	"context"

	"ajira_backend/internal/logger"
	"ajira_backend/internal/models"
	"ajira_backend/internal/services/dto"
	"ajira_backend/internal/storage"
)

// Presenter turns rows into responses, resolving stored file keys into URLs.
type Presenter struct {
	storage storage.Storage
}

func NewPresenter(store storage.Storage) *Presenter {
	return &Presenter{storage: store}
}

// FileURL returns "" for an empty key or when the URL cannot be built.
func (p *Presenter) FileURL(ctx context.Context, key string) string {
	if key == "" || p.storage == nil {
		return ""
	}
	url, err := p.storage.GetURL(ctx, key)
	if err != nil {
		logger.CtxWarn(ctx, "failed to build file url", "key", key, "error", err)
		return ""
	}
	return url
}

func (p *Presenter) JobSeekerProfile(ctx context.Context, profile *models.JobSeekerProfile) *dto.JobSeekerProfileResponse {
	resp := dto.NewJobSeekerProfileResponse(profile)
	resp.Resume = p.FileURL(ctx, profile.Resume)
	resp.Portfolio = p.FileURL(ctx, profile.Portfolio)
	resp.ProfilePicture = p.FileURL(ctx, profile.ProfilePicture)
	return resp
}

func (p *Presenter) User(ctx context.Context, user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Username:      user.Username,
		UserType:      user.UserType,
		EmailVerified: user.EmailVerified,
	}
	switch {
	case user.IsClient() && user.ClientProfile != nil:
		resp.Profile = dto.NewClientProfileResponse(user.ClientProfile)
	case user.IsJobSeeker() && user.JobSeekerProfile != nil:
		resp.Profile = p.JobSeekerProfile(ctx, user.JobSeekerProfile)
	}
	return resp
}

func (p *Presenter) Application(ctx context.Context, app *models.JobApplication) *dto.ApplicationResponse {
	resp := dto.NewApplicationResponse(app)
	resp.Resume = p.FileURL(ctx, app.Resume)
	return resp
}

func (p *Presenter) Applications(ctx context.Context, apps []models.JobApplication) []*dto.ApplicationResponse {
	out := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, p.Application(ctx, &apps[i]))
	}
	return out
}
