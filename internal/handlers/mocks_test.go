package handlers

import (
	"context"
	"mime/multipart"

	"ajira_backend/internal/models"
	"ajira_backend/internal/services"
	"ajira_backend/internal/services/dto"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	args := m.Called(ctx, db, req)
	resp, _ := args.Get(0).(*dto.RegisterResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error {
	return m.Called(db, req).Error(0)
}

func (m *mockAuthService) ResendVerification(ctx context.Context, db *gorm.DB, emailAddr string) error {
	return m.Called(ctx, db, emailAddr).Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, db, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, db, refreshToken)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Logout(db *gorm.DB, refreshToken string) error {
	return m.Called(db, refreshToken).Error(0)
}

type mockJobService struct{ mock.Mock }

func (m *mockJobService) CreateJob(ctx context.Context, db *gorm.DB, viewer *services.Viewer, req *dto.CreateJobPostRequest) (*dto.JobPostResponse, error) {
	args := m.Called(ctx, db, viewer, req)
	resp, _ := args.Get(0).(*dto.JobPostResponse)
	return resp, args.Error(1)
}

func (m *mockJobService) ListJobs(db *gorm.DB, viewer *services.Viewer, filter models.JobPostFilter) ([]*dto.JobPostResponse, error) {
	args := m.Called(db, viewer, filter)
	resp, _ := args.Get(0).([]*dto.JobPostResponse)
	return resp, args.Error(1)
}

func (m *mockJobService) GetJob(db *gorm.DB, viewer *services.Viewer, jobID string) (*dto.JobPostResponse, error) {
	args := m.Called(db, viewer, jobID)
	resp, _ := args.Get(0).(*dto.JobPostResponse)
	return resp, args.Error(1)
}

func (m *mockJobService) UpdateJob(ctx context.Context, db *gorm.DB, viewer *services.Viewer, jobID string, req *dto.UpdateJobPostRequest) (*dto.JobPostResponse, error) {
	args := m.Called(ctx, db, viewer, jobID, req)
	resp, _ := args.Get(0).(*dto.JobPostResponse)
	return resp, args.Error(1)
}

func (m *mockJobService) ChangeStatus(ctx context.Context, db *gorm.DB, viewer *services.Viewer, jobID string, status models.JobStatus) (*dto.JobPostResponse, error) {
	args := m.Called(ctx, db, viewer, jobID, status)
	resp, _ := args.Get(0).(*dto.JobPostResponse)
	return resp, args.Error(1)
}

type mockApplicationService struct{ mock.Mock }

func (m *mockApplicationService) Apply(ctx context.Context, db *gorm.DB, viewer *services.Viewer, jobID string, req *dto.ApplyRequest, resume *multipart.FileHeader) (*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer, jobID, req, resume)
	resp, _ := args.Get(0).(*dto.ApplicationResponse)
	return resp, args.Error(1)
}

func (m *mockApplicationService) ListMine(ctx context.Context, db *gorm.DB, viewer *services.Viewer) ([]*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer)
	resp, _ := args.Get(0).([]*dto.ApplicationResponse)
	return resp, args.Error(1)
}

func (m *mockApplicationService) ListForJob(ctx context.Context, db *gorm.DB, viewer *services.Viewer, jobID string) ([]*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer, jobID)
	resp, _ := args.Get(0).([]*dto.ApplicationResponse)
	return resp, args.Error(1)
}

func (m *mockApplicationService) Get(ctx context.Context, db *gorm.DB, viewer *services.Viewer, applicationID string) (*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer, applicationID)
	resp, _ := args.Get(0).(*dto.ApplicationResponse)
	return resp, args.Error(1)
}

func (m *mockApplicationService) Withdraw(ctx context.Context, db *gorm.DB, viewer *services.Viewer, applicationID string) error {
	return m.Called(ctx, db, viewer, applicationID).Error(0)
}

func (m *mockApplicationService) UpdateStatus(ctx context.Context, db *gorm.DB, viewer *services.Viewer, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer, applicationID, status)
	resp, _ := args.Get(0).(*dto.ApplicationResponse)
	return resp, args.Error(1)
}

func (m *mockApplicationService) AdvanceStep(ctx context.Context, db *gorm.DB, viewer *services.Viewer, applicationID string) (*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer, applicationID)
	resp, _ := args.Get(0).(*dto.ApplicationResponse)
	return resp, args.Error(1)
}

func (m *mockApplicationService) SetSteps(ctx context.Context, db *gorm.DB, viewer *services.Viewer, applicationID string, steps []models.ApplicationStep) (*dto.ApplicationResponse, error) {
	args := m.Called(ctx, db, viewer, applicationID, steps)
	resp, _ := args.Get(0).(*dto.ApplicationResponse)
	return resp, args.Error(1)
}

type mockSavedJobService struct{ mock.Mock }

func (m *mockSavedJobService) Save(ctx context.Context, db *gorm.DB, viewer *services.Viewer, jobID string) (*dto.JobPostResponse, error) {
	args := m.Called(ctx, db, viewer, jobID)
	resp, _ := args.Get(0).(*dto.JobPostResponse)
	return resp, args.Error(1)
}

func (m *mockSavedJobService) Unsave(ctx context.Context, db *gorm.DB, viewer *services.Viewer, jobID string) error {
	return m.Called(ctx, db, viewer, jobID).Error(0)
}

func (m *mockSavedJobService) List(db *gorm.DB, viewer *services.Viewer) ([]*dto.SavedJobResponse, error) {
	args := m.Called(db, viewer)
	resp, _ := args.Get(0).([]*dto.SavedJobResponse)
	return resp, args.Error(1)
}

type mockProfileService struct{ mock.Mock }

func (m *mockProfileService) GetClientProfile(db *gorm.DB, viewer *services.Viewer) (*dto.ClientProfileResponse, error) {
	args := m.Called(db, viewer)
	resp, _ := args.Get(0).(*dto.ClientProfileResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) UpdateClientProfile(db *gorm.DB, viewer *services.Viewer, req *dto.UpdateClientProfileRequest) (*dto.ClientProfileResponse, error) {
	args := m.Called(db, viewer, req)
	resp, _ := args.Get(0).(*dto.ClientProfileResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) GetJobSeekerProfile(ctx context.Context, db *gorm.DB, viewer *services.Viewer) (*dto.JobSeekerProfileResponse, error) {
	args := m.Called(ctx, db, viewer)
	resp, _ := args.Get(0).(*dto.JobSeekerProfileResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) UpdateJobSeekerProfile(ctx context.Context, db *gorm.DB, viewer *services.Viewer, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error) {
	args := m.Called(ctx, db, viewer, req)
	resp, _ := args.Get(0).(*dto.JobSeekerProfileResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) UploadResume(ctx context.Context, db *gorm.DB, viewer *services.Viewer, file *multipart.FileHeader) (dto.FileResponse, error) {
	args := m.Called(ctx, db, viewer, file)
	resp, _ := args.Get(0).(dto.FileResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) UploadPortfolio(ctx context.Context, db *gorm.DB, viewer *services.Viewer, file *multipart.FileHeader) (dto.FileResponse, error) {
	args := m.Called(ctx, db, viewer, file)
	resp, _ := args.Get(0).(dto.FileResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) UploadPicture(ctx context.Context, db *gorm.DB, viewer *services.Viewer, file *multipart.FileHeader) (dto.FileResponse, error) {
	args := m.Called(ctx, db, viewer, file)
	resp, _ := args.Get(0).(dto.FileResponse)
	return resp, args.Error(1)
}
