package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"ajira_backend/internal/email"
	"ajira_backend/internal/models"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(db *gorm.DB, user *models.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	args := m.Called(db, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Delete(db *gorm.DB, userID string) error {
	return m.Called(db, userID).Error(0)
}

func (m *mockUserRepo) ListJobSeekerEmails(db *gorm.DB) ([]string, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockVerificationRepo struct{ mock.Mock }

func (m *mockVerificationRepo) Create(db *gorm.DB, code *models.VerificationCode) error {
	return m.Called(db, code).Error(0)
}

func (m *mockVerificationRepo) FindValid(db *gorm.DB, userID, code string, now time.Time) (*models.VerificationCode, error) {
	args := m.Called(db, userID, code, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationCode), args.Error(1)
}

func (m *mockVerificationRepo) Consume(db *gorm.DB, code *models.VerificationCode) error {
	return m.Called(db, code).Error(0)
}

type mockRefreshTokenRepo struct{ mock.Mock }

func (m *mockRefreshTokenRepo) Create(db *gorm.DB, token *models.RefreshToken) error {
	return m.Called(db, token).Error(0)
}

func (m *mockRefreshTokenRepo) FindByToken(db *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	args := m.Called(db, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepo) DeleteByToken(db *gorm.DB, tokenString string) error {
	return m.Called(db, tokenString).Error(0)
}

func (m *mockRefreshTokenRepo) Rotate(db *gorm.DB, oldToken string, next *models.RefreshToken) error {
	return m.Called(db, oldToken, next).Error(0)
}

func (m *mockRefreshTokenRepo) DeleteExpiredByUserID(db *gorm.DB, userID string, now time.Time) error {
	return m.Called(db, userID, now).Error(0)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) FindClientProfile(db *gorm.DB, userID string) (*models.ClientProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientProfile), args.Error(1)
}

func (m *mockProfileRepo) FindJobSeekerProfile(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobSeekerProfile), args.Error(1)
}

func (m *mockProfileRepo) UpdateClientProfile(db *gorm.DB, userID string, updates map[string]interface{}) error {
	return m.Called(db, userID, updates).Error(0)
}

func (m *mockProfileRepo) UpdateJobSeekerProfile(db *gorm.DB, userID string, updates map[string]interface{}) error {
	return m.Called(db, userID, updates).Error(0)
}

type mockJobRepo struct{ mock.Mock }

func (m *mockJobRepo) Create(db *gorm.DB, job *models.JobPost) error {
	return m.Called(db, job).Error(0)
}

func (m *mockJobRepo) FindByID(db *gorm.DB, id string) (*models.JobPost, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPost), args.Error(1)
}

func (m *mockJobRepo) List(db *gorm.DB, filter models.JobPostFilter) ([]models.JobPost, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobPost), args.Error(1)
}

func (m *mockJobRepo) Update(db *gorm.DB, job *models.JobPost) error {
	return m.Called(db, job).Error(0)
}

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) Create(db *gorm.DB, app *models.JobApplication) error {
	return m.Called(db, app).Error(0)
}

func (m *mockApplicationRepo) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) Exists(db *gorm.DB, jobSeekerID, jobID string) (bool, error) {
	args := m.Called(db, jobSeekerID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicationRepo) ListBySeeker(db *gorm.DB, jobSeekerID string) ([]models.JobApplication, error) {
	args := m.Called(db, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) ListByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	args := m.Called(db, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) Update(db *gorm.DB, app *models.JobApplication) error {
	return m.Called(db, app).Error(0)
}

func (m *mockApplicationRepo) Delete(db *gorm.DB, id string) error {
	return m.Called(db, id).Error(0)
}

type mockSavedJobRepo struct{ mock.Mock }

func (m *mockSavedJobRepo) Create(db *gorm.DB, saved *models.SavedJob) error {
	return m.Called(db, saved).Error(0)
}

func (m *mockSavedJobRepo) Exists(db *gorm.DB, jobSeekerID, jobID string) (bool, error) {
	args := m.Called(db, jobSeekerID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSavedJobRepo) Delete(db *gorm.DB, jobSeekerID, jobID string) error {
	return m.Called(db, jobSeekerID, jobID).Error(0)
}

func (m *mockSavedJobRepo) ListBySeeker(db *gorm.DB, jobSeekerID string) ([]models.SavedJob, error) {
	args := m.Called(db, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedJob), args.Error(1)
}

type mockNotificationService struct{ mock.Mock }

func (m *mockNotificationService) NotifyNewJob(ctx context.Context, db *gorm.DB, job *models.JobPost) int {
	return m.Called(ctx, db, job).Int(0)
}

// sentEmail is one message captured by fakeSender.
type sentEmail struct {
	To      string
	Subject string
	Body    string
}

// fakeSender records messages and fails for recipients listed in failFor.
type fakeSender struct {
	mu      sync.Mutex
	sent    []sentEmail
	failFor map[string]bool
	failAll bool
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll || f.failFor[to] {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (f *fakeSender) messages() []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentEmail(nil), f.sent...)
}

func newTemplates() email.TemplateRenderer {
	tm, err := email.NewTemplateManager()
	if err != nil {
		panic(err)
	}
	return tm
}
