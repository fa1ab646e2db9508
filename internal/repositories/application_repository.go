package repositories

import (
	"errors"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.JobApplication) error
	FindByID(db *gorm.DB, id string) (*models.JobApplication, error)
	Exists(db *gorm.DB, jobSeekerID, jobID string) (bool, error)
	ListBySeeker(db *gorm.DB, jobSeekerID string) ([]models.JobApplication, error)
	ListByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error)
	Update(db *gorm.DB, app *models.JobApplication) error
	Delete(db *gorm.DB, id string) error
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *models.JobApplication) error {
	if err := db.Omit(clause.Associations).Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := db.Preload("Job").Preload("JobSeeker.JobSeekerProfile").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Exists(db *gorm.DB, jobSeekerID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_seeker_id = ? AND job_id = ?", jobSeekerID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) ListBySeeker(db *gorm.DB, jobSeekerID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := db.Preload("Job").
		Where("job_seeker_id = ?", jobSeekerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) ListByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := db.Preload("JobSeeker.JobSeekerProfile").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) Update(db *gorm.DB, app *models.JobApplication) error {
	result := db.Omit(clause.Associations).Save(app)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
