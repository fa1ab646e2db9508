package repositories

import (
	"errors"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSavedJobNotFound      = errors.New("saved job not found")
	ErrSavedJobAlreadyExists = errors.New("job already saved")
)

type SavedJobRepository interface {
	Create(db *gorm.DB, saved *models.SavedJob) error
	Exists(db *gorm.DB, jobSeekerID, jobID string) (bool, error)
	Delete(db *gorm.DB, jobSeekerID, jobID string) error
	ListBySeeker(db *gorm.DB, jobSeekerID string) ([]models.SavedJob, error)
}

type savedJobRepository struct{}

func NewSavedJobRepository() SavedJobRepository {
	return &savedJobRepository{}
}

func (r *savedJobRepository) Create(db *gorm.DB, saved *models.SavedJob) error {
	if err := db.Omit(clause.Associations).Create(saved).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSavedJobAlreadyExists
		}
		return err
	}
	return nil
}

func (r *savedJobRepository) Exists(db *gorm.DB, jobSeekerID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.SavedJob{}).
		Where("job_seeker_id = ? AND job_id = ?", jobSeekerID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *savedJobRepository) Delete(db *gorm.DB, jobSeekerID, jobID string) error {
	result := db.Where("job_seeker_id = ? AND job_id = ?", jobSeekerID, jobID).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *savedJobRepository) ListBySeeker(db *gorm.DB, jobSeekerID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := db.Preload("Job").
		Where("job_seeker_id = ?", jobSeekerID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
