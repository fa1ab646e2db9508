package repositories

import (
	"errors"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobNotFound = errors.New("job post not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.JobPost) error
	FindByID(db *gorm.DB, id string) (*models.JobPost, error)
	// List returns posts matching every non-nil filter field, newest first.
	List(db *gorm.DB, filter models.JobPostFilter) ([]models.JobPost, error)
	Update(db *gorm.DB, job *models.JobPost) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.JobPost) error {
	return db.Omit(clause.Associations).Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.JobPost, error) {
	var job models.JobPost
	err := db.Preload("Client.ClientProfile").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(db *gorm.DB, filter models.JobPostFilter) ([]models.JobPost, error) {
	query := db.Model(&models.JobPost{}).Preload("Client.ClientProfile")

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.ExperienceLevel != nil {
		query = query.Where("experience_level = ?", *filter.ExperienceLevel)
	}
	if filter.ProjectType != nil {
		query = query.Where("project_type = ?", *filter.ProjectType)
	}
	if filter.RemoteWork != nil {
		query = query.Where("remote_work = ?", *filter.RemoteWork)
	}

	var jobs []models.JobPost
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(db *gorm.DB, job *models.JobPost) error {
	result := db.Omit(clause.Associations).Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
