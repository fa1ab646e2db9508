package repositories

import (
	"errors"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads and patches the role profiles. Updates take column maps so
// that only supplied fields are written.
type ProfileRepository interface {
	FindClientProfile(db *gorm.DB, userID string) (*models.ClientProfile, error)
	FindJobSeekerProfile(db *gorm.DB, userID string) (*models.JobSeekerProfile, error)
	UpdateClientProfile(db *gorm.DB, userID string, updates map[string]interface{}) error
	UpdateJobSeekerProfile(db *gorm.DB, userID string, updates map[string]interface{}) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) FindClientProfile(db *gorm.DB, userID string) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindJobSeekerProfile(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateClientProfile(db *gorm.DB, userID string, updates map[string]interface{}) error {
	return updateProfile(db, &models.ClientProfile{}, userID, updates)
}

func (r *profileRepository) UpdateJobSeekerProfile(db *gorm.DB, userID string, updates map[string]interface{}) error {
	return updateProfile(db, &models.JobSeekerProfile{}, userID, updates)
}

func updateProfile(db *gorm.DB, model interface{}, userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.Model(model).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
