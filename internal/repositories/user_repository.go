package repositories

import (
	"errors"
	"strings"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	// Create inserts the user together with its role profile.
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	// Delete removes the user; profiles, codes and tokens go with it.
	Delete(db *gorm.DB, userID string) error
	ListJobSeekerEmails(db *gorm.DB) ([]string, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if err := db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("ClientProfile").Preload("JobSeekerProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("ClientProfile").Preload("JobSeekerProfile").
		First(&user, "lower(email) = ?", normalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("lower(email) = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Delete(db *gorm.DB, userID string) error {
	result := db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ListJobSeekerEmails(db *gorm.DB) ([]string, error) {
	var emails []string
	err := db.Model(&models.User{}).
		Where("user_type = ?", models.UserRoleJobSeeker).
		Order("created_at").
		Pluck("email", &emails).Error
	return emails, err
}
