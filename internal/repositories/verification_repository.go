package repositories

import (
	"errors"
	"time"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVerificationCodeNotFound = errors.New("verification code not found")

type VerificationRepository interface {
	Create(db *gorm.DB, code *models.VerificationCode) error
	// FindValid returns the newest unexpired code matching userID and code.
	FindValid(db *gorm.DB, userID, code string, now time.Time) (*models.VerificationCode, error)
	// Consume marks the owner verified and deletes the code in one transaction.
	Consume(db *gorm.DB, code *models.VerificationCode) error
}

type verificationRepository struct{}

func NewVerificationRepository() VerificationRepository {
	return &verificationRepository{}
}

func (r *verificationRepository) Create(db *gorm.DB, code *models.VerificationCode) error {
	return db.Create(code).Error
}

func (r *verificationRepository) FindValid(db *gorm.DB, userID, code string, now time.Time) (*models.VerificationCode, error) {
	var vc models.VerificationCode
	err := db.Where("user_id = ? AND code = ? AND expires_at > ?", userID, code, now).
		Order("created_at DESC").
		First(&vc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationCodeNotFound
		}
		return nil, err
	}
	return &vc, nil
}

func (r *verificationRepository) Consume(db *gorm.DB, code *models.VerificationCode) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", code.UserID).Update("email_verified", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return tx.Where("id = ?", code.ID).Delete(&models.VerificationCode{}).Error
	})
}
