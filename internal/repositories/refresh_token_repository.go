package repositories

import (
	"errors"
	"time"

	"ajira_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepository interface {
	Create(db *gorm.DB, token *models.RefreshToken) error
	FindByToken(db *gorm.DB, tokenString string) (*models.RefreshToken, error)
	DeleteByToken(db *gorm.DB, tokenString string) error
	// Rotate replaces oldToken with next atomically.
	Rotate(db *gorm.DB, oldToken string, next *models.RefreshToken) error
	DeleteExpiredByUserID(db *gorm.DB, userID string, now time.Time) error
}

type refreshTokenRepository struct{}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepository{}
}

func (r *refreshTokenRepository) Create(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *refreshTokenRepository) FindByToken(db *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := db.Where("token = ?", tokenString).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *refreshTokenRepository) DeleteByToken(db *gorm.DB, tokenString string) error {
	result := db.Where("token = ?", tokenString).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *refreshTokenRepository) DeleteExpiredByUserID(db *gorm.DB, userID string, now time.Time) error {
	return db.Where("user_id = ? AND expires_at <= ?", userID, now).Delete(&models.RefreshToken{}).Error
}

func (r *refreshTokenRepository) Rotate(db *gorm.DB, oldToken string, next *models.RefreshToken) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := r.DeleteByToken(tx, oldToken); err != nil {
			return err
		}
		return tx.Create(next).Error
	})
}
