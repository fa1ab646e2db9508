package services

import (
	"context"
	"errors"
	"time"

	"ajira_backend/internal/auth"
	"ajira_backend/internal/email"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/metrics"
	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"
	"ajira_backend/internal/services/dto"
	"ajira_backend/internal/validator"
	"ajira_backend/pkg/apperrors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	registrationMessage = "Registration successful. Please check your email for verification code."
	verificationSubject = "Verify your AjiraGlobal account"
)

type AuthService interface {
	// Register creates the account and its profile, then emails a verification code.
	// The account is removed again when the email cannot be sent.
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error
	// ResendVerification never reveals whether the email is registered.
	ResendVerification(ctx context.Context, db *gorm.DB, emailAddr string) error
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

// AuthConfig holds the lifetimes and the login policy.
type AuthConfig struct {
	RefreshTTL           time.Duration
	VerificationTTL      time.Duration
	RequireVerifiedEmail bool
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	validator        *validator.Validator
	tokens           *auth.TokenManager
	sender           email.Sender
	renderer         email.TemplateRenderer
	presenter        *Presenter
	cfg              AuthConfig
	now              func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	v *validator.Validator,
	tokens *auth.TokenManager,
	sender email.Sender,
	renderer email.TemplateRenderer,
	presenter *Presenter,
	cfg AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		refreshTokenRepo: refreshTokenRepo,
		validator:        v,
		tokens:           tokens,
		sender:           sender,
		renderer:         renderer,
		presenter:        presenter,
		cfg:              cfg,
		now:              time.Now,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	fields := apperrors.FieldErrors{}
	if err := s.validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if !errors.As(err, &verr) {
			return nil, apperrors.InternalError(err)
		}
		fields.Merge(verr.Errors)
	}

	if req.Email != "" && len(fields["email"]) == 0 {
		exists, err := s.userRepo.ExistsByEmail(db, req.Email)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			fields.Add("email", apperrors.ErrEmailAlreadyExists.Message)
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.ValidationError(fields)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		UserType:     req.UserType,
	}
	if user.Username == "" {
		user.Username = defaultUsername(req.Email)
	}
	attachProfile(user, req)

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.FieldError("email", apperrors.ErrEmailAlreadyExists.Message)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.issueVerificationCode(ctx, db, user); err != nil {
		if delErr := s.userRepo.Delete(db, user.ID); delErr != nil {
			logger.CtxWithError(ctx, "failed to roll back registration", delErr, "user_id", user.ID)
		}
		return nil, err
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "user_type", string(user.UserType))
	return &dto.RegisterResponse{Message: registrationMessage, Email: user.Email}, nil
}

func attachProfile(user *models.User, req *dto.RegisterRequest) {
	switch req.UserType {
	case models.UserRoleClient:
		currency := req.Currency
		if currency == "" {
			currency = models.CurrencyKSH
		}
		user.ClientProfile = &models.ClientProfile{
			CompanyName: trim(req.CompanyName),
			Industry:    trim(req.Industry),
			CompanySize: req.CompanySize,
			Website:     req.Website,
			Description: req.Description,
			Currency:    currency,
		}
	case models.UserRoleJobSeeker:
		user.JobSeekerProfile = &models.JobSeekerProfile{
			FirstName:  trim(req.FirstName),
			LastName:   trim(req.LastName),
			Profession: trim(req.Profession),
			Experience: req.Experience,
			Skills:     pq.StringArray(trimSkills(req.Skills)),
			Bio:        req.Bio,
		}
	}
}

// issueVerificationCode persists a fresh code and emails it. Delivery failures become ErrEmailDelivery.
func (s *AuthServiceImpl) issueVerificationCode(ctx context.Context, db *gorm.DB, user *models.User) error {
	code, err := auth.GenerateVerificationCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	vc := &models.VerificationCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.now().Add(s.cfg.VerificationTTL),
	}
	if err := s.verificationRepo.Create(db, vc); err != nil {
		return apperrors.InternalError(err)
	}

	body, err := s.renderer.Render(email.TemplateVerification, email.TemplateData{
		"Code":      code,
		"ExpiresIn": email.HumanizeDuration(s.cfg.VerificationTTL),
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = s.sender.Send(ctx, user.Email, verificationSubject, body)
	metrics.EmailResult(email.TemplateVerification, err)
	if err != nil {
		return apperrors.ErrEmailDelivery.WithCause(err)
	}
	return nil
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidVerificationCode
		}
		return apperrors.InternalError(err)
	}

	vc, err := s.verificationRepo.FindValid(db, user.ID, req.Code, s.now())
	if err != nil {
		if errors.Is(err, repositories.ErrVerificationCodeNotFound) {
			return apperrors.ErrInvalidVerificationCode
		}
		return apperrors.InternalError(err)
	}

	if err := s.verificationRepo.Consume(db, vc); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResendVerification(ctx context.Context, db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxDebug(ctx, "verification resend for unknown email")
			return nil
		}
		return apperrors.InternalError(err)
	}
	if user.EmailVerified {
		return nil
	}
	return s.issueVerificationCode(ctx, db, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if s.cfg.RequireVerifiedEmail && !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	if err := s.refreshTokenRepo.DeleteExpiredByUserID(db, user.ID, s.now()); err != nil {
		logger.CtxWarn(ctx, "failed to prune expired refresh tokens", "user_id", user.ID, "error", err)
	}

	refresh, err := s.newRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.refreshTokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.authResponse(ctx, user, refresh.Token)
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if stored.IsExpired(s.now()) {
		if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			logger.CtxWarn(ctx, "failed to delete expired refresh token", "error", err)
		}
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	next, err := s.newRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.refreshTokenRepo.Rotate(db, refreshToken, next); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	return s.authResponse(ctx, user, next.Token)
}

// Logout is idempotent: an unknown token is not an error.
func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	err := s.refreshTokenRepo.DeleteByToken(db, refreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) newRefreshToken(userID string) (*models.RefreshToken, error) {
	token, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: s.now().Add(s.cfg.RefreshTTL),
	}, nil
}

func (s *AuthServiceImpl) authResponse(ctx context.Context, user *models.User, refreshToken string) (*dto.AuthResponse, error) {
	access, err := s.tokens.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		User:         s.presenter.User(ctx, user),
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokens.TTL().Seconds()),
	}, nil
}

// defaultUsername is the email cut to fit the username column.
func defaultUsername(email string) string {
	runes := []rune(email)
	if len(runes) > models.UsernameMaxLength {
		runes = runes[:models.UsernameMaxLength]
	}
	return string(runes)
}
