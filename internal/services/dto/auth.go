package dto

import "ajira_backend/internal/models"

// RegisterRequest carries the common account fields plus the profile fields of the chosen role.
type RegisterRequest struct {
	Email           string          `json:"email" validate:"required,email,max=254"`
	Username        string          `json:"username" validate:"omitempty,max=150"`
	Password        string          `json:"password" validate:"required,password-policy"`
	ConfirmPassword string          `json:"confirm_password" validate:"required,eqfield=Password"`
	UserType        models.UserRole `json:"user_type" validate:"required,user-type"`

	// Client
	CompanyName string          `json:"company_name" validate:"omitempty,trimmed-min2,max=255"`
	Industry    string          `json:"industry" validate:"omitempty,trimmed-min2,max=100"`
	CompanySize string          `json:"company_size" validate:"omitempty,max=50"`
	Website     string          `json:"website" validate:"omitempty,url,max=200"`
	Description string          `json:"description"`
	Currency    models.Currency `json:"currency" validate:"omitempty,currency"`

	// Job seeker
	FirstName  string   `json:"first_name" validate:"omitempty,trimmed-min2,max=100"`
	LastName   string   `json:"last_name" validate:"omitempty,trimmed-min2,max=100"`
	Profession string   `json:"profession" validate:"omitempty,trimmed-min2,max=100"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills" validate:"omitempty,nonblank-items"`
	Bio        string   `json:"bio"`
}

func (r *RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":           "Email is required",
		"password.required":        "Password is required",
		"confirm_password.eqfield": "Passwords do not match",
		"currency.currency":        "Currency must be either KSH or USD",
	}
}

// ValidateFields enforces the profile fields required by the selected role.
func (r *RegisterRequest) ValidateFields() map[string][]string {
	errs := map[string][]string{}
	require := func(field, value string) {
		if value == "" {
			errs[field] = append(errs[field], "This field is required")
		}
	}

	switch r.UserType {
	case models.UserRoleClient:
		require("company_name", r.CompanyName)
		require("industry", r.Industry)
	case models.UserRoleJobSeeker:
		require("first_name", r.FirstName)
		require("last_name", r.LastName)
		require("profession", r.Profession)
	}
	return errs
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

func (r *VerifyEmailRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required": "Email is required",
		"code.required":  "Verification code is required",
	}
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":    "Email is required",
		"password.required": "Password is required",
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"` // seconds
}

// UserResponse is the public view of an account. Profile holds the role projection.
type UserResponse struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Username      string          `json:"username"`
	UserType      models.UserRole `json:"user_type"`
	EmailVerified bool            `json:"email_verified"`
	Profile       interface{}     `json:"profile,omitempty"`
}
