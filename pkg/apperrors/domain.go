package apperrors

import (
	"net/http"
)

/*
Factories and predefined errors for the marketplace domain.
Predefined values are shared; use WithCause to attach a cause instead of mutating them.
*/

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"A user with this email already exists",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrEmailNotVerified = New(
	CodeEmailNotVerified,
	"auth",
	"Please verify your email address before logging in",
	http.StatusForbidden,
)

// ErrInvalidVerificationCode is returned for a wrong code, an expired code and an unknown email alike.
var ErrInvalidVerificationCode = New(
	CodeValidationFailed,
	"verification",
	"Invalid or expired verification code",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailDelivery = New(
	CodeEmailDeliveryFailed,
	"email",
	"Failed to send email, please try again later",
	http.StatusInternalServerError,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"You do not have permission to perform this action",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeForbidden,
	"auth",
	"This action is not available for your account type",
	http.StatusForbidden,
)

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// --- Jobs ---

var ErrOnlyClientsCanPost = New(
	CodeForbidden,
	"job",
	"Only clients can post jobs",
	http.StatusForbidden,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job post not found",
	http.StatusNotFound,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You do not have permission to modify this job post",
	http.StatusForbidden,
)

// --- Applications ---

var ErrOnlyJobSeekers = New(
	CodeForbidden,
	"application",
	"Only job seekers can perform this action",
	http.StatusForbidden,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid status",
	http.StatusBadRequest,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrCannotWithdraw = New(
	CodeInvalidStatus,
	"application",
	"Cannot withdraw application at current stage",
	http.StatusBadRequest,
)

// --- Saved jobs ---

var ErrAlreadySaved = New(
	CodeAlreadyExists,
	"saved_job",
	"Job already saved",
	http.StatusBadRequest,
)

var ErrSavedJobNotFound = New(
	CodeNotFound,
	"saved_job",
	"Job not found in saved jobs",
	http.StatusNotFound,
)

// --- Uploads ---

// ErrFileRequired reports a missing upload under its form field.
func ErrFileRequired(field string) *AppError {
	return FieldError(field, "No file was submitted")
}
