package apperrors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// NonFieldErrors is the detail key used for errors not bound to a single input field.
const NonFieldErrors = "non_field_errors"

// FieldErrors maps an input field (json name) to every message reported for it.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Merge appends every message of other into f.
func (f FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		f[field] = append(f[field], msgs...)
	}
}

// Fields returns the sorted list of keys.
func (f FieldErrors) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AppError is the error type every service returns to the HTTP layer.
type AppError struct {
	Code     ErrorCode
	Domain   string
	Message  string
	Fields   FieldErrors
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail returns the field-keyed body. Errors without fields are reported under non_field_errors.
func (e *AppError) Detail() FieldErrors {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	return FieldErrors{NonFieldErrors: {e.Message}}
}

// MarshalJSON renders {"code": ..., "detail": {...}}.
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code   ErrorCode   `json:"code"`
		Detail FieldErrors `json:"detail"`
	}{
		Code:   e.Code,
		Detail: e.Detail(),
	})
}

// New builds an AppError.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap builds an AppError that keeps err as its cause.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithCause returns a copy of e carrying err. Predefined errors are never mutated.
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// Is matches predefined errors through copies made by WithCause.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Domain == t.Domain && e.Message == t.Message && len(t.Fields) == 0
}

// InternalError wraps an unexpected failure.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError reports every field violation at once.
func ValidationError(fields FieldErrors) *AppError {
	e := New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest)
	e.Fields = fields
	return e
}

// FieldError is a ValidationError with a single message.
func FieldError(field, message string) *AppError {
	return ValidationError(FieldErrors{field: {message}})
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, "resource", message, http.StatusNotFound)
}
