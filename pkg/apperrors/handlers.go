package apperrors

import (
	"errors"

	"ajira_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the converged error body.
type ErrorResponse struct {
	Code   ErrorCode   `json:"code"`
	Detail FieldErrors `json:"detail"`
}

// HandleError aborts the request with err rendered as an ErrorResponse.
// Anything that is not an AppError becomes a 500 and is logged with its cause.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		cause := appErr.Unwrap()
		if cause == nil {
			cause = appErr
		}
		logger.CtxWithError(c.Request.Context(), "server error", cause,
			"code", string(appErr.Code),
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Code: appErr.Code, Detail: appErr.Detail()})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
