package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"ajira_backend/internal/logger"
	"ajira_backend/internal/middleware"
	"ajira_backend/internal/services"
	"ajira_backend/internal/validator"
	"ajira_backend/pkg/apperrors"
	"ajira_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB returns the request-scoped *gorm.DB set by DBMiddleware, bound to the request context.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db.WithContext(c.Request.Context())
}

// Bind decodes the body into obj without validating it.
func (h *BaseHandler) Bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		// An empty body binds as an empty object so that required fields are reported.
		if errors.Is(err, io.EOF) {
			return true
		}
		logger.CtxWithError(c.Request.Context(), "Failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return true
}

// BindAndValidate decodes the body and reports every rule violation at once.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if !h.Bind(c, obj) {
		return false
	}
	return h.Validate(c, obj)
}

func (h *BaseHandler) Validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode < http.StatusInternalServerError {
			logger.CtxWarn(ctx, "Service error",
				"code", string(appErr.Code),
				"error", appErr.Message,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetViewer returns the authenticated caller, or nil for anonymous requests.
func (h *BaseHandler) GetViewer(c *gin.Context) *services.Viewer {
	userID := middleware.GetUserID(c)
	role, ok := middleware.GetUserRole(c)
	if userID == "" || !ok {
		return nil
	}
	return &services.Viewer{UserID: userID, Role: role}
}

// RequireViewer is GetViewer for routes that need authentication; it writes the 401 itself.
func (h *BaseHandler) RequireViewer(c *gin.Context) (*services.Viewer, bool) {
	viewer := h.GetViewer(c)
	if viewer == nil {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: identity not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication credentials were not provided"))
		return nil, false
	}
	return viewer, true
}

// PathID returns the named path parameter in canonical UUID form.
// A value that is not a UUID cannot match any row, so notFound is written instead.
func (h *BaseHandler) PathID(c *gin.Context, param string, notFound *apperrors.AppError) (string, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "malformed path id", "param", param, "value", c.Param(param))
		apperrors.HandleError(c, notFound)
		return "", false
	}
	return id.String(), true
}

func (h *BaseHandler) JobID(c *gin.Context) (string, bool) {
	return h.PathID(c, "jobId", apperrors.ErrJobNotFound)
}

func (h *BaseHandler) ApplicationID(c *gin.Context) (string, bool) {
	return h.PathID(c, "id", apperrors.ErrApplicationNotFound)
}

// FormFile returns the uploaded file for field, or nil when none was sent.
func FormFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

func isMultipart(c *gin.Context) bool {
	return c.ContentType() == "multipart/form-data"
}
