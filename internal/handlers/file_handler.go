package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"ajira_backend/internal/logger"
	"ajira_backend/internal/storage"
	"ajira_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves uploads kept by the local storage backend. S3 URLs point at the bucket directly.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup, _ Guards) {
	files := rg.Group("/files")
	{
		files.GET("/*key", h.ServeFile)
		files.HEAD("/*key", h.ServeFile)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	key, err := storage.CleanKey(strings.TrimPrefix(c.Param("key"), "/"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.CtxWithError(c.Request.Context(), "Failed to read stored file", err, "key", key)
		}
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="`+path.Base(key)+`"`)
	} else {
		c.Header("Content-Disposition", "inline")
	}
	c.Status(http.StatusOK)

	if c.Request.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(c.Writer, reader); err != nil {
		_ = c.Error(err)
	}
}
