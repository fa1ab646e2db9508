package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"ajira_backend/internal/config"
	"ajira_backend/internal/imageprocessor"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/storage"
	"ajira_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadService validates attachments against a FileRule and writes them to storage.
type UploadService interface {
	// Store saves file under rule.Dir/ownerID and returns the storage key.
	Store(ctx context.Context, rule config.FileRule, ownerID string, file *multipart.FileHeader) (string, error)
	// StoreImage is Store for pictures: the image is re-encoded as a bounded JPEG first.
	StoreImage(ctx context.Context, rule config.FileRule, ownerID string, file *multipart.FileHeader, size imageprocessor.ImageSize) (string, error)
	// Remove deletes key, logging instead of failing. Empty keys are ignored.
	Remove(ctx context.Context, key string)
}

type uploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor) UploadService {
	return &uploadService{storage: store, processor: processor}
}

func (s *uploadService) Store(ctx context.Context, rule config.FileRule, ownerID string, file *multipart.FileHeader) (string, error) {
	data, ext, err := readChecked(rule, file)
	if err != nil {
		return "", err
	}
	return s.save(ctx, rule, ownerID, ext, data, http.DetectContentType(data))
}

func (s *uploadService) StoreImage(ctx context.Context, rule config.FileRule, ownerID string, file *multipart.FileHeader, size imageprocessor.ImageSize) (string, error) {
	data, _, err := readChecked(rule, file)
	if err != nil {
		return "", err
	}

	jpg, err := s.processor.ToJPEG(bytes.NewReader(data), size)
	if err != nil {
		return "", apperrors.FieldError(rule.Field, "Upload a valid image")
	}
	return s.save(ctx, rule, ownerID, ".jpg", jpg, "image/jpeg")
}

func (s *uploadService) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.CtxWarn(ctx, "failed to delete stored file", "key", key, "error", err)
	}
}

func (s *uploadService) save(ctx context.Context, rule config.FileRule, ownerID, ext string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s%s", rule.Dir, ownerID, uuid.NewString(), ext)
	if err := s.storage.Save(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return "", apperrors.InternalError(fmt.Errorf("store %s: %w", rule.Field, err))
	}
	return key, nil
}

// readChecked reads at most MaxSize+1 bytes, then checks extension and size.
func readChecked(rule config.FileRule, file *multipart.FileHeader) ([]byte, string, error) {
	if file == nil {
		return nil, "", apperrors.ErrFileRequired(rule.Field)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(rule.Extensions, strings.TrimPrefix(ext, ".")) {
		return nil, "", apperrors.FieldError(rule.Field,
			fmt.Sprintf("Unsupported file type. Allowed types: %s", strings.Join(rule.Extensions, ", ")))
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", apperrors.InternalError(fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, rule.MaxSize+1))
	if err != nil {
		return nil, "", apperrors.InternalError(fmt.Errorf("read upload: %w", err))
	}
	if int64(len(data)) > rule.MaxSize {
		return nil, "", apperrors.FieldError(rule.Field,
			fmt.Sprintf("File size must be less than %dMB", rule.MaxSize/(1024*1024)))
	}
	return data, ext, nil
}
