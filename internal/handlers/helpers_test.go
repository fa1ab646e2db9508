package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ajira_backend/internal/auth"
	"ajira_backend/internal/middleware"
	"ajira_backend/internal/models"
	"ajira_backend/internal/validator"
	"ajira_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	testJobID         = "0b6f2c3e-8d1a-4f5b-9c7e-2a4d6e8f0a1b"
	testApplicationID = "5e9d1c7b-3a2f-4e6d-8b0c-9f1e2d3c4b5a"
)

type registrar interface {
	RegisterRoutes(rg *gin.RouterGroup, guards Guards)
}

type testServer struct {
	engine *gin.Engine
	tokens *auth.TokenManager
	base   *BaseHandler
}

// unconnectedDB satisfies DBMiddleware. The mocked services never issue queries.
func unconnectedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=test dbname=test sslmode=disable"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.DBMiddleware(unconnectedDB(t)))

	return &testServer{
		engine: engine,
		tokens: auth.NewTokenManager("test-secret", time.Minute),
		base:   NewBaseHandler(validator.New()),
	}
}

func (s *testServer) mount(handlers ...registrar) {
	api := s.engine.Group("/api/v1")
	guards := Guards{
		Auth:         middleware.AuthMiddleware(s.tokens),
		OptionalAuth: middleware.OptionalAuth(s.tokens),
	}
	for _, h := range handlers {
		h.RegisterRoutes(api, guards)
	}
}

func (s *testServer) token(t *testing.T, userID string, role models.UserRole) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(data)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func multipartRequest(t *testing.T, path string, fields map[string]string, fileField, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
