package handlers

import (
	"mime/multipart"
	"net/http"
	"testing"

	"ajira_backend/internal/models"
	"ajira_backend/internal/services"
	"ajira_backend/internal/services/dto"
	"ajira_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var seeker = &services.Viewer{UserID: "seeker-1", Role: models.UserRoleJobSeeker}

func TestApplicationHandler_ApplyJSON(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockApplicationService)
	srv.mount(NewApplicationHandler(srv.base, svc))

	svc.On("Apply", mock.Anything, mock.Anything, seeker, testJobID, &dto.ApplyRequest{CoverLetter: "Hire me"}, (*multipart.FileHeader)(nil)).
		Return(&dto.ApplicationResponse{ID: testApplicationID}, nil).Once()

	w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs/"+testJobID+"/applications", map[string]string{"cover_letter": "Hire me"}),
		srv.token(t, seeker.UserID, seeker.Role))

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_ApplyMultipartWithResume(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockApplicationService)
	srv.mount(NewApplicationHandler(srv.base, svc))

	svc.On("Apply", mock.Anything, mock.Anything, seeker, testJobID, &dto.ApplyRequest{CoverLetter: "See attached"},
		mock.MatchedBy(func(f *multipart.FileHeader) bool { return f != nil && f.Filename == "cv.pdf" })).
		Return(&dto.ApplicationResponse{ID: testApplicationID}, nil).Once()

	req := multipartRequest(t, "/api/v1/jobs/"+testJobID+"/applications",
		map[string]string{"cover_letter": "See attached"}, "resume", "cv.pdf", []byte("%PDF-1.4"))
	w := srv.do(req, srv.token(t, seeker.UserID, seeker.Role))

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_ApplyRequiresCoverLetter(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockApplicationService)
	srv.mount(NewApplicationHandler(srv.base, svc))

	w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs/"+testJobID+"/applications", map[string]string{}),
		srv.token(t, seeker.UserID, seeker.Role))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Detail, "cover_letter")
}

func TestApplicationHandler_ClientCannotApply(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockApplicationService)
	srv.mount(NewApplicationHandler(srv.base, svc))

	w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs/"+testJobID+"/applications", map[string]string{"cover_letter": "x"}),
		srv.token(t, "client-1", models.UserRoleClient))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_Withdraw(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "pending", wantCode: http.StatusNoContent},
		{name: "already reviewed", err: apperrors.ErrCannotWithdraw, wantCode: http.StatusBadRequest},
		{name: "someone else's", err: apperrors.ErrApplicationNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			svc := new(mockApplicationService)
			srv.mount(NewApplicationHandler(srv.base, svc))
			svc.On("Withdraw", mock.Anything, mock.Anything, seeker, testApplicationID).Return(tt.err).Once()

			w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/applications/"+testApplicationID+"/withdraw", nil),
				srv.token(t, seeker.UserID, seeker.Role))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestApplicationHandler_UpdateStatusSkipsTagValidation(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockApplicationService)
	srv.mount(NewApplicationHandler(srv.base, svc))

	client := &services.Viewer{UserID: "client-1", Role: models.UserRoleClient}
	svc.On("UpdateStatus", mock.Anything, mock.Anything, client, testApplicationID, models.ApplicationStatus("bogus")).
		Return(nil, apperrors.FieldError("status", "Invalid status")).Once()

	w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/applications/"+testApplicationID+"/update_status", map[string]string{"status": "bogus"}),
		srv.token(t, client.UserID, client.Role))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Invalid status"}, decodeError(t, w).Detail["status"])
}

func TestApplicationHandler_SetSteps(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockApplicationService)
	srv.mount(NewApplicationHandler(srv.base, svc))

	client := &services.Viewer{UserID: "client-1", Role: models.UserRoleClient}
	steps := []models.ApplicationStep{{Name: "Screening"}, {Name: "Interview", Description: "Video call"}}
	svc.On("SetSteps", mock.Anything, mock.Anything, client, testApplicationID, steps).
		Return(&dto.ApplicationResponse{ID: testApplicationID}, nil).Once()

	w := srv.do(jsonRequest(t, http.MethodPut, "/api/v1/applications/"+testApplicationID+"/steps", map[string]interface{}{
		"steps": []map[string]string{
			{"name": "Screening"},
			{"name": "Interview", "description": "Video call"},
		},
	}), srv.token(t, client.UserID, client.Role))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_MalformedPathIDs(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		role       models.UserRole
		wantDetail string
	}{
		{name: "apply", method: http.MethodPost, path: "/api/v1/jobs/abc/applications", role: models.UserRoleJobSeeker, wantDetail: "Job post not found"},
		{name: "list for job", method: http.MethodGet, path: "/api/v1/jobs/abc/applications", role: models.UserRoleClient, wantDetail: "Job post not found"},
		{name: "get", method: http.MethodGet, path: "/api/v1/applications/42", role: models.UserRoleJobSeeker, wantDetail: "Application not found"},
		{name: "withdraw", method: http.MethodPost, path: "/api/v1/applications/abc/withdraw", role: models.UserRoleJobSeeker, wantDetail: "Application not found"},
		{name: "update status", method: http.MethodPost, path: "/api/v1/applications/abc/update_status", role: models.UserRoleClient, wantDetail: "Application not found"},
		{name: "advance step", method: http.MethodPost, path: "/api/v1/applications/abc/advance_step", role: models.UserRoleClient, wantDetail: "Application not found"},
		{name: "set steps", method: http.MethodPut, path: "/api/v1/applications/abc/steps", role: models.UserRoleClient, wantDetail: "Application not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			svc := new(mockApplicationService)
			srv.mount(NewApplicationHandler(srv.base, svc))

			w := srv.do(jsonRequest(t, tt.method, tt.path, map[string]string{}), srv.token(t, "user-1", tt.role))

			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, []string{tt.wantDetail}, decodeError(t, w).Detail[apperrors.NonFieldErrors])
			assert.Empty(t, svc.Calls)
		})
	}
}
