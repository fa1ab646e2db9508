package handlers

import (
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

func TestJobHandler_ListAnonymous(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	remote := true
	svc.On("ListJobs", mock.Anything, (*services.Viewer)(nil), models.JobPostFilter{RemoteWork: &remote}).
		Return([]*dto.JobPostResponse{{ID: testJobID, Title: "Go developer"}}, nil).Once()

	w := srv.do(jsonRequest(t, http.MethodGet, "/api/v1/jobs?remote_work=true", nil), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go developer")
	svc.AssertExpectations(t)
}

func TestJobHandler_ListInvalidFilters(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	w := srv.do(jsonRequest(t, http.MethodGet, "/api/v1/jobs?experience_level=guru&remote_work=maybe", nil), "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Contains(t, body.Detail, "experience_level")
	assert.Contains(t, body.Detail, "remote_work")
	svc.AssertNotCalled(t, "ListJobs", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobHandler_ListPassesViewer(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	viewer := &services.Viewer{UserID: "client-1", Role: models.UserRoleClient}
	svc.On("ListJobs", mock.Anything, viewer, models.JobPostFilter{}).Return([]*dto.JobPostResponse{}, nil).Once()

	w := srv.do(jsonRequest(t, http.MethodGet, "/api/v1/jobs", nil), srv.token(t, "client-1", models.UserRoleClient))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestJobHandler_ListRejectsBadToken(t *testing.T) {
	srv := newTestServer(t)
	srv.mount(NewJobHandler(srv.base, new(mockJobService)))

	w := srv.do(jsonRequest(t, http.MethodGet, "/api/v1/jobs", nil), "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJobHandler_CreateGuards(t *testing.T) {
	tests := []struct {
		name     string
		role     models.UserRole
		anon     bool
		wantCode int
	}{
		{name: "anonymous", anon: true, wantCode: http.StatusUnauthorized},
		{name: "job seeker", role: models.UserRoleJobSeeker, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			svc := new(mockJobService)
			srv.mount(NewJobHandler(srv.base, svc))

			token := ""
			if !tt.anon {
				token = srv.token(t, "user-1", tt.role)
			}
			w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs", map[string]string{"title": "x"}), token)

			assert.Equal(t, tt.wantCode, w.Code)
			svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestJobHandler_ChangeStatus(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	viewer := &services.Viewer{UserID: "client-1", Role: models.UserRoleClient}
	svc.On("ChangeStatus", mock.Anything, mock.Anything, viewer, testJobID, models.JobStatusClosed).
		Return(&dto.JobPostResponse{ID: testJobID, Status: models.JobStatusClosed}, nil).Once()

	w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs/"+testJobID+"/change_status", map[string]string{"status": "closed"}),
		srv.token(t, "client-1", models.UserRoleClient))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestJobHandler_GetNotFound(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	svc.On("GetJob", mock.Anything, (*services.Viewer)(nil), testJobID).Return(nil, apperrors.ErrJobNotFound).Once()

	w := srv.do(jsonRequest(t, http.MethodGet, "/api/v1/jobs/"+testJobID, nil), "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperrors.CodeNotFound, decodeError(t, w).Code)
	svc.AssertExpectations(t)
}

func TestJobHandler_MalformedJobID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		auth   bool
	}{
		{name: "get", method: http.MethodGet, path: "/api/v1/jobs/abc"},
		{name: "update", method: http.MethodPatch, path: "/api/v1/jobs/abc", body: map[string]string{"title": "New"}, auth: true},
		{name: "change status", method: http.MethodPost, path: "/api/v1/jobs/1/change_status", body: map[string]string{"status": "closed"}, auth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			svc := new(mockJobService)
			srv.mount(NewJobHandler(srv.base, svc))

			token := ""
			if tt.auth {
				token = srv.token(t, "client-1", models.UserRoleClient)
			}
			w := srv.do(jsonRequest(t, tt.method, tt.path, tt.body), token)

			require.Equal(t, http.StatusNotFound, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, apperrors.CodeNotFound, body.Code)
			assert.Equal(t, []string{"Job post not found"}, body.Detail[apperrors.NonFieldErrors])
			assert.Empty(t, svc.Calls, "service must not see a malformed id")
		})
	}
}

func TestJobHandler_CreateBudgetAndDurationBounds(t *testing.T) {
	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"title":            "Go developer",
			"category":         "Engineering",
			"description":      "Build the API",
			"requirements":     "Go experience",
			"skills":           []string{"go"},
			"experience_level": "expert",
			"project_type":     "contract",
			"budget":           1500.50,
			"duration":         30,
		}
	}

	tests := []struct {
		name      string
		budget    interface{}
		duration  interface{}
		wantCode  int
		wantField string
	}{
		{name: "zero budget", budget: 0, duration: 30, wantCode: http.StatusBadRequest, wantField: "budget"},
		{name: "zero duration", budget: 1500.50, duration: 0, wantCode: http.StatusBadRequest, wantField: "duration"},
		{name: "smallest accepted", budget: 0.01, duration: 1, wantCode: http.StatusCreated},
		{name: "largest accepted budget", budget: 99999999.99, duration: 30, wantCode: http.StatusCreated},
		{name: "three decimal places", budget: 0.001, duration: 30, wantCode: http.StatusBadRequest, wantField: "budget"},
		{name: "budget above column", budget: 100000000, duration: 30, wantCode: http.StatusBadRequest, wantField: "budget"},
		{name: "budget far above column", budget: 1e12, duration: 30, wantCode: http.StatusBadRequest, wantField: "budget"},
		{name: "duration above integer", budget: 1500.50, duration: int64(2147483648), wantCode: http.StatusBadRequest, wantField: "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			svc := new(mockJobService)
			srv.mount(NewJobHandler(srv.base, svc))

			if tt.wantCode == http.StatusCreated {
				svc.On("CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(&dto.JobPostResponse{ID: testJobID}, nil).Once()
			}

			body := valid()
			body["budget"] = tt.budget
			body["duration"] = tt.duration
			w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs", body), srv.token(t, "client-1", models.UserRoleClient))

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantField != "" {
				detail := decodeError(t, w).Detail
				assert.Contains(t, detail, tt.wantField)
				assert.Len(t, detail, 1, "only the bound under test should fail")
				svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestJobHandler_CreateRejectsWhitespaceText(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	body := map[string]interface{}{
		"title":            "   ",
		"category":         "\t",
		"description":      " \n ",
		"requirements":     "  ",
		"skills":           []string{"go"},
		"experience_level": "expert",
		"project_type":     "contract",
		"budget":           100,
		"duration":         30,
	}
	w := srv.do(jsonRequest(t, http.MethodPost, "/api/v1/jobs", body), srv.token(t, "client-1", models.UserRoleClient))

	require.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w).Detail
	for _, field := range []string{"title", "category", "description", "requirements"} {
		assert.Equal(t, []string{"This field may not be blank"}, detail[field], field)
	}
	svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobHandler_UpdateRejectsBlankText(t *testing.T) {
	srv := newTestServer(t)
	svc := new(mockJobService)
	srv.mount(NewJobHandler(srv.base, svc))

	body := map[string]interface{}{"title": "", "requirements": "   ", "budget": 10.005}
	w := srv.do(jsonRequest(t, http.MethodPatch, "/api/v1/jobs/"+testJobID, body), srv.token(t, "client-1", models.UserRoleClient))

	require.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w).Detail
	assert.Equal(t, []string{"This field may not be blank"}, detail["title"])
	assert.Equal(t, []string{"This field may not be blank"}, detail["requirements"])
	assert.Equal(t, []string{"Ensure that there are no more than 2 decimal places."}, detail["budget"])
	assert.NotContains(t, detail, "category", "omitted fields are left alone")
	svc.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
