package handlers

import (
	"net/http"

	"ajira_backend/internal/middleware"
	"ajira_backend/internal/models"
	"ajira_backend/internal/services"
	"ajira_backend/internal/services/dto"
	"ajira_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, guards Guards) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", guards.OptionalAuth, h.ListJobs)
		jobs.GET("/:jobId", guards.OptionalAuth, h.GetJob)

		jobs.POST("", guards.Auth, middleware.RequireRoles(models.UserRoleClient), h.CreateJob)
		jobs.PUT("/:jobId", guards.Auth, h.UpdateJob)
		jobs.PATCH("/:jobId", guards.Auth, h.UpdateJob)
		jobs.POST("/:jobId/change_status", guards.Auth, h.ChangeStatus)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobPostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return
	}
	filter, errs := query.Parse()
	if len(errs) > 0 {
		apperrors.HandleError(c, apperrors.ValidationError(errs))
		return
	}

	jobs, err := h.jobService.ListJobs(h.GetDB(c), h.GetViewer(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(h.GetDB(c), h.GetViewer(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	var req dto.CreateJobPostRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), viewer, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobPostRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), viewer, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ChangeStatus(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	var req dto.ChangeJobStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.ChangeStatus(c.Request.Context(), h.GetDB(c), viewer, jobID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
