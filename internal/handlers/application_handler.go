package handlers

import (
	"mime/multipart"
	"net/http"

	"ajira_backend/internal/config"
	"ajira_backend/internal/middleware"
	"ajira_backend/internal/models"
	"ajira_backend/internal/services"
	"ajira_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, guards Guards) {
	jobs := rg.Group("/jobs", guards.Auth)
	{
		jobs.POST("/:jobId/applications", middleware.RequireRoles(models.UserRoleJobSeeker), h.Apply)
		jobs.GET("/:jobId/applications", h.ListForJob)
	}

	apps := rg.Group("/applications", guards.Auth)
	{
		apps.GET("", middleware.RequireRoles(models.UserRoleJobSeeker), h.ListMine)
		apps.GET("/:id", h.Get)
		apps.POST("/:id/withdraw", h.Withdraw)
		apps.POST("/:id/update_status", h.UpdateStatus)
		apps.POST("/:id/advance_step", h.AdvanceStep)
		apps.PUT("/:id/steps", h.SetSteps)
	}
}

// Apply accepts JSON, or multipart with an optional resume file.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	var resume *multipart.FileHeader
	if isMultipart(c) {
		resume = FormFile(c, config.ApplicationResumeFileRule.Field)
	}

	app, err := h.applicationService.Apply(c.Request.Context(), h.GetDB(c), viewer, jobID, &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForJob(c.Request.Context(), h.GetDB(c), viewer, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListMine(c.Request.Context(), h.GetDB(c), viewer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	appID, ok := h.ApplicationID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Get(c.Request.Context(), h.GetDB(c), viewer, appID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	appID, ok := h.ApplicationID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Request.Context(), h.GetDB(c), viewer, appID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	appID, ok := h.ApplicationID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.Bind(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), viewer, appID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) AdvanceStep(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	appID, ok := h.ApplicationID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.AdvanceStep(c.Request.Context(), h.GetDB(c), viewer, appID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) SetSteps(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	appID, ok := h.ApplicationID(c)
	if !ok {
		return
	}

	var req dto.SetStepsRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	app, err := h.applicationService.SetSteps(c.Request.Context(), h.GetDB(c), viewer, appID, req.ToModel())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
