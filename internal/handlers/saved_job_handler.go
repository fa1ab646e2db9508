package handlers

import (
	"net/http"

	"ajira_backend/internal/middleware"
	"ajira_backend/internal/models"
	"ajira_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(rg *gin.RouterGroup, guards Guards) {
	jobs := rg.Group("/jobs", guards.Auth, middleware.RequireRoles(models.UserRoleJobSeeker))
	{
		jobs.GET("/saved", h.ListSaved)
		jobs.POST("/:jobId/save", h.Save)
		jobs.DELETE("/:jobId/save", h.Unsave)
	}
}

func (h *SavedJobHandler) ListSaved(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.List(h.GetDB(c), viewer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	job, err := h.savedJobService.Save(c.Request.Context(), h.GetDB(c), viewer, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}
	jobID, ok := h.JobID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.Unsave(c.Request.Context(), h.GetDB(c), viewer, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
