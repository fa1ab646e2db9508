package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"ajira_backend/internal/config"
	"ajira_backend/internal/middleware"
	"ajira_backend/internal/models"
	"ajira_backend/internal/services"
	"ajira_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, guards Guards) {
	profile := rg.Group("/profile")
	profile.Use(guards.Auth)
	{
		client := profile.Group("/client", middleware.RequireRoles(models.UserRoleClient))
		client.GET("", h.GetClientProfile)
		client.PUT("", h.UpdateClientProfile)
		client.PATCH("", h.UpdateClientProfile)

		seeker := profile.Group("", middleware.RequireRoles(models.UserRoleJobSeeker))
		seeker.GET("/job-seeker", h.GetJobSeekerProfile)
		seeker.PUT("/job-seeker", h.UpdateJobSeekerProfile)
		seeker.PATCH("/job-seeker", h.UpdateJobSeekerProfile)
		seeker.POST("/resume", h.UploadResume)
		seeker.POST("/portfolio", h.UploadPortfolio)
		seeker.POST("/picture", h.UploadPicture)
	}
}

func (h *ProfileHandler) GetClientProfile(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetClientProfile(h.GetDB(c), viewer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateClientProfile(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	var req dto.UpdateClientProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateClientProfile(h.GetDB(c), viewer, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetJobSeekerProfile(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetJobSeekerProfile(c.Request.Context(), h.GetDB(c), viewer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateJobSeekerProfile(c *gin.Context) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	var req dto.UpdateJobSeekerProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateJobSeekerProfile(c.Request.Context(), h.GetDB(c), viewer, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	h.upload(c, config.ResumeFileRule.Field, h.profileService.UploadResume)
}

func (h *ProfileHandler) UploadPortfolio(c *gin.Context) {
	h.upload(c, config.PortfolioFileRule.Field, h.profileService.UploadPortfolio)
}

func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	h.upload(c, config.ProfilePictureFileRule.Field, h.profileService.UploadPicture)
}

type uploadFunc func(ctx context.Context, db *gorm.DB, viewer *services.Viewer, file *multipart.FileHeader) (dto.FileResponse, error)

func (h *ProfileHandler) upload(c *gin.Context, field string, store uploadFunc) {
	viewer, ok := h.RequireViewer(c)
	if !ok {
		return
	}

	resp, err := store(c.Request.Context(), h.GetDB(c), viewer, FormFile(c, field))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
