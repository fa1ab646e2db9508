package services

import (
	"context"
	"fmt"
	"strings"

	"ajira_backend/internal/email"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/metrics"
	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"

	"gorm.io/gorm"
)

// NotificationService announces newly active job posts to every job seeker.
type NotificationService interface {
	// NotifyNewJob sends one email per job seeker and returns how many were delivered.
	// Failures are logged per recipient and never returned.
	NotifyNewJob(ctx context.Context, db *gorm.DB, job *models.JobPost) int
}

type notificationService struct {
	userRepo    repositories.UserRepository
	sender      email.Sender
	renderer    email.TemplateRenderer
	frontendURL string
}

func NewNotificationService(
	userRepo repositories.UserRepository,
	sender email.Sender,
	renderer email.TemplateRenderer,
	frontendURL string,
) NotificationService {
	return &notificationService{
		userRepo:    userRepo,
		sender:      sender,
		renderer:    renderer,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
	}
}

func (s *notificationService) NotifyNewJob(ctx context.Context, db *gorm.DB, job *models.JobPost) int {
	log := logger.FromContext(ctx).With("job_id", job.ID)

	recipients, err := s.userRepo.ListJobSeekerEmails(db)
	if err != nil {
		log.Error("failed to load job notification recipients", "error", err)
		return 0
	}
	if len(recipients) == 0 {
		return 0
	}

	body, err := s.renderer.Render(email.TemplateJobNotification, s.templateData(job))
	if err != nil {
		log.Error("failed to render job notification", "error", err)
		return 0
	}
	subject := "New Job Opportunity: " + job.Title

	sent := 0
	for _, to := range recipients {
		err := s.sender.Send(ctx, to, subject, body)
		metrics.EmailResult(email.TemplateJobNotification, err)
		if err != nil {
			log.Warn("job notification failed", "recipient", to, "error", err)
			continue
		}
		sent++
	}

	log.Info("job notifications sent", "sent", sent, "recipients", len(recipients))
	return sent
}

func (s *notificationService) templateData(job *models.JobPost) email.TemplateData {
	company := ""
	if job.Client != nil && job.Client.ClientProfile != nil {
		company = job.Client.ClientProfile.CompanyName
	}
	location := ""
	if job.Location != nil {
		location = *job.Location
	}
	return email.TemplateData{
		"Title":       job.Title,
		"Company":     company,
		"Category":    job.Category,
		"Currency":    string(job.Currency),
		"Budget":      job.Budget,
		"Duration":    job.Duration,
		"RemoteWork":  job.RemoteWork,
		"Location":    location,
		"Description": job.Description,
		"JobURL":      fmt.Sprintf("%s/jobs/%s", s.frontendURL, job.ID),
	}
}
