package services

import (
	"strings"

	"ajira_backend/internal/models"
)

// Viewer is the authenticated caller as seen by the services. A nil *Viewer is anonymous.
type Viewer struct {
	UserID string
	Role   models.UserRole
}

func (v *Viewer) IsClient() bool {
	return v != nil && v.Role == models.UserRoleClient
}

func (v *Viewer) IsJobSeeker() bool {
	return v != nil && v.Role == models.UserRoleJobSeeker
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
