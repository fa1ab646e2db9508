package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type ExperienceLevel string
type ProjectType string
type Currency string

const (
	UserRoleClient    UserRole = "client"
	UserRoleJobSeeker UserRole = "job_seeker"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"

	ExperienceLevelEntry        ExperienceLevel = "entry"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelExpert       ExperienceLevel = "expert"

	ProjectTypeFullTime  ProjectType = "full_time"
	ProjectTypePartTime  ProjectType = "part_time"
	ProjectTypeContract  ProjectType = "contract"
	ProjectTypeFreelance ProjectType = "freelance"

	CurrencyKSH Currency = "KSH"
	CurrencyUSD Currency = "USD"
)

var (
	UserRoles           = []UserRole{UserRoleClient, UserRoleJobSeeker}
	JobStatuses         = []JobStatus{JobStatusDraft, JobStatusActive, JobStatusClosed}
	ApplicationStatuses = []ApplicationStatus{
		ApplicationStatusPending,
		ApplicationStatusReviewing,
		ApplicationStatusInterviewed,
		ApplicationStatusRejected,
		ApplicationStatusAccepted,
	}
	ExperienceLevels = []ExperienceLevel{ExperienceLevelEntry, ExperienceLevelIntermediate, ExperienceLevelExpert}
	ProjectTypes     = []ProjectType{ProjectTypeFullTime, ProjectTypePartTime, ProjectTypeContract, ProjectTypeFreelance}
	Currencies       = []Currency{CurrencyKSH, CurrencyUSD}
)

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func (r UserRole) IsValid() bool          { return contains(UserRoles, r) }
func (s JobStatus) IsValid() bool         { return contains(JobStatuses, s) }
func (s ApplicationStatus) IsValid() bool { return contains(ApplicationStatuses, s) }
func (l ExperienceLevel) IsValid() bool   { return contains(ExperienceLevels, l) }
func (p ProjectType) IsValid() bool       { return contains(ProjectTypes, p) }
func (c Currency) IsValid() bool          { return contains(Currencies, c) }
