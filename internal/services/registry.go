package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	SavedJobService     SavedJobService
	NotificationService NotificationService
	UploadService       UploadService
	Presenter           *Presenter
}
