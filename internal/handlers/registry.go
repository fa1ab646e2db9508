package handlers

import "github.com/gin-gonic/gin"

// Guards carries the authentication middlewares built from the token manager.
type Guards struct {
	Auth         gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
}

// AppHandlers contains every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	JobHandler         *JobHandler
	SavedJobHandler    *SavedJobHandler
	ApplicationHandler *ApplicationHandler
	FileHandler        *FileHandler
}

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup, guards Guards)
}

// RegisterAll mounts every handler on rg.
func (a *AppHandlers) RegisterAll(rg *gin.RouterGroup, guards Guards) {
	registrars := []routeRegistrar{
		a.AuthHandler,
		a.ProfileHandler,
		a.JobHandler,
		a.SavedJobHandler,
		a.ApplicationHandler,
	}
	if a.FileHandler != nil {
		registrars = append(registrars, a.FileHandler)
	}
	for _, r := range registrars {
		r.RegisterRoutes(rg, guards)
	}
}
