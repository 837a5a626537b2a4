package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/evermore-apps/evermore-backend/internal/http"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,

		AuthHandler:         handlers.Auth,
		GuestHandler:        handlers.Guest,
		RegistryHandler:     handlers.Registry,
		StatsHandler:        handlers.Stats,
		EngagementHandler:   handlers.Engagement,
		GalleryHandler:      handlers.Gallery,
		ProgrammeHandler:    handlers.Programme,
		MessagingHandler:    handlers.Messaging,
		NotificationHandler: handlers.Notification,
		ActivityHandler:     handlers.Activity,
		AdminHandler:        handlers.Admin,

		HealthHandler: handlers.Health,
	})
}
