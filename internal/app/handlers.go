package app

import (
	httpH "github.com/evermore-apps/evermore-backend/internal/http/handlers"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth         *httpH.AuthHandler
	Guest        *httpH.GuestHandler
	Registry     *httpH.RegistryHandler
	Stats        *httpH.StatsHandler
	Engagement   *httpH.EngagementHandler
	Gallery      *httpH.GalleryHandler
	Programme    *httpH.ProgrammeHandler
	Messaging    *httpH.MessagingHandler
	Notification *httpH.NotificationHandler
	Activity     *httpH.ActivityHandler
	Admin        *httpH.AdminHandler
	Health       *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:         httpH.NewAuthHandler(services.Auth),
		Guest:        httpH.NewGuestHandler(services.Guest),
		Registry:     httpH.NewRegistryHandler(services.Registry),
		Stats:        httpH.NewStatsHandler(services.Stats, services.Attendance),
		Engagement:   httpH.NewEngagementHandler(services.Engagement),
		Gallery:      httpH.NewGalleryHandler(services.Gallery),
		Programme:    httpH.NewProgrammeHandler(services.Programme),
		Messaging:    httpH.NewMessagingHandler(services.Messaging),
		Notification: httpH.NewNotificationHandler(services.Notification),
		Activity:     httpH.NewActivityHandler(services.Activity),
		Admin:        httpH.NewAdminHandler(services.Admin),
		Health:       httpH.NewHealthHandler(),
	}
}
