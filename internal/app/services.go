package app

import (
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type Services struct {
	Auth         services.AuthService
	Guest        services.GuestService
	Registry     services.RegistryService
	Stats        services.StatsService
	Attendance   services.AttendanceService
	Engagement   services.EngagementService
	Gallery      services.GalleryService
	Programme    services.ProgrammeService
	Messaging    services.MessagingService
	Notification services.NotificationService
	Activity     services.ActivityService
	Admin        services.AdminService

	SnapshotWorker *services.SnapshotWorker
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, clients Clients) Services {
	log.Info("Wiring services...")

	notification := services.NewNotificationService(db, log, r.Notification)
	activity := services.NewActivityService(db, log, r.ActivityLog)

	auth := services.NewAuthService(db, log, r.Couple, r.Organizer, r.SuperAdmin, r.AuthToken,
		cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	guest := services.NewGuestService(db, log, r.Guest, notification, activity, cfg.QRBaseURL)
	registry := services.NewRegistryService(db, log, r.Gift, r.Pot, r.Contribution, r.Guest, notification, activity)
	stats := services.NewStatsService(db, log, r.Contribution, r.Gift, r.Pot, r.Guest)
	attendance := services.NewAttendanceService(db, log, r.Guest, clients.Cache, cfg.SnapshotTTL)
	engagement := services.NewEngagementService(db, log, r.Quiz, r.QuizResult, r.Poll, r.PollResponse, r.Guest)
	gallery := services.NewGalleryService(db, log, r.Gallery, r.Media, clients.Bucket, activity)
	programme := services.NewProgrammeService(db, log, r.Programme, activity)
	messaging := services.NewMessagingService(db, log, r.Message, r.Guest, notification)
	admin := services.NewAdminService(db, log, r.Couple)

	snapshotWorker := services.NewSnapshotWorker(db, log, r.Couple, attendance, cfg.SnapshotCronSpec)

	return Services{
		Auth:         auth,
		Guest:        guest,
		Registry:     registry,
		Stats:        stats,
		Attendance:   attendance,
		Engagement:   engagement,
		Gallery:      gallery,
		Programme:    programme,
		Messaging:    messaging,
		Notification: notification,
		Activity:     activity,
		Admin:        admin,

		SnapshotWorker: snapshotWorker,
	}
}
