package http

import (
	"github.com/gin-gonic/gin"

	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
	httpH "github.com/evermore-apps/evermore-backend/internal/http/handlers"
	httpMW "github.com/evermore-apps/evermore-backend/internal/http/middleware"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler         *httpH.AuthHandler
	GuestHandler        *httpH.GuestHandler
	RegistryHandler     *httpH.RegistryHandler
	StatsHandler        *httpH.StatsHandler
	EngagementHandler   *httpH.EngagementHandler
	GalleryHandler      *httpH.GalleryHandler
	ProgrammeHandler    *httpH.ProgrammeHandler
	MessagingHandler    *httpH.MessagingHandler
	NotificationHandler *httpH.NotificationHandler
	ActivityHandler     *httpH.ActivityHandler
	AdminHandler        *httpH.AdminHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
			api.POST("/login/organizer", cfg.AuthHandler.LoginOrganizer)
			api.POST("/admin/login", cfg.AuthHandler.LoginSuperAdmin)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
			protected.POST("/organizers", cfg.AuthMiddleware.RequireCouple(), cfg.AuthHandler.CreateOrganizer)
		}

		// Guests
		if cfg.GuestHandler != nil {
			manage := cfg.AuthMiddleware.RequirePermission(accounts.PermGuestManage)
			checkin := cfg.AuthMiddleware.RequirePermission(accounts.PermGuestCheckIn)
			protected.POST("/guests", manage, cfg.GuestHandler.Create)
			protected.GET("/guests", manage, cfg.GuestHandler.List)
			protected.PATCH("/guests/:id", manage, cfg.GuestHandler.Update)
			protected.DELETE("/guests/:id", manage, cfg.GuestHandler.Delete)
			protected.POST("/guests/:id/rsvp", manage, cfg.GuestHandler.RSVP)
			protected.POST("/guests/assign-table", manage, cfg.GuestHandler.AssignTable)
			protected.GET("/guests/:id/qr.png", manage, cfg.GuestHandler.QRCode)
			protected.POST("/checkin", checkin, cfg.GuestHandler.CheckIn)
		}

		// Registry
		if cfg.RegistryHandler != nil {
			manage := cfg.AuthMiddleware.RequirePermission(accounts.PermRegistryManage)
			protected.POST("/gifts", manage, cfg.RegistryHandler.CreateGift)
			protected.GET("/gifts", manage, cfg.RegistryHandler.ListGifts)
			protected.PATCH("/gifts/:id", manage, cfg.RegistryHandler.UpdateGift)
			protected.DELETE("/gifts/:id", manage, cfg.RegistryHandler.DeleteGift)
			protected.POST("/pots", manage, cfg.RegistryHandler.CreatePot)
			protected.GET("/pots", manage, cfg.RegistryHandler.ListPots)
			protected.PATCH("/pots/:id", manage, cfg.RegistryHandler.UpdatePot)
			protected.DELETE("/pots/:id", manage, cfg.RegistryHandler.DeletePot)
			protected.POST("/contributions", manage, cfg.RegistryHandler.Contribute)
			protected.GET("/contributions", manage, cfg.RegistryHandler.ListContributions)
			protected.GET("/guests/:id/contributions", manage, cfg.RegistryHandler.GuestContributions)
			protected.POST("/contributions/:id/confirm", manage, cfg.RegistryHandler.ConfirmContribution)
			protected.POST("/contributions/:id/deliver", manage, cfg.RegistryHandler.DeliverContribution)
			protected.POST("/contributions/:id/cancel", manage, cfg.RegistryHandler.CancelContribution)
		}

		// Stats
		if cfg.StatsHandler != nil {
			read := cfg.AuthMiddleware.RequirePermission(accounts.PermStatsRead)
			protected.GET("/stats/contributions", read, cfg.StatsHandler.Contributions)
			protected.GET("/stats/gifts/:id", read, cfg.StatsHandler.GiftContributions)
			protected.GET("/stats/pots/:id", read, cfg.StatsHandler.PotContributions)
			protected.GET("/stats/leaderboard", read, cfg.StatsHandler.Leaderboard)
			protected.GET("/stats/registry", read, cfg.StatsHandler.RegistryOverview)
			protected.GET("/stats/attendance", read, cfg.StatsHandler.Attendance)
		}

		// Engagement (quizzes and polls)
		if cfg.EngagementHandler != nil {
			manage := cfg.AuthMiddleware.RequirePermission(accounts.PermEngageManage)
			protected.POST("/quizzes", manage, cfg.EngagementHandler.CreateQuiz)
			protected.GET("/quizzes", manage, cfg.EngagementHandler.ListQuizzes)
			protected.PATCH("/quizzes/:id", manage, cfg.EngagementHandler.UpdateQuiz)
			protected.DELETE("/quizzes/:id", manage, cfg.EngagementHandler.DeleteQuiz)
			protected.POST("/quizzes/:id/results", manage, cfg.EngagementHandler.SubmitQuizResult)
			protected.GET("/quizzes/:id/leaderboard", manage, cfg.EngagementHandler.QuizLeaderboard)
			protected.POST("/polls", manage, cfg.EngagementHandler.CreatePoll)
			protected.GET("/polls", manage, cfg.EngagementHandler.ListPolls)
			protected.POST("/polls/:id/close", manage, cfg.EngagementHandler.ClosePoll)
			protected.DELETE("/polls/:id", manage, cfg.EngagementHandler.DeletePoll)
			protected.POST("/polls/:id/votes", manage, cfg.EngagementHandler.Vote)
			protected.GET("/polls/:id/results", manage, cfg.EngagementHandler.PollResults)
		}

		// Galleries and media
		if cfg.GalleryHandler != nil {
			upload := cfg.AuthMiddleware.RequirePermission(accounts.PermMediaUpload)
			protected.POST("/galleries", cfg.AuthMiddleware.RequireCouple(), cfg.GalleryHandler.Create)
			protected.GET("/galleries", cfg.GalleryHandler.List)
			protected.PATCH("/galleries/:id", cfg.AuthMiddleware.RequireCouple(), cfg.GalleryHandler.Update)
			protected.DELETE("/galleries/:id", cfg.AuthMiddleware.RequireCouple(), cfg.GalleryHandler.Delete)
			protected.POST("/galleries/:id/media", upload, cfg.GalleryHandler.UploadMedia)
			protected.GET("/galleries/:id/media", cfg.GalleryHandler.ListMedia)
			protected.DELETE("/media/:media_id", cfg.AuthMiddleware.RequireCouple(), cfg.GalleryHandler.DeleteMedia)
		}

		// Programme
		if cfg.ProgrammeHandler != nil {
			manage := cfg.AuthMiddleware.RequirePermission(accounts.PermProgrammeManage)
			protected.POST("/programme", manage, cfg.ProgrammeHandler.Create)
			protected.GET("/programme", cfg.ProgrammeHandler.List)
			protected.PATCH("/programme/:id", manage, cfg.ProgrammeHandler.Update)
			protected.POST("/programme/reorder", manage, cfg.ProgrammeHandler.Reorder)
			protected.DELETE("/programme/:id", manage, cfg.ProgrammeHandler.Delete)
		}

		// Guestbook
		if cfg.MessagingHandler != nil {
			protected.POST("/messages", cfg.MessagingHandler.Post)
			protected.GET("/messages", cfg.MessagingHandler.List)
			protected.POST("/messages/:id/approve", cfg.AuthMiddleware.RequireCouple(), cfg.MessagingHandler.Approve)
			protected.POST("/messages/:id/reject", cfg.AuthMiddleware.RequireCouple(), cfg.MessagingHandler.Reject)
			protected.DELETE("/messages/:id", cfg.AuthMiddleware.RequireCouple(), cfg.MessagingHandler.Delete)
		}

		// Notifications
		if cfg.NotificationHandler != nil {
			protected.GET("/notifications", cfg.NotificationHandler.List)
			protected.GET("/notifications/unread-count", cfg.NotificationHandler.UnreadCount)
			protected.POST("/notifications/mark-read", cfg.NotificationHandler.MarkRead)
			protected.POST("/notifications/mark-all-read", cfg.NotificationHandler.MarkAllRead)
		}

		// Activity log
		if cfg.ActivityHandler != nil {
			protected.GET("/activity", cfg.AuthMiddleware.RequireCouple(), cfg.ActivityHandler.List)
		}

		// Platform administration
		if cfg.AdminHandler != nil {
			admin := protected.Group("/admin")
			admin.Use(cfg.AuthMiddleware.RequireSuperAdmin())
			admin.GET("/couples", cfg.AdminHandler.ListCouples)
			admin.GET("/stats", cfg.AdminHandler.PlatformStats)
			admin.DELETE("/couples/:id", cfg.AdminHandler.DeleteCouple)
		}
	}

	return r
}
