package app

import (
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type Repos struct {
	Couple       repos.CoupleRepo
	Organizer    repos.OrganizerRepo
	SuperAdmin   repos.SuperAdminRepo
	AuthToken    repos.AuthTokenRepo
	Guest        repos.GuestRepo
	Gift         repos.GiftRepo
	Pot          repos.PotRepo
	Contribution repos.ContributionRepo
	Quiz         repos.QuizRepo
	QuizResult   repos.QuizResultRepo
	Poll         repos.PollRepo
	PollResponse repos.PollResponseRepo
	Programme    repos.ProgrammeRepo
	Notification repos.NotificationRepo
	ActivityLog  repos.ActivityLogRepo
	Gallery      repos.GalleryRepo
	Media        repos.MediaRepo
	Message      repos.MessageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Couple:       repos.NewCoupleRepo(db, log),
		Organizer:    repos.NewOrganizerRepo(db, log),
		SuperAdmin:   repos.NewSuperAdminRepo(db, log),
		AuthToken:    repos.NewAuthTokenRepo(db, log),
		Guest:        repos.NewGuestRepo(db, log),
		Gift:         repos.NewGiftRepo(db, log),
		Pot:          repos.NewPotRepo(db, log),
		Contribution: repos.NewContributionRepo(db, log),
		Quiz:         repos.NewQuizRepo(db, log),
		QuizResult:   repos.NewQuizResultRepo(db, log),
		Poll:         repos.NewPollRepo(db, log),
		PollResponse: repos.NewPollResponseRepo(db, log),
		Programme:    repos.NewProgrammeRepo(db, log),
		Notification: repos.NewNotificationRepo(db, log),
		ActivityLog:  repos.NewActivityLogRepo(db, log),
		Gallery:      repos.NewGalleryRepo(db, log),
		Media:        repos.NewMediaRepo(db, log),
		Message:      repos.NewMessageRepo(db, log),
	}
}
