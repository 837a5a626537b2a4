package repos

import (
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos/accounts"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/engagement"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/events"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/guests"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/media"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/messaging"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/registry"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type CoupleRepo = accounts.CoupleRepo
type OrganizerRepo = accounts.OrganizerRepo
type SuperAdminRepo = accounts.SuperAdminRepo
type AuthTokenRepo = accounts.AuthTokenRepo

type GuestRepo = guests.GuestRepo
type HourCount = guests.HourCount

type GiftRepo = registry.GiftRepo
type PotRepo = registry.PotRepo
type ContributionRepo = registry.ContributionRepo

type QuizRepo = engagement.QuizRepo
type QuizResultRepo = engagement.QuizResultRepo
type PollRepo = engagement.PollRepo
type PollResponseRepo = engagement.PollResponseRepo

type ProgrammeRepo = events.ProgrammeRepo
type NotificationRepo = events.NotificationRepo
type ActivityLogRepo = events.ActivityLogRepo

type GalleryRepo = media.GalleryRepo
type MediaRepo = media.MediaRepo

type MessageRepo = messaging.MessageRepo

func NewCoupleRepo(db *gorm.DB, baseLog *logger.Logger) CoupleRepo {
	return accounts.NewCoupleRepo(db, baseLog)
}
func NewOrganizerRepo(db *gorm.DB, baseLog *logger.Logger) OrganizerRepo {
	return accounts.NewOrganizerRepo(db, baseLog)
}
func NewSuperAdminRepo(db *gorm.DB, baseLog *logger.Logger) SuperAdminRepo {
	return accounts.NewSuperAdminRepo(db, baseLog)
}
func NewAuthTokenRepo(db *gorm.DB, baseLog *logger.Logger) AuthTokenRepo {
	return accounts.NewAuthTokenRepo(db, baseLog)
}

func NewGuestRepo(db *gorm.DB, baseLog *logger.Logger) GuestRepo {
	return guests.NewGuestRepo(db, baseLog)
}

func NewGiftRepo(db *gorm.DB, baseLog *logger.Logger) GiftRepo {
	return registry.NewGiftRepo(db, baseLog)
}
func NewPotRepo(db *gorm.DB, baseLog *logger.Logger) PotRepo { return registry.NewPotRepo(db, baseLog) }
func NewContributionRepo(db *gorm.DB, baseLog *logger.Logger) ContributionRepo {
	return registry.NewContributionRepo(db, baseLog)
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return engagement.NewQuizRepo(db, baseLog)
}
func NewQuizResultRepo(db *gorm.DB, baseLog *logger.Logger) QuizResultRepo {
	return engagement.NewQuizResultRepo(db, baseLog)
}
func NewPollRepo(db *gorm.DB, baseLog *logger.Logger) PollRepo {
	return engagement.NewPollRepo(db, baseLog)
}
func NewPollResponseRepo(db *gorm.DB, baseLog *logger.Logger) PollResponseRepo {
	return engagement.NewPollResponseRepo(db, baseLog)
}

func NewProgrammeRepo(db *gorm.DB, baseLog *logger.Logger) ProgrammeRepo {
	return events.NewProgrammeRepo(db, baseLog)
}
func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	return events.NewNotificationRepo(db, baseLog)
}
func NewActivityLogRepo(db *gorm.DB, baseLog *logger.Logger) ActivityLogRepo {
	return events.NewActivityLogRepo(db, baseLog)
}

func NewGalleryRepo(db *gorm.DB, baseLog *logger.Logger) GalleryRepo {
	return media.NewGalleryRepo(db, baseLog)
}
func NewMediaRepo(db *gorm.DB, baseLog *logger.Logger) MediaRepo {
	return media.NewMediaRepo(db, baseLog)
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
	return messaging.NewMessageRepo(db, baseLog)
}
