package domain

import (
	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
	"github.com/evermore-apps/evermore-backend/internal/domain/engagement"
	"github.com/evermore-apps/evermore-backend/internal/domain/events"
	"github.com/evermore-apps/evermore-backend/internal/domain/guests"
	"github.com/evermore-apps/evermore-backend/internal/domain/media"
	"github.com/evermore-apps/evermore-backend/internal/domain/messaging"
	"github.com/evermore-apps/evermore-backend/internal/domain/registry"
)

type Couple = accounts.Couple
type Organizer = accounts.Organizer
type SuperAdmin = accounts.SuperAdmin
type AuthToken = accounts.AuthToken
type PrincipalKind = accounts.PrincipalKind
type Permission = accounts.Permission
type OrganizerRole = accounts.OrganizerRole

const (
	PrincipalCouple     = accounts.PrincipalCouple
	PrincipalOrganizer  = accounts.PrincipalOrganizer
	PrincipalSuperAdmin = accounts.PrincipalSuperAdmin

	RoleScanner      = accounts.RoleScanner
	RolePhotographer = accounts.RolePhotographer
	RoleOrganizer    = accounts.RoleOrganizer
)

type Guest = guests.Guest
type RSVPStatus = guests.RSVPStatus

const (
	RSVPPending   = guests.RSVPPending
	RSVPConfirmed = guests.RSVPConfirmed
	RSVPDeclined  = guests.RSVPDeclined
)

type Gift = registry.Gift
type Pot = registry.Pot
type Contribution = registry.Contribution
type ContributionStatus = registry.ContributionStatus
type ValidationError = registry.ValidationError

const (
	ContributionPending   = registry.ContributionPending
	ContributionConfirmed = registry.ContributionConfirmed
	ContributionCancelled = registry.ContributionCancelled
	ContributionDelivered = registry.ContributionDelivered
)

type Quiz = engagement.Quiz
type QuizResult = engagement.QuizResult
type Poll = engagement.Poll
type PollResponse = engagement.PollResponse

type ProgrammeItem = events.ProgrammeItem
type Notification = events.Notification
type NotificationKind = events.NotificationKind
type ActivityLog = events.ActivityLog

const (
	NotificationRSVP         = events.NotificationRSVP
	NotificationContribution = events.NotificationContribution
	NotificationCheckIn      = events.NotificationCheckIn
	NotificationMessage      = events.NotificationMessage
	NotificationSystem       = events.NotificationSystem
)

type Gallery = media.Gallery
type GalleryVisibility = media.GalleryVisibility
type Media = media.Media
type MediaKind = media.MediaKind

const (
	GalleryPrivate = media.GalleryPrivate
	GalleryGuests  = media.GalleryGuests
	GalleryPublic  = media.GalleryPublic

	MediaImage = media.MediaImage
	MediaVideo = media.MediaVideo
)

type Message = messaging.Message
