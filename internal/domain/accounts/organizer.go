package accounts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizerRole string

const (
	RoleScanner      OrganizerRole = "scanner"
	RolePhotographer OrganizerRole = "photographer"
	RoleOrganizer    OrganizerRole = "organizer"
)

// Organizer is a staff principal owned by a Couple. Its permission set is
// derived from the role, never stored.
type Organizer struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID  uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_organizer_couple_email" json:"couple_id"`
	Email     string         `gorm:"not null;uniqueIndex:idx_organizer_couple_email;column:email" json:"email"`
	Password  string         `gorm:"not null;column:password" json:"-"`
	Name      string         `gorm:"not null;column:name" json:"name"`
	Role      OrganizerRole  `gorm:"type:varchar(24);not null;column:role" json:"role"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Organizer) TableName() string { return "organizer" }

// Permissions derives the role-scoped subset: scanners check guests in and
// read attendance stats, photographers manage media, organizers get both
// plus guest and programme management.
func (o *Organizer) Permissions() []Permission {
	switch o.Role {
	case RoleScanner:
		return []Permission{PermGuestCheckIn, PermStatsRead}
	case RolePhotographer:
		return []Permission{PermMediaUpload}
	case RoleOrganizer:
		return []Permission{
			PermGuestManage,
			PermGuestCheckIn,
			PermMediaUpload,
			PermProgrammeManage,
			PermStatsRead,
		}
	default:
		return nil
	}
}
