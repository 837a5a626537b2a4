package guests

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

type Guest struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	Name             string         `gorm:"not null;column:name" json:"name"`
	Email            string         `gorm:"column:email;index" json:"email,omitempty"`
	Phone            string         `gorm:"column:phone" json:"phone,omitempty"`
	RSVPStatus       RSVPStatus     `gorm:"type:varchar(16);not null;default:'pending';index;column:rsvp_status" json:"rsvp_status"`
	RespondedAt      *time.Time     `gorm:"column:responded_at" json:"responded_at,omitempty"`
	PlusOnes         int            `gorm:"not null;default:0;column:plus_ones" json:"plus_ones"`
	SeatingTable     string         `gorm:"column:seating_table" json:"seating_table,omitempty"`
	DietaryNotes     string         `gorm:"column:dietary_notes" json:"dietary_notes,omitempty"`
	QRToken          string         `gorm:"uniqueIndex;not null;column:qr_token" json:"qr_token"`
	PresentCeremony  bool           `gorm:"not null;default:false;column:present_ceremony" json:"present_ceremony"`
	PresentReception bool           `gorm:"not null;default:false;column:present_reception" json:"present_reception"`
	CheckedInAt      *time.Time     `gorm:"column:checked_in_at;index" json:"checked_in_at,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Guest) TableName() string { return "guest" }
