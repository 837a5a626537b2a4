package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationKind string

const (
	NotificationRSVP         NotificationKind = "rsvp"
	NotificationContribution NotificationKind = "contribution"
	NotificationCheckIn      NotificationKind = "checkin"
	NotificationMessage      NotificationKind = "message"
	NotificationSystem       NotificationKind = "system"
)

// Notification is an in-app notification addressed to a couple.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"couple_id"`
	Kind      NotificationKind `gorm:"type:varchar(32);not null;index;column:kind" json:"kind"`
	Title     string           `gorm:"not null;column:title" json:"title"`
	Body      string           `gorm:"column:body" json:"body,omitempty"`
	Data      datatypes.JSON   `gorm:"type:jsonb;column:data" json:"data,omitempty"`
	ReadAt    *time.Time       `gorm:"column:read_at;index" json:"read_at,omitempty"`
	CreatedAt time.Time        `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (Notification) TableName() string { return "notification" }
