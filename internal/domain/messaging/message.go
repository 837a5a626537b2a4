package messaging

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one entry in the guestbook-style message wall. Guests author
// messages; the couple moderates them.
type Message struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	GuestID   *uuid.UUID     `gorm:"type:uuid;column:guest_id;index" json:"guest_id,omitempty"`
	Author    string         `gorm:"column:author" json:"author,omitempty"`
	Body      string         `gorm:"not null;column:body" json:"body"`
	Approved  bool           `gorm:"not null;default:false;index;column:approved" json:"approved"`
	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Message) TableName() string { return "message" }
