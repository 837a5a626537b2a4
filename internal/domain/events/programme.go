package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgrammeItem is one entry in the wedding-day schedule, ordered by Position
// within a couple.
type ProgrammeItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	Title       string         `gorm:"not null;column:title" json:"title"`
	Description string         `gorm:"column:description" json:"description,omitempty"`
	Location    string         `gorm:"column:location" json:"location,omitempty"`
	StartsAt    *time.Time     `gorm:"column:starts_at" json:"starts_at,omitempty"`
	EndsAt      *time.Time     `gorm:"column:ends_at" json:"ends_at,omitempty"`
	Position    int            `gorm:"not null;default:0;index;column:position" json:"position"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProgrammeItem) TableName() string { return "programme_item" }
