package engagement

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Poll is a couple-scoped multiple-choice question. Options is a JSON array of
// option labels; responses reference options by index.
type Poll struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	Question  string         `gorm:"not null;column:question" json:"question"`
	Options   datatypes.JSON `gorm:"type:jsonb;not null;column:options" json:"options"`
	Active    bool           `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Poll) TableName() string { return "poll" }

// PollResponse is one guest's vote. The composite unique index enforces one
// vote per guest per poll; a re-vote updates the existing row.
type PollResponse struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PollID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_poll_response_poll_guest" json:"poll_id"`
	GuestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_poll_response_poll_guest" json:"guest_id"`
	OptionIndex int       `gorm:"not null;column:option_index" json:"option_index"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PollResponse) TableName() string { return "poll_response" }
