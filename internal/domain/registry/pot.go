package registry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pot is a cash pot. Amounts are decimal-as-string columns; the stored
// CurrentAmount is a display cache and is never trusted without recomputation
// from the pot's contributions.
type Pot struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	Title         string         `gorm:"not null;column:title" json:"title"`
	Description   string         `gorm:"column:description" json:"description,omitempty"`
	TargetAmount  *string        `gorm:"type:decimal(12,2);column:target_amount" json:"target_amount,omitempty"`
	CurrentAmount string         `gorm:"type:decimal(12,2);not null;default:'0.00';column:current_amount" json:"current_amount"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Pot) TableName() string { return "pot" }
