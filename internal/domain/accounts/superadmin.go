package accounts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuperAdmin is the platform-level principal; it belongs to no tenant.
type SuperAdmin struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string         `gorm:"not null;column:password" json:"-"`
	Name      string         `gorm:"not null;column:name" json:"name"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SuperAdmin) TableName() string { return "super_admin" }
