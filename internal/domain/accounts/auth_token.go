package accounts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthToken persists one refresh-token session for any principal kind.
type AuthToken struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PrincipalKind PrincipalKind  `gorm:"type:varchar(16);not null;index:idx_auth_token_principal" json:"principal_kind"`
	PrincipalID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_auth_token_principal" json:"principal_id"`
	AccessToken   string         `gorm:"not null;column:access_token" json:"-"`
	RefreshToken  string         `gorm:"uniqueIndex;not null;column:refresh_token" json:"-"`
	ExpiresAt     time.Time      `gorm:"not null;index" json:"expires_at"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AuthToken) TableName() string { return "auth_token" }
