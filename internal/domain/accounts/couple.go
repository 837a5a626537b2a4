package accounts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Couple is the tenant: one row per wedding account. Every other tenant-owned
// entity carries its id as couple_id.
type Couple struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password    string         `gorm:"not null;column:password" json:"-"`
	PartnerOne  string         `gorm:"not null;column:partner_one" json:"partner_one"`
	PartnerTwo  string         `gorm:"not null;column:partner_two" json:"partner_two"`
	Slug        string         `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	WeddingDate *time.Time     `gorm:"column:wedding_date" json:"wedding_date,omitempty"`
	Settings    datatypes.JSON `gorm:"column:settings;type:jsonb" json:"settings"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Couple) TableName() string { return "couple" }

func (c *Couple) Permissions() []Permission { return CouplePermissions() }
