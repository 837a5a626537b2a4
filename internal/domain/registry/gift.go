package registry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gift struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	Name        string         `gorm:"not null;column:name" json:"name"`
	Description string         `gorm:"column:description" json:"description,omitempty"`
	ImageURL    string         `gorm:"column:image_url" json:"image_url,omitempty"`
	Price       string         `gorm:"type:decimal(12,2);column:price" json:"price,omitempty"`
	DesiredQty  int            `gorm:"not null;default:1;column:desired_qty" json:"desired_qty"`
	ReceivedQty int            `gorm:"not null;default:0;column:received_qty" json:"received_qty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Gift) TableName() string { return "gift" }

// Complete reports whether the registry item is fully funded in kind.
func (g *Gift) Complete() bool { return g.ReceivedQty >= g.DesiredQty }
