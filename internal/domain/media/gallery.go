package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryVisibility string

const (
	GalleryPrivate GalleryVisibility = "private"
	GalleryGuests  GalleryVisibility = "guests"
	GalleryPublic  GalleryVisibility = "public"
)

type Gallery struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"couple_id"`
	Title      string            `gorm:"not null;column:title" json:"title"`
	Visibility GalleryVisibility `gorm:"type:varchar(16);not null;default:'guests';column:visibility" json:"visibility"`
	CreatedAt  time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"deleted_at,omitempty"`
}

func (Gallery) TableName() string { return "gallery" }

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is one stored object in a gallery. ObjectPath is the bucket key; URL
// generation happens at read time against the storage client.
type Media struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GalleryID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"gallery_id"`
	CoupleID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	UploaderKind string         `gorm:"type:varchar(16);not null;column:uploader_kind" json:"uploader_kind"`
	UploaderID   *uuid.UUID     `gorm:"type:uuid;column:uploader_id" json:"uploader_id,omitempty"`
	Kind         MediaKind      `gorm:"type:varchar(16);not null;default:'image';column:kind" json:"kind"`
	ObjectPath   string         `gorm:"not null;column:object_path" json:"object_path"`
	ContentType  string         `gorm:"column:content_type" json:"content_type,omitempty"`
	SizeBytes    int64          `gorm:"not null;default:0;column:size_bytes" json:"size_bytes"`
	Caption      string         `gorm:"column:caption" json:"caption,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Media) TableName() string { return "media" }
