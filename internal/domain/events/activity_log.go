package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog is an append-only audit trail row. Rows are never updated or
// deleted once written.
type ActivityLog struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	PrincipalKind string         `gorm:"type:varchar(16);not null;column:principal_kind" json:"principal_kind"`
	PrincipalID   *uuid.UUID     `gorm:"type:uuid;column:principal_id" json:"principal_id,omitempty"`
	Action        string         `gorm:"not null;index;column:action" json:"action"`
	TargetType    string         `gorm:"column:target_type" json:"target_type,omitempty"`
	TargetID      *uuid.UUID     `gorm:"type:uuid;column:target_id" json:"target_id,omitempty"`
	Detail        datatypes.JSON `gorm:"type:jsonb;column:detail" json:"detail,omitempty"`
	ClientIP      string         `gorm:"type:varchar(64);column:client_ip" json:"client_ip,omitempty"`
	UserAgent     string         `gorm:"column:user_agent" json:"user_agent,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now();index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_log" }
