package engagement

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is a couple-scoped trivia game. Questions holds the question list as a
// JSON document; its shape is owned by the frontend and passed through opaque.
type Quiz struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"couple_id"`
	Title     string         `gorm:"not null;column:title" json:"title"`
	Questions datatypes.JSON `gorm:"type:jsonb;column:questions" json:"questions,omitempty"`
	Active    bool           `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Quiz) TableName() string { return "quiz" }

// QuizResult records one guest's single attempt at a quiz. The composite
// unique index enforces one result per guest per quiz.
type QuizResult struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_quiz_result_quiz_guest" json:"quiz_id"`
	GuestID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_quiz_result_quiz_guest" json:"guest_id"`
	Score      int            `gorm:"not null;default:0;column:score" json:"score"`
	MaxScore   int            `gorm:"not null;default:0;column:max_score" json:"max_score"`
	Answers    datatypes.JSON `gorm:"type:jsonb;column:answers" json:"answers,omitempty"`
	FinishedAt time.Time      `gorm:"not null;default:now();column:finished_at" json:"finished_at"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (QuizResult) TableName() string { return "quiz_result" }
