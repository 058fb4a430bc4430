package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssignmentTypeLive = "live"

	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
	QuestionTypeShortAnswer    = "short-answer"
)

// Question is embedded in its assignment's jsonb column; questions are not
// addressable on their own.
//
// CorrectAnswer holds a different shape per question type: an option index
// for multiple-choice, the string "true" or "false" for true-false, and a
// free-form string for short-answer.
type Question struct {
	Type          string   `json:"type"`
	Text          string   `json:"text"`
	Points        int      `json:"points"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer any      `json:"correctAnswer"`
}

type Assignment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Type        string    `gorm:"size:50;not null" json:"type"`

	// Set only for live assignments.
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	IsActive bool       `gorm:"not null;default:true" json:"isActive"`
	Duration *int       `json:"duration,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`

	Questions []Question `gorm:"type:jsonb;serializer:json" json:"questions"`

	AuthorID uuid.UUID `gorm:"type:uuid;not null;index" json:"author"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Assignment) QuestionCount() int {
	return len(a.Questions)
}

func (a *Assignment) TotalPoints() int {
	total := 0
	for _, q := range a.Questions {
		total += q.Points
	}
	return total
}
