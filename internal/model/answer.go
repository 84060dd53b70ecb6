package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Answer struct {
	ID         string         `gorm:"primaryKey;size:64" json:"id"`
	QuestionID string         `gorm:"not null;index;size:64" json:"question_id"`
	Title      string         `json:"title"`
	Content    datatypes.JSON `json:"content"`
	Type       string         `json:"type"` // "single_choice", "number_entry"
	IsCorrect  bool           `gorm:"not null" json:"is_correct"`
	Position   int            `gorm:"not null" json:"position"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (Answer) TableName() string { return "answer" }

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
