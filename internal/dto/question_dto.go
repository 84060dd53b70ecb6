package dto

import "time"

type BlockDTO struct {
	Shape  string `json:"shape" binding:"omitempty,oneof=square triangle circle rectangle diamond"`
	Number int    `json:"number" binding:"min=0"`
	Color  string `json:"color"`
}

// AnswerDTO is an answer as returned to admins. Count mirrors the first
// block's number for counting answers.
type AnswerDTO struct {
	ID        string     `json:"id"`
	IsCorrect bool       `json:"is_correct"`
	Blocks    []BlockDTO `json:"blocks"`
	ImageURL  string     `json:"image_url,omitempty"`
	Count     int        `json:"count,omitempty"`
}

type QuestionDTO struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	ImageURL  string      `json:"image_url,omitempty"`
	Category  string      `json:"category"`
	Answers   []AnswerDTO `json:"answers"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

type QuestionPageDTO struct {
	Questions   []QuestionDTO `json:"questions"`
	TotalCount  int64         `json:"total_count"`
	CurrentPage int           `json:"current_page"`
	PageSize    int           `json:"page_size"`
	TotalPages  int           `json:"total_pages"`
}

// AnswerInputDTO is an answer sent by the admin UI. A non-nil Count replaces
// Blocks with the single counting block.
type AnswerInputDTO struct {
	ID        string     `json:"id"`
	IsCorrect bool       `json:"is_correct"`
	Blocks    []BlockDTO `json:"blocks" binding:"omitempty,dive"`
	ImageURL  string     `json:"image_url"`
	Count     *int       `json:"count" binding:"omitempty,min=0"`
}

type QuestionUpsertDTO struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	ImageURL string           `json:"image_url"`
	Category string           `json:"category" binding:"required,oneof=recognize_object counting shapes colors patterns"`
	Answers  []AnswerInputDTO `json:"answers" binding:"required,min=1,dive"`
}
