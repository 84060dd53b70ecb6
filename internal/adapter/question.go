// Package adapter converts between stored question/answer rows and the quiz domain.
package adapter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/tinysteps/internal/model"
	"github.com/lshigami/tinysteps/internal/quiz"
	"gorm.io/datatypes"
)

const (
	AnswerTypeSingleChoice = "single_choice"
	AnswerTypeNumberEntry  = "number_entry"
)

// ToQuestion maps a row (answers preloaded or not) into the domain question.
func ToQuestion(row model.Question) (quiz.Question, error) {
	q := quiz.Question{
		ID:        row.ID,
		Title:     row.Title,
		Category:  quiz.Category(row.Category),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.ImageURL != nil {
		q.ImageURL = *row.ImageURL
	}

	q.Answers = make([]quiz.Answer, 0, len(row.Answers))
	for _, a := range row.Answers {
		content, err := quiz.DecodeContent(q.Category, a.Content)
		if err != nil {
			return quiz.Question{}, fmt.Errorf("answer %s of question %s: %w", a.ID, row.ID, err)
		}
		q.Answers = append(q.Answers, quiz.AnswerFromContent(a.ID, a.IsCorrect, content))
	}
	return q, nil
}

func ToQuestions(rows []model.Question) ([]quiz.Question, error) {
	out := make([]quiz.Question, 0, len(rows))
	for _, row := range rows {
		q, err := ToQuestion(row)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// ToRows builds the question row and its answer rows. Answer rows always get
// fresh ids since updates replace the whole answer set.
func ToRows(q quiz.Question) (model.Question, error) {
	row := model.Question{
		ID:       q.ID,
		Title:    q.Title,
		Category: string(q.Category),
	}
	if q.ImageURL != "" {
		img := q.ImageURL
		row.ImageURL = &img
	}

	answerType := AnswerTypeSingleChoice
	if q.Category == quiz.CategoryCounting {
		answerType = AnswerTypeNumberEntry
	}

	row.Answers = make([]model.Answer, 0, len(q.Answers))
	for i, a := range q.Answers {
		raw, err := quiz.EncodeContent(q.Category, a)
		if err != nil {
			return model.Question{}, fmt.Errorf("encode answer %d: %w", i+1, err)
		}
		row.Answers = append(row.Answers, model.Answer{
			ID:         uuid.NewString(),
			QuestionID: q.ID,
			Title:      fmt.Sprintf("Answer %d", i+1),
			Content:    datatypes.JSON(raw),
			Type:       answerType,
			IsCorrect:  a.IsCorrect,
			Position:   i,
		})
	}
	return row, nil
}
