package quiz

import (
	"errors"
	"strings"
)

// ValidationError is a rule violation shown next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrTitleRequired            = &ValidationError{Field: "title", Message: "Please enter a question title"}
	ErrImageRequired            = &ValidationError{Field: "image_url", Message: "Please provide a question image"}
	ErrNoAnswers                = &ValidationError{Field: "answers", Message: "Please add at least one answer"}
	ErrNoCorrectAnswer          = &ValidationError{Field: "answers", Message: "Please mark one answer as correct"}
	ErrMultipleCorrect          = &ValidationError{Field: "answers", Message: "Only one answer can be marked as correct"}
	ErrCountingAnswerIncomplete = &ValidationError{Field: "answers", Message: "Every answer needs an image and a count greater than zero"}
)

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateForm checks the rules a single question form enforces on submit.
func ValidateForm(q Question) error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrTitleRequired
	}
	return validateAnswers(q)
}

// ValidateForSave adds the image requirement applied before a batch write.
func ValidateForSave(q Question) error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(q.ImageURL) == "" {
		return ErrImageRequired
	}
	return validateAnswers(q)
}

func validateAnswers(q Question) error {
	if !q.Category.IsChoice() {
		if len(q.Answers) == 0 {
			return ErrNoAnswers
		}
		for _, a := range q.Answers {
			if strings.TrimSpace(a.ImageURL) == "" || a.CorrectNumber() <= 0 {
				return ErrCountingAnswerIncomplete
			}
		}
		return nil
	}

	correct := 0
	for _, a := range q.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	switch {
	case correct == 0:
		return ErrNoCorrectAnswer
	case correct > 1:
		return ErrMultipleCorrect
	}
	return nil
}
