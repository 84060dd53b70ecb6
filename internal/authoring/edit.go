package authoring

import "github.com/lshigami/tinysteps/internal/quiz"

type AnswerImage struct {
	AnswerID string
	URL      string
}

type AnswerCount struct {
	AnswerID string
	Count    int
}

type CorrectSelection struct {
	AnswerID string
	Checked  bool
}

// Edit is a batch of field changes applied to a form in a fixed order:
// header fields, answer list replacement, then per-answer changes.
// Nil or zero fields leave the form untouched.
type Edit struct {
	Title           *string
	ImageURL        *string
	Answers         []quiz.Answer
	AddAnswer       bool
	RemoveAnswerID  string
	AnswerImage     *AnswerImage
	AnswerCount     *AnswerCount
	ToggleCorrectID string
	SetCorrect      *CorrectSelection
}

func (e Edit) Apply(f *QuestionForm) error {
	if e.Title != nil {
		f.SetTitle(*e.Title)
	}
	if e.ImageURL != nil {
		f.SetImageURL(*e.ImageURL)
	}
	if e.Answers != nil {
		f.ReplaceAnswers(e.Answers)
	}
	if e.AddAnswer {
		f.AddAnswer()
	}
	if e.RemoveAnswerID != "" {
		if err := f.RemoveAnswer(e.RemoveAnswerID); err != nil {
			return err
		}
	}
	if e.AnswerImage != nil {
		if err := f.SetAnswerImage(e.AnswerImage.AnswerID, e.AnswerImage.URL); err != nil {
			return err
		}
	}
	if e.AnswerCount != nil {
		if err := f.SetAnswerCount(e.AnswerCount.AnswerID, e.AnswerCount.Count); err != nil {
			return err
		}
	}
	if e.ToggleCorrectID != "" {
		if err := f.ToggleCorrect(e.ToggleCorrectID); err != nil {
			return err
		}
	}
	if e.SetCorrect != nil {
		return f.SetCorrect(e.SetCorrect.AnswerID, e.SetCorrect.Checked)
	}
	return nil
}
