// Package authoring keeps the state of question forms while an admin edits
// them: single create/edit forms and batches of sub-forms with a
// draft/saved lifecycle.
package authoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/tinysteps/internal/quiz"
)

var (
	ErrLastAnswer    = errors.New("a question needs at least one answer")
	ErrAnswerMissing = errors.New("answer not found in form")
	ErrNegativeCount = errors.New("count cannot be negative")
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

const DefaultBannerDuration = 3 * time.Second

var defaultBlocks = []quiz.Block{
	{Shape: quiz.ShapeSquare, Number: 1, Color: "#007bff"},
	{Shape: quiz.ShapeTriangle, Number: 1, Color: "#28a745"},
	{Shape: quiz.ShapeCircle, Number: 1, Color: "#dc3545"},
}

// QuestionForm is the editable state behind one question form. It is not
// safe for concurrent use; callers serialise access.
type QuestionForm struct {
	mode         Mode
	question     quiz.Question
	nextAnswer   int
	successUntil time.Time

	now            func() time.Time
	newID          func() string
	bannerDuration time.Duration
}

type FormOption func(*QuestionForm)

func WithClock(now func() time.Time) FormOption {
	return func(f *QuestionForm) { f.now = now }
}

func WithIDGenerator(newID func() string) FormOption {
	return func(f *QuestionForm) { f.newID = newID }
}

func WithBannerDuration(d time.Duration) FormOption {
	return func(f *QuestionForm) {
		if d > 0 {
			f.bannerDuration = d
		}
	}
}

// NewCreateForm starts a blank form for a new question of the given category.
func NewCreateForm(category quiz.Category, opts ...FormOption) *QuestionForm {
	f := newForm(ModeCreate, opts)
	f.resetBlank(category)
	return f
}

// NewEditForm loads an existing question. Submitting it never resets the form.
func NewEditForm(q quiz.Question, opts ...FormOption) *QuestionForm {
	f := newForm(ModeEdit, opts)
	f.question = q.Clone()
	f.nextAnswer = len(q.Answers) + 1
	return f
}

func newForm(mode Mode, opts []FormOption) *QuestionForm {
	f := &QuestionForm{
		mode:           mode,
		now:            time.Now,
		newID:          uuid.NewString,
		bannerDuration: DefaultBannerDuration,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *QuestionForm) resetBlank(category quiz.Category) {
	f.question = quiz.Question{ID: f.newID(), Category: category}
	f.nextAnswer = 1
	for i := 0; i < 3; i++ {
		f.question.Answers = append(f.question.Answers, f.blankAnswer())
	}
}

func (f *QuestionForm) blankAnswer() quiz.Answer {
	a := quiz.Answer{ID: fmt.Sprintf("answer%d", f.nextAnswer)}
	f.nextAnswer++
	if f.question.Category == quiz.CategoryCounting {
		a.IsCorrect = true
		return a
	}
	a.Blocks = append([]quiz.Block(nil), defaultBlocks...)
	return a
}

func (f *QuestionForm) Mode() Mode { return f.mode }

func (f *QuestionForm) ID() string { return f.question.ID }

func (f *QuestionForm) Title() string { return f.question.Title }

// Snapshot returns a copy of the question as currently entered.
func (f *QuestionForm) Snapshot() quiz.Question { return f.question.Clone() }

func (f *QuestionForm) SetTitle(title string) { f.question.Title = title }

func (f *QuestionForm) SetImageURL(url string) { f.question.ImageURL = url }

func (f *QuestionForm) AddAnswer() quiz.Answer {
	a := f.blankAnswer()
	f.question.Answers = append(f.question.Answers, a)
	return a
}

func (f *QuestionForm) RemoveAnswer(id string) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return ErrAnswerMissing
	}
	if len(f.question.Answers) == 1 {
		return ErrLastAnswer
	}
	f.question.Answers = append(f.question.Answers[:idx], f.question.Answers[idx+1:]...)
	return nil
}

func (f *QuestionForm) SetAnswerImage(id, url string) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return ErrAnswerMissing
	}
	f.question.Answers[idx].ImageURL = url
	return nil
}

// SetAnswerCount stores the target count of a counting answer as its single block.
func (f *QuestionForm) SetAnswerCount(id string, n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	idx := f.indexOf(id)
	if idx < 0 {
		return ErrAnswerMissing
	}
	f.question.Answers[idx].Blocks = []quiz.Block{quiz.CountingBlock(n)}
	return nil
}

func (f *QuestionForm) SetBlocks(id string, blocks []quiz.Block) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return ErrAnswerMissing
	}
	f.question.Answers[idx].Blocks = append([]quiz.Block(nil), blocks...)
	return nil
}

// ToggleCorrect flips one answer; turning it on clears every other answer.
func (f *QuestionForm) ToggleCorrect(id string) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return ErrAnswerMissing
	}
	return f.SetCorrect(id, !f.question.Answers[idx].IsCorrect)
}

// SetCorrect is the radio-button variant of ToggleCorrect.
func (f *QuestionForm) SetCorrect(id string, checked bool) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return ErrAnswerMissing
	}
	if f.question.Category.IsChoice() && checked {
		for i := range f.question.Answers {
			f.question.Answers[i].IsCorrect = false
		}
	}
	f.question.Answers[idx].IsCorrect = checked
	return nil
}

// ReplaceAnswers swaps in a full answer list. Missing ids get fresh form-local ids.
func (f *QuestionForm) ReplaceAnswers(answers []quiz.Answer) {
	out := make([]quiz.Answer, 0, len(answers))
	for _, a := range answers {
		if a.ID == "" {
			a.ID = fmt.Sprintf("answer%d", f.nextAnswer)
			f.nextAnswer++
		}
		a.Blocks = append([]quiz.Block(nil), a.Blocks...)
		out = append(out, a)
	}
	f.question.Answers = out
}

func (f *QuestionForm) Validate() error {
	return quiz.ValidateForm(f.question)
}

// Submit validates the form and hands the question to persist. In create
// mode a successful submit resets to a blank form with a new id and shows
// the success banner.
func (f *QuestionForm) Submit(persist func(quiz.Question) error) (quiz.Question, error) {
	if err := f.Validate(); err != nil {
		return quiz.Question{}, err
	}
	submitted := f.question.Clone()
	if err := persist(submitted); err != nil {
		return quiz.Question{}, err
	}
	if f.mode == ModeCreate {
		f.resetBlank(submitted.Category)
		f.successUntil = f.now().Add(f.bannerDuration)
	}
	return submitted, nil
}

func (f *QuestionForm) SuccessVisible() bool {
	return !f.successUntil.IsZero() && f.now().Before(f.successUntil)
}

func (f *QuestionForm) indexOf(id string) int {
	for i, a := range f.question.Answers {
		if a.ID == id {
			return i
		}
	}
	return -1
}
