package quiz

import (
	"errors"

	"github.com/lshigami/tinysteps/internal/audio"
)

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrUnknownAnswer   = errors.New("answer does not belong to this question")
)

type Selection struct {
	AnswerID string
	Correct  bool
	Cue      audio.Cue
}

// RecognitionRound is one pick-the-right-card question. It moves from
// unanswered to answered once and never back.
type RecognitionRound struct {
	question Question
	selected *Selection
}

func NewRecognitionRound(q Question) *RecognitionRound {
	return &RecognitionRound{question: q.Clone()}
}

func (r *RecognitionRound) Question() Question { return r.question }

func (r *RecognitionRound) Select(answerID string) (Selection, error) {
	if r.selected != nil {
		return Selection{}, ErrAlreadyAnswered
	}
	a, ok := r.question.Answer(answerID)
	if !ok {
		return Selection{}, ErrUnknownAnswer
	}
	sel := Selection{AnswerID: a.ID, Correct: a.IsCorrect, Cue: audio.CueIncorrect}
	if a.IsCorrect {
		sel.Cue = audio.CueCorrect
	}
	r.selected = &sel
	return sel, nil
}

// Selected returns the recorded selection, if any.
func (r *RecognitionRound) Selected() (Selection, bool) {
	if r.selected == nil {
		return Selection{}, false
	}
	return *r.selected, true
}
