package quiz

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lshigami/tinysteps/internal/audio"
)

var (
	ErrNotANumber        = errors.New("value must contain digits only")
	ErrIncompleteAnswers = errors.New("please answer every item before checking")
)

type CountingResult struct {
	Results map[string]bool
	Correct bool
	Cues    []audio.Cue
}

// CountingRound holds the child's typed or picked counts for one counting question.
type CountingRound struct {
	question Question
	options  map[string][]int
	values   map[string]string
	results  map[string]bool
	checked  bool
	correct  bool
}

func NewCountingRound(q Question) *CountingRound {
	r := &CountingRound{
		question: q.Clone(),
		options:  make(map[string][]int, len(q.Answers)),
	}
	for _, a := range r.question.Answers {
		r.options[a.ID] = NumberOptions(a.CorrectNumber())
	}
	r.reset()
	return r
}

func (r *CountingRound) reset() {
	r.values = make(map[string]string, len(r.question.Answers))
	r.results = make(map[string]bool, len(r.question.Answers))
	r.checked = false
	r.correct = false
}

func (r *CountingRound) Question() Question { return r.question }

// Options returns the three number buttons offered for an answer.
func (r *CountingRound) Options(answerID string) []int {
	return append([]int(nil), r.options[answerID]...)
}

func (r *CountingRound) Value(answerID string) string { return r.values[answerID] }

// SetValue records the entry for one answer; an empty string clears it.
func (r *CountingRound) SetValue(answerID, value string) error {
	if _, ok := r.question.Answer(answerID); !ok {
		return ErrUnknownAnswer
	}
	value = strings.TrimSpace(value)
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return ErrNotANumber
		}
	}
	if value == "" {
		delete(r.values, answerID)
		return nil
	}
	r.values[answerID] = value
	return nil
}

// Check grades every answer independently; the round is correct only if all are.
func (r *CountingRound) Check() (CountingResult, error) {
	if len(r.question.Answers) == 0 {
		return CountingResult{}, ErrIncompleteAnswers
	}
	for _, a := range r.question.Answers {
		if r.values[a.ID] == "" {
			return CountingResult{}, ErrIncompleteAnswers
		}
	}

	results := make(map[string]bool, len(r.question.Answers))
	all := true
	for _, a := range r.question.Answers {
		n, err := strconv.Atoi(r.values[a.ID])
		ok := err == nil && n == a.CorrectNumber()
		results[a.ID] = ok
		all = all && ok
	}
	r.results = results
	r.checked = true
	r.correct = all

	cue := audio.CueIncorrect
	if all {
		cue = audio.CueCorrect
	}
	return CountingResult{Results: copyResults(results), Correct: all, Cues: []audio.Cue{audio.CueClick, cue}}, nil
}

// Checked reports the last check outcome, if a check happened since the last reset.
func (r *CountingRound) Checked() (CountingResult, bool) {
	if !r.checked {
		return CountingResult{}, false
	}
	return CountingResult{Results: copyResults(r.results), Correct: r.correct}, true
}

// TryAgain clears entries and feedback. Number options stay as they were.
func (r *CountingRound) TryAgain() audio.Cue {
	r.reset()
	return audio.CueClick
}

func copyResults(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
