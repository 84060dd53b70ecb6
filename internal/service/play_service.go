package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/tinysteps/config"
	"github.com/lshigami/tinysteps/internal/audio"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/rs/zerolog/log"
)

var ErrWrongRoundKind = errors.New("operation does not apply to this question type")

type RoundKind string

const (
	RoundRecognition RoundKind = "recognition"
	RoundCounting    RoundKind = "counting"
)

// PlayView is the learner-facing state of one play session.
type PlayView struct {
	SessionID string
	Kind      RoundKind
	Question  quiz.Question
	Selection *quiz.Selection
	Options   map[string][]int
	Values    map[string]string
	Result    *quiz.CountingResult
}

type PlayService interface {
	Start(ctx context.Context, questionID string) (PlayView, error)
	Get(sessionID string) (PlayView, error)
	Select(sessionID, answerID string) (quiz.Selection, error)
	SetValues(sessionID string, values map[string]string) (PlayView, error)
	Check(sessionID string) (quiz.CountingResult, error)
	Retry(sessionID string) (audio.Cue, error)
}

type playSession struct {
	mu          sync.Mutex
	id          string
	recognition *quiz.RecognitionRound
	counting    *quiz.CountingRound
}

type playService struct {
	gateway  QuestionGateway
	sessions *workspaces[*playSession]
}

func NewPlayService(gateway QuestionGateway, cfg *config.Config) PlayService {
	return &playService{
		gateway:  gateway,
		sessions: newWorkspaces[*playSession]("play", cfg.Authoring),
	}
}

func (s *playService) Start(ctx context.Context, questionID string) (PlayView, error) {
	res := s.gateway.FetchByIDWithAnswers(ctx, questionID)
	if err := res.Err(); err != nil {
		return PlayView{}, err
	}

	sess := &playSession{id: uuid.NewString()}
	if res.Data.Category == quiz.CategoryCounting {
		sess.counting = quiz.NewCountingRound(res.Data)
	} else {
		sess.recognition = quiz.NewRecognitionRound(res.Data)
	}
	view := sess.view()
	s.sessions.add(sess.id, sess)

	log.Info().Str("sessionID", sess.id).Str("questionID", questionID).Msg("Play session started")
	return view, nil
}

func (s *playService) Get(sessionID string) (PlayView, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return PlayView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

func (s *playService) Select(sessionID, answerID string) (quiz.Selection, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return quiz.Selection{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.recognition == nil {
		return quiz.Selection{}, ErrWrongRoundKind
	}
	return sess.recognition.Select(answerID)
}

// SetValues records counting entries; an empty string clears an entry.
func (s *playService) SetValues(sessionID string, values map[string]string) (PlayView, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return PlayView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.counting == nil {
		return PlayView{}, ErrWrongRoundKind
	}
	for answerID, v := range values {
		if err := sess.counting.SetValue(answerID, v); err != nil {
			return sess.view(), err
		}
	}
	return sess.view(), nil
}

func (s *playService) Check(sessionID string) (quiz.CountingResult, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return quiz.CountingResult{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.counting == nil {
		return quiz.CountingResult{}, ErrWrongRoundKind
	}
	return sess.counting.Check()
}

func (s *playService) Retry(sessionID string) (audio.Cue, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return "", err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.counting == nil {
		return "", ErrWrongRoundKind
	}
	return sess.counting.TryAgain(), nil
}

func (p *playSession) view() PlayView {
	v := PlayView{SessionID: p.id}
	if p.recognition != nil {
		v.Kind = RoundRecognition
		v.Question = p.recognition.Question()
		if sel, ok := p.recognition.Selected(); ok {
			v.Selection = &sel
		}
		return v
	}

	v.Kind = RoundCounting
	v.Question = p.counting.Question()
	v.Options = make(map[string][]int, len(v.Question.Answers))
	v.Values = make(map[string]string, len(v.Question.Answers))
	for _, a := range v.Question.Answers {
		v.Options[a.ID] = p.counting.Options(a.ID)
		if val := p.counting.Value(a.ID); val != "" {
			v.Values[a.ID] = val
		}
	}
	if res, ok := p.counting.Checked(); ok {
		v.Result = &res
	}
	return v
}
