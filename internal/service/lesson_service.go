package service

import (
	"context"
	"errors"

	"github.com/lshigami/tinysteps/internal/lesson"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/rs/zerolog/log"
)

var ErrLessonNotFound = errors.New("lesson not found")

type LessonService interface {
	Catalog(ctx context.Context, search string) (lesson.Catalog, error)
	Category(ctx context.Context, category quiz.Category) (lesson.CategoryLessons, error)
	Lesson(ctx context.Context, lessonID string) (lesson.Lesson, error)
}

type lessonService struct {
	gateway QuestionGateway
}

func NewLessonService(gateway QuestionGateway) LessonService {
	return &lessonService{gateway: gateway}
}

func (s *lessonService) Catalog(ctx context.Context, search string) (lesson.Catalog, error) {
	res := s.gateway.FetchAllWithAnswers(ctx, "")
	if err := res.Err(); err != nil {
		return nil, err
	}
	catalog := lesson.BuildCatalog(res.Data).Filter(search)
	log.Debug().Int("categories", len(catalog)).Str("search", search).Msg("Lesson catalog built")
	return catalog, nil
}

// Category returns the lessons of one category; an empty category yields no lessons, not an error.
func (s *lessonService) Category(ctx context.Context, category quiz.Category) (lesson.CategoryLessons, error) {
	res := s.gateway.FetchAllWithAnswers(ctx, category)
	if err := res.Err(); err != nil {
		return lesson.CategoryLessons{}, err
	}
	if group, ok := lesson.BuildCatalog(res.Data).Category(category); ok {
		return group, nil
	}
	return lesson.CategoryLessons{Category: category, Title: category.Title()}, nil
}

func (s *lessonService) Lesson(ctx context.Context, lessonID string) (lesson.Lesson, error) {
	res := s.gateway.FetchByIDWithAnswers(ctx, lessonID)
	if res.Kind == KindNotFound {
		return lesson.Lesson{}, ErrLessonNotFound
	}
	if err := res.Err(); err != nil {
		return lesson.Lesson{}, err
	}
	return lesson.FromQuestion(res.Data), nil
}
