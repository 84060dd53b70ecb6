package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/lshigami/tinysteps/internal/adapter"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/repository"
	"github.com/rs/zerolog/log"
)

type FailureKind string

const (
	KindNotFound FailureKind = "not_found"
	KindConflict FailureKind = "conflict"
	KindBackend  FailureKind = "backend"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Result is the envelope every gateway call returns. Failures never escape as
// panics or bare errors; the caller decides whether to surface them.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
	Kind    FailureKind
}

func succeed[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](op string, err error) Result[T] {
	kind := KindBackend
	switch {
	case errors.Is(err, repository.ErrQuestionNotFound):
		kind = KindNotFound
	case errors.Is(err, repository.ErrDuplicateQuestion):
		kind = KindConflict
	}
	if kind == KindBackend {
		log.Error().Err(err).Str("op", op).Msg("Question gateway call failed")
	} else {
		log.Warn().Err(err).Str("op", op).Msg("Question gateway call rejected")
	}
	return Result[T]{Error: err.Error(), Kind: kind}
}

// GatewayError carries a failed Result across an error-returning API.
type GatewayError struct {
	Kind    FailureKind
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// Err returns nil for a successful result and a *GatewayError otherwise.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return &GatewayError{Kind: r.Kind, Message: r.Error}
}

type QuestionPage struct {
	Questions   []quiz.Question
	TotalCount  int64
	CurrentPage int
	PageSize    int
	TotalPages  int
}

type QuestionGateway interface {
	Create(ctx context.Context, q quiz.Question) Result[quiz.Question]
	Update(ctx context.Context, q quiz.Question) Result[quiz.Question]
	Delete(ctx context.Context, id string) Result[struct{}]
	FetchAll(ctx context.Context, category quiz.Category) Result[[]quiz.Question]
	FetchByID(ctx context.Context, id string) Result[quiz.Question]
	FetchAllWithAnswers(ctx context.Context, category quiz.Category) Result[[]quiz.Question]
	FetchByIDWithAnswers(ctx context.Context, id string) Result[quiz.Question]
	FetchPage(ctx context.Context, page, pageSize int, category quiz.Category) Result[QuestionPage]
	Count(ctx context.Context) Result[int64]
}

type questionGateway struct {
	repo repository.QuestionRepository
}

func NewQuestionGateway(repo repository.QuestionRepository) QuestionGateway {
	return &questionGateway{repo: repo}
}

// guard turns a panic inside a gateway call into a failure result.
func guard[T any](op string, res *Result[T]) {
	if r := recover(); r != nil {
		*res = fail[T](op, fmt.Errorf("panic: %v", r))
	}
}

func (g *questionGateway) Create(ctx context.Context, q quiz.Question) (res Result[quiz.Question]) {
	defer guard("create", &res)

	row, err := adapter.ToRows(q)
	if err != nil {
		return fail[quiz.Question]("create", err)
	}
	if err := g.repo.Create(ctx, &row); err != nil {
		return fail[quiz.Question]("create", err)
	}
	saved, err := adapter.ToQuestion(row)
	if err != nil {
		return fail[quiz.Question]("create", err)
	}
	log.Info().Str("questionID", saved.ID).Int("answers", len(saved.Answers)).Msg("Question created")
	return succeed(saved)
}

func (g *questionGateway) Update(ctx context.Context, q quiz.Question) (res Result[quiz.Question]) {
	defer guard("update", &res)

	if q.ID == "" {
		return fail[quiz.Question]("update", repository.ErrQuestionNotFound)
	}
	row, err := adapter.ToRows(q)
	if err != nil {
		return fail[quiz.Question]("update", err)
	}
	if err := g.repo.Update(ctx, &row); err != nil {
		return fail[quiz.Question]("update", err)
	}
	stored, err := g.repo.FindByIDWithAnswers(ctx, q.ID)
	if err != nil {
		return fail[quiz.Question]("update", err)
	}
	saved, err := adapter.ToQuestion(*stored)
	if err != nil {
		return fail[quiz.Question]("update", err)
	}
	log.Info().Str("questionID", saved.ID).Int("answers", len(saved.Answers)).Msg("Question updated")
	return succeed(saved)
}

func (g *questionGateway) Delete(ctx context.Context, id string) (res Result[struct{}]) {
	defer guard("delete", &res)

	if err := g.repo.Delete(ctx, id); err != nil {
		return fail[struct{}]("delete", err)
	}
	log.Info().Str("questionID", id).Msg("Question deleted")
	return succeed(struct{}{})
}

func (g *questionGateway) FetchAll(ctx context.Context, category quiz.Category) (res Result[[]quiz.Question]) {
	defer guard("fetch_all", &res)

	rows, err := g.repo.FindAll(ctx, repository.QuestionFilter{Category: string(category)})
	if err != nil {
		return fail[[]quiz.Question]("fetch_all", err)
	}
	questions, err := adapter.ToQuestions(rows)
	if err != nil {
		return fail[[]quiz.Question]("fetch_all", err)
	}
	return succeed(questions)
}

func (g *questionGateway) FetchByID(ctx context.Context, id string) (res Result[quiz.Question]) {
	defer guard("fetch_by_id", &res)

	row, err := g.repo.FindByID(ctx, id)
	if err != nil {
		return fail[quiz.Question]("fetch_by_id", err)
	}
	q, err := adapter.ToQuestion(*row)
	if err != nil {
		return fail[quiz.Question]("fetch_by_id", err)
	}
	return succeed(q)
}

func (g *questionGateway) FetchAllWithAnswers(ctx context.Context, category quiz.Category) (res Result[[]quiz.Question]) {
	defer guard("fetch_all_with_answers", &res)

	rows, err := g.repo.FindAllWithAnswers(ctx, repository.QuestionFilter{Category: string(category)})
	if err != nil {
		return fail[[]quiz.Question]("fetch_all_with_answers", err)
	}
	questions, err := adapter.ToQuestions(rows)
	if err != nil {
		return fail[[]quiz.Question]("fetch_all_with_answers", err)
	}
	return succeed(questions)
}

func (g *questionGateway) FetchByIDWithAnswers(ctx context.Context, id string) (res Result[quiz.Question]) {
	defer guard("fetch_by_id_with_answers", &res)

	row, err := g.repo.FindByIDWithAnswers(ctx, id)
	if err != nil {
		return fail[quiz.Question]("fetch_by_id_with_answers", err)
	}
	q, err := adapter.ToQuestion(*row)
	if err != nil {
		return fail[quiz.Question]("fetch_by_id_with_answers", err)
	}
	return succeed(q)
}

// FetchPage returns a newest-first page. Out of range page numbers yield an empty page.
func (g *questionGateway) FetchPage(ctx context.Context, page, pageSize int, category quiz.Category) (res Result[QuestionPage]) {
	defer guard("fetch_page", &res)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	rows, total, err := g.repo.FindPage(ctx, (page-1)*pageSize, pageSize, repository.QuestionFilter{Category: string(category)})
	if err != nil {
		return fail[QuestionPage]("fetch_page", err)
	}
	questions, err := adapter.ToQuestions(rows)
	if err != nil {
		return fail[QuestionPage]("fetch_page", err)
	}
	return succeed(QuestionPage{
		Questions:   questions,
		TotalCount:  total,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

func (g *questionGateway) Count(ctx context.Context) (res Result[int64]) {
	defer guard("count", &res)

	total, err := g.repo.Count(ctx)
	if err != nil {
		return fail[int64]("count", err)
	}
	return succeed(total)
}
