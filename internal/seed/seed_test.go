package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/repository"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/lshigami/tinysteps/internal/testutil"
)

// TestLoadEmbeddedLessons verifies the shipped lessons parse and pass the save rules.
func TestLoadEmbeddedLessons(t *testing.T) {
	questions, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 7 {
		t.Fatalf("expected 7 starter questions, got %d", len(questions))
	}
	first := questions[0]
	if first.Category != quiz.CategoryRecognizeObject || first.ImageURL != "https://linh309.sirv.com/lessons/rocket.png" {
		t.Fatalf("unexpected first question %+v", first)
	}
	if !first.Answers[1].IsCorrect || first.Answers[0].Blocks[0].Color != quiz.DefaultColor {
		t.Fatalf("expected second answer correct and default colour, got %+v", first.Answers)
	}
	last := questions[len(questions)-1]
	if last.Category != quiz.CategoryCounting || last.Answers[2].CorrectNumber() != 5 {
		t.Fatalf("expected counting question with count 5, got %+v", last)
	}
}

// TestParseRejectsBadLessons verifies unknown fields and invalid questions fail.
func TestParseRejectsBadLessons(t *testing.T) {
	if _, err := Parse([]byte("questions:\n  - titel: typo\n")); err == nil {
		t.Fatalf("expected unknown field error")
	}

	doc := []byte(`questions:
  - title: Pick one
    image: a.png
    category: shapes
    answers:
      - blocks: [{shape: square, number: 1}]
`)
	if _, err := Parse(doc); !errors.Is(err, quiz.ErrNoCorrectAnswer) {
		t.Fatalf("expected no-correct-answer error, got %v", err)
	}

	doc = []byte(`questions:
  - title: Pick one
    image: a.png
    category: shapes
    answers:
      - correct: true
        blocks: [{shape: hexagon, number: 1}]
`)
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected unknown shape error")
	}
}

// TestRunSeedsOnlyEmptyStore verifies a second run leaves the store alone.
func TestRunSeedsOnlyEmptyStore(t *testing.T) {
	gateway := service.NewQuestionGateway(repository.NewQuestionRepository(testutil.NewDB(t)))
	ctx := context.Background()

	created, err := Run(ctx, gateway)
	if err != nil || created != 7 {
		t.Fatalf("expected 7 created, got %d (%v)", created, err)
	}
	created, err = Run(ctx, gateway)
	if err != nil || created != 0 {
		t.Fatalf("expected nothing on second run, got %d (%v)", created, err)
	}
	if n := gateway.Count(ctx).Data; n != 7 {
		t.Fatalf("expected 7 stored questions, got %d", n)
	}
}
