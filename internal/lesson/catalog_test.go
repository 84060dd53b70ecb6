package lesson

import (
	"testing"

	"github.com/lshigami/tinysteps/internal/quiz"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "c1", Title: "Count stars", Category: quiz.CategoryCounting},
		{ID: "r1", Title: "Find the rocket", Category: quiz.CategoryRecognizeObject},
		{ID: "r2", Title: "Find the spider", Category: quiz.CategoryRecognizeObject},
	}
}

// TestBuildCatalogOrdersAndDropsEmpty verifies display order and that empty categories vanish.
func TestBuildCatalogOrdersAndDropsEmpty(t *testing.T) {
	catalog := BuildCatalog(sampleQuestions())
	if len(catalog) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(catalog))
	}
	if catalog[0].Category != quiz.CategoryRecognizeObject || catalog[1].Category != quiz.CategoryCounting {
		t.Fatalf("expected recognition before counting, got %s, %s", catalog[0].Category, catalog[1].Category)
	}
	if catalog[0].Title != "Object Recognition" || len(catalog[0].Lessons) != 2 {
		t.Fatalf("unexpected recognition group %+v", catalog[0])
	}
	if l := catalog[1].Lessons[0]; l.ID != "c1" || len(l.Questions) != 1 {
		t.Fatalf("expected one lesson per question, got %+v", l)
	}
}

// TestCatalogFilter verifies case-insensitive search on lesson and category titles.
func TestCatalogFilter(t *testing.T) {
	catalog := BuildCatalog(sampleQuestions())

	got := catalog.Filter("ROCKET")
	if len(got) != 1 || len(got[0].Lessons) != 1 || got[0].Lessons[0].ID != "r1" {
		t.Fatalf("expected only the rocket lesson, got %+v", got)
	}

	got = catalog.Filter("count")
	if len(got) != 1 || got[0].Category != quiz.CategoryCounting {
		t.Fatalf("expected counting group, got %+v", got)
	}

	if got := catalog.Filter("  "); len(got) != 2 {
		t.Fatalf("expected blank search to keep everything, got %d", len(got))
	}
	if got := catalog.Filter("dinosaur"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

// TestCatalogCategory verifies category lookup skips empty categories.
func TestCatalogCategory(t *testing.T) {
	catalog := BuildCatalog(sampleQuestions())
	if group, ok := catalog.Category(quiz.CategoryRecognizeObject); !ok || len(group.Lessons) != 2 {
		t.Fatalf("expected two recognition lessons, got %+v %v", group, ok)
	}
	if _, ok := catalog.Category(quiz.CategoryShapes); ok {
		t.Fatalf("expected empty shapes category to be absent")
	}
}
