// Package lesson wraps fetched questions into lessons for the learner's navigation.
package lesson

import (
	"strings"

	"github.com/lshigami/tinysteps/internal/quiz"
)

// Lesson is a display wrapper around one question.
type Lesson struct {
	ID        string
	Title     string
	Category  quiz.Category
	Questions []quiz.Question
}

func FromQuestion(q quiz.Question) Lesson {
	return Lesson{ID: q.ID, Title: q.Title, Category: q.Category, Questions: []quiz.Question{q}}
}

type CategoryLessons struct {
	Category quiz.Category
	Title    string
	Lessons  []Lesson
}

type Catalog []CategoryLessons

// BuildCatalog groups questions by category in display order, one lesson per
// question. Categories without questions are left out.
func BuildCatalog(questions []quiz.Question) Catalog {
	byCategory := make(map[quiz.Category][]Lesson)
	for _, q := range questions {
		byCategory[q.Category] = append(byCategory[q.Category], FromQuestion(q))
	}

	var catalog Catalog
	for _, c := range quiz.Categories {
		lessons := byCategory[c]
		if len(lessons) == 0 {
			continue
		}
		catalog = append(catalog, CategoryLessons{Category: c, Title: c.Title(), Lessons: lessons})
	}
	return catalog
}

// Filter keeps lessons whose title or category title contains search, ignoring case.
func (c Catalog) Filter(search string) Catalog {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return c
	}

	var out Catalog
	for _, group := range c {
		if strings.Contains(strings.ToLower(group.Title), needle) {
			out = append(out, group)
			continue
		}
		var kept []Lesson
		for _, l := range group.Lessons {
			if strings.Contains(strings.ToLower(l.Title), needle) {
				kept = append(kept, l)
			}
		}
		if len(kept) > 0 {
			out = append(out, CategoryLessons{Category: group.Category, Title: group.Title, Lessons: kept})
		}
	}
	return out
}

func (c Catalog) Category(category quiz.Category) (CategoryLessons, bool) {
	for _, group := range c {
		if group.Category == category {
			return group, true
		}
	}
	return CategoryLessons{}, false
}
