// Package quiz holds the question model shared by authoring and play, together
// with the rules that decide whether a question is well formed and whether a
// child's answer is right.
package quiz

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryRecognizeObject Category = "recognize_object"
	CategoryCounting        Category = "counting"
	CategoryShapes          Category = "shapes"
	CategoryColors          Category = "colors"
	CategoryPatterns        Category = "patterns"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryRecognizeObject,
	CategoryCounting,
	CategoryShapes,
	CategoryColors,
	CategoryPatterns,
}

var categoryTitles = map[Category]string{
	CategoryRecognizeObject: "Object Recognition",
	CategoryCounting:        "Counting",
	CategoryShapes:          "Shapes",
	CategoryColors:          "Colors",
	CategoryPatterns:        "Patterns",
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown question category %q", s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return "Questions"
}

// IsChoice reports whether the category is answered by picking exactly one answer.
func (c Category) IsChoice() bool {
	return c != CategoryCounting
}

type Shape string

const (
	ShapeSquare    Shape = "square"
	ShapeTriangle  Shape = "triangle"
	ShapeCircle    Shape = "circle"
	ShapeRectangle Shape = "rectangle"
	ShapeDiamond   Shape = "diamond"
)

var Shapes = []Shape{ShapeSquare, ShapeTriangle, ShapeCircle, ShapeRectangle, ShapeDiamond}

func (s Shape) Valid() bool {
	for _, known := range Shapes {
		if s == known {
			return true
		}
	}
	return false
}

const DefaultColor = "#007bff"

// Block is one shape+count+colour unit of an answer card.
type Block struct {
	Shape  Shape  `json:"shape"`
	Number int    `json:"number"`
	Color  string `json:"color"`
}

type Answer struct {
	ID        string
	IsCorrect bool
	Blocks    []Block
	ImageURL  string
}

// CorrectNumber is the target count of a counting answer, carried by its first block.
func (a Answer) CorrectNumber() int {
	if len(a.Blocks) == 0 {
		return 0
	}
	return a.Blocks[0].Number
}

type Question struct {
	ID        string
	Title     string
	ImageURL  string
	Category  Category
	Answers   []Answer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers can hand questions across goroutines.
func (q Question) Clone() Question {
	out := q
	out.Answers = make([]Answer, len(q.Answers))
	for i, a := range q.Answers {
		out.Answers[i] = a
		out.Answers[i].Blocks = append([]Block(nil), a.Blocks...)
	}
	return out
}

func (q Question) Answer(id string) (Answer, bool) {
	for _, a := range q.Answers {
		if a.ID == id {
			return a, true
		}
	}
	return Answer{}, false
}

// CountingBlock is the single placeholder block that carries a counting answer's target.
func CountingBlock(n int) Block {
	return Block{Shape: ShapeCircle, Number: n, Color: DefaultColor}
}
