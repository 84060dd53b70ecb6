// Package seed loads the starter lessons shipped with the server.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

type blockSpec struct {
	Shape  string `yaml:"shape"`
	Number int    `yaml:"number"`
	Color  string `yaml:"color"`
}

// answerSpec is a choice answer (correct + blocks) or a counting answer (image + count).
type answerSpec struct {
	Correct bool        `yaml:"correct"`
	Image   string      `yaml:"image"`
	Count   int         `yaml:"count"`
	Blocks  []blockSpec `yaml:"blocks"`
}

type questionSpec struct {
	Title    string       `yaml:"title"`
	Image    string       `yaml:"image"`
	Category string       `yaml:"category"`
	Answers  []answerSpec `yaml:"answers"`
}

type fileSpec struct {
	Questions []questionSpec `yaml:"questions"`
}

// Load parses the embedded starter lessons.
func Load() ([]quiz.Question, error) {
	return Parse(lessonsYAML)
}

// Parse decodes a lessons document and checks every question against the save rules.
func Parse(data []byte) ([]quiz.Question, error) {
	var doc fileSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse lessons: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse lessons: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse lessons: %w", err)
	}

	questions := make([]quiz.Question, 0, len(doc.Questions))
	for i, qs := range doc.Questions {
		q, err := qs.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("lesson %d: %w", i+1, err)
		}
		if err := quiz.ValidateForSave(q); err != nil {
			return nil, fmt.Errorf("lesson %d (%s): %w", i+1, qs.Title, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (qs questionSpec) toQuestion() (quiz.Question, error) {
	category, err := quiz.ParseCategory(qs.Category)
	if err != nil {
		return quiz.Question{}, err
	}
	q := quiz.Question{Title: qs.Title, ImageURL: qs.Image, Category: category}
	for _, as := range qs.Answers {
		if category == quiz.CategoryCounting {
			q.Answers = append(q.Answers, quiz.Answer{
				IsCorrect: true,
				ImageURL:  as.Image,
				Blocks:    []quiz.Block{quiz.CountingBlock(as.Count)},
			})
			continue
		}
		a := quiz.Answer{IsCorrect: as.Correct}
		for _, bs := range as.Blocks {
			shape := quiz.Shape(bs.Shape)
			if !shape.Valid() {
				return quiz.Question{}, fmt.Errorf("unknown shape %q", bs.Shape)
			}
			color := bs.Color
			if color == "" {
				color = quiz.DefaultColor
			}
			a.Blocks = append(a.Blocks, quiz.Block{Shape: shape, Number: bs.Number, Color: color})
		}
		q.Answers = append(q.Answers, a)
	}
	return q, nil
}

// Run stores the starter lessons when the store holds no questions yet.
// It returns how many questions were created.
func Run(ctx context.Context, gateway service.QuestionGateway) (int, error) {
	count := gateway.Count(ctx)
	if err := count.Err(); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	if count.Data > 0 {
		log.Info().Int64("questions", count.Data).Msg("Store already has questions, skipping seed")
		return 0, nil
	}

	questions, err := Load()
	if err != nil {
		return 0, err
	}
	created := 0
	for _, q := range questions {
		if err := gateway.Create(ctx, q).Err(); err != nil {
			return created, fmt.Errorf("seed %q: %w", q.Title, err)
		}
		created++
	}
	log.Info().Int("questions", created).Msg("Seeded starter lessons")
	return created, nil
}
