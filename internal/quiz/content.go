package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedContent = errors.New("malformed answer content")

// AnswerContent is the stored form of an answer: either shape blocks or a
// counting image with its target number.
type AnswerContent interface {
	answerContent()
}

type ShapeBlocks []Block

type CountingImage struct {
	ImageURL      string `json:"image_url"`
	CorrectNumber int    `json:"correct_number"`
}

func (ShapeBlocks) answerContent()   {}
func (CountingImage) answerContent() {}

type storedBlock struct {
	Shape  string `json:"shape"`
	Number int    `json:"number"`
	Color  string `json:"color"`
}

// DecodeContent picks the content variant from the question category. Only
// counting questions may carry a CountingImage, and only when the stored
// object has an image_url key; everything else decodes as blocks.
func DecodeContent(category Category, raw []byte) (AnswerContent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ShapeBlocks{}, nil
	}

	switch trimmed[0] {
	case '{':
		if category != CategoryCounting {
			return ShapeBlocks{}, nil
		}
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedContent, err)
		}
		if _, ok := probe["image_url"]; !ok {
			return ShapeBlocks{}, nil
		}
		var img CountingImage
		if err := json.Unmarshal(trimmed, &img); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedContent, err)
		}
		return img, nil
	case '[':
		var stored []storedBlock
		if err := json.Unmarshal(trimmed, &stored); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedContent, err)
		}
		blocks := make(ShapeBlocks, 0, len(stored))
		for _, sb := range stored {
			blocks = append(blocks, withDefaults(Block{Shape: Shape(sb.Shape), Number: sb.Number, Color: sb.Color}))
		}
		return blocks, nil
	default:
		return ShapeBlocks{}, nil
	}
}

// EncodeContent is the inverse of DecodeContent for an in-memory answer.
func EncodeContent(category Category, a Answer) ([]byte, error) {
	if category == CategoryCounting && a.ImageURL != "" {
		return json.Marshal(CountingImage{ImageURL: a.ImageURL, CorrectNumber: a.CorrectNumber()})
	}
	blocks := make([]Block, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		blocks = append(blocks, withDefaults(b))
	}
	return json.Marshal(blocks)
}

// AnswerFromContent builds the uniform in-memory answer from decoded content.
func AnswerFromContent(id string, isCorrect bool, content AnswerContent) Answer {
	a := Answer{ID: id, IsCorrect: isCorrect}
	switch c := content.(type) {
	case CountingImage:
		a.ImageURL = c.ImageURL
		a.Blocks = []Block{CountingBlock(c.CorrectNumber)}
	case ShapeBlocks:
		a.Blocks = append([]Block{}, c...)
	}
	return a
}

func withDefaults(b Block) Block {
	if b.Shape == "" {
		b.Shape = ShapeSquare
	}
	if b.Color == "" {
		b.Color = DefaultColor
	}
	return b
}
