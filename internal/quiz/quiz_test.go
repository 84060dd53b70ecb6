package quiz

import (
	"errors"
	"testing"

	"github.com/lshigami/tinysteps/internal/audio"
)

func recognitionQuestion() Question {
	return Question{
		ID:       "q1",
		Title:    "Find the rocket",
		ImageURL: "rocket.png",
		Category: CategoryRecognizeObject,
		Answers: []Answer{
			{ID: "a1", IsCorrect: true, Blocks: []Block{{Shape: ShapeSquare, Number: 1, Color: DefaultColor}}},
			{ID: "a2", Blocks: []Block{{Shape: ShapeTriangle, Number: 1, Color: "#28a745"}}},
		},
	}
}

func countingQuestion() Question {
	return Question{
		ID:       "q2",
		Title:    "Count stars",
		ImageURL: "a.png",
		Category: CategoryCounting,
		Answers: []Answer{
			{ID: "s1", IsCorrect: true, ImageURL: "s1.png", Blocks: []Block{CountingBlock(3)}},
			{ID: "s2", IsCorrect: true, ImageURL: "s2.png", Blocks: []Block{CountingBlock(5)}},
		},
	}
}

// TestDecodeContentCountingImage verifies stored counting objects become one placeholder block.
func TestDecodeContentCountingImage(t *testing.T) {
	content, err := DecodeContent(CategoryCounting, []byte(`{"image_url":"s1.png","correct_number":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, ok := content.(CountingImage)
	if !ok {
		t.Fatalf("expected CountingImage, got %T", content)
	}
	a := AnswerFromContent("x", true, img)
	if a.ImageURL != "s1.png" || len(a.Blocks) != 1 {
		t.Fatalf("expected one block with image, got %+v", a)
	}
	if a.Blocks[0] != (Block{Shape: ShapeCircle, Number: 3, Color: DefaultColor}) {
		t.Fatalf("expected placeholder circle block, got %+v", a.Blocks[0])
	}
}

// TestDecodeContentObjectOutsideCounting verifies objects only count as images for counting questions.
func TestDecodeContentObjectOutsideCounting(t *testing.T) {
	content, err := DecodeContent(CategoryRecognizeObject, []byte(`{"image_url":"s1.png","correct_number":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks, ok := content.(ShapeBlocks)
	if !ok || len(blocks) != 0 {
		t.Fatalf("expected empty blocks, got %#v", content)
	}

	content, err = DecodeContent(CategoryCounting, []byte(`{"correct_number":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocks, ok := content.(ShapeBlocks); !ok || len(blocks) != 0 {
		t.Fatalf("expected empty blocks without image_url, got %#v", content)
	}
}

// TestDecodeContentDefaultsBlocks verifies missing shape and colour fall back to defaults.
func TestDecodeContentDefaultsBlocks(t *testing.T) {
	content, err := DecodeContent(CategoryCounting, []byte(`[{"number":2},{"shape":"diamond","number":1,"color":"#fff"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks := content.(ShapeBlocks)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Shape != ShapeSquare || blocks[0].Color != DefaultColor || blocks[0].Number != 2 {
		t.Fatalf("expected defaults applied, got %+v", blocks[0])
	}
	if blocks[1].Shape != ShapeDiamond || blocks[1].Color != "#fff" {
		t.Fatalf("expected block kept verbatim, got %+v", blocks[1])
	}

	for _, raw := range []string{"", "null", `"text"`, "42"} {
		content, err := DecodeContent(CategoryShapes, []byte(raw))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if blocks, ok := content.(ShapeBlocks); !ok || len(blocks) != 0 {
			t.Fatalf("%q: expected empty blocks, got %#v", raw, content)
		}
	}

	if _, err := DecodeContent(CategoryShapes, []byte(`[{"number":`)); !errors.Is(err, ErrMalformedContent) {
		t.Fatalf("expected ErrMalformedContent, got %v", err)
	}
}

// TestEncodeContentRoundTrip verifies counting answers with images encode as objects.
func TestEncodeContentRoundTrip(t *testing.T) {
	q := countingQuestion()
	raw, err := EncodeContent(q.Category, q.Answers[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"image_url":"s2.png","correct_number":5}` {
		t.Fatalf("expected counting object, got %s", raw)
	}
	content, err := DecodeContent(q.Category, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := AnswerFromContent("s2", true, content)
	if back.ImageURL != "s2.png" || back.CorrectNumber() != 5 {
		t.Fatalf("expected round trip, got %+v", back)
	}

	raw, err = EncodeContent(CategoryRecognizeObject, recognitionQuestion().Answers[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `[{"shape":"square","number":1,"color":"#007bff"}]` {
		t.Fatalf("expected block array, got %s", raw)
	}
}

// TestNumberOptionsInvariant verifies three distinct positive options that include the answer.
func TestNumberOptionsInvariant(t *testing.T) {
	for _, n := range []int{-3, 0, 1, 2, 3, 5, 10} {
		for i := 0; i < 50; i++ {
			options := NumberOptions(n)
			if len(options) != 3 {
				t.Fatalf("n=%d: expected 3 options, got %v", n, options)
			}
			want := max(n, 1)
			seen := map[int]bool{}
			found := false
			for _, o := range options {
				if o <= 0 {
					t.Fatalf("n=%d: expected positive options, got %v", n, options)
				}
				if seen[o] {
					t.Fatalf("n=%d: expected distinct options, got %v", n, options)
				}
				if o < want-2 || o > want+2 {
					t.Fatalf("n=%d: expected options within 2, got %v", n, options)
				}
				seen[o] = true
				found = found || o == want
			}
			if !found {
				t.Fatalf("n=%d: expected %d among %v", n, want, options)
			}
		}
	}
}

// TestValidateRecognitionRequiresExactlyOneCorrect verifies the single-correct-answer rule.
func TestValidateRecognitionRequiresExactlyOneCorrect(t *testing.T) {
	q := recognitionQuestion()
	if err := ValidateForm(q); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	q.Answers[0].IsCorrect = false
	if err := ValidateForm(q); err != ErrNoCorrectAnswer {
		t.Fatalf("expected ErrNoCorrectAnswer, got %v", err)
	}

	q.Answers[0].IsCorrect = true
	q.Answers[1].IsCorrect = true
	if err := ValidateForm(q); err != ErrMultipleCorrect {
		t.Fatalf("expected ErrMultipleCorrect, got %v", err)
	}

	q = recognitionQuestion()
	q.Title = "  "
	if err := ValidateForm(q); err != ErrTitleRequired || !IsValidation(err) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

// TestValidateForSave verifies the image rule and the counting completeness rule.
func TestValidateForSave(t *testing.T) {
	q := countingQuestion()
	if err := ValidateForSave(q); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	q.ImageURL = ""
	if err := ValidateForSave(q); err != ErrImageRequired {
		t.Fatalf("expected ErrImageRequired, got %v", err)
	}
	if err := ValidateForm(q); err != nil {
		t.Fatalf("expected single form to accept missing image, got %v", err)
	}

	q = countingQuestion()
	q.Answers[1].Blocks = []Block{CountingBlock(0)}
	if err := ValidateForSave(q); err != ErrCountingAnswerIncomplete {
		t.Fatalf("expected ErrCountingAnswerIncomplete, got %v", err)
	}

	q = countingQuestion()
	q.Answers[0].ImageURL = ""
	if err := ValidateForSave(q); err != ErrCountingAnswerIncomplete {
		t.Fatalf("expected ErrCountingAnswerIncomplete, got %v", err)
	}

	q = countingQuestion()
	q.Answers = nil
	if err := ValidateForSave(q); err != ErrNoAnswers {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

// TestRecognitionRoundAnswersOnce verifies the unanswered to answered transition.
func TestRecognitionRoundAnswersOnce(t *testing.T) {
	r := NewRecognitionRound(recognitionQuestion())
	if _, ok := r.Selected(); ok {
		t.Fatalf("expected unanswered round")
	}
	if _, err := r.Select("nope"); err != ErrUnknownAnswer {
		t.Fatalf("expected ErrUnknownAnswer, got %v", err)
	}

	sel, err := r.Select("a2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Correct || sel.Cue != audio.CueIncorrect {
		t.Fatalf("expected incorrect selection, got %+v", sel)
	}
	if _, err := r.Select("a1"); err != ErrAlreadyAnswered {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
	if got, _ := r.Selected(); got.AnswerID != "a2" {
		t.Fatalf("expected a2 to stay selected, got %s", got.AnswerID)
	}

	r = NewRecognitionRound(recognitionQuestion())
	sel, _ = r.Select("a1")
	if !sel.Correct || sel.Cue != audio.CueCorrect {
		t.Fatalf("expected correct selection, got %+v", sel)
	}
}

// TestCountingRoundCheck verifies all-or-nothing grading and the retry reset.
func TestCountingRoundCheck(t *testing.T) {
	r := NewCountingRound(countingQuestion())

	if err := r.SetValue("s1", "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Check(); err != ErrIncompleteAnswers {
		t.Fatalf("expected ErrIncompleteAnswers, got %v", err)
	}
	if err := r.SetValue("s2", "five"); err != ErrNotANumber {
		t.Fatalf("expected ErrNotANumber, got %v", err)
	}

	_ = r.SetValue("s2", "5")
	res, err := r.Check()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct || len(res.Cues) != 2 || res.Cues[1] != audio.CueCorrect {
		t.Fatalf("expected correct result, got %+v", res)
	}

	_ = r.SetValue("s2", "4")
	res, _ = r.Check()
	if res.Correct || !res.Results["s1"] || res.Results["s2"] {
		t.Fatalf("expected one wrong answer to fail the round, got %+v", res)
	}

	options := r.Options("s1")
	if cue := r.TryAgain(); cue != audio.CueClick {
		t.Fatalf("expected click cue, got %s", cue)
	}
	if _, checked := r.Checked(); checked {
		t.Fatalf("expected feedback cleared")
	}
	if r.Value("s1") != "" || r.Value("s2") != "" {
		t.Fatalf("expected values cleared")
	}
	after := r.Options("s1")
	for i := range options {
		if options[i] != after[i] {
			t.Fatalf("expected options kept, got %v then %v", options, after)
		}
	}
}

// TestCountingRoundCheckWithoutAnswers verifies a counting question with no answers never grades as correct.
func TestCountingRoundCheckWithoutAnswers(t *testing.T) {
	r := NewCountingRound(Question{ID: "q", Title: "Count nothing", Category: CategoryCounting})
	if _, err := r.Check(); err != ErrIncompleteAnswers {
		t.Fatalf("expected ErrIncompleteAnswers, got %v", err)
	}
	if _, checked := r.Checked(); checked {
		t.Fatalf("expected no recorded check")
	}
}
