package dto

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/tinysteps/internal/audio"
	"github.com/lshigami/tinysteps/internal/authoring"
	"github.com/lshigami/tinysteps/internal/lesson"
	"github.com/lshigami/tinysteps/internal/quiz"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
)

var deepCopy = copier.Option{DeepCopy: true}

func FromQuestion(q quiz.Question) QuestionDTO {
	var resp QuestionDTO
	if err := copier.CopyWithOption(&resp, &q, deepCopy); err != nil {
		log.Error().Err(err).Str("questionID", q.ID).Msg("Failed to copy question into response")
	}
	resp.Category = string(q.Category)
	resp.Answers = make([]AnswerDTO, 0, len(q.Answers))
	for _, a := range q.Answers {
		ans := AnswerDTO{ID: a.ID, IsCorrect: a.IsCorrect, ImageURL: a.ImageURL, Blocks: fromBlocks(a.Blocks)}
		if q.Category == quiz.CategoryCounting {
			ans.Count = a.CorrectNumber()
		}
		resp.Answers = append(resp.Answers, ans)
	}
	return resp
}

func FromQuestions(qs []quiz.Question) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuestion(q))
	}
	return out
}

func FromPage(p service.QuestionPage) QuestionPageDTO {
	var resp QuestionPageDTO
	_ = copier.Copy(&resp, &p)
	resp.Questions = FromQuestions(p.Questions)
	return resp
}

func fromBlocks(blocks []quiz.Block) []BlockDTO {
	out := make([]BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, BlockDTO{Shape: string(b.Shape), Number: b.Number, Color: b.Color})
	}
	return out
}

// ToQuestion maps an upsert payload onto the domain question.
func ToQuestion(req QuestionUpsertDTO) quiz.Question {
	return quiz.Question{
		ID:       req.ID,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: quiz.Category(req.Category),
		Answers:  ToAnswers(req.Answers),
	}
}

func ToAnswers(in []AnswerInputDTO) []quiz.Answer {
	out := make([]quiz.Answer, 0, len(in))
	for _, a := range in {
		ans := quiz.Answer{ID: a.ID, IsCorrect: a.IsCorrect, ImageURL: a.ImageURL}
		if a.Count != nil {
			ans.Blocks = []quiz.Block{quiz.CountingBlock(*a.Count)}
		} else {
			for _, b := range a.Blocks {
				ans.Blocks = append(ans.Blocks, quiz.Block{Shape: quiz.Shape(b.Shape), Number: b.Number, Color: b.Color})
			}
		}
		out = append(out, ans)
	}
	return out
}

func ToEdit(req FormEditDTO) authoring.Edit {
	edit := authoring.Edit{
		Title:           req.Title,
		ImageURL:        req.ImageURL,
		AddAnswer:       req.AddAnswer,
		RemoveAnswerID:  req.RemoveAnswerID,
		ToggleCorrectID: req.ToggleCorrectID,
	}
	if req.Answers != nil {
		edit.Answers = ToAnswers(req.Answers)
	}
	if req.AnswerImage != nil {
		edit.AnswerImage = &authoring.AnswerImage{AnswerID: req.AnswerImage.AnswerID, URL: req.AnswerImage.URL}
	}
	if req.AnswerCount != nil {
		edit.AnswerCount = &authoring.AnswerCount{AnswerID: req.AnswerCount.AnswerID, Count: req.AnswerCount.Count}
	}
	if req.SetCorrect != nil {
		edit.SetCorrect = &authoring.CorrectSelection{AnswerID: req.SetCorrect.AnswerID, Checked: req.SetCorrect.Checked}
	}
	return edit
}

func FromFormState(s service.FormState) FormDTO {
	return FormDTO{
		FormID:         s.FormID,
		Mode:           string(s.Mode),
		Question:       FromQuestion(s.Question),
		SuccessVisible: s.SuccessVisible,
	}
}

func FromFormSubmit(r service.FormSubmitResult) FormSubmitResultDTO {
	return FormSubmitResultDTO{
		Question: FromQuestion(r.Question),
		Form:     FromFormState(r.Form),
		Redirect: r.Redirect,
	}
}

func FromFormView(v authoring.FormView) FormViewDTO {
	resp := FormViewDTO{
		ID:       v.ID,
		Title:    v.Title,
		State:    string(v.State),
		Question: FromQuestion(v.Question),
		Stored:   v.Stored,
		Saving:   v.Saving,
	}
	if v.Payload != nil {
		p := FromQuestion(*v.Payload)
		resp.Payload = &p
	}
	return resp
}

func FromBatch(b service.BatchState) BatchDTO {
	resp := BatchDTO{
		BatchID:  b.BatchID,
		Category: string(b.Category),
		Forms:    make([]FormViewDTO, 0, len(b.Forms)),
	}
	_ = copier.Copy(&resp.Counts, &b.Counts)
	for _, f := range b.Forms {
		resp.Forms = append(resp.Forms, FromFormView(f))
	}
	return resp
}

func FromSaveReport(r service.SaveReport) SaveReportDTO {
	var resp SaveReportDTO
	_ = copier.Copy(&resp, &r)
	return resp
}

func FromCue(c audio.Cue) CueDTO {
	return CueDTO{Name: string(c), URL: c.URL()}
}

func FromCues(cues []audio.Cue) []CueDTO {
	out := make([]CueDTO, 0, len(cues))
	for _, c := range cues {
		out = append(out, FromCue(c))
	}
	return out
}

func FromPlayQuestion(q quiz.Question) PlayQuestionDTO {
	resp := PlayQuestionDTO{
		ID:       q.ID,
		Title:    q.Title,
		ImageURL: q.ImageURL,
		Category: string(q.Category),
		Answers:  make([]PlayAnswerDTO, 0, len(q.Answers)),
	}
	for _, a := range q.Answers {
		pa := PlayAnswerDTO{ID: a.ID, ImageURL: a.ImageURL, Blocks: []BlockDTO{}}
		// counting blocks hold the expected number
		if q.Category != quiz.CategoryCounting {
			pa.Blocks = fromBlocks(a.Blocks)
		}
		resp.Answers = append(resp.Answers, pa)
	}
	return resp
}

func FromSelection(s quiz.Selection) SelectionDTO {
	return SelectionDTO{AnswerID: s.AnswerID, Correct: s.Correct, Cue: FromCue(s.Cue)}
}

func FromCheck(r quiz.CountingResult) CheckResultDTO {
	resp := CheckResultDTO{Results: r.Results, Correct: r.Correct}
	if len(r.Cues) > 0 {
		resp.Cues = FromCues(r.Cues)
	}
	return resp
}

func FromPlayView(v service.PlayView) PlaySessionDTO {
	resp := PlaySessionDTO{
		SessionID: v.SessionID,
		Kind:      string(v.Kind),
		Question:  FromPlayQuestion(v.Question),
		Options:   v.Options,
		Values:    v.Values,
	}
	if v.Selection != nil {
		sel := FromSelection(*v.Selection)
		resp.Selection = &sel
	}
	if v.Result != nil {
		res := FromCheck(*v.Result)
		resp.Result = &res
	}
	return resp
}

func FromCategoryLessons(c lesson.CategoryLessons) CategoryLessonsDTO {
	resp := CategoryLessonsDTO{
		Category: string(c.Category),
		Title:    c.Title,
		Lessons:  make([]LessonSummaryDTO, 0, len(c.Lessons)),
	}
	for _, l := range c.Lessons {
		resp.Lessons = append(resp.Lessons, LessonSummaryDTO{ID: l.ID, Title: l.Title, Category: string(l.Category)})
	}
	return resp
}

func FromCatalog(c lesson.Catalog) []CategoryLessonsDTO {
	out := make([]CategoryLessonsDTO, 0, len(c))
	for _, group := range c {
		out = append(out, FromCategoryLessons(group))
	}
	return out
}

func FromLesson(l lesson.Lesson) LessonDTO {
	resp := LessonDTO{
		ID:        l.ID,
		Title:     l.Title,
		Category:  string(l.Category),
		Questions: make([]PlayQuestionDTO, 0, len(l.Questions)),
	}
	for _, q := range l.Questions {
		resp.Questions = append(resp.Questions, FromPlayQuestion(q))
	}
	return resp
}
