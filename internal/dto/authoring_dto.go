package dto

type OpenFormDTO struct {
	Category   string `json:"category" binding:"omitempty,oneof=recognize_object counting shapes colors patterns"`
	QuestionID string `json:"question_id"`
}

type OpenBatchDTO struct {
	Category string `json:"category" binding:"required,oneof=recognize_object counting shapes colors patterns"`
}

type AnswerImageDTO struct {
	AnswerID string `json:"answer_id" binding:"required"`
	URL      string `json:"url"`
}

type AnswerCountDTO struct {
	AnswerID string `json:"answer_id" binding:"required"`
	Count    int    `json:"count" binding:"min=0"`
}

type CorrectSelectionDTO struct {
	AnswerID string `json:"answer_id" binding:"required"`
	Checked  bool   `json:"checked"`
}

// FormEditDTO carries any combination of form changes; omitted fields are left alone.
type FormEditDTO struct {
	Title           *string              `json:"title"`
	ImageURL        *string              `json:"image_url"`
	Answers         []AnswerInputDTO     `json:"answers" binding:"omitempty,dive"`
	AddAnswer       bool                 `json:"add_answer"`
	RemoveAnswerID  string               `json:"remove_answer_id"`
	AnswerImage     *AnswerImageDTO      `json:"answer_image"`
	AnswerCount     *AnswerCountDTO      `json:"answer_count"`
	ToggleCorrectID string               `json:"toggle_correct_id"`
	SetCorrect      *CorrectSelectionDTO `json:"set_correct"`
}

type FormDTO struct {
	FormID         string      `json:"form_id"`
	Mode           string      `json:"mode"`
	Question       QuestionDTO `json:"question"`
	SuccessVisible bool        `json:"success_visible"`
}

type FormSubmitResultDTO struct {
	Question QuestionDTO `json:"question"`
	Form     FormDTO     `json:"form"`
	Redirect string      `json:"redirect,omitempty"`
}

type FormViewDTO struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	State    string       `json:"state"`
	Question QuestionDTO  `json:"question"`
	Payload  *QuestionDTO `json:"payload,omitempty"`
	Stored   bool         `json:"stored"`
	Saving   bool         `json:"saving"`
}

type CountsDTO struct {
	Editing int `json:"editing"`
	Draft   int `json:"draft"`
	Saved   int `json:"saved"`
}

type BatchDTO struct {
	BatchID  string        `json:"batch_id"`
	Category string        `json:"category"`
	Forms    []FormViewDTO `json:"forms"`
	Counts   CountsDTO     `json:"counts"`
}

type RemoveFormResultDTO struct {
	Removed bool     `json:"removed"`
	Batch   BatchDTO `json:"batch"`
}

type SaveReportDTO struct {
	Saved         int      `json:"saved"`
	Skipped       int      `json:"skipped"`
	SkippedTitles []string `json:"skipped_titles,omitempty"`
	Failed        int      `json:"failed"`
	Errors        []string `json:"errors,omitempty"`
	Redirect      string   `json:"redirect,omitempty"`
}
