package dto

// PlayAnswerDTO is an answer as shown to the learner, without its correctness.
type PlayAnswerDTO struct {
	ID       string     `json:"id"`
	Blocks   []BlockDTO `json:"blocks"`
	ImageURL string     `json:"image_url,omitempty"`
}

type PlayQuestionDTO struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	ImageURL string          `json:"image_url,omitempty"`
	Category string          `json:"category"`
	Answers  []PlayAnswerDTO `json:"answers"`
}

type StartPlayDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
}

type SelectAnswerDTO struct {
	AnswerID string `json:"answer_id" binding:"required"`
}

type SelectionDTO struct {
	AnswerID string `json:"answer_id"`
	Correct  bool   `json:"correct"`
	Cue      CueDTO `json:"cue"`
}

type CountingValuesDTO struct {
	Values map[string]string `json:"values" binding:"required"`
}

type CheckResultDTO struct {
	Results map[string]bool `json:"results"`
	Correct bool            `json:"correct"`
	Cues    []CueDTO        `json:"cues,omitempty"`
}

type PlaySessionDTO struct {
	SessionID string            `json:"session_id"`
	Kind      string            `json:"kind"`
	Question  PlayQuestionDTO   `json:"question"`
	Selection *SelectionDTO     `json:"selection,omitempty"`
	Options   map[string][]int  `json:"options,omitempty"`
	Values    map[string]string `json:"values,omitempty"`
	Result    *CheckResultDTO   `json:"result,omitempty"`
}

type RetryResultDTO struct {
	Cue     CueDTO         `json:"cue"`
	Session PlaySessionDTO `json:"session"`
}
