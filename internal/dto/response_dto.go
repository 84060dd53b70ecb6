package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CueDTO names an audio cue and where to fetch it.
type CueDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
