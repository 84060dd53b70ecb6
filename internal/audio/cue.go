// Package audio synthesises the short feedback tones played during quizzes.
package audio

import (
	"fmt"
)

// Cue names a feedback sound.
type Cue string

const (
	CueCorrect   Cue = "correct"
	CueIncorrect Cue = "incorrect"
	CueClick     Cue = "click"
)

var Cues = []Cue{CueCorrect, CueIncorrect, CueClick}

func ParseCue(s string) (Cue, error) {
	for _, c := range Cues {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown audio cue %q", s)
}

// URL is the path the cue is served from.
func (c Cue) URL() string {
	return "/api/v1/audio/" + string(c)
}

// Library holds every cue pre-rendered as WAV bytes.
type Library struct {
	clips map[Cue][]byte
}

func NewLibrary() *Library {
	clips := make(map[Cue][]byte, len(Cues))
	for _, c := range Cues {
		clips[c] = Synthesize(c)
	}
	return &Library{clips: clips}
}

func (l *Library) WAV(c Cue) ([]byte, bool) {
	clip, ok := l.clips[c]
	return clip, ok
}
