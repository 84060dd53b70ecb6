package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	SampleRate    = 22050
	bitsPerSample = 16
	attack        = 0.01
	decayFloor    = 0.01
)

type waveform int

const (
	sine waveform = iota
	square
)

// tone is one oscillator routed through a gain envelope.
type tone struct {
	freqStart float64
	freqEnd   float64
	start     float64
	duration  float64
	peak      float64
	wave      waveform
	rampUp    bool
}

func (t tone) end() float64 { return t.start + t.duration }

func cueTones(c Cue) []tone {
	switch c {
	case CueCorrect:
		// C major arpeggio: C5, E5, G5.
		return []tone{
			{freqStart: 523.25, freqEnd: 523.25, start: 0, duration: 0.2, peak: 0.6, wave: sine, rampUp: true},
			{freqStart: 659.25, freqEnd: 659.25, start: 0.1, duration: 0.2, peak: 0.6, wave: sine, rampUp: true},
			{freqStart: 783.99, freqEnd: 783.99, start: 0.2, duration: 0.3, peak: 0.6, wave: sine, rampUp: true},
		}
	case CueIncorrect:
		return []tone{{freqStart: 400, freqEnd: 300, start: 0, duration: 0.3, peak: 0.4, wave: sine, rampUp: true}}
	default:
		return []tone{{freqStart: 800, freqEnd: 800, start: 0, duration: 0.1, peak: 0.3, wave: square}}
	}
}

// Synthesize renders a cue as a mono 16-bit PCM WAV file.
func Synthesize(c Cue) []byte {
	return encodeWAV(render(cueTones(c)))
}

func render(tones []tone) []float64 {
	total := 0.0
	for _, t := range tones {
		total = math.Max(total, t.end())
	}
	samples := make([]float64, int(math.Round(total*SampleRate)))

	for _, t := range tones {
		first := int(math.Round(t.start * SampleRate))
		count := int(math.Round(t.duration * SampleRate))
		phase := 0.0
		for i := 0; i < count && first+i < len(samples); i++ {
			elapsed := float64(i) / SampleRate
			freq := t.freqStart * math.Pow(t.freqEnd/t.freqStart, elapsed/t.duration)
			phase += 2 * math.Pi * freq / SampleRate

			v := math.Sin(phase)
			if t.wave == square {
				if v >= 0 {
					v = 1
				} else {
					v = -1
				}
			}
			samples[first+i] += v * t.gain(elapsed)
		}
	}
	return samples
}

// gain is a linear attack followed by an exponential ramp down to decayFloor.
func (t tone) gain(elapsed float64) float64 {
	decayStart := 0.0
	if t.rampUp {
		if elapsed < attack {
			return t.peak * elapsed / attack
		}
		decayStart = attack
	}
	span := t.duration - decayStart
	if span <= 0 {
		return t.peak
	}
	progress := (elapsed - decayStart) / span
	return t.peak * math.Pow(decayFloor/t.peak, progress)
}

func encodeWAV(samples []float64) []byte {
	dataLen := uint32(len(samples) * bitsPerSample / 8)
	var buf bytes.Buffer
	buf.Grow(44 + int(dataLen))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate*bitsPerSample/8))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample/8))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	for _, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		_ = binary.Write(&buf, binary.LittleEndian, int16(s*math.MaxInt16))
	}
	return buf.Bytes()
}
