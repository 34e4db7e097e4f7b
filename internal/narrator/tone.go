package narrator

import (
	"encoding/binary"
	"math"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
)

const toneSampleRate = 22050

// note is one sine tone inside a cue.
type note struct {
	freq   float64 // Hz
	start  float64 // seconds
	length float64 // seconds
}

var cueNotes = map[audio.Cue][]note{
	// C5 E5 G5 arpeggio.
	audio.CueSuccess: {
		{freq: 523.25, start: 0, length: 0.3},
		{freq: 659.25, start: 0.15, length: 0.3},
		{freq: 783.99, start: 0.30, length: 0.3},
	},
	// G4 then E4, a gentle falling pair.
	audio.CueTryAgain: {
		{freq: 392.00, start: 0, length: 0.25},
		{freq: 329.63, start: 0.2, length: 0.35},
	},
}

// CueClip renders c as a WAV clip.
func CueClip(c audio.Cue) (*Clip, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, &ErrEmptyAudio{Backend: "tone"}
	}
	return &Clip{Data: encodeWAV(renderNotes(notes), toneSampleRate, 1), Format: FormatWAV}, nil
}

// renderNotes mixes notes into mono 16-bit PCM. Each note rises linearly to
// a peak of 0.3 over 50ms, then decays exponentially to 0.01 at its end.
func renderNotes(notes []note) []byte {
	var end float64
	for _, n := range notes {
		end = math.Max(end, n.start+n.length)
	}
	total := int(end * toneSampleRate)
	mix := make([]float64, total)

	const (
		peak   = 0.3
		floor  = 0.01
		attack = 0.05
	)
	for _, n := range notes {
		first := int(n.start * toneSampleRate)
		count := int(n.length * toneSampleRate)
		for i := 0; i < count && first+i < total; i++ {
			t := float64(i) / toneSampleRate
			var gain float64
			if t < attack {
				gain = peak * t / attack
			} else {
				// Exponential ramp from peak to floor over the remaining time.
				frac := (t - attack) / (n.length - attack)
				gain = peak * math.Pow(floor/peak, frac)
			}
			mix[first+i] += gain * math.Sin(2*math.Pi*n.freq*t)
		}
	}

	pcm := make([]byte, total*2)
	for i, v := range mix {
		v = math.Max(-1, math.Min(1, v))
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return pcm
}
