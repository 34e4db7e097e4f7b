// Package narrator turns lesson phrases into sound. A Synthesizer renders
// text to an audio Clip (cloud TTS, a system TTS command, or a mock); a
// Player plays clips through a system audio command. ClipNarrator ties the
// two together behind audio.Narrator and reports speech events on a channel.
package narrator

import (
	"context"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
)

// Format is the container of a Clip.
type Format string

const (
	FormatWAV  Format = "wav"
	FormatMP3  Format = "mp3"
	FormatAIFF Format = "aiff"
)

// Clip is a self-contained audio file held in memory.
type Clip struct {
	Data   []byte
	Format Format
}

// Request is one synthesis request.
type Request struct {
	Text  string
	Voice audio.VoiceOptions
}

// Synthesizer renders text to audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) (*Clip, error)

	// Name identifies the backend in logs and collector events.
	Name() string
}
