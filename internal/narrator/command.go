package narrator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ttsCommands lists the system TTS programs tried in order.
var ttsCommands = []string{"say", "espeak-ng", "espeak"}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// CommandSynth renders speech with a system TTS program writing to a file.
type CommandSynth struct {
	program string
	path    string
}

// NewCommandSynth uses program, or the first TTS program found on PATH when
// program is empty.
func NewCommandSynth(program string) (*CommandSynth, error) {
	candidates := ttsCommands
	if program != "" {
		candidates = []string{program}
	}
	for _, name := range candidates {
		if p, err := lookPath(name); err == nil {
			return &CommandSynth{program: filepath.Base(name), path: p}, nil
		}
	}
	return nil, &ErrBackendUnavailable{
		Backend: BackendCommand,
		Err:     fmt.Errorf("%w: none of %s found on PATH", errNotInstalled, strings.Join(candidates, ", ")),
	}
}

func (s *CommandSynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	dir, err := os.MkdirTemp("", "abc-tts-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	args, out, format := ttsArgs(s.program, dir, req)
	cmd := exec.CommandContext(ctx, s.path, args...)
	if msg, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ErrBackendUnavailable{
			Backend: s.Name(),
			Err:     fmt.Errorf("%w: %s", err, strings.TrimSpace(string(msg))),
		}
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("read synthesized audio: %w", err)
	}
	if len(data) == 0 {
		return nil, &ErrEmptyAudio{Backend: s.Name()}
	}
	return &Clip{Data: data, Format: format}, nil
}

func (s *CommandSynth) Name() string {
	return BackendCommand + "/" + s.program
}

// baseWPM is the speaking rate the TTS programs treat as normal.
const baseWPM = 175

// ttsArgs builds the command line for program, returning the args, the
// output file and its format.
func ttsArgs(program, dir string, req Request) ([]string, string, Format) {
	v := req.Voice
	wpm := baseWPM
	if v.Rate > 0 {
		wpm = int(baseWPM * v.Rate)
	}

	switch program {
	case "say":
		out := filepath.Join(dir, "speech.wav")
		return []string{
			"-r", strconv.Itoa(wpm),
			"--file-format=WAVE", "--data-format=LEI16@22050",
			"-o", out,
			req.Text,
		}, out, FormatWAV
	default: // espeak, espeak-ng
		out := filepath.Join(dir, "speech.wav")
		pitch, amp := 50, 100
		if v.Pitch > 0 {
			pitch = min(99, int(50*v.Pitch))
		}
		if v.Volume > 0 {
			amp = min(200, int(100*v.Volume))
		}
		args := []string{
			"-s", strconv.Itoa(wpm),
			"-p", strconv.Itoa(pitch),
			"-a", strconv.Itoa(amp),
		}
		if prefersFemale(v.Preference) {
			args = append(args, "-v", "en+f3")
		}
		args = append(args, "-w", out, req.Text)
		return args, out, FormatWAV
	}
}

// prefersFemale reports whether the voice preference asks for a child-like
// or female voice, which espeak approximates with a female variant.
func prefersFemale(pref []string) bool {
	for _, p := range pref {
		switch strings.ToLower(p) {
		case "child", "kid", "female":
			return true
		}
	}
	return false
}
