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

// playerCommands lists the audio players tried in order.
var playerCommands = []string{"afplay", "paplay", "aplay", "ffplay"}

// Player plays an audio file and blocks until it finishes or ctx is done.
type Player interface {
	PlayFile(ctx context.Context, path string, volume float64) error
	Name() string
}

// CommandPlayer plays files with a system audio program.
type CommandPlayer struct {
	program string
	path    string
}

// NewCommandPlayer uses program, or the first player found on PATH when
// program is empty.
func NewCommandPlayer(program string) (*CommandPlayer, error) {
	candidates := playerCommands
	if program != "" {
		candidates = []string{program}
	}
	for _, name := range candidates {
		if p, err := lookPath(name); err == nil {
			return &CommandPlayer{program: filepath.Base(name), path: p}, nil
		}
	}
	return nil, &ErrBackendUnavailable{
		Backend: "player",
		Err:     fmt.Errorf("%w: none of %s found on PATH", errNotInstalled, strings.Join(candidates, ", ")),
	}
}

func (p *CommandPlayer) PlayFile(ctx context.Context, path string, volume float64) error {
	cmd := exec.CommandContext(ctx, p.path, playerArgs(p.program, path, volume)...)
	if msg, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w: %s", p.program, err, strings.TrimSpace(string(msg)))
	}
	return nil
}

func (p *CommandPlayer) Name() string { return p.program }

// playerArgs builds the command line for program. volume is in [0,1]; aplay
// has no volume control and plays at full level.
func playerArgs(program, path string, volume float64) []string {
	volume = max(0, min(1, volume))
	switch program {
	case "afplay":
		return []string{"-v", strconv.FormatFloat(volume, 'f', 2, 64), path}
	case "paplay":
		return []string{"--volume=" + strconv.Itoa(int(volume*65536)), path}
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet",
			"-volume", strconv.Itoa(int(volume * 100)), path}
	default:
		return []string{"-q", path}
	}
}

// playClip writes clip to a temp file and plays it.
func playClip(ctx context.Context, p Player, clip *Clip, volume float64) error {
	f, err := os.CreateTemp("", "abc-clip-*."+string(clip.Format))
	if err != nil {
		return fmt.Errorf("create clip file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(clip.Data); err != nil {
		f.Close()
		return fmt.Errorf("write clip file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write clip file: %w", err)
	}
	return p.PlayFile(ctx, f.Name(), volume)
}
