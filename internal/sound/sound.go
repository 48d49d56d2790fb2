// Package sound plays embedded sound effects through the Ebitengine audio
// context. Playback runs on its own goroutine and never blocks the frame loop.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = 48000

// ErrUnsupportedFormat is returned for files that are not .mp3, .ogg or .wav.
var ErrUnsupportedFormat = errors.New("sound: unsupported format")

// pollInterval is how often a playing effect is checked for completion.
const pollInterval = 50 * time.Millisecond

// Decode decodes an encoded sound into a stream at sampleRate, choosing the
// decoder by the file extension of name.
func Decode(name string, data []byte, sampleRate int) (io.ReadSeeker, error) {
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("sound: decode mp3 %s: %w", name, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("sound: decode ogg %s: %w", name, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("sound: decode wav %s: %w", name, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Player plays one-shot effects on a shared audio context.
type Player struct {
	ctx    *audio.Context
	logger *log.Logger
}

// NewPlayer wraps ctx. A nil ctx makes every call a no-op, which is how
// muted sessions run.
func NewPlayer(ctx *audio.Context, logger *log.Logger) *Player {
	return &Player{ctx: ctx, logger: logger}
}

// PlayOnce starts playback of data in the background and returns at once.
// The returned channel receives nil when the effect finished, or the error
// that stopped it, and is then closed. Errors are also logged; they never
// stop the game.
func (p *Player) PlayOnce(name string, data []byte) <-chan error {
	done := make(chan error, 1)
	if p.ctx == nil {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		err := p.play(name, data)
		if err != nil {
			p.logger.Warn("sound playback failed", "sound", name, "error", err)
		}
		done <- err
	}()
	return done
}

func (p *Player) play(name string, data []byte) error {
	stream, err := Decode(name, data, p.ctx.SampleRate())
	if err != nil {
		return err
	}

	player, err := p.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("sound: player for %s: %w", name, err)
	}
	defer player.Close()

	player.Play()
	p.logger.Debug("sound started", "sound", name)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for range ticker.C {
		if !player.IsPlaying() {
			break
		}
	}
	return nil
}
