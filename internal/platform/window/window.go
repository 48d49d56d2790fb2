// Package window presents a game in an Ebitengine window.
// It polls held keys once per tick, steps the game with the wall clock and
// uploads the composited canvas as the frame.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/catzzz/internal/core"
	"github.com/vovakirdan/catzzz/internal/registry"
)

// ErrPresentation is returned when the frame cannot be shown because the
// window surface and the canvas disagree on size.
var ErrPresentation = errors.New("window: presentation failed")

// HUDSize is the font size of the score overlay in canvas pixels.
const HUDSize = 14

// DefaultKeys maps keyboard keys to game actions.
var DefaultKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeySpace:      core.ActionGrow,
	ebiten.KeyEscape:     core.ActionQuit,
}

// PollInput builds the input frame from the keys held right now.
func PollInput(keys map[ebiten.Key]core.Action, pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for k, a := range keys {
		if pressed(k) {
			in.Set(a)
		}
	}
	return in
}

// NewHUDFace parses ttf into a text face of the given size.
func NewHUDFace(ttf []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("window: font: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// Options configures the window.
type Options struct {
	Title string
	Scale int // window pixels per canvas pixel
	Debug bool
}

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game   registry.Game
	cfg    core.RuntimeConfig
	opts   Options
	face   *text.GoTextFace
	logger *log.Logger

	canvas *core.Canvas
	pix    []byte
	err    error
	debug  *rate.Limiter
	state  core.GameState

	now     func() time.Time
	pressed func(ebiten.Key) bool
	keys    map[ebiten.Key]core.Action
}

// NewRunner wraps game, which must already be Reset with cfg.
// A nil face disables the HUD overlay.
func NewRunner(game registry.Game, cfg core.RuntimeConfig, face *text.GoTextFace, logger *log.Logger, opts Options) *Runner {
	return &Runner{
		game:    game,
		cfg:     cfg,
		opts:    opts,
		face:    face,
		logger:  logger,
		canvas:  core.NewCanvas(cfg.CanvasW, cfg.CanvasH),
		debug:   rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		state:   game.State(),
		now:     time.Now,
		pressed: ebiten.IsKeyPressed,
		keys:    DefaultKeys,
	}
}

// Update steps the game once. It returns ebiten.Termination when the session
// is over.
func (r *Runner) Update() error {
	if r.err != nil {
		return r.err
	}

	res := r.game.Step(r.now(), PollInput(r.keys, r.pressed))
	r.state = res.State

	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventCatch:
			r.logger.Debug("drop caught", "drop", ev.Drop, "score", res.State.Score)
		case core.EventHazard:
			r.logger.Debug("drop hit the cat", "drop", ev.Drop, "score", res.State.Score)
		case core.EventWon:
			r.logger.Info("winner", "score", res.State.Score)
		}
	}

	if r.opts.Debug && r.debug.Allow() {
		if d, ok := r.game.(registry.Debugger); ok {
			r.logger.Debug("frame", d.DebugKV()...)
		}
	}

	if res.State.Closed() {
		return ebiten.Termination
	}
	return nil
}

// Draw composites the game frame and uploads it to screen.
func (r *Runner) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if err := checkSize(b.Dx(), b.Dy(), r.canvas); err != nil {
		r.err = err
		return
	}

	r.game.Render(r.canvas)
	r.pix = r.canvas.RGBA(r.pix)
	screen.WritePixels(r.pix)

	if hud := r.game.HUD(); hud != "" && r.face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(6, 4)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, hud, r.face, op)
	}
}

// Layout fixes the logical screen to the canvas size; Ebitengine scales it
// to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.CanvasW, r.cfg.CanvasH
}

// State returns the state after the last Update.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run opens the window and blocks until the session ends.
// A normal close returns nil.
func (r *Runner) Run() error {
	scale := max(r.opts.Scale, 1)
	ebiten.SetWindowSize(r.cfg.CanvasW*scale, r.cfg.CanvasH*scale)
	ebiten.SetWindowTitle(r.opts.Title)
	if r.cfg.TickRate > 0 {
		ebiten.SetTPS(r.cfg.TickRate)
	}

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func checkSize(w, h int, c *core.Canvas) error {
	if w != c.Width() || h != c.Height() {
		return fmt.Errorf("%w: surface %dx%d, canvas %dx%d", ErrPresentation, w, h, c.Width(), c.Height())
	}
	return nil
}
