package catzzz

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/catzzz/internal/core"
)

// Raindrop is a falling square sprite. Drops are pooled and never destroyed,
// only repositioned.
type Raindrop struct {
	X, Y       int       // Top-left corner on the canvas
	StartTime  time.Time // Instant the drop begins falling
	LastUpdate time.Time // Instant of the last position change
}

// Speed selects how fast drops fall. Motion is derived from elapsed wall time,
// never from frame counts, so the fall rate does not depend on the frame rate.
type Speed struct {
	// StepInterval gates motion: a drop moves one pixel per whole interval.
	StepInterval time.Duration
	// PixelsPerSecond, when positive, selects continuous motion instead.
	PixelsPerSecond float64
}

// step returns the whole pixels to move after elapsed and the part of elapsed
// they account for. The remainder carries over to the next frame.
func (s Speed) step(elapsed time.Duration) (int, time.Duration) {
	if elapsed <= 0 {
		return 0, 0
	}
	if s.PixelsPerSecond > 0 {
		n := int(math.Floor(elapsed.Seconds() * s.PixelsPerSecond))
		used := time.Duration(float64(n) / s.PixelsPerSecond * float64(time.Second))
		return n, min(used, elapsed)
	}
	if s.StepInterval <= 0 || elapsed < s.StepInterval {
		return 0, 0
	}
	n := int(elapsed / s.StepInterval)
	return n, time.Duration(n) * s.StepInterval
}

// DropField owns the fixed pool of raindrops.
type DropField struct {
	drops  []Raindrop
	rng    *rand.Rand
	width  int
	height int
	size   int
}

// NewDropField creates n drops at the top of a width x height canvas.
// Drop i starts falling at start + i*stagger.
func NewDropField(n, size, width, height int, start time.Time, stagger time.Duration, rng *rand.Rand) *DropField {
	f := &DropField{
		drops:  make([]Raindrop, n),
		rng:    rng,
		width:  width,
		height: height,
		size:   size,
	}
	for i := range f.drops {
		begin := start.Add(time.Duration(i) * stagger)
		f.drops[i] = Raindrop{
			X:          f.randomX(),
			Y:          0,
			StartTime:  begin,
			LastUpdate: begin,
		}
	}
	return f
}

// Advance moves every started drop according to speed.
// A drop that reaches the floor (height - dropSize) goes back to the top.
func (f *DropField) Advance(now time.Time, width, height, dropSize int, speed Speed) {
	f.width, f.height, f.size = width, height, dropSize
	floor := height - dropSize

	for i := range f.drops {
		d := &f.drops[i]
		if now.Before(d.StartTime) {
			continue
		}
		since := d.LastUpdate
		if since.Before(d.StartTime) {
			since = d.StartTime
		}
		if n, used := speed.step(now.Sub(since)); n > 0 {
			d.Y += n
			d.LastUpdate = since.Add(used)
		}
		if d.Y >= floor {
			f.Reset(i)
		}
	}
}

// Reset sends drop i back to the top at a new random column.
func (f *DropField) Reset(i int) {
	if i < 0 || i >= len(f.drops) {
		return
	}
	f.drops[i].Y = 0
	f.drops[i].X = f.randomX()
}

// randomX returns a column in [0, width - size).
func (f *DropField) randomX() int {
	span := f.width - f.size
	if span <= 0 {
		return 0
	}
	return f.rng.Intn(span)
}

// Len returns the pool size.
func (f *DropField) Len() int {
	return len(f.drops)
}

// Drop returns a copy of drop i.
func (f *DropField) Drop(i int) Raindrop {
	return f.drops[i]
}

// Drops returns the pool. Callers must not modify it.
func (f *DropField) Drops() []Raindrop {
	return f.drops
}

// Rect returns the collision rectangle of drop i.
func (f *DropField) Rect(i int) core.Rect {
	d := f.drops[i]
	return core.NewRect(d.X, d.Y, f.size, f.size)
}

// Size returns the drop edge length.
func (f *DropField) Size() int {
	return f.size
}
