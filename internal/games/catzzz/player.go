package catzzz

import "github.com/vovakirdan/catzzz/internal/core"

// Player is the user-controlled square.
type Player struct {
	X, Y int
	Size int
}

// NewPlayer places a square of the given size in the middle of the canvas.
func NewPlayer(size, width, height int) Player {
	p := Player{
		X:    width/2 - size/2,
		Y:    height/2 - size/2,
		Size: size,
	}
	p.clamp(width, height)
	return p
}

// Apply moves and resizes the square from one frame of input.
// Grow held makes the square baseSize+growStep, otherwise baseSize. A size
// change keeps the square centred. The result is clamped to the canvas.
func (p *Player) Apply(in core.InputFrame, baseSize, growStep, speed, width, height int) {
	if in.Has(core.ActionUp) {
		p.Y -= speed
	}
	if in.Has(core.ActionDown) {
		p.Y += speed
	}
	if in.Has(core.ActionLeft) {
		p.X -= speed
	}
	if in.Has(core.ActionRight) {
		p.X += speed
	}

	size := baseSize
	if in.Has(core.ActionGrow) {
		size += growStep
	}
	if delta := size - p.Size; delta != 0 {
		p.X -= delta / 2
		p.Y -= delta / 2
		p.Size = size
	}

	p.clamp(width, height)
}

// clamp keeps the whole square on the canvas, pinning to the origin when the
// square is larger than the canvas.
func (p *Player) clamp(width, height int) {
	p.X = core.Clamp(p.X, 0, core.Max(width-p.Size, 0))
	p.Y = core.Clamp(p.Y, 0, core.Max(height-p.Size, 0))
}

// Rect returns the square's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}
