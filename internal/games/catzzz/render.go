package catzzz

import "github.com/vovakirdan/catzzz/internal/core"

// Render composites the current frame into dst: the selected background,
// then the player square, then every drop. Cached backgrounds are copied,
// never drawn on.
func (g *Game) Render(dst *core.Canvas) {
	bg := g.backgroundCanvas(g.currentBackground())
	if err := dst.CopyFrom(bg); err != nil {
		dst.Fill(core.ColorBlack)
	}

	drawSquare(dst, g.player.X, g.player.Y, g.player.Size)

	size := g.drops.Size()
	for _, d := range g.drops.Drops() {
		drawRaindrop(dst, d, size)
	}
}

// backgroundCanvas looks up a decoded background, falling back to black.
func (g *Game) backgroundCanvas(id core.BackgroundID) *core.Canvas {
	if c, ok := g.runtime.Backgrounds[id]; ok && c != nil {
		return c
	}
	return g.blank
}

// drawSquare paints the player square at (x, y).
func drawSquare(dst *core.Canvas, x, y, size int) {
	dst.FillRect(core.NewRect(x, y, size, size), core.ColorSquare)
}

// drawRaindrop paints one drop.
func drawRaindrop(dst *core.Canvas, d Raindrop, size int) {
	dst.FillRect(core.NewRect(d.X, d.Y, size, size), core.ColorDrop)
}
