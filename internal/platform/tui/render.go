package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catzzz/internal/core"
)

// halfBlock draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = "▀"

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// Renderer converts canvas frames to styled terminal text, two pixels per
// cell. Styles are cached per color pair.
type Renderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellColors]lipgloss.Style)}
}

// FitCells returns the largest cell grid that shows a w x h canvas inside
// cols x rows cells without distorting it.
func FitCells(w, h, cols, rows int) (int, int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	// Each cell is one pixel wide and two pixels tall.
	outW, outH := cols, cols*h/w
	if outH > rows*2 {
		outH = rows * 2
		outW = outH * w / h
	}
	outW = min(outW, w)
	outH = min(outH, h)
	return outW, (outH + 1) / 2
}

// Render samples c onto a cols x rows grid of half-block cells.
// Adjacent cells with the same colors share one styled run.
func (r *Renderer) Render(c *core.Canvas, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	px := rows * 2
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		topY := (2 * y) * c.Height() / px
		botY := (2*y + 1) * c.Height() / px

		x := 0
		for x < cols {
			start := r.sample(c, x, cols, topY, botY)
			n := 0
			for x < cols && r.sample(c, x, cols, topY, botY) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (r *Renderer) sample(c *core.Canvas, x, cols, topY, botY int) cellColors {
	cx := x * c.Width() / cols
	return cellColors{top: c.At(cx, topY), bottom: c.At(cx, botY)}
}

func (r *Renderer) style(cc cellColors) lipgloss.Style {
	if s, ok := r.styles[cc]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(hexColor(cc.top)).
		Background(hexColor(cc.bottom))
	r.styles[cc] = s
	return s
}

// hexColor converts a packed color to a truecolor lipgloss color.
func hexColor(c core.Color) lipgloss.Color {
	red, green, blue, _ := c.Components()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", red, green, blue))
}
