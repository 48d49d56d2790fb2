package core

import (
	"errors"
	"fmt"
)

// ErrCanvasSize is returned when two canvases that must match differ in size.
var ErrCanvasSize = errors.New("canvas size mismatch")

// Canvas is a flat pixel buffer mapping (x, y) to a packed Color.
// It decouples game rendering from the window or terminal: games composite
// into a Canvas and the platform presents it.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// NewCanvas creates a blank (fully transparent) canvas.
func NewCanvas(width, height int) *Canvas {
	width = Max(width, 0)
	height = Max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas as a rectangle at the origin.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Set places a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// At returns the color at the given position, or 0 when out of bounds.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// FillRect paints r, clipped to the canvas.
func (c *Canvas) FillRect(r Rect, col Color) {
	x0 := Clamp(r.X, 0, c.width)
	y0 := Clamp(r.Y, 0, c.height)
	x1 := Clamp(r.Right(), 0, c.width)
	y1 := Clamp(r.Bottom(), 0, c.height)
	for y := y0; y < y1; y++ {
		row := c.pix[y*c.width : (y+1)*c.width]
		for x := x0; x < x1; x++ {
			row[x] = col
		}
	}
}

// CopyFrom overwrites c with the pixels of src. Both must be the same size.
func (c *Canvas) CopyFrom(src *Canvas) error {
	if src.width != c.width || src.height != c.height {
		return fmt.Errorf("%w: have %dx%d, source %dx%d", ErrCanvasSize, c.width, c.height, src.width, src.height)
	}
	copy(c.pix, src.pix)
	return nil
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	dup := NewCanvas(c.width, c.height)
	copy(dup.pix, c.pix)
	return dup
}

// Pixels returns the underlying row-major buffer. Callers must not modify it.
func (c *Canvas) Pixels() []Color {
	return c.pix
}

// RGBA writes the canvas into dst as R, G, B, A bytes, growing dst if needed.
func (c *Canvas) RGBA(dst []byte) []byte {
	n := len(c.pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range c.pix {
		r, g, b, a := p.Components()
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = a
	}
	return dst
}

// Mono returns an opaque grayscale copy of the canvas.
func (c *Canvas) Mono() *Canvas {
	dup := NewCanvas(c.width, c.height)
	for i, p := range c.pix {
		dup.pix[i] = Gray(p.Luma())
	}
	return dup
}
