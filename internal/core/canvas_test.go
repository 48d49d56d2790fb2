package core

import (
	"errors"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(8, 6)

	if c.Width() != 8 {
		t.Errorf("Width() = %d, expected 8", c.Width())
	}
	if c.Height() != 6 {
		t.Errorf("Height() = %d, expected 6", c.Height())
	}
	if len(c.Pixels()) != 48 {
		t.Errorf("len(Pixels()) = %d, expected 48", len(c.Pixels()))
	}
	for i, p := range c.Pixels() {
		if p != 0 {
			t.Fatalf("new canvas pixel %d = %#x, expected 0", i, p)
		}
	}
}

func TestCanvasSetAt(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, ColorDrop)
	if c.At(5, 5) != ColorDrop {
		t.Errorf("At(5, 5) = %#x, expected %#x", c.At(5, 5), ColorDrop)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, ColorDrop)
	c.Set(100, 0, ColorDrop)
	c.Set(0, -1, ColorDrop)
	c.Set(0, 100, ColorDrop)

	if c.At(-1, 0) != 0 {
		t.Error("Out of bounds At should return 0")
	}
	if c.At(0, 10) != 0 {
		t.Error("Out of bounds At should return 0")
	}
}

func TestCanvasFillRectExact(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		col  Color
	}{
		{"drop block", NewRect(3, 3, 5, 5), ColorDrop},
		{"square block", NewRect(3, 3, 2, 2), ColorSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(10, 10)
			c.FillRect(tc.rect, tc.col)

			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					want := Color(0)
					if tc.rect.Contains(x, y) {
						want = tc.col
					}
					if got := c.At(x, y); got != want {
						t.Errorf("At(%d, %d) = %#x, expected %#x", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillRect(NewRect(2, 2, 10, 10), ColorSquare)
	c.FillRect(NewRect(-5, -5, 6, 6), ColorDrop)

	if c.At(3, 3) != ColorSquare {
		t.Errorf("At(3, 3) = %#x, expected square color", c.At(3, 3))
	}
	if c.At(0, 0) != ColorDrop {
		t.Errorf("At(0, 0) = %#x, expected drop color", c.At(0, 0))
	}
	if c.At(1, 1) != 0 {
		t.Errorf("At(1, 1) = %#x, expected untouched", c.At(1, 1))
	}
}

func TestCanvasCopyFrom(t *testing.T) {
	src := NewCanvas(3, 3)
	src.Fill(ColorBlack)

	dst := NewCanvas(3, 3)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	dst.Set(1, 1, ColorDrop)

	if src.At(1, 1) != ColorBlack {
		t.Error("drawing on the copy must not touch the source")
	}

	err := NewCanvas(2, 3).CopyFrom(src)
	if !errors.Is(err, ErrCanvasSize) {
		t.Errorf("CopyFrom with mismatched size: err = %v, expected ErrCanvasSize", err)
	}
}

func TestCanvasClone(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0, ColorSquare)

	dup := c.Clone()
	dup.Set(0, 0, ColorDrop)

	if c.At(0, 0) != ColorSquare {
		t.Error("Clone should not share pixels")
	}
}

func TestCanvasRGBA(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, RGBA(1, 2, 3, 4))
	c.Set(1, 0, ColorSquare)

	got := c.RGBA(nil)
	want := []byte{1, 2, 3, 4, 0xFF, 0, 0, 0xFF}
	if len(got) != len(want) {
		t.Fatalf("len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestCanvasMono(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, RGBA(255, 0, 0, 0))
	c.Set(1, 0, RGBA(0, 0, 0, 255))

	m := c.Mono()
	r, g, b, a := m.At(0, 0).Components()
	if r != 76 || g != 76 || b != 76 {
		t.Errorf("mono red = (%d, %d, %d), expected 76 on every channel", r, g, b)
	}
	if a != 0xFF {
		t.Errorf("mono alpha = %d, expected opaque", a)
	}
	if m.At(1, 0) != ColorBlack {
		t.Errorf("mono black = %#x, expected %#x", m.At(1, 0), ColorBlack)
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	r, g, b, a := c.Components()
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("Components() = (%d, %d, %d, %d), expected (10, 20, 30, 40)", r, g, b, a)
	}
	if ColorSquare != RGBA(0xFF, 0, 0, 0xFF) {
		t.Errorf("ColorSquare = %#x, expected opaque red", ColorSquare)
	}
}

func TestBackgroundsValidate(t *testing.T) {
	bgs := Backgrounds{}
	for _, id := range AllBackgrounds {
		bgs[id] = NewCanvas(4, 4)
	}
	if err := bgs.Validate(4, 4); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bgs[BackgroundMouse2] = NewCanvas(5, 4)
	if err := bgs.Validate(4, 4); !errors.Is(err, ErrCanvasSize) {
		t.Errorf("Validate with wrong size: err = %v, expected ErrCanvasSize", err)
	}

	delete(bgs, BackgroundWinner)
	if err := bgs.Validate(4, 4); err == nil {
		t.Error("Validate should fail when a background is missing")
	}
}

func TestParseBackgroundID(t *testing.T) {
	for _, id := range AllBackgrounds {
		got, err := ParseBackgroundID(id.String())
		if err != nil || got != id {
			t.Errorf("ParseBackgroundID(%q) = %v, %v", id.String(), got, err)
		}
	}
	if _, err := ParseBackgroundID("lawn"); err == nil {
		t.Error("ParseBackgroundID should reject unknown names")
	}
}
