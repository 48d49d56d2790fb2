package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/vovakirdan/catzzz/internal/core"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeCanvas(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	c, err := DecodeCanvas(encodePNG(t, img))
	if err != nil {
		t.Fatalf("DecodeCanvas: %v", err)
	}
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", c.Width(), c.Height())
	}
	if got := c.At(0, 0); got != core.ColorSquare {
		t.Errorf("At(0,0) = %#x, expected %#x", got, core.ColorSquare)
	}
	if got := c.At(2, 1); got != core.RGBA(10, 20, 30, 255) {
		t.Errorf("At(2,1) = %#x", got)
	}
}

func TestDecodeCanvasInvalid(t *testing.T) {
	_, err := DecodeCanvas([]byte("not an image"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, expected ErrDecode", err)
	}
}

func TestLoadBackgrounds(t *testing.T) {
	bgs, err := LoadBackgrounds(320, 240)
	if err != nil {
		t.Fatalf("LoadBackgrounds: %v", err)
	}
	for _, id := range core.AllBackgrounds {
		if bgs[id] == nil {
			t.Errorf("background %s missing", id)
		}
	}

	// Mono is the luma copy of the colour picture.
	orig, mono := bgs[core.BackgroundOriginal], bgs[core.BackgroundMono]
	for _, p := range [][2]int{{0, 0}, {160, 190}, {319, 239}} {
		want := core.Gray(orig.At(p[0], p[1]).Luma())
		if got := mono.At(p[0], p[1]); got != want {
			t.Errorf("mono at %v = %#x, expected %#x", p, got, want)
		}
	}
}

func TestLoadBackgroundsWrongSize(t *testing.T) {
	_, err := LoadBackgrounds(100, 100)
	if !errors.Is(err, core.ErrCanvasSize) {
		t.Errorf("error = %v, expected ErrCanvasSize", err)
	}
}

func TestSound(t *testing.T) {
	data, err := Sound("purring.wav")
	if err != nil {
		t.Fatalf("Sound: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Error("purring.wav is not a RIFF file")
	}

	if _, err := Sound("missing.mp3"); err == nil {
		t.Error("missing sound should fail")
	}
}

func TestFontTTF(t *testing.T) {
	if len(FontTTF()) == 0 {
		t.Error("font data is empty")
	}
}
