// Package assets holds the embedded pictures, sounds and font, and decodes
// them into the types the game works with.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder
	"path"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/catzzz/internal/core"
)

//go:embed images/*.png sounds/*
var files embed.FS

// ErrDecode is returned when an embedded or supplied image cannot be decoded.
var ErrDecode = errors.New("assets: decode failed")

// Image files per background. Mono has no file, it is derived from Original.
var backgroundFiles = map[core.BackgroundID]string{
	core.BackgroundOriginal: "images/background.png",
	core.BackgroundMouse1:   "images/background_mouse_1.png",
	core.BackgroundMouse2:   "images/background_mouse_2.png",
	core.BackgroundWinner:   "images/background_winner.png",
}

// DecodeCanvas decodes an encoded image into a canvas of the same size.
func DecodeCanvas(data []byte) (*core.Canvas, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := img.Bounds()
	c := core.NewCanvas(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			c.Set(x, y, core.RGBA(px.R, px.G, px.B, px.A))
		}
	}
	return c, nil
}

// LoadBackgrounds decodes every background once and checks each matches
// the canvas size.
func LoadBackgrounds(width, height int) (core.Backgrounds, error) {
	bgs := make(core.Backgrounds, len(core.AllBackgrounds))
	for id, name := range backgroundFiles {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("assets: read %s: %w", name, err)
		}
		c, err := DecodeCanvas(data)
		if err != nil {
			return nil, fmt.Errorf("assets: %s: %w", name, err)
		}
		bgs[id] = c
	}
	bgs[core.BackgroundMono] = bgs[core.BackgroundOriginal].Mono()

	if err := bgs.Validate(width, height); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return bgs, nil
}

// Sound returns the raw bytes of an embedded sound file.
func Sound(name string) ([]byte, error) {
	data, err := files.ReadFile(path.Join("sounds", name))
	if err != nil {
		return nil, fmt.Errorf("assets: sound %q: %w", name, err)
	}
	return data, nil
}

// FontTTF returns the embedded HUD font.
func FontTTF() []byte {
	return goregular.TTF
}
