package core

// Color is a packed 32-bit pixel in 0xAARRGGBB order.
type Color uint32

// Colors used by the game when compositing a frame.
const (
	ColorBlack  Color = 0xFF000000
	ColorSquare Color = 0xFFFF0000 // player square (red)
	ColorDrop   Color = 0xFFFFFFFF // raindrop (white)
)

// RGBA packs 8-bit channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Gray returns an opaque color with all channels set to luma.
func Gray(luma uint8) Color {
	return RGBA(luma, luma, luma, 0xFF)
}

// Components unpacks the color into its 8-bit channels.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Luma returns the perceived brightness using the ITU-R BT.601 weights.
func (c Color) Luma() uint8 {
	r, g, b, _ := c.Components()
	return uint8(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}
