package raster

import "fmt"

// Color is a single RGB pixel value.
type Color struct {
	R, G, B uint8
}

// Packed returns the color in its packed wire form: red in the lowest byte,
// then green, then blue. The top byte is unused and set to 0xFF.
func (c Color) Packed() uint32 {
	return 0xFF<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Unpack converts a packed value back into a Color. The top byte is ignored.
func Unpack(v uint32) Color {
	return Color{
		R: uint8(v & 0x0000FF),
		G: uint8((v & 0x00FF00) >> 8),
		B: uint8((v & 0xFF0000) >> 16),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
