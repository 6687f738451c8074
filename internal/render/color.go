package render

import (
	"math"

	"kray/internal/vecmath"
)

// Channel maps a linear intensity to an 8-bit value. Values outside [0,1]
// are clamped.
func Channel(t float64) uint8 {
	return uint8(math.Floor(255.99999 * vecmath.Clamp(t, 0, 1)))
}

// RGB packs a linear color as 0x00BBGGRR: red in the low byte.
func RGB(c vecmath.Vec) uint32 {
	return Pack(Channel(c.X()), Channel(c.Y()), Channel(c.Z()))
}

func Pack(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16
}

func Unpack(rgb uint32) (r, g, b uint8) {
	return uint8(rgb), uint8(rgb >> 8), uint8(rgb >> 16)
}
