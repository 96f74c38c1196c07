package renderer

import "image/color"

func colorToFloat(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}
