package raster

const gradientStep = 0.3

// DrawOutline covers c with a red/blue gradient background and frames it with
// an OutlineColor border thickness pixels wide.
func DrawOutline(c *Canvas, thickness int) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			fill := RGB{R: gradient(x), B: gradient(y)}
			if x <= thickness || x >= c.Width-thickness || y <= thickness || y >= c.Height-thickness {
				fill = OutlineColor
			}
			c.Set(x, y, fill)
		}
	}
}

// gradient scales a coordinate into a channel value, saturating at 255.
func gradient(v int) uint8 {
	g := int(gradientStep * float64(v))
	if g > 0xff {
		return 0xff
	}
	return uint8(g)
}
