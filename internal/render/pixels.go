package render

import (
	"image/color"

	"spring-guardian/internal/world"
)

// fillRGBA copies per-tile colours into buf, one pixel per tile.
func fillRGBA(buf []byte, colors []color.RGBA) {
	for i, c := range colors {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// fillHeatRGBA maps continuous tile state onto a warm-to-cold ramp: 0 is
// red, the grass midpoint is green and 1 is blue. Blocked and unknown tiles
// are left transparent.
func fillHeatRGBA(buf []byte, states []float64, types []world.TileType, alpha uint8) {
	for i, s := range states {
		base := i * 4
		if types[i] == world.TileBlock || types[i] == world.TileNone {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		c := Heat(s)
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = alpha
	}
}

// Heat maps a continuous tile state onto the heat map ramp.
func Heat(s float64) color.RGBA {
	s = min(max(s, 0), 1)
	if s < 0.5 {
		t := s / 0.5
		return color.RGBA{R: uint8(255 * (1 - t)), G: uint8(255 * t), A: 255}
	}
	t := (s - 0.5) / 0.5
	return color.RGBA{G: uint8(255 * (1 - t)), B: uint8(255 * t), A: 255}
}
