package world

import "image/color"

var (
	dryColor   = color.NRGBA{R: 233, G: 178, B: 86, A: 255}
	grassColor = color.NRGBA{R: 0, G: 255, B: 115, A: 255}
	snowColor  = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	blockColor = color.NRGBA{R: 86, G: 84, B: 96, A: 255}
	errorColor = color.NRGBA{R: 230, G: 41, B: 55, A: 255}
)

// TileColor returns the base colour of a tile classification.
func TileColor(t TileType) color.RGBA {
	switch t {
	case TileDry:
		return toRGBA(dryColor)
	case TileGrass:
		return toRGBA(grassColor)
	case TileSnow:
		return toRGBA(snowColor)
	case TileBlock:
		return toRGBA(blockColor)
	default:
		return toRGBA(errorColor)
	}
}

// KindColor returns the colour agents of kind k are drawn with.
func KindColor(k Kind) color.RGBA {
	switch k {
	case KindFire:
		return color.RGBA{R: 255, G: 72, B: 32, A: 255}
	case KindIce:
		return color.RGBA{R: 64, G: 140, B: 255, A: 255}
	case KindSpring:
		return color.RGBA{R: 40, G: 200, B: 90, A: 255}
	case KindFireStaff:
		return color.RGBA{R: 170, G: 40, B: 20, A: 255}
	case KindIceStaff:
		return color.RGBA{R: 30, G: 80, B: 170, A: 255}
	default:
		return toRGBA(errorColor)
	}
}

// tileColor derives the draw colour from the continuous state: dry blends into
// grass up to the middle of the grass band, grass blends into snow above it.
func tileColor(state float64, t TileType, p Params) color.RGBA {
	switch t {
	case TileBlock, TileNone:
		return TileColor(t)
	}
	mid := p.GrassMid()
	if state <= mid {
		if mid <= 0 {
			return toRGBA(grassColor)
		}
		return toRGBA(blendColors(dryColor, grassColor, state/mid))
	}
	span := StateMax - mid
	if span <= 0 {
		return toRGBA(snowColor)
	}
	return toRGBA(blendColors(grassColor, snowColor, (state-mid)/span))
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
