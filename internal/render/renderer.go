//go:build ebiten

package render

import (
	"image/color"

	"spring-guardian/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads one pixel per tile and scales the image up to the tile
// size when drawing.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
	return gp
}

// Blit uploads the tile colours and draws them at tileSize pixels per tile.
func (gp *GridPainter) Blit(dst *ebiten.Image, colors []color.RGBA, tileSize float64) {
	if len(colors) != gp.w*gp.h || len(colors) == 0 {
		return
	}
	fillRGBA(gp.buf, colors)
	gp.draw(dst, tileSize)
}

// BlitHeat draws the continuous tile state as a translucent heat map.
func (gp *GridPainter) BlitHeat(dst *ebiten.Image, states []float64, types []world.TileType, tileSize float64, alpha uint8) {
	if len(states) != gp.w*gp.h || len(types) != len(states) || len(states) == 0 {
		return
	}
	fillHeatRGBA(gp.buf, states, types, alpha)
	gp.draw(dst, tileSize)
}

func (gp *GridPainter) draw(dst *ebiten.Image, tileSize float64) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(tileSize, tileSize)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
