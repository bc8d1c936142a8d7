package world

import "github.com/go-gl/mathgl/mgl64"

// Footprint insets as fractions of the tile size. The footprint is the strip
// near the base of the sprite that collides with blocks.
const (
	footprintInsetX = 0.2
	footprintTop    = 0.6
)

// Footprint returns the colliding rectangle of a player sprite whose top-left
// corner is at pos.
func (w *World) Footprint(pos mgl64.Vec2) Rect {
	ts := w.tileSize
	return Rect{
		Min: mgl64.Vec2{pos.X() + ts*footprintInsetX, pos.Y() + ts*footprintTop},
		Max: mgl64.Vec2{pos.X() + ts*(1-footprintInsetX), pos.Y() + ts},
	}
}

// TryMove reports whether the player sprite may occupy pos without its
// footprint intersecting any block.
func (w *World) TryMove(pos mgl64.Vec2) bool {
	fp := w.Footprint(pos)
	for _, b := range w.blocks {
		if fp.Overlaps(b) {
			return false
		}
	}
	return true
}

// movePlayer applies delta one axis at a time so blocked diagonal input still
// slides along the free axis, then clamps the result to the grid.
func (w *World) movePlayer(delta mgl64.Vec2) {
	pos := w.player.Pos
	if delta.X() != 0 {
		if next := (mgl64.Vec2{pos.X() + delta.X(), pos.Y()}); w.TryMove(next) {
			pos = next
		}
	}
	if delta.Y() != 0 {
		if next := (mgl64.Vec2{pos.X(), pos.Y() + delta.Y()}); w.TryMove(next) {
			pos = next
		}
	}
	maxX := float64(w.w-1) * w.tileSize
	maxY := float64(w.h-1) * w.tileSize
	w.player.Pos = mgl64.Vec2{clampFloat(pos.X(), 0, maxX), clampFloat(pos.Y(), 0, maxY)}
}
