//go:build ebiten

package render

import (
	"image/color"

	"spring-guardian/internal/fx"
	"spring-guardian/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playerColor   = color.RGBA{R: 240, G: 214, B: 120, A: 255}
	deadColor     = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	outlineColor  = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	grabbedColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	crosshairTint = color.RGBA{R: 255, G: 255, B: 255, A: 180}
)

// DrawElementals draws every agent as a disc, staffs as upright bars.
func DrawElementals(dst *ebiten.Image, w *world.World) {
	ts := float32(w.TileSize())
	for _, e := range w.Elementals() {
		x, y := float32(e.Pos.X()), float32(e.Pos.Y())
		c := world.KindColor(e.Kind)
		if e.Kind.IsStaff() {
			vector.DrawFilledRect(dst, x-ts*0.1, y-ts*0.4, ts*0.2, ts*0.8, c, false)
			vector.StrokeRect(dst, x-ts*0.1, y-ts*0.4, ts*0.2, ts*0.8, 1, outlineColor, false)
			continue
		}
		vector.DrawFilledCircle(dst, x, y, ts*0.3, c, true)
		stroke := outlineColor
		if e.Status == world.StatusGrabbed {
			stroke = grabbedColor
		}
		vector.StrokeCircle(dst, x, y, ts*0.3, 2, stroke, true)
	}
}

// DrawPlayer draws the player's sprite box and its collision footprint.
func DrawPlayer(dst *ebiten.Image, w *world.World) {
	p := w.Player()
	ts := float32(w.TileSize())
	c := playerColor
	if p.Health.Dead {
		c = deadColor
	}
	x, y := float32(p.Pos.X()), float32(p.Pos.Y())
	vector.DrawFilledRect(dst, x+ts*0.25, y+ts*0.1, ts*0.5, ts*0.8, c, false)
	vector.StrokeRect(dst, x+ts*0.25, y+ts*0.1, ts*0.5, ts*0.8, 1, outlineColor, false)
}

// DrawHoming marks where a held staff is steering its elementals.
func DrawHoming(dst *ebiten.Image, w *world.World) {
	target, ok := w.HomingTarget()
	if !ok {
		return
	}
	x, y := float32(target.X()), float32(target.Y())
	const arm = 8
	vector.StrokeLine(dst, x-arm, y, x+arm, y, 2, crosshairTint, true)
	vector.StrokeLine(dst, x, y-arm, x, y+arm, 2, crosshairTint, true)
	vector.StrokeCircle(dst, x, y, arm*1.5, 1, crosshairTint, true)
}

// DrawFades draws the fades of one layer. Screen fades with an empty
// rectangle cover the whole destination.
func DrawFades(dst *ebiten.Image, fades []fx.Fade) {
	b := dst.Bounds()
	for _, f := range fades {
		a := f.Alpha()
		if a <= 0 {
			continue
		}
		r := f.Rect
		if r.Empty() {
			r = b
		}
		c := color.RGBA{
			R: uint8(float64(f.Color.R) * a),
			G: uint8(float64(f.Color.G) * a),
			B: uint8(float64(f.Color.B) * a),
			A: uint8(255 * a),
		}
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	}
}

// DrawParticles draws the live particles.
func DrawParticles(dst *ebiten.Image, particles []fx.Particle) {
	for _, p := range particles {
		vector.DrawFilledCircle(dst, float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Radius), p.Color, true)
	}
}
