//go:build ebiten

package ui

import (
	"image/color"

	"spring-guardian/internal/level"
	"spring-guardian/internal/render"
	"spring-guardian/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws tutorial annotations and the optional state heat map.
type Overlay struct {
	heat     *render.GridPainter
	showHeat bool
	showText bool
}

var annotationShadow = color.RGBA{A: 160}

// NewOverlay constructs an overlay with tutorial text shown.
func NewOverlay() *Overlay { return &Overlay{showText: true} }

// Attach sizes the heat map for a new world.
func (o *Overlay) Attach(w *world.World) {
	size := w.Size()
	if o.heat != nil {
		if gw, gh := o.heat.Size(); gw == size.W && gh == size.H {
			return
		}
	}
	o.heat = render.NewGridPainter(size.W, size.H)
}

// ToggleHeat shows or hides the continuous-state heat map.
func (o *Overlay) ToggleHeat() { o.showHeat = !o.showHeat }

// ToggleText shows or hides tutorial annotations.
func (o *Overlay) ToggleText() { o.showText = !o.showText }

// DrawWorld draws the world-space layer onto the level view.
func (o *Overlay) DrawWorld(view *ebiten.Image, w *world.World, notes []level.Annotation) {
	if o.showHeat && o.heat != nil {
		o.heat.BlitHeat(view, w.States(), w.Types(), w.TileSize(), 150)
	}
	if o.showText {
		drawAnnotations(view, notes, level.SpaceWorld)
	}
}

// DrawScreen draws the screen-space annotations.
func (o *Overlay) DrawScreen(screen *ebiten.Image, notes []level.Annotation) {
	if o.showText {
		drawAnnotations(screen, notes, level.SpaceScreen)
	}
}

func drawAnnotations(dst *ebiten.Image, notes []level.Annotation, space level.Space) {
	face := basicfont.Face7x13
	for _, n := range notes {
		if n.Space != space || n.Text == "" {
			continue
		}
		b := text.BoundString(face, n.Text)
		vector.DrawFilledRect(dst, float32(n.X-4), float32(n.Y+b.Min.Y-4), float32(b.Dx()+8), float32(b.Dy()+8), annotationShadow, false)
		text.Draw(dst, n.Text, face, n.X, n.Y, hudText)
	}
}
