//go:build ebiten

package ui

import (
	"image/color"

	"spring-guardian/internal/game"
	"spring-guardian/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status strip along the top of the view and the state banner.
type HUD struct{}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	hudText       = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	hudMuted      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	barTrack      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	healthFill    = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

// Draw paints the status strip for the session's current world.
func (h *HUD) Draw(screen *ebiten.Image, s *game.Session) {
	if h == nil || s == nil {
		return
	}
	w := s.World()
	face := basicfont.Face7x13
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(width), StripHeight, hudBackground, false)

	size := w.Size()
	text.Draw(screen, "Spring Dominance", face, panelPadding, 16, hudText)
	drawBar(screen, panelPadding, 22, barWidth, barHeight, w.Dominance(), world.TileColor(world.TileGrass))
	text.Draw(screen, TallyText(w.GrassTiles(), size.W*size.H), face, panelPadding+barWidth+12, 32, hudText)

	hp := w.Player().Health
	ratio := 0.0
	if hp.Max > 0 {
		ratio = hp.Current / hp.Max
	}
	right := width - panelPadding - barWidth
	text.Draw(screen, HealthText(hp), face, right, 16, hudText)
	drawBar(screen, right, 22, barWidth, barHeight, ratio, healthFill)

	lvl := s.Level()
	label := LevelText(lvl.Number, lvl.Title)
	lw := text.BoundString(face, label).Dx()
	text.Draw(screen, label, face, (width-lw)/2, 16, hudMuted)

	if msg := Banner(s.State()); msg != "" {
		drawBanner(screen, msg)
	}
}

func drawBar(dst *ebiten.Image, x, y, w, h int, ratio float64, fill color.RGBA) {
	ratio = min(max(ratio, 0), 1)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), barTrack, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(float64(w)*ratio), float32(h), fill, false)
}

func drawBanner(dst *ebiten.Image, msg string) {
	face := basicfont.Face7x13
	b := dst.Bounds()
	bounds := text.BoundString(face, msg)
	boxW := bounds.Dx() + 2*panelPadding
	boxH := bounds.Dy() + 2*panelPadding
	x := (b.Dx() - boxW) / 2
	y := (b.Dy() - boxH) / 2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), hudBackground, false)
	text.Draw(dst, msg, face, x+panelPadding, y+panelPadding+bounds.Dy(), hudText)
}

// StripHeight is the height of the status strip above the level view.
const StripHeight = 40

const (
	barWidth     = 160
	barHeight    = 10
	panelPadding = 12
)
