package term

import (
	"fmt"
	"image/color"
	"strings"

	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"
	"spring-guardian/internal/level"
	"spring-guardian/internal/render"
	"spring-guardian/internal/ui"
	"spring-guardian/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// CellsPerTile is the number of terminal columns one tile spans.
	CellsPerTile = 2
	// MapTop is the first terminal row of the map; the status lines sit above.
	MapTop   = 2
	barCells = 20
)

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	mutedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	glyphs     = map[world.Kind]rune{
		world.KindFire:      'F',
		world.KindIce:       'I',
		world.KindSpring:    'S',
		world.KindFireStaff: 'f',
		world.KindIceStaff:  'i',
	}
)

// View paints a session onto a tcell screen.
type View struct {
	screen   tcell.Screen
	effects  *fx.Manager
	showHeat bool
}

// NewView returns a view drawing to screen. effects may be nil.
func NewView(screen tcell.Screen, effects *fx.Manager) *View {
	return &View{screen: screen, effects: effects}
}

// ToggleHeat switches the map between tile colours and the raw state heat map.
func (v *View) ToggleHeat() { v.showHeat = !v.showHeat }

// CellToWorld maps a terminal cell to the world-pixel centre of its tile.
func CellToWorld(w *world.World, x, y int) (mgl64.Vec2, bool) {
	tx, ty := x/CellsPerTile, y-MapTop
	size := w.Size()
	if x < 0 || tx >= size.W || ty < 0 || ty >= size.H {
		return mgl64.Vec2{}, false
	}
	return w.TileCenter(tx, ty), true
}

// WorldToCell maps a world-pixel position to the left cell of its tile.
func WorldToCell(w *world.World, pos mgl64.Vec2) (int, int) {
	tx, ty := w.TileCoords(pos)
	return tx * CellsPerTile, ty + MapTop
}

// Draw renders the status lines, map, entities and tutorial text.
func (v *View) Draw(s *game.Session) {
	v.screen.Clear()
	w := s.World()
	v.drawStatus(s)
	v.drawMap(w)
	v.drawParticles(w)
	v.drawEntities(w)
	v.drawNotes(w, s.Level().Annotations)
	if msg := ui.Banner(s.State()); msg != "" {
		size := w.Size()
		col := max(0, (size.W*CellsPerTile-len(msg)-2)/2)
		v.text(col, MapTop+size.H, " "+msg+" ", textStyle.Reverse(true))
	}
	v.screen.Show()
}

func (v *View) drawStatus(s *game.Session) {
	w := s.World()
	size := w.Size()
	filled := int(w.Dominance()*barCells + 0.5)
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat(".", barCells-filled) + "]"
	v.text(0, 0, fmt.Sprintf("Spring Dominance %s %s", bar, ui.TallyText(w.GrassTiles(), size.W*size.H)), textStyle)
	lvl := s.Level()
	v.text(0, 1, fmt.Sprintf("%s  %s", ui.LevelText(lvl.Number, lvl.Title), ui.HealthText(w.Player().Health)), mutedStyle)
}

func (v *View) drawMap(w *world.World) {
	size := w.Size()
	colors := w.Colors()
	states := w.States()
	types := w.Types()
	tint, tintAlpha := v.screenTint()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			c := colors[idx]
			if v.showHeat && types[idx] != world.TileBlock && types[idx] != world.TileNone {
				c = render.Heat(states[idx])
			}
			c = v.blendWorldFades(c, x, y, w)
			if tintAlpha > 0 {
				c = blend(c, tint, tintAlpha)
			}
			style := tcell.StyleDefault.Background(rgb(c))
			for dx := 0; dx < CellsPerTile; dx++ {
				v.screen.SetContent(x*CellsPerTile+dx, y+MapTop, ' ', nil, style)
			}
		}
	}
}

func (v *View) blendWorldFades(c color.RGBA, x, y int, w *world.World) color.RGBA {
	if v.effects == nil {
		return c
	}
	rect := w.TileRect(x, y)
	for _, f := range v.effects.Fades(fx.LayerWorld) {
		if f.Rect == rect {
			c = blend(c, f.Color, f.Alpha()*0.5)
		}
	}
	return c
}

func (v *View) screenTint() (color.RGBA, float64) {
	if v.effects == nil {
		return color.RGBA{}, 0
	}
	var tint color.RGBA
	alpha := 0.0
	for _, f := range v.effects.Fades(fx.LayerScreen) {
		if a := f.Alpha(); a > alpha {
			tint, alpha = f.Color, a
		}
	}
	return tint, alpha
}

func (v *View) drawParticles(w *world.World) {
	if v.effects == nil {
		return
	}
	for _, p := range v.effects.Particles() {
		x, y := WorldToCell(w, p.Pos)
		if !v.onMap(w, x, y) {
			continue
		}
		_, _, style, _ := v.screen.GetContent(x, y)
		v.screen.SetContent(x, y, '*', nil, style.Foreground(rgb(p.Color)))
	}
}

func (v *View) drawEntities(w *world.World) {
	for _, e := range w.Elementals() {
		x, y := WorldToCell(w, e.Pos)
		if !v.onMap(w, x, y) {
			continue
		}
		_, _, style, _ := v.screen.GetContent(x, y)
		style = style.Foreground(rgb(world.KindColor(e.Kind))).Bold(true)
		if e.Status == world.StatusGrabbed {
			style = style.Underline(true)
		}
		v.screen.SetContent(x, y, glyphs[e.Kind], nil, style)
	}
	if target, ok := w.HomingTarget(); ok {
		x, y := WorldToCell(w, target)
		if v.onMap(w, x, y) {
			_, _, style, _ := v.screen.GetContent(x+1, y)
			v.screen.SetContent(x+1, y, '+', nil, style.Foreground(tcell.ColorWhite))
		}
	}
	x, y := WorldToCell(w, w.PlayerCenter())
	if v.onMap(w, x, y) {
		_, _, style, _ := v.screen.GetContent(x+1, y)
		glyph := '@'
		if w.Player().Health.Dead {
			glyph = 'x'
		}
		v.screen.SetContent(x+1, y, glyph, nil, style.Foreground(tcell.ColorYellow).Bold(true))
	}
}

// drawNotes places world annotations on their tile and lists screen
// annotations below the map.
func (v *View) drawNotes(w *world.World, notes []level.Annotation) {
	row := MapTop + w.Size().H + 1
	for _, n := range notes {
		switch n.Space {
		case level.SpaceWorld:
			x, y := WorldToCell(w, mgl64.Vec2{float64(n.X), float64(n.Y)})
			if v.onMap(w, x, y) {
				v.text(x, y, n.Text, mutedStyle)
			}
		case level.SpaceScreen:
			v.text(0, row, n.Text, mutedStyle)
			row++
		}
	}
}

func (v *View) onMap(w *world.World, x, y int) bool {
	size := w.Size()
	return x >= 0 && x < size.W*CellsPerTile && y >= MapTop && y < MapTop+size.H
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func blend(base, over color.RGBA, a float64) color.RGBA {
	a = min(max(a, 0), 1)
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-a) + float64(y)*a + 0.5) }
	return color.RGBA{R: mix(base.R, over.R), G: mix(base.G, over.G), B: mix(base.B, over.B), A: 255}
}
