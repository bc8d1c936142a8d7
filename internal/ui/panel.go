//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"spring-guardian/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// tunable is the world surface the panel drives.
type tunable interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.FloatParameterSetter
}

// Panel is the parameter debug panel drawn along the right edge.
type Panel struct {
	target   tunable
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	controls []controlState
	offsetX  int
	visible  bool
}

type controlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewPanel constructs a hidden panel of the given width.
func NewPanel(width int) *Panel {
	p := &Panel{width: max(width, 0)}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Attach points the panel at a new world.
func (p *Panel) Attach(target tunable) {
	p.target = target
	controls := target.ParameterControls()
	p.controls = make([]controlState, len(controls))
	for i, ctrl := range controls {
		p.controls[i] = controlState{control: ctrl, value: "--"}
	}
	p.layoutControls()
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() { p.visible = !p.visible }

// Visible reports whether the panel is drawn.
func (p *Panel) Visible() bool { return p.visible }

// Update refreshes values and handles clicks on the +/- buttons.
func (p *Panel) Update(screenWidth int) {
	if p == nil || !p.visible || p.target == nil {
		return
	}
	p.offsetX = screenWidth - p.width
	p.refreshValues()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < p.offsetX {
		return
	}
	px := mx - p.offsetX
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if image.Pt(px, my).In(state.minusRect) {
			p.adjust(state, -1)
			return
		}
		if image.Pt(px, my).In(state.plusRect) {
			p.adjust(state, 1)
			return
		}
	}
}

// Contains reports whether a screen point lies over the visible panel.
func (p *Panel) Contains(x, y int) bool {
	return p != nil && p.visible && x >= p.offsetX && y >= panelTop
}

func (p *Panel) refreshValues() {
	snapshot := p.target.Parameters()
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = FormatControlValue(state.control, parsed)
		state.hasValue = true
	}
}

func (p *Panel) adjust(state *controlState, direction int) {
	target, ok := Nudge(state.control, state.floatValue, direction)
	if !ok {
		return
	}
	if p.target.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = FormatControlValue(state.control, target)
	}
}

// Draw paints the panel when visible.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p == nil || !p.visible || p.width <= 0 {
		return
	}
	height := screen.Bounds().Dy() - panelTop
	if height <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dy() != height {
		p.panel = ebiten.NewImage(p.width, height)
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	p.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.offsetX), panelTop)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawControls() {
	face := basicfont.Face7x13
	text.Draw(p.panel, "Tuning", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range p.controls {
		state := &p.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(p.panel, state.control.Label, face, panelPadding, labelY, hudText)
		valueColor := hudText
		if !state.hasValue {
			valueColor = hudMuted
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(p.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)
		_, canDown := Nudge(state.control, state.floatValue, -1)
		_, canUp := Nudge(state.control, state.floatValue, 1)
		p.drawButton(state.minusRect, "-", state.hasValue && canDown)
		p.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}

func (p *Panel) layoutControls() {
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

const (
	panelTop       = StripHeight
	lineHeight     = 26
	buttonSize     = 18
	buttonGap      = 6
	headerBaseline = 12
	labelBaseline  = 17
	controlsTop    = panelPadding + headerBaseline + 10
)
