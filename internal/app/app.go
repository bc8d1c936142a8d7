//go:build ebiten

package app

import (
	"image/color"

	"spring-guardian/internal/audio"
	"spring-guardian/internal/core"
	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"
	"spring-guardian/internal/level"
	"spring-guardian/internal/render"
	"spring-guardian/internal/ui"
	"spring-guardian/internal/world"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	effects *fx.Manager
	sound   *audio.Manager

	painter *render.GridPainter
	view    *ebiten.Image
	hud     *ui.HUD
	panel   *ui.Panel
	overlay *ui.Overlay
	step    *core.FixedStep

	paused   bool
	tickOnce bool
}

// New constructs a Game. Call Attach with a session before running it.
func New(effects *fx.Manager, sound *audio.Manager, tps int) *Game {
	return &Game{
		effects: effects,
		sound:   sound,
		hud:     ui.NewHUD(),
		panel:   ui.NewPanel(panelWidth),
		overlay: ui.NewOverlay(),
		step:    core.NewFixedStep(tps),
	}
}

// Attach sets the session the game drives.
func (g *Game) Attach(s *game.Session) {
	g.session = s
	g.LevelLoaded(s.Level(), s.World())
}

// LevelLoaded resets per-level presentation state. It is the session's
// OnLoad hook.
func (g *Game) LevelLoaded(_ *level.Level, w *world.World) {
	g.effects.Reset()
	size := w.Size()
	if g.painter == nil {
		g.painter = render.NewGridPainter(size.W, size.H)
	} else if pw, ph := g.painter.Size(); pw != size.W || ph != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	vw, vh := viewSize(w)
	if g.view == nil || g.view.Bounds().Dx() != vw || g.view.Bounds().Dy() != vh {
		g.view = ebiten.NewImage(max(vw, 1), max(vh, 1))
	}
	g.overlay.Attach(w)
	g.panel.Attach(w)
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.SetMuted(!g.sound.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.ToggleHeat()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.overlay.ToggleText()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Toggle()
	}
	w, _ := g.Layout(0, 0)
	g.panel.Update(w)

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false
	dt := g.step.Delta()
	if err := g.session.Update(dt, g.input()); err != nil {
		return err
	}
	g.effects.Update(dt)
	g.sound.SetAmbience(g.session.World().Dominance())
	return nil
}

func (g *Game) input() game.Input {
	var in game.Input
	var move mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move[1]++
	}
	in.Move = move
	in.Interact = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)

	mx, my := ebiten.CursorPosition()
	vw, vh := viewSize(g.session.World())
	vy := my - ui.StripHeight
	if mx >= 0 && mx < vw && vy >= 0 && vy < vh && !g.panel.Contains(mx, my) {
		in.Cursor = mgl64.Vec2{float64(mx), float64(vy)}
		in.HasCursor = true
	}
	return in
}

// Draw renders the level view, effects and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.session.World()
	notes := g.session.Level().Annotations

	g.view.Fill(color.Black)
	g.painter.Blit(g.view, w.Colors(), w.TileSize())
	render.DrawFades(g.view, g.effects.Fades(fx.LayerWorld))
	g.overlay.DrawWorld(g.view, w, notes)
	render.DrawElementals(g.view, w)
	render.DrawPlayer(g.view, w)
	render.DrawHoming(g.view, w)
	render.DrawParticles(g.view, g.effects.Particles())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, ui.StripHeight)
	screen.DrawImage(g.view, op)

	g.overlay.DrawScreen(screen, notes)
	render.DrawFades(screen, g.effects.Fades(fx.LayerScreen))
	g.hud.Draw(screen, g.session)
	g.panel.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := viewSize(g.session.World())
	return max(w, minWidth), h + ui.StripHeight
}

func viewSize(w *world.World) (int, int) {
	size := w.Size()
	ts := int(w.TileSize())
	return size.W * ts, size.H * ts
}

const (
	panelWidth = 260
	minWidth   = 480
)
