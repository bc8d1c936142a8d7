//go:build !ebiten

package app

import (
	"fmt"

	"spring-guardian/internal/audio"
	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"
	"spring-guardian/internal/level"
	"spring-guardian/internal/world"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*fx.Manager, *audio.Manager, int) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Attach is a no-op placeholder.
func (g *Game) Attach(*game.Session) {}

// LevelLoaded is a no-op placeholder.
func (g *Game) LevelLoaded(*level.Level, *world.World) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
