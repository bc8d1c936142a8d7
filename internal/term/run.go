package term

import (
	"context"
	"time"

	"spring-guardian/internal/audio"
	"spring-guardian/internal/core"
	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 33 * time.Millisecond
	// maxCatchUp bounds the simulation steps run for one frame.
	maxCatchUp = 8
)

// Options configure Run.
type Options struct {
	TPS     int
	Effects *fx.Manager
	Sound   *audio.Manager
}

// Run drives the session on screen until the player quits or ctx is done.
// The screen must already be initialised; Run does not finalise it.
func Run(ctx context.Context, screen tcell.Screen, s *game.Session, opts Options) error {
	screen.EnableMouse()
	screen.HideCursor()
	view := NewView(screen, opts.Effects)
	step := core.NewFixedStep(opts.TPS)
	var keys Keys

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	paused := false
	view.Draw(s)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.HandleKey(ev, time.Now()) {
				case ActionQuit:
					return nil
				case ActionPause:
					paused = !paused
				case ActionMute:
					if opts.Sound != nil {
						opts.Sound.SetMuted(!opts.Sound.Muted())
					}
				case ActionHeat:
					view.ToggleHeat()
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				pos, ok := CellToWorld(s.World(), x, y)
				keys.Point(pos, ok)
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			for i := 0; i < maxCatchUp && step.ShouldStep(); i++ {
				if paused {
					continue
				}
				if err := s.Update(step.Delta(), keys.Input(now)); err != nil {
					return err
				}
				if opts.Effects != nil {
					opts.Effects.Update(step.Delta())
				}
			}
			if opts.Sound != nil {
				opts.Sound.SetAmbience(s.World().Dominance())
			}
			view.Draw(s)
		}
	}
}
