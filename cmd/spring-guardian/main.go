//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"spring-guardian/internal/app"
	"spring-guardian/internal/audio"
	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"
	"spring-guardian/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatalf("spring-guardian: %v", err)
	}

	out, err := audio.OpenSpeaker()
	if err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
		out = audio.NopOutput{}
	} else {
		defer audio.CloseSpeaker()
	}
	sound := audio.NewManager(out, cfg.Seed, logger)
	sound.SetMuted(cfg.Mute)
	effects := fx.NewManager(cfg.Seed)

	g := app.New(effects, sound, cfg.TPS)
	session, err := game.NewSession(cfg.LevelFS(), game.Options{
		Base:   cfg.World(),
		Sink:   world.Sinks{effects, sound},
		OnLoad: g.LevelLoaded,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("spring-guardian: %v", err)
	}
	start, err := cfg.StartIndex(session.Levels())
	if err != nil {
		log.Fatalf("spring-guardian: %v", err)
	}
	if start != 0 {
		if err := session.Jump(start); err != nil {
			log.Fatalf("spring-guardian: %v", err)
		}
	}
	g.Attach(session)

	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("Spring Guardian")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
