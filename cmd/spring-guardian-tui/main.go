package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"spring-guardian/internal/app"
	"spring-guardian/internal/audio"
	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"
	"spring-guardian/internal/level"
	"spring-guardian/internal/term"
	"spring-guardian/internal/world"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log", "", "write logs to this file (the terminal is in use)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("spring-guardian-tui: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := cfg.Logger(logOut)
	if err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}

	var out audio.Output = audio.NopOutput{}
	if !cfg.Mute {
		if speakerOut, err := audio.OpenSpeaker(); err != nil {
			logger.Warn("audio unavailable, running silent", "err", err)
		} else {
			out = speakerOut
			defer audio.CloseSpeaker()
		}
	}
	sound := audio.NewManager(out, cfg.Seed, logger)
	effects := fx.NewManager(cfg.Seed)

	session, err := game.NewSession(cfg.LevelFS(), game.Options{
		Base:   cfg.World(),
		Sink:   world.Sinks{effects, sound},
		OnLoad: func(_ *level.Level, _ *world.World) { effects.Reset() },
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}
	start, err := cfg.StartIndex(session.Levels())
	if err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}
	if err := session.Jump(start); err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.Run(ctx, screen, session, term.Options{TPS: cfg.TPS, Effects: effects, Sound: sound})
	screen.Fini()
	if err != nil {
		log.Fatalf("spring-guardian-tui: %v", err)
	}
}
