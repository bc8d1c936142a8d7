package app

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"spring-guardian/internal/level"
	"spring-guardian/internal/world"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Levels   string
	Level    int
	TPS      int
	Seed     int64
	Mute     bool
	LogLevel string
	Set      Overrides
}

// Overrides collects repeated -set key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("override %q: want key=value", s)
	}
	o[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Level: 1, TPS: 60, Seed: world.DefaultConfig().Seed, LogLevel: "info", Set: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Levels, "levels", c.Levels, "directory of level files (default: built-in levels)")
	fs.IntVar(&c.Level, "level", c.Level, "level number to start on")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for elemental wandering")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound muted")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.Var(c.Set, "set", "world tuning override key=value (repeatable)")
}

// LevelFS returns the level source selected by -levels.
func (c *Config) LevelFS() fs.FS {
	if c.Levels == "" {
		return level.Embedded()
	}
	return os.DirFS(c.Levels)
}

// World returns the base world configuration with -seed and -set applied.
func (c *Config) World() world.Config {
	cfg := world.DefaultConfig()
	cfg.Seed = c.Seed
	return cfg.WithOverrides(c.Set)
}

// Logger builds a text logger writing to out at the configured level.
func (c *Config) Logger(out io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), nil
}

// StartIndex maps -level onto a position in the discovered level list.
func (c *Config) StartIndex(levels []int) (int, error) {
	for i, n := range levels {
		if n == c.Level {
			return i, nil
		}
	}
	return 0, fmt.Errorf("level %d: %w", c.Level, level.ErrLevelNotFound)
}
