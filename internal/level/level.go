// Package level loads level layers, tutorial text and per-level tuning from
// an fs.FS. Default levels are embedded in the binary.
package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"slices"
	"strconv"

	"spring-guardian/internal/world"
)

var (
	// ErrNoLevels is returned when a level directory holds no ground layers.
	ErrNoLevels = errors.New("no levels found")
	// ErrLevelNotFound is returned when a requested level number has no ground layer.
	ErrLevelNotFound = errors.New("level not found")
)

//go:embed levels
var embedded embed.FS

// Embedded returns the default level set shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "levels")
	if err != nil {
		panic(err)
	}
	return sub
}

// Level is one fully loaded level.
type Level struct {
	Number      int
	Title       string
	Ground      [][]int
	Entities    [][]int
	Annotations []Annotation
	Config      world.Config
}

// GroundFile returns the ground layer name for level n.
func GroundFile(n int) string { return fmt.Sprintf("level_%d_ground.csv", n) }

// EntitiesFile returns the entity layer name for level n.
func EntitiesFile(n int) string { return fmt.Sprintf("level_%d_entities.csv", n) }

// TutorialFile returns the tutorial text name for level n.
func TutorialFile(n int) string { return fmt.Sprintf("level_%d_tutorial.txt", n) }

// TuningFile returns the optional tuning file name for level n.
func TuningFile(n int) string { return fmt.Sprintf("level_%d.yaml", n) }

var groundPattern = regexp.MustCompile(`^level_(\d+)_ground\.csv$`)

// Discover lists the level numbers present in fsys in ascending order.
func Discover(fsys fs.FS) ([]int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var numbers []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := groundPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, ErrNoLevels
	}
	slices.Sort(numbers)
	return numbers, nil
}

// Load reads level n from fsys. base supplies the tuning defaults that the
// level's YAML file overrides. A missing entity layer or tutorial yields an
// empty layer; a missing ground layer is ErrLevelNotFound.
func Load(fsys fs.FS, n int, base world.Config, log *slog.Logger) (*Level, error) {
	log = orDefault(log).With("level", n)
	if _, err := fs.Stat(fsys, GroundFile(n)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %d: %w", n, ErrLevelNotFound)
		}
		return nil, err
	}
	ground, err := loadMatrix(fsys, GroundFile(n), log)
	if err != nil {
		return nil, fmt.Errorf("level %d ground: %w", n, err)
	}
	entities, err := loadMatrix(fsys, EntitiesFile(n), log)
	if err != nil {
		return nil, fmt.Errorf("level %d entities: %w", n, err)
	}
	annotations, err := loadAnnotations(fsys, TutorialFile(n), log)
	if err != nil {
		return nil, fmt.Errorf("level %d tutorial: %w", n, err)
	}
	tuning, err := loadTuning(fsys, TuningFile(n))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}

	lvl := &Level{
		Number:      n,
		Title:       tuning.Title,
		Ground:      ground,
		Entities:    entities,
		Annotations: annotations,
		Config:      base.WithOverrides(tuning.Tuning),
	}
	if lvl.Title == "" {
		lvl.Title = fmt.Sprintf("Level %d", n)
	}
	lvl.validate(log)
	return lvl, nil
}

// validate logs the layer problems that World construction silently tolerates.
func (l *Level) validate(log *slog.Logger) {
	h := len(l.Ground)
	w := 0
	if h > 0 {
		w = len(l.Ground[0])
	}
	if w == 0 || h == 0 {
		log.Warn("level has an empty ground layer")
	}
	for y, row := range l.Ground {
		for x, code := range row {
			if code < world.GroundDry || code > world.GroundBlock {
				log.Warn("unknown ground code", "x", x, "y", y, "code", code)
			}
		}
	}
	players := 0
	for y, row := range l.Entities {
		for x, code := range row {
			if code == 0 {
				continue
			}
			if x >= w || y >= h {
				log.Warn("entity outside ground grid ignored", "x", x, "y", y, "code", code)
				continue
			}
			if code > world.EntityIceStaff {
				log.Warn("unknown entity code", "x", x, "y", y, "code", code)
			}
			if code == world.EntityPlayer {
				players++
				if players > 1 {
					log.Warn("duplicate player spawn ignored", "x", x, "y", y)
				}
			}
		}
	}
	if players == 0 {
		log.Warn("level has no player spawn")
	}
}

// World builds a fresh simulation for the level.
func (l *Level) World(sink world.Sink) *world.World {
	return world.New(l.Ground, l.Entities, l.Config, sink)
}
