package level

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
)

// Space selects the coordinate system an annotation is positioned in.
type Space uint8

const (
	// SpaceScreen annotations are fixed to the screen.
	SpaceScreen Space = iota
	// SpaceWorld annotations are anchored in world pixels and pan with the level.
	SpaceWorld
)

// Annotation is one line of tutorial text.
type Annotation struct {
	Space Space
	X, Y  int
	Text  string
}

// ParseAnnotations reads tutorial directives of the form
// "<tag>,<x>,<y>]<text>". Blank lines and lines starting with '#' are
// ignored; malformed lines are logged and skipped.
func ParseAnnotations(r io.Reader, name string, log *slog.Logger) ([]Annotation, error) {
	log = orDefault(log)
	var out []Annotation
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a, err := parseAnnotation(text)
		if err != nil {
			log.Warn("skipping tutorial line", "file", name, "line", line, "err", err)
			continue
		}
		out = append(out, a)
	}
	return out, scanner.Err()
}

var (
	errNoTextMarker = errors.New("missing ']' before text")
	errHeaderFields = errors.New("header must be <tag>,<x>,<y>")
	errUnknownTag   = errors.New("tag must contain 'u' or 'w'")
)

func parseAnnotation(line string) (Annotation, error) {
	head, text, ok := strings.Cut(line, "]")
	if !ok {
		return Annotation{}, errNoTextMarker
	}
	parts := strings.Split(head, ",")
	if len(parts) != 3 {
		return Annotation{}, errHeaderFields
	}
	var a Annotation
	switch tag := strings.TrimSpace(parts[0]); {
	case strings.Contains(tag, "u"):
		a.Space = SpaceScreen
	case strings.Contains(tag, "w"):
		a.Space = SpaceWorld
	default:
		return Annotation{}, errUnknownTag
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Annotation{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Annotation{}, err
	}
	a.X, a.Y = x, y
	a.Text = strings.TrimSpace(text)
	return a, nil
}

func loadAnnotations(fsys fs.FS, name string, log *slog.Logger) ([]Annotation, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		orDefault(log).Debug("no tutorial for level", "file", name)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseAnnotations(f, name, log)
}
