package term

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"spring-guardian/internal/fx"
	"spring-guardian/internal/game"
	"spring-guardian/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	fsys := fstest.MapFS{
		"level_1_ground.csv":   {Data: []byte("0,0,0,0\n0,1,1,0\n0,0,3,0\n")},
		"level_1_entities.csv": {Data: []byte("1,0,0,0\n0,0,0,2\n0,0,0,0\n")},
		"level_1_tutorial.txt": {Data: []byte("w,40,8]hi\nu,0,0]read me\n")},
	}
	s, err := game.NewSession(fsys, game.Options{
		Base:   world.DefaultConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewDrawsStatusMapAndEntities(t *testing.T) {
	s := newSession(t)
	screen := newScreen(t)
	NewView(screen, fx.NewManager(1)).Draw(s)

	if got := rowText(screen, 0, 80); !strings.Contains(got, "Spring Dominance") || !strings.Contains(got, "Spring Tiles: 3 / 12 (25.00%)") {
		t.Fatalf("status row = %q", got)
	}
	if got := rowText(screen, 1, 80); !strings.Contains(got, "Level 1") || !strings.Contains(got, "Health: 100 / 100") {
		t.Fatalf("second row = %q", got)
	}
	if r, _, _, _ := screen.GetContent(1, MapTop); r != '@' {
		t.Fatalf("player glyph = %q", r)
	}
	if r, _, _, _ := screen.GetContent(3*CellsPerTile, MapTop+1); r != 'F' {
		t.Fatalf("fire glyph = %q", r)
	}
	_, _, style, _ := screen.GetContent(2*CellsPerTile, MapTop+2)
	_, bg, _ := style.Decompose()
	if bg != rgb(world.TileColor(world.TileBlock)) {
		t.Fatalf("block tile background = %v", bg)
	}
	if got := rowText(screen, MapTop+3+1, 20); !strings.HasPrefix(got, "read me") {
		t.Fatalf("screen note row = %q", got)
	}
	if got := rowText(screen, MapTop, 8); !strings.Contains(got, "hi") {
		t.Fatalf("world note should sit on its tile, row = %q", got)
	}
}

func TestCellWorldMapping(t *testing.T) {
	s := newSession(t)
	w := s.World()
	pos, ok := CellToWorld(w, 5, MapTop+1)
	if !ok || pos != w.TileCenter(2, 1) {
		t.Fatalf("CellToWorld = %v, %v", pos, ok)
	}
	if _, ok := CellToWorld(w, 5, 0); ok {
		t.Fatalf("status rows are off the map")
	}
	if _, ok := CellToWorld(w, 4*CellsPerTile, MapTop); ok {
		t.Fatalf("cells right of the map are off the map")
	}
	x, y := WorldToCell(w, w.TileCenter(3, 2))
	if x != 3*CellsPerTile || y != MapTop+2 {
		t.Fatalf("WorldToCell = %d,%d", x, y)
	}
}

func TestKeysHoldAndOneShots(t *testing.T) {
	var k Keys
	t0 := time.Unix(100, 0)
	k.handle(tcell.KeyRight, 0, t0)
	k.handle(tcell.KeyRune, 'w', t0)
	k.handle(tcell.KeyRune, ' ', t0)
	k.handle(tcell.KeyEnter, 0, t0)

	in := k.Input(t0.Add(HoldWindow / 2))
	if in.Move != (mgl64.Vec2{1, -1}) || !in.Interact || !in.Confirm {
		t.Fatalf("first input = %+v", in)
	}
	in = k.Input(t0.Add(HoldWindow / 2))
	if in.Interact || in.Confirm {
		t.Fatalf("one-shot presses should be consumed")
	}
	if in = k.Input(t0.Add(HoldWindow)); in.Move != (mgl64.Vec2{}) {
		t.Fatalf("keys should release after the hold window, move = %v", in.Move)
	}
	if a := k.handle(tcell.KeyRune, 'q', t0); a != ActionQuit {
		t.Fatalf("q should quit, got %v", a)
	}
	k.Point(mgl64.Vec2{3, 4}, true)
	if in = k.Input(t0); !in.HasCursor || in.Cursor != (mgl64.Vec2{3, 4}) {
		t.Fatalf("pointer not forwarded: %+v", in)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	s := newSession(t)
	screen := newScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, screen, s, Options{TPS: 60, Effects: fx.NewManager(1)}) }()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if r, _, _, _ := screen.GetContent(1, MapTop); r != '@' {
		t.Fatalf("Run should have drawn the player, got %q", r)
	}
}
