package render

import (
	"image/color"
	"slices"
	"testing"

	"spring-guardian/internal/world"
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillRGBA(buf, []color.RGBA{{1, 2, 3, 4}, {5, 6, 7, 8}})
	if !slices.Equal(buf, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("unexpected buffer %v", buf)
	}
}

func TestFillHeatRGBA(t *testing.T) {
	buf := make([]byte, 16)
	states := []float64{0, 0.5, 1, 0.5}
	types := []world.TileType{world.TileDry, world.TileGrass, world.TileSnow, world.TileBlock}
	fillHeatRGBA(buf, states, types, 100)
	want := []byte{
		255, 0, 0, 100,
		0, 255, 0, 100,
		0, 0, 255, 100,
		0, 0, 0, 0,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("heat buffer = %v, want %v", buf, want)
	}
}
