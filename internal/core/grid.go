package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Negative dimensions are
// treated as zero so degenerate levels still produce a usable (empty) grid.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Len reports the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value stored at (x, y). Callers must check InBounds first.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y). Callers must check InBounds first.
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Window returns the inclusive cell range of a square window of half-width r
// centred on (cx, cy), clamped to the grid bounds. ok is false when the window
// lies completely outside the grid.
func (g *Grid[T]) Window(cx, cy, r int) (x0, y0, x1, y1 int, ok bool) {
	if r < 0 {
		r = 0
	}
	x0, y0 = max(cx-r, 0), max(cy-r, 0)
	x1, y1 = min(cx+r, g.W-1), min(cy+r, g.H-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
