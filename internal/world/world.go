package world

import (
	"image"
	"image/color"
	"math"

	"spring-guardian/internal/core"
	prng "spring-guardian/pkg/core"

	"github.com/go-gl/mathgl/mgl64"
)

// Ground layer codes.
const (
	GroundDry   = 0
	GroundGrass = 1
	GroundSnow  = 2
	GroundBlock = 3
)

// Entity layer codes.
const (
	EntityPlayer    = 1
	EntityFire      = 2
	EntityIce       = 3
	EntitySpring    = 4
	EntityFireStaff = 5
	EntityIceStaff  = 6
)

// World owns the tile grid, the agent registry and the player. It is
// single-threaded: every mutation happens inside Update or the exported step
// operations, and collaborators only ever receive events through the Sink.
type World struct {
	cfg Config

	w, h     int
	tileSize float64

	states *core.Grid[float64]
	types  *core.Grid[TileType]
	colors []color.RGBA
	blocks []Rect

	elementals []Elemental
	nextID     int
	player     Player

	grassTiles int
	dominance  float64

	homing  homing
	victory victoryLatch

	sink Sink
	rng  *prng.RNG
}

// homing is the transient target shared by every agent of an element while
// the matching staff is held. target is only meaningful while a flag is set.
type homing struct {
	fire, ice bool
	target    mgl64.Vec2
}

func (h homing) activeFor(k Kind) bool {
	return (k == KindFire && h.fire) || (k == KindIce && h.ice)
}

func (h homing) any() bool { return h.fire || h.ice }

type victoryLatch struct {
	latched bool
	elapsed float64
}

// New builds a world from the ground and entity code matrices. Rows of ground
// must already share a common width; entity cells outside the ground grid are
// ignored. The first classification pass runs here and emits no events.
func New(ground, entities [][]int, cfg Config, sink Sink) *World {
	if sink == nil {
		sink = NopSink{}
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultConfig().TileSize
	}
	height := len(ground)
	width := 0
	for _, row := range ground {
		width = max(width, len(row))
	}
	w := &World{
		cfg:      cfg,
		w:        width,
		h:        height,
		tileSize: float64(cfg.TileSize),
		states:   core.NewGrid[float64](width, height),
		types:    core.NewGrid[TileType](width, height),
		colors:   make([]color.RGBA, width*height),
		sink:     sink,
		rng:      prng.NewRNG(cfg.Seed),
	}
	w.player = Player{
		Speed:  cfg.Params.PlayerSpeed,
		Status: PlayerIdle,
		Health: Health{
			Current:       cfg.Params.MaxHealth,
			Max:           cfg.Params.MaxHealth,
			DamagePerTick: cfg.Params.DamagePerTick,
			UntilNextTick: cfg.Params.TickInterval,
			TickInterval:  cfg.Params.TickInterval,
		},
	}

	for y, row := range ground {
		for x := 0; x < width; x++ {
			code := GroundDry
			if x < len(row) {
				code = row[x]
			}
			w.loadTile(x, y, code)
		}
	}

	spawned := false
	for y, row := range entities {
		for x, code := range row {
			if !w.types.InBounds(x, y) {
				continue
			}
			centre := w.TileCenter(x, y)
			switch code {
			case EntityPlayer:
				if spawned {
					continue
				}
				spawned = true
				w.player.Pos = centre.Sub(mgl64.Vec2{w.tileSize / 2, w.tileSize / 2})
			case EntityFire:
				w.AddElemental(KindFire, centre)
			case EntityIce:
				w.AddElemental(KindIce, centre)
			case EntitySpring:
				w.AddElemental(KindSpring, centre)
			case EntityFireStaff:
				w.AddElemental(KindFireStaff, centre)
			case EntityIceStaff:
				w.AddElemental(KindIceStaff, centre)
			}
		}
	}

	w.classify(false)
	return w
}

func (w *World) loadTile(x, y, code int) {
	idx := w.types.Index(x, y)
	states := w.states.Cells()
	types := w.types.Cells()
	switch code {
	case GroundDry:
		states[idx], types[idx] = 0, TileDry
	case GroundGrass:
		states[idx], types[idx] = w.cfg.Params.GrassMid(), TileGrass
	case GroundSnow:
		states[idx], types[idx] = StateMax, TileSnow
	case GroundBlock:
		states[idx], types[idx] = 0, TileBlock
		origin := mgl64.Vec2{float64(x) * w.tileSize, float64(y) * w.tileSize}
		w.blocks = append(w.blocks, Rect{Min: origin, Max: origin.Add(mgl64.Vec2{w.tileSize, w.tileSize})})
	default:
		states[idx], types[idx] = 0, TileNone
	}
	w.colors[idx] = tileColor(states[idx], types[idx], w.cfg.Params)
}

// AddElemental registers a new agent centred at pos and returns its ID.
func (w *World) AddElemental(kind Kind, pos mgl64.Vec2) int {
	id := w.nextID
	w.nextID++
	w.elementals = append(w.elementals, Elemental{
		ID:                  id,
		Kind:                kind,
		Status:              StatusMoving,
		Pos:                 pos,
		Target:              pos,
		Speed:               w.speedFor(kind),
		MovementRadius:      1,
		arrivalsUntilGrowth: w.arrivalsPerGrowth(),
	})
	return id
}

func (w *World) speedFor(kind Kind) float64 {
	switch kind {
	case KindFire:
		return w.cfg.Params.FireSpeed
	case KindIce:
		return w.cfg.Params.IceSpeed
	case KindSpring:
		return w.cfg.Params.SpringSpeed
	default:
		return 0
	}
}

func (w *World) arrivalsPerGrowth() int {
	if w.cfg.Params.ArrivalsPerGrowth <= 0 {
		return 1
	}
	return w.cfg.Params.ArrivalsPerGrowth
}

// Config returns the configuration the world was built with, including any
// parameter changes applied since.
func (w *World) Config() Config { return w.cfg }

// Size reports the grid dimensions in tiles.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// TileSize returns the edge length of a tile in world pixels.
func (w *World) TileSize() float64 { return w.tileSize }

// States exposes the continuous tile state in row-major order.
func (w *World) States() []float64 { return w.states.Cells() }

// Types exposes the tile classification in row-major order.
func (w *World) Types() []TileType { return w.types.Cells() }

// Colors exposes the derived draw colour of each tile in row-major order.
func (w *World) Colors() []color.RGBA { return w.colors }

// Elementals exposes the agent registry.
func (w *World) Elementals() []Elemental { return w.elementals }

// Elemental returns a pointer to the agent with the given ID.
func (w *World) Elemental(id int) *Elemental {
	for i := range w.elementals {
		if w.elementals[i].ID == id {
			return &w.elementals[i]
		}
	}
	return nil
}

// Player exposes the player record.
func (w *World) Player() *Player { return &w.player }

// PlayerCenter returns the centre of the player sprite.
func (w *World) PlayerCenter() mgl64.Vec2 {
	return w.player.Pos.Add(mgl64.Vec2{w.tileSize / 2, w.tileSize / 2})
}

// Dominance returns the fraction of tiles that are grass or block.
func (w *World) Dominance() float64 { return w.dominance }

// GrassTiles returns the grass-equivalent tile count from the last pass.
func (w *World) GrassTiles() int { return w.grassTiles }

// FireStaffHeld reports whether the player is carrying the fire staff.
func (w *World) FireStaffHeld() bool { return w.homing.fire }

// IceStaffHeld reports whether the player is carrying the ice staff.
func (w *World) IceStaffHeld() bool { return w.homing.ice }

// HomingTarget returns the point staff-homing agents converge on. ok is false
// when no staff is held.
func (w *World) HomingTarget() (mgl64.Vec2, bool) {
	return w.homing.target, w.homing.any()
}

// Victorious reports whether the victory latch has fired.
func (w *World) Victorious() bool { return w.victory.latched }

// TimeInVictory returns the seconds accumulated since the victory latch fired.
func (w *World) TimeInVictory() float64 { return w.victory.elapsed }

// TileCenter returns the world-pixel centre of tile (x, y).
func (w *World) TileCenter(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{float64(x)*w.tileSize + w.tileSize/2, float64(y)*w.tileSize + w.tileSize/2}
}

// TileCoords converts a world-pixel position to tile indices.
func (w *World) TileCoords(pos mgl64.Vec2) (int, int) {
	return int(math.Floor(pos.X() / w.tileSize)), int(math.Floor(pos.Y() / w.tileSize))
}

// TileAt returns the classification of the tile under pos. Positions outside
// the grid report TileNone.
func (w *World) TileAt(pos mgl64.Vec2) TileType {
	x, y := w.TileCoords(pos)
	if !w.types.InBounds(x, y) {
		return TileNone
	}
	return w.types.At(x, y)
}

// TileRect returns the footprint of tile (x, y) in whole world pixels.
func (w *World) TileRect(x, y int) image.Rectangle {
	ts := int(w.tileSize)
	return image.Rect(x*ts, y*ts, (x+1)*ts, (y+1)*ts)
}

// Bounds returns the world extent in pixels.
func (w *World) Bounds() mgl64.Vec2 {
	return mgl64.Vec2{float64(w.w) * w.tileSize, float64(w.h) * w.tileSize}
}
