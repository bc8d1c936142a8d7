package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type recordingSink struct {
	transitions []TileTransition
	health      []HealthChange
	victories   int
	grabbed     []Elemental
	released    []Elemental
}

func (r *recordingSink) TileChanged(ev TileTransition) { r.transitions = append(r.transitions, ev) }
func (r *recordingSink) HealthChanged(ev HealthChange) { r.health = append(r.health, ev) }
func (r *recordingSink) VictoryReached()               { r.victories++ }
func (r *recordingSink) Grabbed(e Elemental)           { r.grabbed = append(r.grabbed, e) }
func (r *recordingSink) Released(e Elemental)          { r.released = append(r.released, e) }

func filled(w, h, code int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = code
		}
	}
	return rows
}

func countGrabbed(w *World) int {
	n := 0
	for _, e := range w.Elementals() {
		if e.Status == StatusGrabbed {
			n++
		}
	}
	return n
}

func TestNewLoadsLayers(t *testing.T) {
	ground := [][]int{
		{0, 1, 2},
		{3, 7, 0},
	}
	entities := [][]int{
		{1, 2, 0},
		{0, 0, 6},
	}
	w := New(ground, entities, DefaultConfig(), nil)

	if got := w.Size(); got.W != 3 || got.H != 2 {
		t.Fatalf("unexpected size %+v", got)
	}
	wantTypes := []TileType{TileDry, TileGrass, TileSnow, TileBlock, TileDry, TileDry}
	for i, want := range wantTypes {
		if got := w.Types()[i]; got != want {
			t.Fatalf("tile %d type = %v, want %v", i, got, want)
		}
	}
	if got := w.States()[2]; got != StateMax {
		t.Fatalf("snow tile state = %f, want %f", got, StateMax)
	}
	if got := w.States()[4]; got != 0 {
		t.Fatalf("unknown tile state = %f, want 0", got)
	}
	if w.Colors()[4] != TileColor(TileNone) {
		t.Fatalf("unknown tile should render with the error colour")
	}

	ts := w.TileSize()
	if got := w.PlayerCenter(); got != (mgl64.Vec2{ts / 2, ts / 2}) {
		t.Fatalf("player centre = %v, want tile (0,0) centre", got)
	}
	if w.Player().Status != PlayerIdle {
		t.Fatalf("player should spawn idle, got %v", w.Player().Status)
	}

	els := w.Elementals()
	if len(els) != 2 {
		t.Fatalf("expected 2 elementals, got %d", len(els))
	}
	if els[0].Kind != KindFire || els[0].Pos != w.TileCenter(1, 0) {
		t.Fatalf("fire elemental misplaced: %+v", els[0])
	}
	if els[1].Kind != KindIceStaff || els[1].Pos != w.TileCenter(2, 1) {
		t.Fatalf("ice staff misplaced: %+v", els[1])
	}
	if els[0].ID == els[1].ID {
		t.Fatal("elementals must have distinct ids")
	}

	// dominance counts the grass tile and the block tile out of six.
	if got := w.Dominance(); math.Abs(got-2.0/6.0) > 1e-9 {
		t.Fatalf("dominance = %f, want %f", got, 2.0/6.0)
	}
}

func TestUnknownGroundCodeCanBeWon(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.InfluenceRadius = 4
	sink := &recordingSink{}
	w := New([][]int{{0, 0}, {0, 9}}, nil, cfg, sink)
	w.AddElemental(KindSpring, mgl64.Vec2{w.TileSize(), w.TileSize()})

	for step := 0; step < 2000 && !w.Victorious(); step++ {
		w.Update(0.05, Input{})
	}

	if got := w.Types()[3]; got != TileGrass {
		t.Fatalf("unknown tile = %v, want grass", got)
	}
	if w.Dominance() != 1 || !w.Victorious() {
		t.Fatalf("dominance = %f victorious = %v, want a win", w.Dominance(), w.Victorious())
	}
	if w.Colors()[3] == TileColor(TileNone) {
		t.Fatalf("converted tile should drop the error colour")
	}
}

func TestNewIgnoresEntitiesOutsideGrid(t *testing.T) {
	entities := [][]int{
		{0, 0, 0, 2},
		{},
		{3},
	}
	w := New(filled(2, 2, 0), entities, DefaultConfig(), nil)
	if n := len(w.Elementals()); n != 0 {
		t.Fatalf("expected out-of-grid entities to be skipped, got %d", n)
	}
}

func TestInitialClassificationIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.DryUpper = 0.6
	cfg.Params.GrassUpper = 0.8
	sink := &recordingSink{}
	w := New(filled(3, 3, GroundGrass), nil, cfg, sink)

	if len(sink.transitions) != 0 {
		t.Fatalf("load-time classification emitted %d events", len(sink.transitions))
	}
	// grass code loads at the middle of the band.
	if got := w.Types()[0]; got != TileGrass {
		t.Fatalf("type = %v, want grass", got)
	}
}

func TestDiffuseSingleTileStep(t *testing.T) {
	w := New([][]int{{GroundSnow}}, nil, DefaultConfig(), nil)
	w.AddElemental(KindFire, w.TileCenter(0, 0))

	w.Diffuse(0.5)

	power := w.Config().Params.InfluencePower
	want := 1 - 0.5*power/(1+stateEpsilon)
	if got := w.States()[0]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("state = %f, want %f", got, want)
	}
}

func TestDiffuseGrassResistsAndSpringBoosts(t *testing.T) {
	cfg := DefaultConfig()
	grass := New([][]int{{GroundGrass}}, nil, cfg, nil)
	grass.AddElemental(KindFire, grass.TileCenter(0, 0))
	dry := New([][]int{{GroundDry}}, nil, cfg, nil)
	dry.AddElemental(KindIce, dry.TileCenter(0, 0))

	const dt = 0.01
	grass.Diffuse(dt)
	dry.Diffuse(dt)

	grassMoved := cfg.Params.GrassMid() - grass.States()[0]
	dryMoved := dry.States()[0]
	if math.Abs(grassMoved/dryMoved-cfg.Params.GrassResistance) > 1e-3 {
		t.Fatalf("grass moved %f vs dry %f, expected ratio %f", grassMoved, dryMoved, cfg.Params.GrassResistance)
	}

	spring := New([][]int{{GroundDry}}, nil, cfg, nil)
	spring.AddElemental(KindSpring, spring.TileCenter(0, 0))
	spring.Diffuse(dt)
	if ratio := spring.States()[0] / dryMoved; math.Abs(ratio-cfg.Params.SpringBoost) > 1e-3 {
		t.Fatalf("spring moved %fx an ice agent, want %f", ratio, cfg.Params.SpringBoost)
	}
}

func TestDiffusionKeepsStateBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.InfluencePower = 50
	cfg.Params.InfluenceRadius = 6
	ground := filled(12, 12, GroundGrass)
	w := New(ground, nil, cfg, nil)
	kinds := []Kind{KindFire, KindIce, KindSpring, KindFire, KindIce}
	for i, k := range kinds {
		w.AddElemental(k, w.TileCenter(i*2, i*2))
	}

	for step := 0; step < 500; step++ {
		w.Update(0.25, Input{})
		for i, s := range w.States() {
			if s < StateMin || s > StateMax || math.IsNaN(s) {
				t.Fatalf("step %d tile %d left bounds: %f", step, i, s)
			}
		}
	}
}

func TestBlockTilesAreImmune(t *testing.T) {
	ground := filled(5, 5, GroundDry)
	ground[2][2] = GroundBlock
	cfg := DefaultConfig()
	cfg.Params.IceSpeed = 0
	w := New(ground, nil, cfg, nil)
	for i := 0; i < 4; i++ {
		w.AddElemental(KindIce, w.TileCenter(2, 2))
	}
	idx := 2*5 + 2
	before := w.States()[idx]

	for step := 0; step < 200; step++ {
		w.Update(0.1, Input{})
	}

	if got := w.Types()[idx]; got != TileBlock {
		t.Fatalf("block type changed to %v", got)
	}
	if got := w.States()[idx]; got != before {
		t.Fatalf("block state changed from %f to %f", before, got)
	}
	if got := w.Types()[idx+1]; got != TileSnow {
		t.Fatalf("neighbouring tile should have frozen, got %v", got)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	w := New(filled(4, 4, GroundDry), nil, DefaultConfig(), sink)
	w.AddElemental(KindIce, w.TileCenter(1, 1))
	for i := 0; i < 40; i++ {
		w.Diffuse(0.1)
	}

	w.Classify()
	first := len(sink.transitions)
	if first == 0 {
		t.Fatal("expected transitions after diffusion")
	}
	for _, ev := range sink.transitions {
		if ev.From != TileDry || ev.Rect != w.TileRect(ev.X, ev.Y) {
			t.Fatalf("unexpected transition %+v", ev)
		}
	}

	w.Classify()
	if got := len(sink.transitions); got != first {
		t.Fatalf("second classify emitted %d new events", got-first)
	}
}

func TestSpringConvertsSmallGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.InfluenceRadius = 4
	sink := &recordingSink{}
	w := New(filled(2, 2, GroundDry), nil, cfg, sink)
	w.AddElemental(KindSpring, mgl64.Vec2{w.TileSize(), w.TileSize()})

	for step := 0; step < 600 && !w.Victorious(); step++ {
		w.Update(1.0/60.0, Input{})
	}

	for i, tt := range w.Types() {
		if tt != TileGrass {
			t.Fatalf("tile %d = %v, want grass", i, tt)
		}
	}
	if w.Dominance() != 1 {
		t.Fatalf("dominance = %f, want 1", w.Dominance())
	}
	if !w.Victorious() || sink.victories != 1 {
		t.Fatalf("expected a single victory event, got %d", sink.victories)
	}
}

func TestVitalityHealthClampedOnGrass(t *testing.T) {
	sink := &recordingSink{}
	w := New(filled(3, 3, GroundGrass), [][]int{{0}, {0, 1}}, DefaultConfig(), sink)
	p := w.Player()
	p.Status = PlayerMoving

	for i := 0; i < 5; i++ {
		w.TickVitality(p.Health.TickInterval)
	}
	if p.Health.Current != p.Health.Max {
		t.Fatalf("health = %f, want max %f", p.Health.Current, p.Health.Max)
	}
	if len(sink.health) != 0 {
		t.Fatalf("expected no health events at max, got %d", len(sink.health))
	}

	p.Health.Current = p.Health.Max - 1
	w.TickVitality(p.Health.TickInterval)
	if p.Health.Current != p.Health.Max {
		t.Fatalf("healing overshot or fell short: %f", p.Health.Current)
	}
	if len(sink.health) != 1 || !sink.health[0].Healed() {
		t.Fatalf("expected one heal event, got %+v", sink.health)
	}
}

func TestVitalityDamageAndDeath(t *testing.T) {
	sink := &recordingSink{}
	w := New(filled(3, 3, GroundDry), [][]int{{0}, {0, 1}}, DefaultConfig(), sink)
	p := w.Player()
	p.Status = PlayerMoving
	start := p.Health.Current
	dmg := p.Health.DamagePerTick

	w.TickVitality(p.Health.TickInterval / 2)
	if p.Health.Current != start {
		t.Fatalf("health changed before the interval elapsed")
	}
	w.TickVitality(p.Health.TickInterval / 2)
	if p.Health.Current != start-dmg {
		t.Fatalf("health = %f, want %f", p.Health.Current, start-dmg)
	}
	if len(sink.health) != 1 || sink.health[0].Old != start || sink.health[0].New != start-dmg {
		t.Fatalf("unexpected health events %+v", sink.health)
	}

	p.Health.Current = dmg
	w.TickVitality(p.Health.TickInterval)
	if !p.Health.Dead || p.Status != PlayerDead {
		t.Fatalf("player should be dead, health %f status %v", p.Health.Current, p.Status)
	}

	events := len(sink.health)
	pos := p.Pos
	w.TickVitality(p.Health.TickInterval)
	w.Update(0.5, Input{Move: mgl64.Vec2{1, 0}})
	if p.Health.Current != 0 || len(sink.health) != events {
		t.Fatalf("dead player kept ticking: health %f", p.Health.Current)
	}
	if p.Pos != pos {
		t.Fatalf("dead player moved from %v to %v", pos, p.Pos)
	}
}

func TestVitalityNeutralOnBlockAndSkippedWhenIdle(t *testing.T) {
	ground := filled(3, 3, GroundDry)
	ground[1][1] = GroundBlock
	sink := &recordingSink{}
	w := New(ground, [][]int{{0}, {0, 1}}, DefaultConfig(), sink)
	p := w.Player()

	w.TickVitality(p.Health.TickInterval)
	if p.Health.Current != p.Health.Max || len(sink.health) != 0 {
		t.Fatal("idle player should not be affected")
	}

	p.Status = PlayerMoving
	w.TickVitality(p.Health.TickInterval)
	if p.Health.Current != p.Health.Max || len(sink.health) != 0 {
		t.Fatal("block tile should be neutral")
	}
}

func TestCaptureAndRelease(t *testing.T) {
	sink := &recordingSink{}
	entities := [][]int{
		{0, 0, 0},
		{0, 1, 2},
	}
	w := New(filled(3, 3, GroundDry), entities, DefaultConfig(), sink)
	fire := &w.Elementals()[0]
	fire.MovementRadius = 5

	if !w.TryInteract() {
		t.Fatal("expected capture")
	}
	if fire.Status != StatusGrabbed || w.Player().Status != PlayerGrabbing {
		t.Fatalf("capture state wrong: agent %v player %v", fire.Status, w.Player().Status)
	}
	if fire.Pos != w.PlayerCenter() {
		t.Fatalf("grabbed agent not snapped to player")
	}
	if countGrabbed(w) != 1 || len(sink.grabbed) != 1 {
		t.Fatalf("expected exactly one grabbed agent")
	}

	w.Update(0.1, Input{Move: mgl64.Vec2{0, 1}})
	if fire.Pos != w.PlayerCenter() {
		t.Fatalf("grabbed agent should ride on the player")
	}

	if !w.TryInteract() {
		t.Fatal("expected release")
	}
	if fire.Status != StatusMoving || w.Player().Status != PlayerMoving {
		t.Fatalf("release state wrong: agent %v player %v", fire.Status, w.Player().Status)
	}
	if fire.MovementRadius != 1 {
		t.Fatalf("movement radius = %d, want 1", fire.MovementRadius)
	}
	if fire.Target != fire.Pos {
		t.Fatalf("target should be re-seeded to the release position")
	}
	if countGrabbed(w) != 0 || len(sink.released) != 1 {
		t.Fatal("expected no grabbed agents after release")
	}
}

func TestCapturePicksNearestInsideRadius(t *testing.T) {
	cfg := DefaultConfig()
	w := New(filled(6, 6, GroundGrass), [][]int{{0}, {0, 1}}, cfg, nil)
	centre := w.PlayerCenter()
	radius := cfg.Params.CaptureRadius
	far := w.AddElemental(KindIce, centre.Add(mgl64.Vec2{radius, 0}))
	mid := w.AddElemental(KindFire, centre.Add(mgl64.Vec2{0, radius * 0.8}))
	near := w.AddElemental(KindSpring, centre.Add(mgl64.Vec2{-radius * 0.5, 0}))

	if !w.TryInteract() {
		t.Fatal("expected capture")
	}
	if w.Elemental(near).Status != StatusGrabbed {
		t.Fatal("nearest agent should be grabbed")
	}
	if w.Elemental(mid).Status != StatusMoving || w.Elemental(far).Status != StatusMoving {
		t.Fatal("only one agent may be grabbed")
	}

	w.TryInteract()
	w.Elemental(near).Pos = centre.Add(mgl64.Vec2{0, 10 * radius})
	w.Elemental(mid).Pos = centre.Add(mgl64.Vec2{0, 10 * radius})
	if w.TryInteract() {
		t.Fatal("agent exactly on the radius must not be captured")
	}
	if w.Player().Status == PlayerGrabbing {
		t.Fatal("failed capture must not change player status")
	}
}

func TestStaffHomingFollowsCursor(t *testing.T) {
	entities := [][]int{
		{2, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
	}
	cfg := DefaultConfig()
	cfg.Params.DamagePerTick = 0
	w := New(filled(5, 5, GroundDry), entities, cfg, nil)
	staff := w.AddElemental(KindFireStaff, w.PlayerCenter())
	fire := &w.Elementals()[0]
	cursor := w.TileCenter(4, 4)

	w.Update(0.1, Input{Interact: true, Cursor: cursor, HasCursor: true})
	if !w.FireStaffHeld() || w.IceStaffHeld() {
		t.Fatal("fire staff flag should be set")
	}
	if w.Elemental(staff).Status != StatusGrabbed {
		t.Fatal("staff should be grabbed")
	}
	target, ok := w.HomingTarget()
	if !ok || target != cursor {
		t.Fatalf("homing target = %v, want %v", target, cursor)
	}

	start := w.TileCenter(0, 0)
	travelled := fire.Pos.Sub(start).Len()
	if math.Abs(travelled-cfg.Params.FireSpeed*0.1) > 1e-9 {
		t.Fatalf("fire agent travelled %f, want %f", travelled, cfg.Params.FireSpeed*0.1)
	}
	before := cursor.Sub(start).Len()
	if after := cursor.Sub(fire.Pos).Len(); after >= before {
		t.Fatal("fire agent should move toward the cursor")
	}

	for i := 0; i < 200; i++ {
		w.Update(0.1, Input{Cursor: cursor, HasCursor: true})
	}
	if fire.Pos != cursor {
		t.Fatalf("homing agent should settle on the target without overshoot, at %v", fire.Pos)
	}

	w.Update(0.1, Input{Interact: true})
	if w.FireStaffHeld() {
		t.Fatal("fire staff flag should clear on release")
	}
	if _, ok := w.HomingTarget(); ok {
		t.Fatal("homing target should be invalid once no staff is held")
	}
	if fire.MovementRadius != 1 {
		t.Fatal("homing agent should resume local wandering")
	}
}

func TestWanderRadiusGrows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.FireSpeed = 1000
	cfg.Params.ArrivalsPerGrowth = 3
	w := New(filled(8, 8, GroundDry), nil, cfg, nil)
	id := w.AddElemental(KindFire, w.TileCenter(4, 4))
	e := w.Elemental(id)

	for i := 0; i < 3; i++ {
		w.MoveElementals(0.1)
	}
	if e.MovementRadius != 2 {
		t.Fatalf("movement radius = %d, want 2", e.MovementRadius)
	}

	bounds := w.Bounds()
	for i := 0; i < 200; i++ {
		w.MoveElementals(0.1)
		if e.Target.X() < 0 || e.Target.Y() < 0 || e.Target.X() > bounds.X() || e.Target.Y() > bounds.Y() {
			t.Fatalf("wander target left the world: %v", e.Target)
		}
	}
}

func TestWanderStepDoesNotOvershoot(t *testing.T) {
	cfg := DefaultConfig()
	w := New(filled(8, 8, GroundDry), nil, cfg, nil)
	id := w.AddElemental(KindIce, w.TileCenter(1, 1))
	e := w.Elemental(id)
	e.Target = w.TileCenter(6, 1)

	w.MoveElementals(0.5)
	want := w.TileCenter(1, 1).Add(mgl64.Vec2{cfg.Params.IceSpeed * 0.5, 0})
	if e.Pos.Sub(want).Len() > 1e-9 {
		t.Fatalf("position = %v, want %v", e.Pos, want)
	}
}

func TestCollisionSlidesAlongWall(t *testing.T) {
	ground := filled(5, 5, GroundDry)
	ground[1][2] = GroundBlock
	ground[2][2] = GroundBlock
	entities := [][]int{{0}, {0, 1}}
	cfg := DefaultConfig()
	cfg.Params.PlayerSpeed = 100
	w := New(ground, entities, cfg, nil)
	start := w.Player().Pos

	w.Update(0.1, Input{Move: mgl64.Vec2{1, 1}})

	step := 100 * 0.1 / math.Sqrt2
	got := w.Player().Pos
	if got.X() != start.X() {
		t.Fatalf("x should be blocked by the wall, moved to %f", got.X())
	}
	if math.Abs(got.Y()-(start.Y()+step)) > 1e-9 {
		t.Fatalf("y = %f, want %f", got.Y(), start.Y()+step)
	}
	naive := start.Add(mgl64.Vec2{step, step})
	if got == naive {
		t.Fatal("collision should differ from unclamped diagonal movement")
	}
}

func TestMovementClampedToGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.PlayerSpeed = 1000
	w := New(filled(4, 3, GroundDry), [][]int{{1}}, cfg, nil)

	w.Update(1, Input{Move: mgl64.Vec2{-1, -1}})
	if got := w.Player().Pos; got != (mgl64.Vec2{0, 0}) {
		t.Fatalf("position = %v, want origin", got)
	}
	w.Update(1, Input{Move: mgl64.Vec2{1, 1}})
	ts := w.TileSize()
	if got := w.Player().Pos; got != (mgl64.Vec2{3 * ts, 2 * ts}) {
		t.Fatalf("position = %v, want far corner", got)
	}
}

func TestVictoryLatchFiresOnce(t *testing.T) {
	sink := &recordingSink{}
	w := New(filled(2, 2, GroundGrass), nil, DefaultConfig(), sink)

	for i := 0; i < 3; i++ {
		if !w.CheckVictory() {
			t.Fatal("saturated world should report victory")
		}
	}
	if sink.victories != 1 {
		t.Fatalf("victory side effects fired %d times", sink.victories)
	}
}

func TestUpdateAfterVictoryOnlyAdvancesClock(t *testing.T) {
	sink := &recordingSink{}
	w := New(filled(3, 3, GroundGrass), [][]int{{1, 2}}, DefaultConfig(), sink)
	w.Update(0.1, Input{})
	if !w.Victorious() {
		t.Fatal("expected victory on the first update")
	}

	states := append([]float64(nil), w.States()...)
	pos := w.Player().Pos
	agent := w.Elementals()[0].Pos
	w.Update(0.25, Input{Move: mgl64.Vec2{1, 0}, Interact: true})
	w.Update(0.25, Input{})

	if got := w.TimeInVictory(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("time in victory = %f, want 0.5", got)
	}
	for i, s := range w.States() {
		if s != states[i] {
			t.Fatal("tile state changed after victory")
		}
	}
	if w.Player().Pos != pos || w.Elementals()[0].Pos != agent || countGrabbed(w) != 0 {
		t.Fatal("entities changed after victory")
	}
	if sink.victories != 1 {
		t.Fatalf("victory fired %d times", sink.victories)
	}
}

func TestSetFloatParameter(t *testing.T) {
	w := New(filled(2, 2, GroundDry), [][]int{{1}}, DefaultConfig(), nil)

	if !w.SetFloatParameter("player_speed", 250) {
		t.Fatal("expected player speed to be adjustable")
	}
	if w.Player().Speed != 250 {
		t.Fatalf("player speed = %f, want 250", w.Player().Speed)
	}
	if !w.SetFloatParameter("grass_resistance", 5) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := w.Config().Params.GrassResistance; got != 1 {
		t.Fatalf("grass resistance = %f, want clamp to 1", got)
	}
	if w.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	snap := w.Parameters()
	p, ok := snap.Lookup("player_speed")
	if !ok || p.Value != "250" {
		t.Fatalf("snapshot player_speed = %+v", p)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"tile_size":           "24",
		"influence_radius":    "6.5",
		"dry_upper":           "0.5",
		"grass_upper":         "0.2",
		"damage_per_tick":     "not-a-number",
		"arrivals_per_growth": "4",
	})
	def := DefaultConfig()
	if cfg.TileSize != 24 || cfg.Params.InfluenceRadius != 6.5 || cfg.Params.ArrivalsPerGrowth != 4 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Params.DamagePerTick != def.Params.DamagePerTick {
		t.Fatal("invalid value should be ignored")
	}
	if cfg.Params.GrassUpper != cfg.Params.DryUpper {
		t.Fatalf("grass band should never sit below the dry band: %f < %f", cfg.Params.GrassUpper, cfg.Params.DryUpper)
	}
}
