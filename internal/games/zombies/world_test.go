package zombies

import (
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// testCatalog uses 2x2 glyph sprites (16x32 world units) and an 8x16 bullet.
func testCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"playerRunning/0.txt": {Data: []byte("@>\n/\\")},
		"playerRunning/1.txt": {Data: []byte("@>\n||")},
		"zombieWalk/0.txt":    {Data: []byte("Z=\n/\\")},
		"zombieWalk/1.txt":    {Data: []byte("Z=\n||")},
		"bullet/0.txt":        {Data: []byte("*")},
	}
	cat, err := assets.Load(fsys)
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return cat
}

// newTestWorld builds a world from the default config after applying mutate.
func newTestWorld(t *testing.T, mutate func(*config.ZombiesConfig)) *World {
	t.Helper()
	cfg := config.DefaultZombiesConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return NewWorld(cfg, testCatalog(t), 42)
}

// noSpawns keeps the arena empty unless a test places enemies itself.
func noSpawns(cfg *config.ZombiesConfig) {
	cfg.Enemies.SpawnInterval = 1 << 30
}

// placeEnemy spawns an enemy and moves it to pos.
func placeEnemy(w *World, pos core.Vec2) *Enemy {
	e := w.enemies.Spawn(w, 0)
	e.MoveTo(pos)
	return e
}

func held(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Hold(k)
	}
	return in
}

func firing(aim core.Vec2) core.InputFrame {
	in := core.NewInputFrame()
	in.Pointer = aim
	in.Press(core.ButtonPrimary, aim)
	return in
}

func TestNewWorldDefaults(t *testing.T) {
	w := newTestWorld(t, nil)

	if w.Lost() || w.Ticks() != 0 || w.Shots() != 0 {
		t.Error("new world should be fresh")
	}
	if got := w.Player().Pos(); got != core.V(360, 360) {
		t.Errorf("player starts at %v, expected (360, 360)", got)
	}
	if w.Entities().Len() != 1 || !w.Entities().Contains(w.Player().ID()) {
		t.Error("only the player should be registered")
	}
	if w.Arena() != core.NewBox(0, 0, 1024, 512) {
		t.Errorf("arena = %+v", w.Arena())
	}
}

func TestSpawnTimer(t *testing.T) {
	w := newTestWorld(t, nil)
	idle := core.NewInputFrame()

	// Countdown starts at 30 and spawns once it is below zero.
	for i := 0; i < 31; i++ {
		w.Step(idle)
	}
	if w.Enemies().Len() != 0 {
		t.Fatalf("no enemy expected after 31 ticks, got %d", w.Enemies().Len())
	}

	w.Step(idle)
	if w.Enemies().Len() != 1 {
		t.Fatalf("first enemy expected on tick 32, got %d", w.Enemies().Len())
	}

	for i := 0; i < 31; i++ {
		w.Step(idle)
	}
	if w.Enemies().Len() != 2 {
		t.Errorf("second enemy expected on tick 63, got %d", w.Enemies().Len())
	}
	if w.Entities().Len() != 3 {
		t.Errorf("registry should hold player + 2 enemies, got %d", w.Entities().Len())
	}
}

func TestSpawnPoints(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	points := config.DefaultZombiesConfig().Enemies.SpawnPoints

	for i, pt := range points {
		e := w.enemies.Spawn(w, i)
		box := e.Box()
		if box.Center().X != pt.X || box.Bottom() != pt.Y {
			t.Errorf("spawn %d: bottom-centre = (%v, %v), expected (%v, %v)",
				i, box.Center().X, box.Bottom(), pt.X, pt.Y)
		}
		if e.Health() != 2 || e.Speed != 1 {
			t.Errorf("spawn %d: health %d speed %v", i, e.Health(), e.Speed)
		}
	}
}

func TestSpawnPointChoiceCoversAll(t *testing.T) {
	w := newTestWorld(t, func(c *config.ZombiesConfig) {
		c.Enemies.SpawnInterval = 0
	})

	for i := 0; i < 200; i++ {
		w.enemies.Tick(w)
	}

	seen := make(map[core.Vec2]bool)
	for _, e := range w.Enemies().All() {
		seen[e.Pos()] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 spawn points used, got %d", len(seen))
	}
}

func TestResolveDamage(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	e := placeEnemy(w, core.V(100, 100))

	w.projectiles.Spawn(w.newID(), core.V(104, 104), core.V(500, 104), 10, 1)
	w.enemies.Resolve(w)

	if e.Health() != 1 {
		t.Errorf("health = %d, expected 1", e.Health())
	}
	if w.Projectiles().Len() != 0 {
		t.Error("hit projectile should be consumed")
	}
	if w.Player().Kills() != 0 {
		t.Error("wounded enemy is not a kill")
	}
}

// A shot fired this tick hits an enemy in the same Step, before the
// enemy gets to move.
func TestStepShotHitsSameTick(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	centre := w.Player().Box().Center()
	e := placeEnemy(w, centre.Add(core.V(12, -8)))

	w.Step(firing(centre.Add(core.V(100, 0))))

	if w.Shots() != 1 {
		t.Fatalf("shots = %d, expected 1", w.Shots())
	}
	if e.Health() != 0 {
		t.Errorf("health = %d, expected 0 after one pistol hit", e.Health())
	}
	if w.Player().Kills() != 1 {
		t.Errorf("kills = %d, expected 1", w.Player().Kills())
	}
	if w.Projectiles().Len() != 0 || w.Enemies().Len() != 0 {
		t.Errorf("projectiles = %d enemies = %d, expected both empty", w.Projectiles().Len(), w.Enemies().Len())
	}
	if w.Lost() {
		t.Error("the enemy died before it could reach the player")
	}
}

func TestResolveKillCountsOnce(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	e := placeEnemy(w, core.V(100, 100))

	// Three pistol rounds overlap; the first kills, the rest fly on.
	for i := 0; i < 3; i++ {
		w.projectiles.Spawn(w.newID(), core.V(104, 104+float64(i)), core.V(500, 104), 10, 2)
	}
	w.enemies.Resolve(w)

	if w.Player().Kills() != 1 {
		t.Errorf("kills = %d, expected exactly 1", w.Player().Kills())
	}
	if w.Enemies().Len() != 0 {
		t.Error("dead enemy should leave the collection")
	}
	w.entities.Compact()
	if w.Entities().Contains(e.ID()) {
		t.Error("dead enemy should leave the registry")
	}
	if w.Projectiles().Len() != 2 {
		t.Errorf("only the killing round is consumed, %d left", w.Projectiles().Len())
	}
}

func TestProjectileHitsFirstEnemyOnly(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	first := placeEnemy(w, core.V(100, 100))
	second := placeEnemy(w, core.V(102, 100))

	w.projectiles.Spawn(w.newID(), core.V(108, 108), core.V(500, 108), 10, 1)
	w.enemies.Resolve(w)

	if first.Health() != 1 || second.Health() != 2 {
		t.Errorf("health = %d, %d; expected 1, 2", first.Health(), second.Health())
	}
}

func TestPursuit(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	right := placeEnemy(w, core.V(100, 100))
	left := placeEnemy(w, core.V(700, 360))

	w.enemies.Pursue(w)

	if right.Facing != FacingRight || left.Facing != FacingLeft {
		t.Errorf("facing = %v, %v", right.Facing, left.Facing)
	}
	if got := left.Pos(); got != core.V(699, 360) {
		t.Errorf("left enemy at %v, expected (699, 360)", got)
	}
	d := right.Pos().Sub(core.V(100, 100))
	if d.X <= 0 || d.Y <= 0 || d.Len() < 0.999 || d.Len() > 1.001 {
		t.Errorf("enemy should step one unit toward the player, moved %v", d)
	}
}

func TestLossScenario(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	p := w.Player().Pos()
	toucher := placeEnemy(w, p.Add(core.V(4, 4)))
	far := placeEnemy(w, core.V(900, 50))

	// Enemies far from each other and from the player for a few ticks first.
	toucher.MoveTo(core.V(0, 0))
	w.Step(core.NewInputFrame())
	if w.Lost() {
		t.Fatal("nobody touches the player yet")
	}

	toucher.MoveTo(w.Player().Pos().Add(core.V(4, 4)))
	farBefore := far.Pos()
	w.Step(core.NewInputFrame())

	if !w.Lost() {
		t.Fatal("overlap should set lost on the same tick")
	}
	if far.Pos() != farBefore {
		t.Error("pursuit stops at the first enemy touching the player")
	}

	before := w.Snapshot()
	for i := 0; i < 10; i++ {
		w.Step(held(core.KeyRight))
	}
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("world must not change while lost")
	}
}

func TestEnemyHealthNeverIncreases(t *testing.T) {
	w := newTestWorld(t, func(c *config.ZombiesConfig) {
		c.Enemies.SpawnInterval = 5
	})
	aims := []core.Vec2{core.V(240, 160), core.V(240, 368), core.V(784, 160), core.V(784, 368)}

	last := make(map[EntityID]int)
	for tick := 0; tick < 3000 && !w.Lost(); tick++ {
		in := firing(aims[tick/40%len(aims)])
		if tick%300 < 150 {
			in.Hold(core.KeyWeapon2)
		} else {
			in.Hold(core.KeyWeapon1)
		}

		killsBefore := w.Player().Kills()
		w.Step(in)

		alive := make(map[EntityID]int)
		for _, e := range w.Enemies().All() {
			if e.Health() <= 0 {
				t.Fatalf("tick %d: enemy %d kept with health %d", tick, e.ID(), e.Health())
			}
			if prev, ok := last[e.ID()]; ok && e.Health() > prev {
				t.Fatalf("tick %d: enemy %d healed %d -> %d", tick, e.ID(), prev, e.Health())
			}
			if !w.Entities().Contains(e.ID()) {
				t.Fatalf("tick %d: live enemy %d missing from registry", tick, e.ID())
			}
			alive[e.ID()] = e.Health()
		}

		gone := 0
		for id := range last {
			if _, ok := alive[id]; !ok {
				gone++
				if w.Entities().Contains(id) {
					t.Fatalf("tick %d: dead enemy %d still registered", tick, id)
				}
			}
		}
		if got := w.Player().Kills() - killsBefore; got != gone {
			t.Fatalf("tick %d: %d enemies removed but kills rose by %d", tick, gone, got)
		}
		last = alive
	}

	if w.Player().Kills() == 0 {
		t.Error("scenario should kill something")
	}
}

func TestResetIdempotent(t *testing.T) {
	w := newTestWorld(t, nil)
	for i := 0; i < 200; i++ {
		in := firing(core.V(240, 160))
		in.Hold(core.KeyUp)
		w.Step(in)
	}
	if w.Ticks() == 0 || w.Shots() == 0 {
		t.Fatal("setup should leave ticks and shots behind")
	}

	w.Reset(7)
	once := w.Snapshot()
	w.Reset(7)
	twice := w.Snapshot()

	if once.Hash() != twice.Hash() {
		t.Error("reset twice should equal reset once")
	}
	if w.Enemies().Len() != 0 || w.Projectiles().Len() != 0 {
		t.Error("reset should clear enemies and projectiles")
	}
	if w.Entities().Len() != 1 || w.Lost() {
		t.Error("reset should leave only the player and clear lost")
	}
	p := w.Player()
	if p.Pos() != core.V(360, 360) || p.Kills() != 0 || p.Speed != 1 || p.Weapon().Name != "Pistol" {
		t.Errorf("player not restored: pos %v kills %d speed %v", p.Pos(), p.Kills(), p.Speed)
	}
	if w.Enemies().Countdown() != 30 {
		t.Errorf("spawn countdown = %d, expected 30", w.Enemies().Countdown())
	}
}

func TestResetAfterLoss(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	placeEnemy(w, w.Player().Pos())
	w.Step(core.NewInputFrame())
	if !w.Lost() {
		t.Fatal("expected loss")
	}

	w.Reset(1)
	w.Step(held(core.KeyDown))
	if w.Lost() || w.Ticks() != 1 {
		t.Error("world should run again after reset")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		w := newTestWorld(t, nil)
		for i := 0; i < 600 && !w.Lost(); i++ {
			in := firing(core.V(float64(i%1024), float64(i*7%512)))
			switch {
			case i%120 < 40:
				in.Hold(core.KeyLeft)
			case i%120 < 80:
				in.Hold(core.KeyUp)
				in.Hold(core.KeySprint)
			default:
				in.Hold(core.KeyRight)
				in.Hold(core.KeyWeapon2)
			}
			w.Step(in)
		}
		return w.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick == 0 || snap1.Shots == 0 {
		t.Error("scenario did not run")
	}
}

type recordingCanvas struct {
	boxes []core.Box
}

func (c *recordingCanvas) Blit(_ *assets.Frame, box core.Box) {
	c.boxes = append(c.boxes, box)
}

func TestDrawOrder(t *testing.T) {
	w := newTestWorld(t, noSpawns)
	e := placeEnemy(w, core.V(800, 100))
	pr, _ := w.projectiles.Spawn(w.newID(), core.V(10, 10), core.V(20, 10), 5, 1)

	var c recordingCanvas
	w.Draw(&c)

	want := []core.Box{pr.Box(), w.Player().Box(), e.Box()}
	if len(c.boxes) != len(want) {
		t.Fatalf("blitted %d frames, expected %d", len(c.boxes), len(want))
	}
	for i := range want {
		if c.boxes[i] != want[i] {
			t.Errorf("blit %d = %+v, expected %+v", i, c.boxes[i], want[i])
		}
	}
}
