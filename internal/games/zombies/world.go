package zombies

import (
	"math/rand"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/audio"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Canvas is the drawing surface the world renders onto.
type Canvas interface {
	Blit(f *assets.Frame, box core.Box)
}

// World is one play session: the arena, every entity in it and the lost
// flag. All collections are owned here and passed explicitly.
type World struct {
	cfg        config.ZombiesConfig
	catalog    *assets.Catalog
	difficulty *config.DifficultyManager
	sink       audio.Sink
	rng        *rand.Rand

	arena core.Box

	entities    *Registry
	projectiles *ProjectileManager
	enemies     *EnemyManager
	player      *Player

	nextID EntityID
	ticks  int
	shots  int
	lost   bool
}

// NewWorld creates a world ready to play. cfg must be valid.
func NewWorld(cfg config.ZombiesConfig, cat *assets.Catalog, seed int64) *World {
	arena := core.NewBox(0, 0, cfg.Arena.Width, cfg.Arena.Height)
	dm := config.NewDifficultyManager(cfg.Difficulty)

	w := &World{
		cfg:         cfg,
		catalog:     cat,
		difficulty:  dm,
		sink:        audio.Nop{},
		arena:       arena,
		entities:    NewRegistry(),
		projectiles: NewProjectileManager(cat.Bullet, arena.Expand(cfg.Arena.CullMargin)),
		enemies:     NewEnemyManager(cfg.Enemies, cat.Zombie, dm),
	}
	w.Reset(seed)
	return w
}

// SetSink routes sound cues. A nil sink mutes the world.
func (w *World) SetSink(s audio.Sink) {
	if s == nil {
		s = audio.Nop{}
	}
	w.sink = s
}

// Reset clears every enemy and projectile, restores the player to its
// defaults and clears the lost flag. Resetting twice equals resetting once.
func (w *World) Reset(seed int64) {
	w.enemies.Clear(w.entities)
	w.projectiles.Clear()
	w.entities.Clear()

	w.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay RNG
	w.nextID = 0
	w.ticks = 0
	w.shots = 0
	w.lost = false

	w.player = newPlayer(w.newID(), w.cfg, w.catalog.Player)
	w.entities.Add(w.player)
}

// Step advances one tick: spawn timer, player movement, weapon fire,
// projectile flight, combat, pursuit. It does nothing once lost.
func (w *World) Step(in core.InputFrame) {
	if w.lost {
		return
	}
	w.ticks++

	w.player.Update(w, in)
	w.projectiles.Advance()
	w.enemies.Update(w)

	w.entities.Compact()
}

// Draw blits every projectile, then every entity in registry order.
func (w *World) Draw(c Canvas) {
	for _, p := range w.projectiles.All() {
		c.Blit(p.Frame(), p.Box())
	}
	w.entities.Each(func(e Entity) {
		c.Blit(e.Frame(), e.Box())
	})
}

func (w *World) lose() {
	if w.lost {
		return
	}
	w.lost = true
	w.sink.Play(audio.ChannelAlerts, audio.SoundLost)
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

// Lost reports whether an enemy has reached the player.
func (w *World) Lost() bool { return w.lost }

// Arena returns the world extents.
func (w *World) Arena() core.Box { return w.arena }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Enemies returns the enemy manager.
func (w *World) Enemies() *EnemyManager { return w.enemies }

// Projectiles returns the projectile manager.
func (w *World) Projectiles() *ProjectileManager { return w.projectiles }

// Entities returns the render registry.
func (w *World) Entities() *Registry { return w.entities }

// Ticks returns the number of ticks simulated since reset.
func (w *World) Ticks() int { return w.ticks }

// Shots returns the number of projectiles fired since reset.
func (w *World) Shots() int { return w.shots }
