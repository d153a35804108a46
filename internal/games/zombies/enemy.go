package zombies

import (
	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Enemy is a zombie walking toward the player.
type Enemy struct {
	Body
	anim   animation
	frame  *assets.Frame
	health int
	dead   bool
}

// Frame returns the current sprite frame.
func (e *Enemy) Frame() *assets.Frame { return e.frame }

// Health returns the remaining health points.
func (e *Enemy) Health() int { return e.health }

// EnemyManager owns every live enemy and the spawn countdown.
type EnemyManager struct {
	items      []*Enemy
	countdown  int
	cfg        config.EnemyConfig
	sprite     *assets.Sprite
	difficulty *config.DifficultyManager
}

// NewEnemyManager creates a manager with a full spawn countdown.
func NewEnemyManager(cfg config.EnemyConfig, sprite *assets.Sprite, dm *config.DifficultyManager) *EnemyManager {
	return &EnemyManager{
		cfg:        cfg,
		sprite:     sprite,
		difficulty: dm,
		countdown:  cfg.SpawnInterval,
	}
}

// All returns the live enemies. The slice must not be modified.
func (m *EnemyManager) All() []*Enemy {
	return m.items
}

// Len returns the number of live enemies.
func (m *EnemyManager) Len() int {
	return len(m.items)
}

// Countdown returns the ticks until the next spawn check passes.
func (m *EnemyManager) Countdown() int {
	return m.countdown
}

// Tick runs the spawn timer: once it drops below zero it is reset and one
// enemy spawns. It decrements every tick.
func (m *EnemyManager) Tick(w *World) {
	if m.countdown < 0 {
		m.countdown = m.difficulty.Interval(m.cfg.SpawnInterval, m.cfg.MinInterval, w.player.kills, w.ticks)
		m.Spawn(w, w.rng.Intn(len(m.cfg.SpawnPoints)))
	}
	m.countdown--
}

// Spawn creates an enemy whose bottom-centre sits on spawn point i.
func (m *EnemyManager) Spawn(w *World, i int) *Enemy {
	e := &Enemy{
		anim:   animation{sprite: m.sprite, rate: m.cfg.AnimRate},
		health: m.cfg.Health,
	}
	e.id = w.newID()
	e.Facing = FacingRight
	e.Speed = m.difficulty.Speed(m.cfg.Speed, w.player.kills, w.ticks)
	e.frame = e.anim.frame(e.Facing)
	e.resize(e.frame)

	pt := m.cfg.SpawnPoints[i]
	e.MoveTo(core.V(pt.X-e.frame.W/2, pt.Y-e.frame.H))

	m.items = append(m.items, e)
	w.entities.Add(e)
	return e
}

// Update resolves projectile hits and then moves the survivors.
func (m *EnemyManager) Update(w *World) {
	m.Resolve(w)
	m.Pursue(w)
}

// Resolve applies projectile damage. A projectile is consumed by the first
// enemy it overlaps; an enemy that dies stops taking hits, is unregistered
// and counts one kill.
func (m *EnemyManager) Resolve(w *World) {
	for _, e := range m.items {
		for _, p := range w.projectiles.All() {
			if p.consumed || !e.box.Intersects(p.Box()) {
				continue
			}
			e.health -= p.damage
			w.projectiles.Consume(p)
			if e.health <= 0 {
				e.dead = true
				w.entities.Remove(e.id)
				w.player.kills++
				break
			}
		}
	}
	w.projectiles.Compact()
	m.compact()
}

// Pursue walks every enemy one step toward the player. The first enemy found
// touching the player ends the session and the pass.
func (m *EnemyManager) Pursue(w *World) {
	target := w.player.Box()
	for _, e := range m.items {
		if e.box.Intersects(target) {
			w.lose()
			return
		}

		dir, ok := target.TopLeft().Sub(e.Pos()).Normalize()
		if !ok {
			continue
		}
		if dir.X < 0 {
			e.Facing = FacingLeft
		} else {
			e.Facing = FacingRight
		}
		e.anim.advance(e.Speed)
		e.frame = e.anim.frame(e.Facing)
		e.resize(e.frame)
		e.MoveBy(dir)
	}
}

func (m *EnemyManager) compact() {
	kept := m.items[:0]
	for _, e := range m.items {
		if !e.dead {
			kept = append(kept, e)
		}
	}
	clear(m.items[len(kept):])
	m.items = kept
}

// Clear removes every enemy and rearms the spawn countdown.
func (m *EnemyManager) Clear(r *Registry) {
	for _, e := range m.items {
		r.Remove(e.id)
	}
	clear(m.items)
	m.items = m.items[:0]
	m.countdown = m.cfg.SpawnInterval
}
