package zombies

import (
	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Projectile is a bullet in flight. Its velocity never changes.
type Projectile struct {
	id       EntityID
	pos      core.Vec2
	vel      core.Vec2
	damage   int
	frame    *assets.Frame
	consumed bool
}

// ID returns the entity id.
func (p *Projectile) ID() EntityID { return p.id }

// Pos returns the top-left position.
func (p *Projectile) Pos() core.Vec2 { return p.pos }

// Velocity returns the per-tick displacement.
func (p *Projectile) Velocity() core.Vec2 { return p.vel }

// Damage returns the health removed on hit.
func (p *Projectile) Damage() int { return p.damage }

// Frame returns the sprite frame.
func (p *Projectile) Frame() *assets.Frame { return p.frame }

// Box returns the collision box.
func (p *Projectile) Box() core.Box {
	return core.NewBox(p.pos.X, p.pos.Y, p.frame.W, p.frame.H)
}

// ProjectileManager owns every live projectile.
type ProjectileManager struct {
	items  []*Projectile
	sprite *assets.Sprite
	bounds core.Box
}

// NewProjectileManager creates a manager that culls projectiles leaving bounds.
func NewProjectileManager(sprite *assets.Sprite, bounds core.Box) *ProjectileManager {
	return &ProjectileManager{sprite: sprite, bounds: bounds}
}

// Spawn launches a projectile from `from` toward aim at the given speed.
// It reports false and spawns nothing when aim coincides with from.
func (m *ProjectileManager) Spawn(id EntityID, from, aim core.Vec2, speed float64, damage int) (*Projectile, bool) {
	dir, ok := aim.Sub(from).Normalize()
	if !ok {
		return nil, false
	}
	p := &Projectile{
		id:     id,
		pos:    from,
		vel:    dir.Scale(speed),
		damage: damage,
		frame:  m.sprite.Right[0],
	}
	m.items = append(m.items, p)
	return p, true
}

// Advance moves every projectile by its velocity and drops those that left
// the cull bounds.
func (m *ProjectileManager) Advance() {
	for _, p := range m.items {
		p.pos = p.pos.Add(p.vel)
		if m.outside(p.pos) {
			p.consumed = true
		}
	}
	m.Compact()
}

func (m *ProjectileManager) outside(p core.Vec2) bool {
	b := m.bounds
	return p.X < b.X || p.X > b.Right() || p.Y < b.Y || p.Y > b.Bottom()
}

// Consume marks p as spent. It stays in the collection until Compact.
func (m *ProjectileManager) Consume(p *Projectile) {
	p.consumed = true
}

// Compact drops consumed projectiles, preserving order.
func (m *ProjectileManager) Compact() {
	kept := m.items[:0]
	for _, p := range m.items {
		if !p.consumed {
			kept = append(kept, p)
		}
	}
	clear(m.items[len(kept):])
	m.items = kept
}

// All returns the live projectiles. The slice must not be modified.
func (m *ProjectileManager) All() []*Projectile {
	return m.items
}

// Len returns the number of projectiles.
func (m *ProjectileManager) Len() int {
	return len(m.items)
}

// Clear removes every projectile.
func (m *ProjectileManager) Clear() {
	clear(m.items)
	m.items = m.items[:0]
}
