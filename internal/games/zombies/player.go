package zombies

import (
	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Player is the survivor. The world owns the lost flag, not the player.
type Player struct {
	Body
	anim    animation
	frame   *assets.Frame
	weapons [2]*Weapon
	active  int
	kills   int
	cfg     config.PlayerConfig
}

func newPlayer(id EntityID, cfg config.ZombiesConfig, sprite *assets.Sprite) *Player {
	p := &Player{
		anim: animation{sprite: sprite, rate: cfg.Player.AnimRate},
		cfg:  cfg.Player,
	}
	for i := range p.weapons {
		p.weapons[i] = NewWeapon(cfg.Weapons[i])
	}
	p.id = id
	p.Facing = FacingRight
	p.Speed = cfg.Player.Speed
	p.frame = p.anim.frame(p.Facing)
	p.resize(p.frame)
	p.MoveTo(core.V(cfg.Player.StartX, cfg.Player.StartY))
	return p
}

// Frame returns the current sprite frame.
func (p *Player) Frame() *assets.Frame { return p.frame }

// Kills returns the number of enemies killed.
func (p *Player) Kills() int { return p.kills }

// Weapon returns the active weapon.
func (p *Player) Weapon() *Weapon { return p.weapons[p.active] }

// Weapons returns both weapons.
func (p *Player) Weapons() [2]*Weapon { return p.weapons }

// Select makes weapon i active. Selecting the active weapon does nothing.
func (p *Player) Select(i int) {
	if i >= 0 && i < len(p.weapons) {
		p.active = i
	}
}

// Update runs one player tick: spawn timer, weapon switch, movement, then
// the active weapon.
func (p *Player) Update(w *World, in core.InputFrame) {
	w.enemies.Tick(w)

	if in.Held(core.KeyWeapon1) {
		p.Select(0)
	}
	if in.Held(core.KeyWeapon2) {
		p.Select(1)
	}

	p.run(w.arena, in)
	p.Weapon().Update(w, in)
}

// run applies directional input with the edge bounce.
func (p *Player) run(arena core.Box, in core.InputFrame) {
	var move core.Vec2
	if in.Held(core.KeyUp) {
		move.Y--
	}
	if in.Held(core.KeyDown) {
		move.Y++
	}
	if in.Held(core.KeyLeft) {
		p.Facing = FacingLeft
		move.X--
	}
	if in.Held(core.KeyRight) {
		p.Facing = FacingRight
		move.X++
	}

	p.Speed = p.cfg.Speed
	if in.Held(core.KeySprint) {
		p.Speed *= p.cfg.SprintMultiplier
	}

	if move.IsZero() {
		// Facing may still have flipped on opposing keys.
		p.frame = p.anim.frame(p.Facing)
		return
	}

	// An axis that would leave the arena pushes one unit back inside.
	box := p.Box()
	next := box.TopLeft().Add(move.Scale(p.Speed))
	if next.X < arena.X {
		move.X = 1
	}
	if next.X+box.W > arena.Right() {
		move.X = -1
	}
	if next.Y < arena.Y {
		move.Y = 1
	}
	if next.Y+box.H > arena.Bottom() {
		move.Y = -1
	}

	p.anim.advance(p.Speed)
	p.frame = p.anim.frame(p.Facing)
	p.resize(p.frame)
	p.MoveBy(move)
}
