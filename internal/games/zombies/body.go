package zombies

import (
	"math"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// EntityID identifies an entity within one world. IDs restart on reset.
type EntityID uint64

// Facing is the horizontal orientation that picks a sprite sequence.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Entity is anything the registry can draw.
type Entity interface {
	ID() EntityID
	Box() core.Box
	Frame() *assets.Frame
}

// Body is the spatial part shared by the player and enemies.
// Its position is the top-left of its box, so the two cannot drift apart.
type Body struct {
	id     EntityID
	box    core.Box
	Facing Facing
	Speed  float64
}

// ID returns the entity id.
func (b *Body) ID() EntityID {
	return b.id
}

// Pos returns the top-left position.
func (b *Body) Pos() core.Vec2 {
	return b.box.TopLeft()
}

// Box returns the collision box.
func (b *Body) Box() core.Box {
	return b.box
}

// MoveBy translates the body by d scaled by its speed.
func (b *Body) MoveBy(d core.Vec2) {
	b.box = b.box.MoveTo(b.Pos().Add(d.Scale(b.Speed)))
}

// MoveTo places the body's top-left at p.
func (b *Body) MoveTo(p core.Vec2) {
	b.box = b.box.MoveTo(p)
}

// resize keeps the top-left and adopts the frame's size.
func (b *Body) resize(f *assets.Frame) {
	b.box.W, b.box.H = f.W, f.H
}

// animation tracks a fractional frame index into a facing-keyed sprite.
type animation struct {
	sprite *assets.Sprite
	index  float64
	rate   float64
}

// advance moves the index by rate*speed, wrapping at the sequence length.
func (a *animation) advance(speed float64) {
	n := float64(a.sprite.Len())
	a.index = math.Mod(a.index+a.rate*speed, n)
	if a.index < 0 {
		a.index += n
	}
}

// frame returns the frame for the current index and facing.
func (a *animation) frame(f Facing) *assets.Frame {
	frames := a.sprite.Frames(f == FacingLeft)
	i := int(a.index)
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return frames[i]
}
