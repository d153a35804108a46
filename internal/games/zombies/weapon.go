package zombies

import (
	"github.com/vovakirdan/zombie-arcade/internal/audio"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Weapon gates projectile spawning by a fixed interval.
//
// The countdown drops by one every tick whether or not the trigger is held.
// A shot needs countdown < 0 and resets it to Interval, so a held trigger
// fires every Interval+1 ticks. A new weapon starts at -1 and fires at once.
type Weapon struct {
	Name            string
	Interval        int
	ProjectileSpeed float64
	Damage          int
	Sound           audio.SoundID

	countdown int
}

// NewWeapon creates a ready-to-fire weapon.
func NewWeapon(cfg config.WeaponConfig) *Weapon {
	return &Weapon{
		Name:            cfg.Name,
		Interval:        cfg.Interval,
		ProjectileSpeed: cfg.ProjectileSpeed,
		Damage:          cfg.Damage,
		Sound:           audio.SoundID(cfg.Sound),
		countdown:       -1,
	}
}

// Countdown returns the ticks left until the weapon may fire again.
// Negative values mean it is ready.
func (w *Weapon) Countdown() int {
	return w.countdown
}

// Update fires toward the pointer while the primary button is held.
func (w *Weapon) Update(world *World, in core.InputFrame) {
	from := world.player.Box().Center()
	w.Shoot(world, in.ButtonHeld(core.ButtonPrimary), from, in.Pointer)
}

// Shoot spawns one projectile if triggered and cooled down, then ticks the
// countdown. A zero-length aim fires nothing and leaves the countdown armed.
func (w *Weapon) Shoot(world *World, trigger bool, from, aim core.Vec2) bool {
	fired := false
	if trigger && w.countdown < 0 {
		if _, ok := world.projectiles.Spawn(world.newID(), from, aim, w.ProjectileSpeed, w.Damage); ok {
			world.sink.Play(audio.ChannelShots, w.Sound)
			world.shots++
			w.countdown = w.Interval
			fired = true
		}
	}
	w.countdown--
	return fired
}
