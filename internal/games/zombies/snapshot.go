package zombies

import "math"

// Snapshot captures the simulation state for determinism testing.
// Positions are kept as float64 so equal snapshots mean bit-equal worlds.
type Snapshot struct {
	Tick           int
	Kills          int
	Shots          int
	Lost           bool
	PlayerX        float64
	PlayerY        float64
	Facing         Facing
	Weapon         int
	Countdowns     [2]int
	SpawnCountdown int
	Registered     int

	// Flattened per-enemy X, Y, Health
	EnemyData []float64
	// Flattened per-projectile X, Y
	ProjectileData []float64
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:           w.ticks,
		Kills:          p.kills,
		Shots:          w.shots,
		Lost:           w.lost,
		PlayerX:        p.Pos().X,
		PlayerY:        p.Pos().Y,
		Facing:         p.Facing,
		Weapon:         p.active,
		SpawnCountdown: w.enemies.countdown,
		Registered:     w.entities.Len(),
	}
	for i, wp := range p.weapons {
		snap.Countdowns[i] = wp.countdown
	}

	snap.EnemyData = make([]float64, 0, len(w.enemies.items)*3)
	for _, e := range w.enemies.items {
		snap.EnemyData = append(snap.EnemyData, e.Pos().X, e.Pos().Y, float64(e.health))
	}

	snap.ProjectileData = make([]float64, 0, len(w.projectiles.items)*2)
	for _, pr := range w.projectiles.items {
		snap.ProjectileData = append(snap.ProjectileData, pr.pos.X, pr.pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	// Negative counters wrap.
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Kills)
	h = h*31 + uint64(snap.Shots)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Facing)
	h = h*31 + uint64(snap.Weapon)
	h = h*31 + uint64(snap.Countdowns[0])
	h = h*31 + uint64(snap.Countdowns[1])
	h = h*31 + uint64(snap.SpawnCountdown)
	h = h*31 + uint64(snap.Registered)
	if snap.Lost {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
