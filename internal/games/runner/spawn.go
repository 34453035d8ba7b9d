package runner

import (
	"github.com/vovakirdan/endless-runner/internal/config"
)

// SpawnPolicy decides when new platforms, hazards and enemies enter the world.
type SpawnPolicy struct {
	cfg        config.SpawnConfig
	rng        RNG
	difficulty *config.DifficultyManager
}

// NewSpawnPolicy creates a spawn policy drawing from rng.
func NewSpawnPolicy(cfg config.SpawnConfig, rng RNG, diff *config.DifficultyManager) *SpawnPolicy {
	return &SpawnPolicy{
		cfg:        cfg,
		rng:        rng,
		difficulty: diff,
	}
}

// SeedRunway lays contiguous platforms from x=0 to the right bound so the
// player has ground under the spawn point.
func (sp *SpawnPolicy) SeedRunway(w *World) {
	pc := sp.cfg.Platform
	for x := 0.0; x < w.Width(); x += pc.Width {
		w.AddPlatform(NewPlatform(x, w.Height(), pc.Width, pc.MinGap))
	}
}

// MaybeSpawnPlatform adds a platform at the right bound when the world has
// none or the last one has scrolled further than the lookahead from the
// right bound. It reports whether a platform was spawned.
func (sp *SpawnPolicy) MaybeSpawnPlatform(w *World) bool {
	pc := sp.cfg.Platform
	if last, ok := w.LastPlatform(); ok && last.Right() >= w.Width()-pc.Lookahead {
		return false
	}

	gap := sp.rng.IntRange(pc.MinGap, pc.MaxGap)
	w.AddPlatform(NewPlatform(w.Width(), w.Height(), pc.Width, gap))
	return true
}

// MaybeSpawnHazard rolls the hazard chance and spawns a bomb on success.
func (sp *SpawnPolicy) MaybeSpawnHazard(w *World, score, ticks int) bool {
	hc := sp.cfg.Hazard
	if !roll(sp.rng, sp.difficulty.Chance(hc.Chance, score, ticks)) {
		return false
	}

	w.AddHazard(Hazard{Entity: sp.obstacle(w, hc, KindHazard)})
	return true
}

// MaybeSpawnEnemy rolls the enemy chance and spawns a patrolling enemy on
// success, with a vertical velocity drawn from the configured range.
func (sp *SpawnPolicy) MaybeSpawnEnemy(w *World, score, ticks int) bool {
	ec := sp.cfg.Enemy
	if !roll(sp.rng, sp.difficulty.Chance(ec.Chance, score, ticks)) {
		return false
	}

	e := sp.obstacle(w, ec.ObstacleSpawn, KindEnemy)
	vel := sp.rng.IntRange(ec.MinVelocity, ec.MaxVelocity)
	w.AddEnemy(Enemy{Entity: e, VelY: float64(vel)})
	return true
}

// obstacle places a new entity at the right bound, lifted a random offset
// above the bottom of the world.
func (sp *SpawnPolicy) obstacle(w *World, oc config.ObstacleSpawn, kind Kind) Entity {
	offset := sp.rng.IntRange(oc.MinOffset, oc.MaxOffset)
	return Entity{
		X:      w.Width(),
		Y:      w.Height() - float64(offset),
		Width:  oc.Width,
		Height: oc.Height,
		Kind:   kind,
	}
}
