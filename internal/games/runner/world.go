package runner

import "slices"

// World owns the live platforms, hazards and enemies.
// Collections keep insertion order; spawns append on the right.
type World struct {
	width     float64
	height    float64
	Platforms []Platform
	Hazards   []Hazard
	Enemies   []Enemy
	retired   int // Entities removed for scrolling off the left edge
}

// NewWorld creates an empty world with the given bounds.
func NewWorld(width, height float64) *World {
	return &World{
		width:     width,
		height:    height,
		Platforms: make([]Platform, 0, 16),
		Hazards:   make([]Hazard, 0, 8),
		Enemies:   make([]Enemy, 0, 8),
	}
}

// Width returns the right bound of the world.
func (w *World) Width() float64 {
	return w.width
}

// Height returns the bottom bound of the world.
func (w *World) Height() float64 {
	return w.height
}

// AddPlatform appends a platform.
func (w *World) AddPlatform(p Platform) {
	w.Platforms = append(w.Platforms, p)
}

// AddHazard appends a hazard.
func (w *World) AddHazard(h Hazard) {
	w.Hazards = append(w.Hazards, h)
}

// AddEnemy appends an enemy.
func (w *World) AddEnemy(e Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// LastPlatform returns the most recently spawned platform.
func (w *World) LastPlatform() (Platform, bool) {
	if len(w.Platforms) == 0 {
		return Platform{}, false
	}
	return w.Platforms[len(w.Platforms)-1], true
}

// Advance scrolls every entity left by scrollSpeed and moves enemies along
// their patrol.
func (w *World) Advance(scrollSpeed float64) {
	for i := range w.Platforms {
		w.Platforms[i].X -= scrollSpeed
	}
	for i := range w.Hazards {
		w.Hazards[i].X -= scrollSpeed
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.X -= scrollSpeed
		e.Patrol(w.height - e.Height)
	}
}

// RetireOffscreen removes every entity whose right edge is past the left
// bound and returns how many were removed.
func (w *World) RetireOffscreen() int {
	var n, removed int
	w.Platforms, n = retainOnscreen(w.Platforms)
	removed += n
	w.Hazards, n = retainOnscreen(w.Hazards)
	removed += n
	w.Enemies, n = retainOnscreen(w.Enemies)
	removed += n

	w.retired += removed
	return removed
}

// RemoveHazard deletes the hazard at index i, keeping the order of the rest.
func (w *World) RemoveHazard(i int) {
	w.Hazards = slices.Delete(w.Hazards, i, i+1)
}

// RemoveEnemy deletes the enemy at index i, keeping the order of the rest.
func (w *World) RemoveEnemy(i int) {
	w.Enemies = slices.Delete(w.Enemies, i, i+1)
}

// Retired returns the number of entities that have scrolled off so far.
func (w *World) Retired() int {
	return w.retired
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.Platforms) + len(w.Hazards) + len(w.Enemies)
}

// Reset clears all entities.
func (w *World) Reset() {
	w.Platforms = w.Platforms[:0]
	w.Hazards = w.Hazards[:0]
	w.Enemies = w.Enemies[:0]
	w.retired = 0
}

// retainOnscreen filters items in a single pass, keeping those whose right
// edge is still at or past x=0.
func retainOnscreen[T bounded](items []T) ([]T, int) {
	before := len(items)
	items = slices.DeleteFunc(items, func(it T) bool {
		return it.Bounds().Right() < 0
	})
	return items, before - len(items)
}
