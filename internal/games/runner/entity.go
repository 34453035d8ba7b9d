// Package runner implements the simulation core of a 2D endless side-scrolling
// runner. The player runs over platforms that scroll in from the right, dodging
// bombs and patrolling enemies while the scroll speed keeps increasing.
//
// The package is pure logic: it never draws, reads devices or performs I/O.
// A host drives it by calling Simulator.Tick once per frame and renders the
// read-only Snapshot it exposes.
package runner

import "github.com/vovakirdan/endless-runner/internal/core"

// Kind tags every world object.
type Kind uint8

const (
	KindPlatform Kind = iota
	KindHazard
	KindEnemy
	KindPlayer
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindHazard:
		return "hazard"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is the geometric record shared by all world objects.
// X, Y is the top-left corner in world units.
type Entity struct {
	X, Y          float64
	Width, Height float64
	Kind          Kind
}

// Bounds returns the collision rectangle for this entity.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.X + e.Width
}

// Platform is ground the player can stand on.
type Platform struct {
	Entity
	GapSize float64 // Half of the collision thickness
}

// NewPlatform creates a platform whose walkable strip is centered gap units
// above the bottom of a world of the given height. The collision box is
// 2*gap thick, so its top sits at worldH - 2*gap.
func NewPlatform(x, worldH, width float64, gap int) Platform {
	g := float64(gap)
	return Platform{
		Entity: Entity{
			X:      x,
			Y:      worldH - 2*g,
			Width:  width,
			Height: 2 * g,
			Kind:   KindPlatform,
		},
		GapSize: g,
	}
}

// Top returns the y-coordinate the player lands on.
func (p Platform) Top() float64 {
	return p.Y
}

// Hazard is a bomb. It is consumed on contact.
type Hazard struct {
	Entity
}

// Enemy patrols vertically between the top of the world and the floor.
type Enemy struct {
	Entity
	VelY float64
}

// Patrol moves the enemy vertically and reflects it off the bounds [0, maxY].
// Overshoot past a bound is mirrored back inside.
func (e *Enemy) Patrol(maxY float64) {
	e.Y += e.VelY
	switch {
	case e.Y <= 0 && e.VelY < 0:
		e.Y = -e.Y
		e.VelY = -e.VelY
	case e.Y >= maxY && e.VelY > 0:
		e.Y = 2*maxY - e.Y
		e.VelY = -e.VelY
	}
}
