package runner

import (
	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

// animationFrames is the length of the cosmetic run cycle.
const animationFrames = 10

// PlayerState is the player's position in the alive/hit/dead state machine.
type PlayerState uint8

const (
	StateAirborne PlayerState = iota
	StateGrounded
	StateHit // Lasts until the next Update
	StateDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateAirborne:
		return "airborne"
	case StateGrounded:
		return "grounded"
	case StateHit:
		return "hit"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// PlayerEvent reports transitions that other components must react to.
// Respawn resets score and scroll speed, which the player does not own.
type PlayerEvent uint8

const (
	PlayerDied PlayerEvent = 1 << iota
	PlayerRespawned
)

// Has reports whether flag is set.
func (e PlayerEvent) Has(flag PlayerEvent) bool {
	return e&flag != 0
}

// Player is the single physics body controlled by input.
type Player struct {
	Entity
	VelY   float64
	Health int

	state       PlayerState
	onGround    bool
	wasGrounded bool // Standing at the end of the previous tick
	frame       int

	cfg     config.PlayerConfig
	physics config.PhysicsConfig
	maxX    float64
	floorY  float64 // Falling below this is death
}

// NewPlayer creates a player at its spawn point with full health.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		cfg:     cfg.Player,
		physics: cfg.Physics,
		maxX:    cfg.World.Width - cfg.Player.Width,
		floorY:  cfg.World.Height,
	}
	p.Respawn()
	return p
}

// State returns the current state.
func (p *Player) State() PlayerState {
	return p.state
}

// Frame returns the cosmetic animation frame.
func (p *Player) Frame() int {
	return p.frame
}

// MaxHealth returns the health restored on respawn.
func (p *Player) MaxHealth() int {
	return p.cfg.MaxHealth
}

// MoveLeft steps left, clamped to the world.
func (p *Player) MoveLeft() {
	p.X = core.ClampF(p.X-p.physics.MoveStep, 0, p.maxX)
}

// MoveRight steps right, clamped to the world.
func (p *Player) MoveRight() {
	p.X = core.ClampF(p.X+p.physics.MoveStep, 0, p.maxX)
}

// Jump sets the upward velocity when the player is at or below the jump
// baseline. It reports whether the jump was taken. Repeated calls in the
// same tick set the same velocity.
func (p *Player) Jump() bool {
	if p.Y < p.cfg.JumpBaseline {
		return false
	}
	p.VelY = -p.physics.JumpPower
	return true
}

// Update integrates gravity and advances the animation. Falling below the
// world kills the player, who respawns immediately.
func (p *Player) Update() PlayerEvent {
	p.wasGrounded = p.onGround
	p.onGround = false
	p.frame = (p.frame + 1) % animationFrames

	p.Y, p.VelY = Integrate(p.Y, p.VelY, p.physics.Gravity)
	p.state = StateAirborne

	if p.Y > p.floorY {
		return p.die()
	}
	return 0
}

// Land puts the player on a surface whose top is at topY. It reports
// whether this is a touchdown rather than continued standing.
func (p *Player) Land(topY float64) bool {
	p.Y = topY - p.Height
	p.VelY = 0
	p.state = StateGrounded
	p.onGround = true
	return !p.wasGrounded
}

// Hit takes one point of health. At zero health the player dies and
// respawns.
func (p *Player) Hit() PlayerEvent {
	p.Health--
	p.state = StateHit
	if p.Health <= 0 {
		return p.die()
	}
	return 0
}

// Respawn restores the spawn position and full health.
func (p *Player) Respawn() PlayerEvent {
	p.Entity = Entity{
		X:      p.cfg.SpawnX,
		Y:      p.cfg.SpawnY,
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Kind:   KindPlayer,
	}
	p.VelY = 0
	p.Health = p.cfg.MaxHealth
	p.state = StateAirborne
	p.onGround = false
	p.wasGrounded = false
	return PlayerRespawned
}

// IsDead reports whether health is depleted.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

func (p *Player) die() PlayerEvent {
	p.Health = 0
	p.state = StateDead
	return PlayerDied | p.Respawn()
}
