package main

import (
	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
)

// lookaheadTicks is how far ahead the autopilot scans, in scroll steps.
const lookaheadTicks = 14

// autopilot picks the input for the next tick from the current snapshot.
// It holds the player in the left third of the world and jumps over gaps
// and anything approaching at body height.
func autopilot(snap runner.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	p := snap.Player

	switch {
	case p.X < snap.WorldWidth/6:
		in.Set(core.ActionRight)
	case p.X > snap.WorldWidth/3:
		in.Set(core.ActionLeft)
	}

	if p.State != runner.StateGrounded {
		return in
	}

	front := p.X + p.Width
	ahead := front + snap.ScrollSpeed*lookaheadTicks
	if !groundAt(snap.Platforms, ahead) || threatBetween(snap, p.EntityView, front, ahead) {
		in.Set(core.ActionJump)
	}
	return in
}

// groundAt reports whether some platform covers x.
func groundAt(platforms []runner.EntityView, x float64) bool {
	for _, pl := range platforms {
		if pl.X <= x && x <= pl.X+pl.Width {
			return true
		}
	}
	return false
}

// threatBetween reports whether a hazard or enemy overlaps the player's rows
// anywhere in [from, to].
func threatBetween(snap runner.Snapshot, p runner.EntityView, from, to float64) bool {
	for _, list := range [][]runner.EntityView{snap.Hazards, snap.Enemies} {
		for _, e := range list {
			if e.X+e.Width < from || e.X > to {
				continue
			}
			if e.Y < p.Y+p.Height && e.Y+e.Height > p.Y {
				return true
			}
		}
	}
	return false
}
