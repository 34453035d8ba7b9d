package runner

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

func randomInput(r *rand.Rand) core.InputFrame {
	in := core.NewInputFrame()
	if r.Intn(3) == 0 {
		in.Set(core.ActionLeft)
	}
	if r.Intn(2) == 0 {
		in.Set(core.ActionRight)
	}
	if r.Intn(8) == 0 {
		in.Set(core.ActionJump)
	}
	return in
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.MinGap = 300
	cfg.Spawn.Platform.MaxGap = 100

	if _, err := New(cfg, 1); err == nil {
		t.Error("New() should fail on an inverted gap range")
	}
}

func TestSimulatorStartsOnRunway(t *testing.T) {
	s := newTestSimulator(t, quietConfig())
	snap := s.Snapshot()

	if len(snap.Platforms) == 0 {
		t.Fatal("runway should be seeded before the first tick")
	}
	if snap.Score != 0 || snap.ScrollSpeed != 5 || snap.Tick != 0 {
		t.Errorf("initial score=%d speed=%v tick=%d", snap.Score, snap.ScrollSpeed, snap.Tick)
	}
}

func TestSimulatorProgression(t *testing.T) {
	s := newTestSimulator(t, quietConfig())

	for i := 0; i < 10; i++ {
		s.Tick(idle())
	}

	sess := s.Session()
	if sess.Score != 10 {
		t.Errorf("score = %d after 10 ticks, expected 10", sess.Score)
	}
	if sess.ScrollSpeed < 5.0999 || sess.ScrollSpeed > 5.1001 {
		t.Errorf("speed = %v after 10 ticks, expected 5.1", sess.ScrollSpeed)
	}
}

func TestSimulatorLandsOnRunway(t *testing.T) {
	s := newTestSimulator(t, quietConfig())

	landed := 0
	for i := 0; i < 35; i++ {
		landed += countEvents(s.Tick(idle()).Events, EventLanded)
	}

	if landed != 1 {
		t.Errorf("landed %d times, expected a single touchdown", landed)
	}
	if s.player.State() != StateGrounded || s.player.Y != 930 {
		t.Errorf("player state=%v y=%v, expected grounded at 930", s.player.State(), s.player.Y)
	}
}

func TestResolveCollisionsHazard(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.Runway = false
	s := newTestSimulator(t, cfg)
	s.world.AddHazard(Hazard{Entity{X: 50, Y: 500, Width: 30, Height: 30, Kind: KindHazard}})

	before := s.Session()
	s.resolveCollisions()

	if s.player.Health != 2 {
		t.Errorf("health = %d, expected 2", s.player.Health)
	}
	if len(s.world.Hazards) != 0 {
		t.Errorf("hazard should be consumed, %d left", len(s.world.Hazards))
	}
	if s.Session() != before {
		t.Errorf("session changed by a hit: %+v -> %+v", before, s.Session())
	}
}

func TestTickHazardHit(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.Runway = false
	s := newTestSimulator(t, cfg)
	// Lands on the player after one scroll step
	s.world.AddHazard(Hazard{Entity{X: 55, Y: 500, Width: 30, Height: 30, Kind: KindHazard}})

	res := s.Tick(idle())

	if res.State.Health != 2 {
		t.Errorf("health = %d, expected 2", res.State.Health)
	}
	if len(s.world.Hazards) != 0 {
		t.Errorf("hazard should be consumed, %d left", len(s.world.Hazards))
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventHit || res.Events[0].Cause != CauseHazard {
		t.Errorf("events = %+v, expected a single hazard hit", res.Events)
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected normal progression to 1", res.State.Score)
	}
}

func TestTickEnemyHitOncePerCategory(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.Runway = false
	s := newTestSimulator(t, cfg)
	for i := 0; i < 2; i++ {
		s.world.AddEnemy(Enemy{Entity: Entity{X: 55, Y: 500, Width: 50, Height: 50, Kind: KindEnemy}})
	}
	s.world.AddHazard(Hazard{Entity{X: 55, Y: 500, Width: 30, Height: 30, Kind: KindHazard}})

	res := s.Tick(idle())

	if res.State.Health != 1 {
		t.Errorf("health = %d, expected one hazard and one enemy hit", res.State.Health)
	}
	if len(s.world.Enemies) != 1 {
		t.Errorf("only the first enemy should be consumed, %d left", len(s.world.Enemies))
	}
	if countEvents(res.Events, EventHit) != 2 {
		t.Errorf("events = %+v, expected two hits", res.Events)
	}
}

func TestTickRespawnOnLastHit(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.Runway = false

	var overs []GameOver
	s := newTestSimulator(t, cfg, WithGameOverSink(func(g GameOver) { overs = append(overs, g) }))
	s.player.Health = 1
	s.session = SessionState{ScrollSpeed: 7, Score: 100}
	s.world.AddHazard(Hazard{Entity{X: 57, Y: 500, Width: 30, Height: 30, Kind: KindHazard}})

	res := s.Tick(idle())

	if res.State.Health != 3 {
		t.Errorf("health = %d, expected full health after respawn", res.State.Health)
	}
	if s.player.X != 50 || s.player.Y != 500 {
		t.Errorf("player at (%v, %v), expected spawn (50, 500)", s.player.X, s.player.Y)
	}
	if sess := s.Session(); sess.Score != 0 || sess.ScrollSpeed != 5 {
		t.Errorf("session = %+v, expected score 0 and speed 5", sess)
	}
	if res.State.GameOver {
		t.Error("the run should continue by default")
	}

	kinds := make([]EventKind, len(res.Events))
	for i, e := range res.Events {
		kinds[i] = e.Kind
	}
	want := []EventKind{EventHit, EventDied, EventGameOver, EventRespawned}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("events = %v, expected %v", kinds, want)
	}
	if res.Events[2].Score != 100 {
		t.Errorf("game over score = %d, expected 100", res.Events[2].Score)
	}

	if len(overs) != 1 {
		t.Fatalf("sink called %d times, expected 1", len(overs))
	}
	if overs[0] != (GameOver{FinalScore: 100, Tick: 1, Cause: CauseHazard}) {
		t.Errorf("game over = %+v", overs[0])
	}
}

func TestTickFallDeath(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.Runway = false
	s := newTestSimulator(t, cfg)
	s.player.Y = 1080

	res := s.Tick(idle())

	if countEvents(res.Events, EventGameOver) != 1 || res.Events[0].Cause != CauseFall {
		t.Fatalf("events = %+v, expected a fall game over", res.Events)
	}
	if s.player.X != 50 || s.player.Y != 500 || res.State.Health != 3 {
		t.Errorf("player not respawned: (%v, %v) health=%d", s.player.X, s.player.Y, res.State.Health)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected 0 on the respawn tick", res.State.Score)
	}
}

func TestHaltOnGameOver(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Platform.Runway = false
	cfg.Gameplay.HaltOnGameOver = true
	s := newTestSimulator(t, cfg)
	s.player.Y = 1080

	if res := s.Tick(idle()); !res.State.GameOver {
		t.Fatal("run should halt after game over")
	}

	s.Tick(idle())
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, halted simulator should not advance", s.Ticks())
	}

	s.Restart(5)
	if s.State().GameOver || s.Ticks() != 0 || s.Seed() != 5 {
		t.Errorf("after Restart state=%+v ticks=%d seed=%d", s.State(), s.Ticks(), s.Seed())
	}
	s.Tick(idle())
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d after Restart, expected 1", s.Ticks())
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSimulator(t, quietConfig())
	pause := core.NewInputFrame(core.ActionPause)

	if res := s.Tick(pause); !res.State.Paused {
		t.Fatal("pause should take effect immediately")
	}
	s.Tick(idle())
	s.Tick(idle())
	if s.Ticks() != 0 {
		t.Errorf("ticks = %d while paused, expected 0", s.Ticks())
	}

	if res := s.Tick(pause); res.State.Paused {
		t.Fatal("second pause should resume")
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, the resuming tick should simulate", s.Ticks())
	}
}

func TestSimulatorDeterminism(t *testing.T) {
	a := newTestSimulator(t, config.DefaultRunnerConfig())
	b := newTestSimulator(t, config.DefaultRunnerConfig())

	ra := rand.New(rand.NewSource(42))
	rb := rand.New(rand.NewSource(42))
	for i := 0; i < 3000; i++ {
		a.Tick(randomInput(ra))
		b.Tick(randomInput(rb))
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("same seed and inputs should give identical runs")
	}
}

func TestSimulatorInvariants(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Hazard.Chance = 0.02
	cfg.Spawn.Enemy.Chance = 0.01
	s := newTestSimulator(t, cfg)

	r := rand.New(rand.NewSource(7))
	maxX := cfg.World.Width - cfg.Player.Width
	maxSpeed := s.Session().ScrollSpeed
	lookahead := cfg.Spawn.Platform.Lookahead

	for tick := 0; tick < 20000; tick++ {
		res := s.Tick(randomInput(r))
		snap := s.Snapshot()
		maxSpeed = max(maxSpeed, snap.ScrollSpeed)

		if res.State.Health < 0 || res.State.Health > cfg.Player.MaxHealth {
			t.Fatalf("tick %d: health %d out of range", tick, res.State.Health)
		}
		if snap.Player.X < 0 || snap.Player.X > maxX {
			t.Fatalf("tick %d: player x %v out of [0, %v]", tick, snap.Player.X, maxX)
		}
		for i := 1; i < len(snap.Platforms); i++ {
			prev, next := snap.Platforms[i-1], snap.Platforms[i]
			if next.X <= prev.X {
				t.Fatalf("tick %d: platforms out of order", tick)
			}
			if gap := next.X - (prev.X + prev.Width); gap > lookahead+maxSpeed+1e-6 {
				t.Fatalf("tick %d: gap %v exceeds lookahead plus one scroll step", tick, gap)
			}
		}
		for _, e := range snap.Enemies {
			if e.Y < 0 || e.Y > cfg.World.Height-e.Height {
				t.Fatalf("tick %d: enemy y %v out of bounds", tick, e.Y)
			}
		}
		for _, list := range [][]EntityView{snap.Platforms, snap.Hazards, snap.Enemies} {
			for _, e := range list {
				if e.X+e.Width < 0 {
					t.Fatalf("tick %d: offscreen %v not retired", tick, e.Kind)
				}
			}
		}
	}
}

func TestPlatformsOnlyMoveLeft(t *testing.T) {
	w := NewWorld(1920, 1080)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		w.AddPlatform(NewPlatform(float64(r.Intn(4000)-1000), 1080, 300, 50+r.Intn(150)))
	}

	for step := 0; step < 100; step++ {
		before := make([]float64, len(w.Platforms))
		for i, p := range w.Platforms {
			before[i] = p.Right()
		}
		w.Advance(5 + float64(step)*0.01)
		for i, p := range w.Platforms {
			if p.Right() >= before[i] {
				t.Fatalf("step %d: platform %d right edge did not decrease", step, i)
			}
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := newTestSimulator(t, quietConfig())
	snap := s.Snapshot()
	x := s.world.Platforms[0].X

	snap.Platforms[0].X = -999
	if s.world.Platforms[0].X != x {
		t.Error("mutating a snapshot changed the world")
	}

	s.Tick(idle())
	if snap.Platforms[0].X != -999 || snap.Tick != 0 {
		t.Error("ticking changed an earlier snapshot")
	}
}

func TestSnapshotCountsEntities(t *testing.T) {
	s := newTestSimulator(t, quietConfig())

	// The first runway platform spans [0, 300) and scrolls off well within 200 ticks
	for i := 0; i < 200; i++ {
		s.Tick(idle())
	}

	snap := s.Snapshot()
	if snap.Retired == 0 {
		t.Error("expected some runway platforms to have retired")
	}
	if want := len(snap.Platforms) + len(snap.Hazards) + len(snap.Enemies); snap.Live != want {
		t.Errorf("Live = %d, expected %d", snap.Live, want)
	}

	s.Restart(1)
	if snap := s.Snapshot(); snap.Retired != 0 {
		t.Errorf("Retired = %d after restart, expected 0", snap.Retired)
	}
}
