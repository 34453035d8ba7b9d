package runner

// EntityView is a read-only copy of an entity's geometry.
type EntityView struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
}

// PlayerView is a read-only copy of the player.
type PlayerView struct {
	EntityView
	VelY      float64
	Health    int
	MaxHealth int
	State     PlayerState
	Frame     int
}

// Snapshot is the fully advanced state after a tick, for renderers.
// It shares no memory with the simulator.
type Snapshot struct {
	Tick        int
	Score       int
	ScrollSpeed float64
	Paused      bool
	GameOver    bool
	WorldWidth  float64
	WorldHeight float64
	Player      PlayerView
	Platforms   []EntityView
	Hazards     []EntityView
	Enemies     []EntityView
	Live        int // Entities currently in the world
	Retired     int // Entities scrolled off since the run started
}

// Snapshot copies the current state.
func (s *Simulator) Snapshot() Snapshot {
	p := s.player
	return Snapshot{
		Tick:        s.ticks,
		Score:       s.session.Score,
		ScrollSpeed: s.session.ScrollSpeed,
		Paused:      s.paused,
		GameOver:    s.halted,
		WorldWidth:  s.world.Width(),
		WorldHeight: s.world.Height(),
		Player: PlayerView{
			EntityView: viewOf(p.Entity),
			VelY:       p.VelY,
			Health:     p.Health,
			MaxHealth:  p.MaxHealth(),
			State:      p.State(),
			Frame:      p.Frame(),
		},
		Platforms: views(s.world.Platforms, func(p Platform) Entity { return p.Entity }),
		Hazards:   views(s.world.Hazards, func(h Hazard) Entity { return h.Entity }),
		Enemies:   views(s.world.Enemies, func(e Enemy) Entity { return e.Entity }),
		Live:      s.world.Len(),
		Retired:   s.world.Retired(),
	}
}

func viewOf(e Entity) EntityView {
	return EntityView{Kind: e.Kind, X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

func views[T any](items []T, entity func(T) Entity) []EntityView {
	out := make([]EntityView, len(items))
	for i, it := range items {
		out[i] = viewOf(entity(it))
	}
	return out
}
