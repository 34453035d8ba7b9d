package runner

import "testing"

func TestWorldAdvance(t *testing.T) {
	w := NewWorld(1920, 1080)
	w.AddPlatform(NewPlatform(100, 1080, 300, 50))
	w.AddHazard(Hazard{Entity{X: 400, Y: 800, Width: 30, Height: 30, Kind: KindHazard}})
	w.AddEnemy(Enemy{Entity: Entity{X: 600, Y: 0, Width: 50, Height: 50, Kind: KindEnemy}, VelY: -3})

	w.Advance(5)

	if w.Platforms[0].X != 95 {
		t.Errorf("platform x = %v, expected 95", w.Platforms[0].X)
	}
	if w.Hazards[0].X != 395 || w.Hazards[0].Y != 800 {
		t.Errorf("hazard at (%v, %v), expected (395, 800)", w.Hazards[0].X, w.Hazards[0].Y)
	}

	e := w.Enemies[0]
	if e.X != 595 {
		t.Errorf("enemy x = %v, expected 595", e.X)
	}
	if e.Y != 3 || e.VelY != 3 {
		t.Errorf("enemy y=%v vel=%v after bounce, expected y=3 vel=3", e.Y, e.VelY)
	}
}

func TestWorldEnemyStaysInBounds(t *testing.T) {
	w := NewWorld(1920, 1080)
	w.AddEnemy(Enemy{Entity: Entity{X: 1e6, Y: 500, Width: 50, Height: 50, Kind: KindEnemy}, VelY: 5})

	for i := 0; i < 2000; i++ {
		w.Advance(0)
		e := w.Enemies[0]
		if e.Y < 0 || e.Y > w.Height()-e.Height {
			t.Fatalf("tick %d: enemy y=%v left [0, %v]", i, e.Y, w.Height()-e.Height)
		}
	}
}

func TestWorldRetireOffscreen(t *testing.T) {
	w := NewWorld(1920, 1080)
	w.AddPlatform(NewPlatform(-301, 1080, 300, 50)) // right edge -1
	w.AddPlatform(NewPlatform(-300, 1080, 300, 50)) // right edge 0, still on screen
	w.AddPlatform(NewPlatform(500, 1080, 300, 50))
	w.AddHazard(Hazard{Entity{X: -40, Width: 30, Height: 30, Kind: KindHazard}})
	w.AddEnemy(Enemy{Entity: Entity{X: 10, Width: 50, Height: 50, Kind: KindEnemy}})

	if got := w.RetireOffscreen(); got != 2 {
		t.Fatalf("RetireOffscreen() = %d, expected 2", got)
	}
	if len(w.Platforms) != 2 || w.Platforms[0].X != -300 || w.Platforms[1].X != 500 {
		t.Errorf("remaining platforms out of order: %+v", w.Platforms)
	}
	if len(w.Hazards) != 0 || len(w.Enemies) != 1 {
		t.Errorf("hazards=%d enemies=%d, expected 0 and 1", len(w.Hazards), len(w.Enemies))
	}
	if w.Retired() != 2 || w.Len() != 3 {
		t.Errorf("Retired()=%d Len()=%d, expected 2 and 3", w.Retired(), w.Len())
	}
}

func TestWorldRemoveKeepsOrder(t *testing.T) {
	w := NewWorld(1920, 1080)
	for i := 0; i < 4; i++ {
		w.AddHazard(Hazard{Entity{X: float64(i), Width: 30, Height: 30, Kind: KindHazard}})
	}

	w.RemoveHazard(1)

	want := []float64{0, 2, 3}
	if len(w.Hazards) != len(want) {
		t.Fatalf("len = %d, expected %d", len(w.Hazards), len(want))
	}
	for i, x := range want {
		if w.Hazards[i].X != x {
			t.Errorf("hazard %d x = %v, expected %v", i, w.Hazards[i].X, x)
		}
	}
}

func TestWorldReset(t *testing.T) {
	w := NewWorld(1920, 1080)
	w.AddPlatform(NewPlatform(-400, 1080, 300, 50))
	w.RetireOffscreen()
	w.AddHazard(Hazard{})

	w.Reset()

	if w.Len() != 0 || w.Retired() != 0 {
		t.Errorf("after Reset Len()=%d Retired()=%d, expected 0 and 0", w.Len(), w.Retired())
	}
	if _, ok := w.LastPlatform(); ok {
		t.Error("LastPlatform() should report nothing after Reset")
	}
}
