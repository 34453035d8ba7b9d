package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
)

func testSnapshot() runner.Snapshot {
	return runner.Snapshot{
		Score:       42,
		ScrollSpeed: 5.5,
		WorldWidth:  1920,
		WorldHeight: 1080,
		Player: runner.PlayerView{
			EntityView: runner.EntityView{Kind: runner.KindPlayer, X: 0, Y: 0, Width: 50, Height: 50},
			Health:     2,
			MaxHealth:  3,
		},
		Platforms: []runner.EntityView{
			{Kind: runner.KindPlatform, X: 960, Y: 980, Width: 960, Height: 100},
		},
		Hazards: []runner.EntityView{
			{Kind: runner.KindHazard, X: 480, Y: 540, Width: 30, Height: 30},
		},
	}
}

func TestDrawSnapshotProjects(t *testing.T) {
	scr := core.NewScreen(80, 21)
	DrawSnapshot(scr, testSnapshot())

	// 80 columns over 1920 units, 20 playfield rows over 1080 units
	if c := scr.GetCell(20, 1+10); c.Rune != '*' || c.Color != core.ColorRed {
		t.Errorf("hazard cell = %+v, expected red *", c)
	}
	if c := scr.GetCell(0, 1); c.Rune != '@' {
		t.Errorf("player cell = %+v, expected @", c)
	}
	if c := scr.GetCell(79, 20); c.Rune != '▀' || c.Color != core.ColorGreen {
		t.Errorf("platform cell = %+v, expected green platform", c)
	}
	if c := scr.GetCell(10, 20); c.Rune != ' ' {
		t.Errorf("gap cell = %+v, expected empty", c)
	}
}

func TestDrawSnapshotHUD(t *testing.T) {
	scr := core.NewScreen(80, 21)
	DrawSnapshot(scr, testSnapshot())

	hud := scr.Row(0)
	for _, want := range []string{"Score 42", "♥♥♡", "Speed 5.50"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestDrawSnapshotOverlays(t *testing.T) {
	scr := core.NewScreen(80, 21)

	snap := testSnapshot()
	snap.Paused = true
	DrawSnapshot(scr, snap)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	snap.GameOver = true
	DrawSnapshot(scr, snap)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestDrawSnapshotEmptyWorld(t *testing.T) {
	scr := core.NewScreen(10, 5)
	DrawSnapshot(scr, runner.Snapshot{})

	if strings.TrimSpace(scr.String()) != "" {
		t.Error("an empty snapshot should draw nothing")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "abc")
	scr.SetColor(3, 0, '*', core.ColorRed)

	out := RenderScreen(scr)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "*") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
