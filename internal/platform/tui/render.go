package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// sprite is how an entity kind is drawn.
type sprite struct {
	r rune
	c core.Color
}

var sprites = map[runner.Kind]sprite{
	runner.KindPlatform: {'▀', core.ColorGreen},
	runner.KindHazard:   {'*', core.ColorRed},
	runner.KindEnemy:    {'M', core.ColorOrange},
	runner.KindPlayer:   {'@', core.ColorCyan},
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// projection scales world units onto the playfield cells below the HUD.
type projection struct {
	sx, sy float64
	rows   int
}

func newProjection(snap runner.Snapshot, scr *core.Screen) projection {
	rows := max(scr.Height()-hudRows, 1)
	return projection{
		sx:   float64(scr.Width()) / snap.WorldWidth,
		sy:   float64(rows) / snap.WorldHeight,
		rows: rows,
	}
}

// cells returns the cell rectangle covered by e. Every visible entity covers
// at least one cell.
func (p projection) cells(e runner.EntityView) (x, y, w, h int) {
	x = int(math.Floor(e.X * p.sx))
	y = int(math.Floor(e.Y*p.sy)) + hudRows
	w = max(int(math.Round(e.Width*p.sx)), 1)
	h = max(int(math.Round(e.Height*p.sy)), 1)
	return x, y, w, h
}

// DrawSnapshot projects a simulation snapshot onto the screen.
func DrawSnapshot(scr *core.Screen, snap runner.Snapshot) {
	scr.Clear()
	if snap.WorldWidth <= 0 || snap.WorldHeight <= 0 {
		return
	}
	p := newProjection(snap, scr)

	for _, list := range [][]runner.EntityView{snap.Platforms, snap.Hazards, snap.Enemies} {
		for _, e := range list {
			sp := sprites[e.Kind]
			x, y, w, h := p.cells(e)
			scr.FillRect(x, y, w, h, sp.r, sp.c)
		}
	}

	pl := sprites[runner.KindPlayer]
	if snap.Player.State == runner.StateHit {
		pl.c = core.ColorYellow
	}
	x, y, w, h := p.cells(snap.Player.EntityView)
	scr.FillRect(x, y, w, h, pl.r, pl.c)

	drawHUD(scr, snap)

	switch {
	case snap.GameOver:
		scr.DrawTextCentered(scr.Height()/2, " GAME OVER  press r to restart ")
	case snap.Paused:
		scr.DrawTextCentered(scr.Height()/2, " PAUSED ")
	}
}

func drawHUD(scr *core.Screen, snap runner.Snapshot) {
	scr.FillRect(0, 0, scr.Width(), hudRows, ' ', core.ColorDefault)

	hp := strings.Repeat("♥", max(snap.Player.Health, 0)) +
		strings.Repeat("♡", max(snap.Player.MaxHealth-snap.Player.Health, 0))
	hud := fmt.Sprintf(" Score %d   %s   Speed %.2f ", snap.Score, hp, snap.ScrollSpeed)

	for i, r := range []rune(hud) {
		c := core.ColorWhite
		if r == '♥' || r == '♡' {
			c = core.ColorRed
		}
		scr.SetColor(i, 0, r, c)
	}
}
