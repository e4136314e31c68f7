// Package render paints the grid viewport and the control panel onto a
// tcell screen. Rendering is synchronous and owned by the consumer loop;
// the only feedback to the simulation is the measured viewport rectangle
// returned from each frame.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termlife/constants"
	"github.com/lixenwraith/termlife/core"
	"github.com/lixenwraith/termlife/game"
)

// Box drawing characters, single-line set
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen

	// Last painted dimensions, a change forces a full sync
	lastW, lastH int

	styleDefault tcell.Style
	styleCell    tcell.Style
	styleTitle   tcell.Style
}

// New creates a renderer for the given screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:       screen,
		styleDefault: tcell.StyleDefault,
		styleCell:    tcell.StyleDefault.Bold(true),
		styleTitle:   tcell.StyleDefault.Bold(true),
	}
}

// Frame paints one frame: bordered simulation pane on the left, control
// panel on the right. Returns the inner (border-excluded) viewport so the
// consumer can detect size changes; on a terminal too small to hold the
// layout the returned viewport is empty and the simulation degenerates to a
// zero-size grid.
func (r *Renderer) Frame(app *game.App) core.Area {
	width, height := r.screen.Size()
	r.screen.Clear()

	content := core.Area{
		X:      constants.ScreenMargin,
		Y:      constants.ScreenMargin,
		Width:  width - 2*constants.ScreenMargin,
		Height: height - 2*constants.ScreenMargin,
	}

	var viewport core.Area
	if !content.Empty() {
		simWidth := content.Width * constants.SimPanePercent / 100
		simPane := core.Area{X: content.X, Y: content.Y, Width: simWidth, Height: content.Height}
		panel := core.Area{X: content.X + simWidth, Y: content.Y, Width: content.Width - simWidth, Height: content.Height}

		r.drawBox(simPane, "")
		viewport = simPane.Inset(1)
		r.drawCells(viewport, app)
		r.drawPanel(panel, app)
	}

	if width != r.lastW || height != r.lastH {
		r.lastW, r.lastH = width, height
		r.screen.Sync()
	} else {
		r.screen.Show()
	}
	return viewport
}

// drawCells paints live cells inside the viewport. Grid and viewport
// dimensions match once a resize has round-tripped; until then drawing is
// clipped to both.
func (r *Renderer) drawCells(viewport core.Area, app *game.App) {
	grid := app.Grid()
	rows := min(grid.Height(), viewport.Height)
	cols := min(grid.Width(), viewport.Width)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if grid.Alive(row, col) {
				r.screen.SetContent(viewport.X+col, viewport.Y+row, constants.AliveRune, nil, r.styleCell)
			}
		}
	}
}

// drawPanel paints the bordered control legend and status readouts
func (r *Renderer) drawPanel(panel core.Area, app *game.App) {
	if panel.Width < 4 || panel.Height < 2 {
		return
	}
	r.drawBox(panel, "Controls")
	inner := panel.Inset(1)

	runPause := "  Run"
	if app.Running() {
		runPause = "  Pause"
	}
	sound := "  Sound off"
	if app.Sound() == nil {
		sound = "  No audio"
	} else if !app.Sound().Muted() {
		sound = "  Sound on"
	}
	clickX, clickY := app.LastClick()

	lines := []string{
		"",
		" [Left click]",
		"  Add cell",
		"",
		" [Right click]",
		"  Delete cell",
		"",
		" [Enter]",
		runPause,
		"",
		" [-, +]",
		fmt.Sprintf("  Tick rate = %dms", app.Interval().Milliseconds()),
		"",
		" [m]",
		sound,
		"",
		" [q]",
		"  Exit",
		"",
		fmt.Sprintf(" Cells: %d", app.Grid().Population()),
		fmt.Sprintf(" Click: %d,%d", clickX, clickY),
	}

	for i, line := range lines {
		if i >= inner.Height {
			break
		}
		r.drawText(inner.X, inner.Y+i, inner.Width, line, r.styleDefault)
	}
}

// drawText writes a clipped line of text, advancing by display width
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	pos := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if pos+w > maxWidth {
			break
		}
		r.screen.SetContent(x+pos, y, ch, nil, style)
		pos += w
	}
}

// drawBox draws a single-line border around the area with an optional title
// on the top edge
func (r *Renderer) drawBox(a core.Area, title string) {
	if a.Width < 2 || a.Height < 2 {
		return
	}

	r.screen.SetContent(a.X, a.Y, boxChars[boxTL], nil, r.styleDefault)
	r.screen.SetContent(a.X+a.Width-1, a.Y, boxChars[boxTR], nil, r.styleDefault)
	r.screen.SetContent(a.X, a.Y+a.Height-1, boxChars[boxBL], nil, r.styleDefault)
	r.screen.SetContent(a.X+a.Width-1, a.Y+a.Height-1, boxChars[boxBR], nil, r.styleDefault)

	for x := a.X + 1; x < a.X+a.Width-1; x++ {
		r.screen.SetContent(x, a.Y, boxChars[boxH], nil, r.styleDefault)
		r.screen.SetContent(x, a.Y+a.Height-1, boxChars[boxH], nil, r.styleDefault)
	}
	for y := a.Y + 1; y < a.Y+a.Height-1; y++ {
		r.screen.SetContent(a.X, y, boxChars[boxV], nil, r.styleDefault)
		r.screen.SetContent(a.X+a.Width-1, y, boxChars[boxV], nil, r.styleDefault)
	}

	if title != "" && a.Width > runewidth.StringWidth(title)+2 {
		r.drawText(a.X+1, a.Y, a.Width-2, title, r.styleTitle)
	}
}
