package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termlife/constants"
	"github.com/lixenwraith/termlife/events"
	"github.com/lixenwraith/termlife/game"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func cellRune(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	c := cells[y*width+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestFrameReportsInnerViewport(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := New(screen)
	app := game.NewApp(constants.DefaultTickInterval)

	vp := r.Frame(app)

	// Margin 2 on each side, 85% pane, border excluded
	if vp.X != 3 || vp.Y != 3 {
		t.Fatalf("viewport origin = (%d,%d), want (3,3)", vp.X, vp.Y)
	}
	if vp.Width != 45 || vp.Height != 14 {
		t.Fatalf("viewport = %dx%d, want 45x14", vp.Width, vp.Height)
	}

	// Stable across frames at the same screen size
	if again := r.Frame(app); again != vp {
		t.Fatalf("second frame viewport = %+v, want %+v", again, vp)
	}
}

func TestFrameDrawsBorderAndCells(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := New(screen)
	app := game.NewApp(constants.DefaultTickInterval)

	// First frame measures, resize round-trips as in the consumer loop
	vp := r.Frame(app)
	app.HandleEvent(events.Event{Type: events.TypeResize, Area: vp})

	app.Grid().Set(0, 0, true)
	app.Grid().Set(2, 3, true)
	r.Frame(app)

	if got := cellRune(screen, vp.X-1, vp.Y-1); got != '┌' {
		t.Fatalf("pane corner = %q, want '┌'", got)
	}
	if got := cellRune(screen, vp.X, vp.Y); got != constants.AliveRune {
		t.Fatalf("cell (0,0) rendered as %q, want %q", got, constants.AliveRune)
	}
	if got := cellRune(screen, vp.X+3, vp.Y+2); got != constants.AliveRune {
		t.Fatalf("cell (2,3) rendered as %q, want %q", got, constants.AliveRune)
	}
	if got := cellRune(screen, vp.X+1, vp.Y); got != ' ' {
		t.Fatalf("dead cell rendered as %q, want blank", got)
	}
}

func TestFrameOnTinyScreen(t *testing.T) {
	screen := newSimScreen(t, 4, 4)
	r := New(screen)
	app := game.NewApp(constants.DefaultTickInterval)

	if vp := r.Frame(app); !vp.Empty() {
		t.Fatalf("tiny screen viewport = %+v, want empty", vp)
	}
}
