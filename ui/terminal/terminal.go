// Package terminal runs the game in a text terminal using tcell. Each board
// cell is drawn as two character columns so cells stay roughly square.
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/sarwarhridoy4/snake-go/game"
)

const colsPerCell = 2

// Terminal implements game.Renderer and game.Input on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	grid   int
	bg     tcell.Color
}

// Open initializes the user's terminal. The caller must Close it.
func Open(gridSize int) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	return New(s, gridSize), nil
}

// New wraps an already initialized screen.
func New(s tcell.Screen, gridSize int) *Terminal {
	s.HideCursor()
	return &Terminal{screen: s, grid: gridSize, bg: tcell.ColorBlack}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Poll drains the events already queued on the screen without blocking.
func (t *Terminal) Poll() []game.Event {
	var evs []game.Event
	for t.screen.HasPendingEvent() {
		switch e := t.screen.PollEvent().(type) {
		case nil:
			return append(evs, game.Event{Kind: game.EventQuit})
		case *tcell.EventKey:
			if k := translate(e); k != game.KeyNone {
				evs = append(evs, game.Event{Kind: game.EventKey, Key: k})
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
	return evs
}

func translate(e *tcell.EventKey) game.Key {
	switch e.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit
	case tcell.KeyRune:
		if r := e.Rune(); r == 'q' || r == 'Q' {
			return game.KeyQuit
		}
	}
	return game.KeyNone
}

func (t *Terminal) Clear(c color.RGBA) {
	t.bg = rgb(c)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
}

// DrawRect fills the character cells covering cell. Terminal cells have a
// fixed size, so size and border are not used.
func (t *Terminal) DrawRect(cell game.Cell, size int, fill, border color.RGBA) {
	st := tcell.StyleDefault.Background(rgb(fill))
	for i := 0; i < colsPerCell; i++ {
		t.screen.SetContent(cell.X*colsPerCell+i, cell.Y, ' ', nil, st)
	}
}

// DrawText maps the pixel position onto the character grid.
func (t *Terminal) DrawText(s string, x, y int, c color.RGBA) {
	col, row := x*colsPerCell/t.grid, y/t.grid
	st := tcell.StyleDefault.Foreground(rgb(c)).Background(t.bg)
	for i, ch := range []rune(s) {
		t.screen.SetContent(col+i, row, ch, nil, st)
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
