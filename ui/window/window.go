// Package window runs the game in a desktop window with Ebiten. Keys are read
// on every Ebiten update; the simulation steps on every n-th update so that it
// advances at the configured tick rate.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sarwarhridoy4/snake-go/game"
)

// Window adapts a game.Controller to ebiten.Game. It is also the controller's
// Input and Renderer.
type Window struct {
	ctrl   *game.Controller
	cfg    game.Config
	screen *ebiten.Image
	text   *ebiten.Image
	keys   []ebiten.Key
	queued []game.Event
	pace   *pacer
}

func New(c *game.Controller) *Window {
	return newWindow(c, ebiten.TPS())
}

func newWindow(c *game.Controller, tps int) *Window {
	cfg := c.Config()
	return &Window{ctrl: c, cfg: cfg, pace: newPacer(tps, cfg.TickRate)}
}

// Run opens the window and blocks until the player quits.
func Run(c *game.Controller) error {
	cfg := c.Config()
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Snake - Go + Ebiten")
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(New(c)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (w *Window) Poll() []game.Event {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	return translate(w.keys, ebiten.IsWindowBeingClosed())
}

func (w *Window) Update() error {
	return w.update(w.Poll())
}

// update queues evs until the next game tick. A quit event ends the game
// without waiting for the tick.
func (w *Window) update(evs []game.Event) error {
	for _, ev := range evs {
		if game.IsQuit(ev) {
			return ebiten.Termination
		}
	}
	w.queued = append(w.queued, evs...)
	if !w.pace.due() {
		return nil
	}
	quit := w.ctrl.Step(w.queued)
	w.queued = w.queued[:0]
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.screen = screen
	w.ctrl.Render(w)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return w.cfg.ScreenWidth, w.cfg.ScreenHeight
}

func (w *Window) Clear(c color.RGBA) {
	w.screen.Fill(c)
}

func (w *Window) DrawRect(cell game.Cell, size int, fill, border color.RGBA) {
	x, y, s := float32(cell.X*size), float32(cell.Y*size), float32(size)
	vector.DrawFilledRect(w.screen, x, y, s, s, fill, false)
	vector.StrokeRect(w.screen, x+0.5, y+0.5, s-1, s-1, 1, border, false)
}

// DrawText prints with the debug font, which is always white, into a scratch
// image and tints it on the way to the screen.
func (w *Window) DrawText(s string, x, y int, c color.RGBA) {
	if w.text == nil {
		w.text = ebiten.NewImage(w.cfg.ScreenWidth, w.cfg.ScreenHeight)
	}
	w.text.Clear()
	ebitenutil.DebugPrintAt(w.text, s, x, y)
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	w.screen.DrawImage(w.text, op)
}

// Present is a no-op; Ebiten swaps buffers after Draw returns.
func (w *Window) Present() {}
