package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sarwarhridoy4/snake-go/game"
)

var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowUp:    game.KeyUp,
	ebiten.KeyArrowDown:  game.KeyDown,
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyEscape:     game.KeyQuit,
}

// translate turns the keys pressed during one Ebiten update, and whether the
// window is being closed, into game events. Unmapped keys are dropped.
func translate(pressed []ebiten.Key, closing bool) []game.Event {
	var evs []game.Event
	if closing {
		evs = append(evs, game.Event{Kind: game.EventQuit})
	}
	for _, k := range pressed {
		if gk, ok := keyMap[k]; ok {
			evs = append(evs, game.Event{Kind: game.EventKey, Key: gk})
		}
	}
	return evs
}

// pacer fires once every n calls to due. It spreads game ticks over Ebiten's
// faster update rate so keys can be read on every update.
type pacer struct {
	every, n int
}

func newPacer(tps, tickRate int) *pacer {
	every := tps / tickRate
	if every < 1 {
		every = 1
	}
	return &pacer{every: every}
}

func (p *pacer) due() bool {
	p.n++
	if p.n < p.every {
		return false
	}
	p.n = 0
	return true
}
