package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Food is a single item placed anywhere on the board. Relocation does not look
// at the snake, so it may land on an occupied cell.
type Food struct {
	pos Cell
	rng *rand.Rand
}

// NewFood returns food seeded with seed, or with the current time if seed is
// zero. The food is placed with a first Relocate.
func NewFood(seed uint64, b Board) *Food {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := &Food{rng: rand.New(rand.NewSource(seed))}
	f.Relocate(b.Width, b.Height)
	return f
}

func (f *Food) Relocate(width, height int) Cell {
	f.pos = Cell{f.rng.Intn(width), f.rng.Intn(height)}
	return f.pos
}

func (f *Food) Position() Cell { return f.pos }

func (f *Food) Draw(r Renderer, size int, p Palette) {
	r.DrawRect(f.pos, size, p.Food, p.Border)
}
