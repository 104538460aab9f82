package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Palette is the set of colors a frame is drawn with.
type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Food       color.RGBA
	Snake      color.RGBA
	Text       color.RGBA
}

// Config is the compiled-in game configuration. Sizes are in pixels except
// TickRate, which is ticks per second.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	GridSize     int
	TickRate     int
	Colors       Palette
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		GridSize:     20,
		TickRate:     10,
		Colors: Palette{
			Background: color.RGBA{0, 0, 0, 255},
			Border:     color.RGBA{100, 100, 100, 255},
			Food:       color.RGBA{255, 0, 0, 255},
			Snake:      color.RGBA{255, 255, 0, 255},
			Text:       color.RGBA{255, 255, 255, 255},
		},
	}
}

func (c Config) BoardWidth() int  { return c.ScreenWidth / c.GridSize }
func (c Config) BoardHeight() int { return c.ScreenHeight / c.GridSize }

func (c Config) Board() Board {
	return Board{Width: c.BoardWidth(), Height: c.BoardHeight()}
}

// FrameInterval is the time budget of a single tick.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfig, c.GridSize)
	case c.ScreenWidth < c.GridSize || c.ScreenHeight < c.GridSize:
		return fmt.Errorf("%w: screen %dx%d smaller than one %dpx cell",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.GridSize)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	case c.TickRate > int(time.Second):
		return fmt.Errorf("%w: tick rate %d exceeds one tick per nanosecond", ErrInvalidConfig, c.TickRate)
	}
	return nil
}
