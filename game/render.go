package game

import "image/color"

// Renderer is the drawing surface a backend hands to the controller once per
// frame. Positions passed to DrawText are in pixels.
type Renderer interface {
	Clear(c color.RGBA)
	DrawRect(cell Cell, size int, fill, border color.RGBA)
	DrawText(s string, x, y int, c color.RGBA)
	Present()
}

type Drawable interface {
	Draw(r Renderer, size int, p Palette)
}

type Positioned interface {
	Position() Cell
}

var (
	_ Drawable   = (*Snake)(nil)
	_ Drawable   = (*Food)(nil)
	_ Positioned = (*Snake)(nil)
	_ Positioned = (*Food)(nil)
)
