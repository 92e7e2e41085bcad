package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorSnakeHead  = color.RGBA{0, 255, 0, 255}
	ColorSnakeBody  = color.RGBA{45, 180, 0, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorTextDim    = color.RGBA{150, 150, 150, 255}
	ColorButton     = color.RGBA{70, 70, 80, 255}
	ColorButtonText = color.RGBA{220, 220, 220, 255}
)

// WallColors holds one theme per level; the number of entries bounds the
// level.
var WallColors = []color.RGBA{
	{255, 255, 255, 255},
	{0, 0, 255, 255},
	{255, 200, 0, 255},
	{255, 0, 255, 255},
}

func WallColor(level int32) color.RGBA {
	idx := int(level - 1)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(WallColors) {
		idx = len(WallColors) - 1
	}
	return WallColors[idx]
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}
