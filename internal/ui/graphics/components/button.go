package components

import (
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	hovered       bool
	pressed       bool
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Text:   buttonText,
	}
}

// Update reports a click: the left button released while over the button.
func (b *Button) Update() bool {
	mx, my := ebiten.CursorPosition()
	return b.track(b.Contains(mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (b *Button) track(hovered, down bool) bool {
	wasPressed := b.pressed
	b.hovered = hovered
	b.pressed = hovered && down
	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := types.ColorButton
	switch {
	case b.pressed:
		bg = types.Darken(types.ColorButton, 0.8)
	case b.hovered:
		bg = types.Lighten(types.ColorButton, 1.3)
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorTextDim, false)

	fonts := types.GetFonts()
	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, fonts.Normal, textX, textY, types.ColorButtonText)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
